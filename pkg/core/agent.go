// pkg/core/agent.go
package core

// CreateCarrier instantiates a carrier with its attached equipment.
type CreateCarrier struct {
	ID       Identifier
	Template Identifier
	Catapult Identifier
	Barrier  Identifier
	Trap     Identifier
	OLS      Identifier
	Position CoordinateWorld
	Heading  AngleNavigational
	Speed    Speed
}

// CreateFighter instantiates a fighter parked on a carrier deck.
type CreateFighter struct {
	ID        Identifier
	Template  Identifier
	OLS       Identifier
	Boom      Identifier
	Tailhook  Identifier
	Tanks     []Identifier
	Overrides []ParameterAssignment
}

// CreateFighterAirborne instantiates a fighter already in flight.
type CreateFighterAirborne struct {
	CreateFighter
	Position CoordinateWorld
	Altitude Altitude
	Heading  AngleNavigational
	Speed    Speed
}

// CreateTanker instantiates an airborne tanker.
type CreateTanker struct {
	ID       Identifier
	Template Identifier
	Boom     Identifier
	Position CoordinateWorld
	Altitude Altitude
	Heading  AngleNavigational
	Speed    Speed
}

type CreateTrap struct{ ID, Template Identifier }
type CreateBarrier struct{ ID, Template Identifier }
type CreateAuxiliaryTank struct{ ID, Template Identifier }
type CreateCatapult struct{ ID, Template Identifier }
type CreateOLSTransmitter struct{ ID, Template Identifier }
type CreateOLSReceiver struct{ ID, Template Identifier }
type CreateTailhook struct{ ID, Template Identifier }
type CreateBoomMale struct{ ID, Template Identifier }
type CreateBoomFemale struct{ ID, Template Identifier }

// Uncreate removes an agent.
type Uncreate struct {
	ID Identifier
}

// Describe asks for an agent's state to be displayed.
type Describe struct {
	ID Identifier
}

type ListAgents struct{}

// CreatedAgent returns the identifier a creation command brings into being.
func CreatedAgent(c AgentCommand) (Identifier, bool) {
	switch a := c.(type) {
	case CreateCarrier:
		return a.ID, true
	case CreateFighter:
		return a.ID, true
	case CreateFighterAirborne:
		return a.ID, true
	case CreateTanker:
		return a.ID, true
	case CreateTrap:
		return a.ID, true
	case CreateBarrier:
		return a.ID, true
	case CreateAuxiliaryTank:
		return a.ID, true
	case CreateCatapult:
		return a.ID, true
	case CreateOLSTransmitter:
		return a.ID, true
	case CreateOLSReceiver:
		return a.ID, true
	case CreateTailhook:
		return a.ID, true
	case CreateBoomMale:
		return a.ID, true
	case CreateBoomFemale:
		return a.ID, true
	}
	return "", false
}

func (CreateCarrier) Family() Family        { return FamilyAgent }
func (CreateFighter) Family() Family        { return FamilyAgent }
func (CreateTanker) Family() Family         { return FamilyAgent }
func (CreateTrap) Family() Family           { return FamilyAgent }
func (CreateBarrier) Family() Family        { return FamilyAgent }
func (CreateAuxiliaryTank) Family() Family  { return FamilyAgent }
func (CreateCatapult) Family() Family       { return FamilyAgent }
func (CreateOLSTransmitter) Family() Family { return FamilyAgent }
func (CreateOLSReceiver) Family() Family    { return FamilyAgent }
func (CreateTailhook) Family() Family       { return FamilyAgent }
func (CreateBoomMale) Family() Family       { return FamilyAgent }
func (CreateBoomFemale) Family() Family     { return FamilyAgent }
func (Uncreate) Family() Family             { return FamilyAgent }
func (Describe) Family() Family             { return FamilyAgent }
func (ListAgents) Family() Family           { return FamilyAgent }

func (CreateCarrier) Kind() string         { return "create carrier" }
func (CreateFighter) Kind() string         { return "create fighter" }
func (CreateFighterAirborne) Kind() string { return "create fighter airborne" }
func (CreateTanker) Kind() string          { return "create tanker" }
func (CreateTrap) Kind() string            { return "create trap" }
func (CreateBarrier) Kind() string         { return "create barrier" }
func (CreateAuxiliaryTank) Kind() string   { return "create aux_tank" }
func (CreateCatapult) Kind() string        { return "create catapult" }
func (CreateOLSTransmitter) Kind() string  { return "create ols_xmt" }
func (CreateOLSReceiver) Kind() string     { return "create ols_rcv" }
func (CreateTailhook) Kind() string        { return "create tailhook" }
func (CreateBoomMale) Kind() string        { return "create boom male" }
func (CreateBoomFemale) Kind() string      { return "create boom female" }
func (Uncreate) Kind() string              { return "uncreate" }
func (Describe) Kind() string              { return "describe" }
func (ListAgents) Kind() string            { return "list agents" }

func (CreateCarrier) agentCommand()        {}
func (CreateFighter) agentCommand()        {}
func (CreateTanker) agentCommand()         {}
func (CreateTrap) agentCommand()           {}
func (CreateBarrier) agentCommand()        {}
func (CreateAuxiliaryTank) agentCommand()  {}
func (CreateCatapult) agentCommand()       {}
func (CreateOLSTransmitter) agentCommand() {}
func (CreateOLSReceiver) agentCommand()    {}
func (CreateTailhook) agentCommand()       {}
func (CreateBoomMale) agentCommand()       {}
func (CreateBoomFemale) agentCommand()     {}
func (Uncreate) agentCommand()             {}
func (Describe) agentCommand()             {}
func (ListAgents) agentCommand()           {}
