// pkg/core/behavioral.go
package core

type GetWindConditions struct{}

type SetWindDirection struct {
	Direction AngleNavigational
}

type SetWindSpeed struct {
	Speed Speed
}

// DoAsk queries one parameter (or all) of an agent.
type DoAsk struct {
	Agent     Identifier
	Parameter AskParameter
}

// DoPosition asks an agent to report its position.
type DoPosition struct {
	Agent Identifier
}

// DoBarrier raises or lowers a carrier barrier.
type DoBarrier struct {
	Agent Identifier
	Up    bool
}

// DoCatapultLaunch fires a catapult at the given speed.
type DoCatapultLaunch struct {
	Agent Identifier
	Speed Speed
}

type DoSetSpeed struct {
	Agent Identifier
	Speed Speed
}

type DoSetAltitude struct {
	Agent    Identifier
	Altitude Altitude
}

// DoSetHeading orders a turn onto Heading in the given direction.
type DoSetHeading struct {
	Agent     Identifier
	Heading   AngleNavigational
	Direction TurnDirection
}

// DoTailhook raises or lowers a fighter's tailhook.
type DoTailhook struct {
	Agent Identifier
	Up    bool
}

type DoCaptureOLS struct {
	Agent Identifier
}

// DoBoom extends or retracts a refuelling boom.
type DoBoom struct {
	Agent  Identifier
	Extend bool
}

// DoTransfer starts or stops a fuel transfer.
type DoTransfer struct {
	Agent Identifier
	Start bool
}

// DoForceCoordinates teleports an agent without touching its other state.
type DoForceCoordinates struct {
	Agent    Identifier
	Position CoordinateWorld
}

// DoForceAll overrides position, heading and speed at once. Altitude is
// only meaningful when HasAltitude is set.
type DoForceAll struct {
	Agent       Identifier
	Position    CoordinateWorld
	Altitude    Altitude
	HasAltitude bool
	Heading     AngleNavigational
	Speed       Speed
}

type DoForceAltitude struct {
	Agent    Identifier
	Altitude Altitude
}

type DoForceHeading struct {
	Agent   Identifier
	Heading AngleNavigational
}

type DoForceSpeed struct {
	Agent Identifier
	Speed Speed
}

// BehavioralAgent returns the agent a behavioral command is addressed to, if any.
func BehavioralAgent(c BehavioralCommand) (Identifier, bool) {
	switch b := c.(type) {
	case DoAsk:
		return b.Agent, true
	case DoPosition:
		return b.Agent, true
	case DoBarrier:
		return b.Agent, true
	case DoCatapultLaunch:
		return b.Agent, true
	case DoSetSpeed:
		return b.Agent, true
	case DoSetAltitude:
		return b.Agent, true
	case DoSetHeading:
		return b.Agent, true
	case DoTailhook:
		return b.Agent, true
	case DoCaptureOLS:
		return b.Agent, true
	case DoBoom:
		return b.Agent, true
	case DoTransfer:
		return b.Agent, true
	case DoForceCoordinates:
		return b.Agent, true
	case DoForceAll:
		return b.Agent, true
	case DoForceAltitude:
		return b.Agent, true
	case DoForceHeading:
		return b.Agent, true
	case DoForceSpeed:
		return b.Agent, true
	}
	return "", false
}

func (GetWindConditions) Family() Family  { return FamilyBehavioral }
func (SetWindDirection) Family() Family   { return FamilyBehavioral }
func (SetWindSpeed) Family() Family       { return FamilyBehavioral }
func (DoAsk) Family() Family              { return FamilyBehavioral }
func (DoPosition) Family() Family         { return FamilyBehavioral }
func (DoBarrier) Family() Family          { return FamilyBehavioral }
func (DoCatapultLaunch) Family() Family   { return FamilyBehavioral }
func (DoSetSpeed) Family() Family         { return FamilyBehavioral }
func (DoSetAltitude) Family() Family      { return FamilyBehavioral }
func (DoSetHeading) Family() Family       { return FamilyBehavioral }
func (DoTailhook) Family() Family         { return FamilyBehavioral }
func (DoCaptureOLS) Family() Family       { return FamilyBehavioral }
func (DoBoom) Family() Family             { return FamilyBehavioral }
func (DoTransfer) Family() Family         { return FamilyBehavioral }
func (DoForceCoordinates) Family() Family { return FamilyBehavioral }
func (DoForceAll) Family() Family         { return FamilyBehavioral }
func (DoForceAltitude) Family() Family    { return FamilyBehavioral }
func (DoForceHeading) Family() Family     { return FamilyBehavioral }
func (DoForceSpeed) Family() Family       { return FamilyBehavioral }

func (GetWindConditions) Kind() string  { return "get wind conditions" }
func (SetWindDirection) Kind() string   { return "set wind direction" }
func (SetWindSpeed) Kind() string       { return "set wind speed" }
func (DoAsk) Kind() string              { return "do ask" }
func (DoPosition) Kind() string         { return "do position" }
func (DoBarrier) Kind() string          { return "do barrier" }
func (DoCatapultLaunch) Kind() string   { return "do catapult launch" }
func (DoSetSpeed) Kind() string         { return "do set speed" }
func (DoSetAltitude) Kind() string      { return "do set altitude" }
func (DoSetHeading) Kind() string       { return "do set heading" }
func (DoTailhook) Kind() string         { return "do tailhook" }
func (DoCaptureOLS) Kind() string       { return "do capture ols" }
func (DoBoom) Kind() string             { return "do boom" }
func (DoTransfer) Kind() string         { return "do transfer" }
func (DoForceCoordinates) Kind() string { return "force coordinates" }
func (DoForceAll) Kind() string         { return "force all" }
func (DoForceAltitude) Kind() string    { return "force altitude" }
func (DoForceHeading) Kind() string     { return "force heading" }
func (DoForceSpeed) Kind() string       { return "force speed" }

func (GetWindConditions) behavioralCommand()  {}
func (SetWindDirection) behavioralCommand()   {}
func (SetWindSpeed) behavioralCommand()       {}
func (DoAsk) behavioralCommand()              {}
func (DoPosition) behavioralCommand()         {}
func (DoBarrier) behavioralCommand()          {}
func (DoCatapultLaunch) behavioralCommand()   {}
func (DoSetSpeed) behavioralCommand()         {}
func (DoSetAltitude) behavioralCommand()      {}
func (DoSetHeading) behavioralCommand()       {}
func (DoTailhook) behavioralCommand()         {}
func (DoCaptureOLS) behavioralCommand()       {}
func (DoBoom) behavioralCommand()             {}
func (DoTransfer) behavioralCommand()         {}
func (DoForceCoordinates) behavioralCommand() {}
func (DoForceAll) behavioralCommand()         {}
func (DoForceAltitude) behavioralCommand()    {}
func (DoForceHeading) behavioralCommand()     {}
func (DoForceSpeed) behavioralCommand()       {}
