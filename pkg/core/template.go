// pkg/core/template.go
package core

// DefineTrap defines an arresting-wire trap template.
type DefineTrap struct {
	ID              Identifier
	Origin          CoordinateCartesianRelative
	Azimuth         AngleNavigational
	Width           Distance
	LimitWeight     Weight
	LimitSpeed      Speed
	MissProbability Percent
}

// DefineCatapult defines a launch catapult template.
type DefineCatapult struct {
	ID           Identifier
	Origin       CoordinateCartesianRelative
	Azimuth      AngleNavigational
	Length       Distance
	Acceleration Acceleration
	LimitWeight  Weight
	LimitSpeed   Speed
	ResetTime    Time
}

// DefineOLSTransmitter defines an optical landing system transmitter template.
type DefineOLSTransmitter struct {
	ID        Identifier
	Origin    CoordinateCartesianRelative
	Azimuth   AngleNavigational
	Elevation AttitudePitch
	Range     Distance
	Diameter  Distance
}

// DefineOLSReceiver defines an optical landing system receiver template.
type DefineOLSReceiver struct {
	ID       Identifier
	Diameter Distance
}

// DefineCarrier defines a carrier template.
type DefineCarrier struct {
	ID                 Identifier
	SpeedMax           Speed
	DeltaSpeedIncrease Speed
	DeltaSpeedDecrease Speed
	Turn               AngleNavigational
	Layout             string
}

// DefineFighter defines a fighter template.
type DefineFighter struct {
	ID                 Identifier
	SpeedMin           Speed
	SpeedMax           Speed
	DeltaSpeedIncrease Speed
	DeltaSpeedDecrease Speed
	Turn               AngleNavigational
	Climb              Altitude
	Descent            Altitude
	EmptyWeight        Weight
	FuelInitial        Weight
	FuelDelta          Weight
}

// DefineTanker defines a tanker template.
type DefineTanker struct {
	ID                 Identifier
	SpeedMin           Speed
	SpeedMax           Speed
	DeltaSpeedIncrease Speed
	DeltaSpeedDecrease Speed
	Turn               AngleNavigational
	Climb              Altitude
	Descent            Altitude
	Tank               Weight
}

// DefineBoomMale defines the tanker side of a refuelling boom.
type DefineBoomMale struct {
	ID       Identifier
	Length   Distance
	Diameter Distance
	Flow     Flow
}

// DefineBoomFemale defines the receiver side of a refuelling boom.
type DefineBoomFemale struct {
	ID        Identifier
	Length    Distance
	Diameter  Distance
	Elevation AttitudePitch
	Flow      Flow
}

type DefineTailhook struct {
	ID   Identifier
	Time Time
}

type DefineBarrier struct {
	ID      Identifier
	Origin  CoordinateCartesianRelative
	Azimuth AngleNavigational
	Width   Distance
	Time    Time
}

type DefineAuxiliaryTank struct {
	ID     Identifier
	Amount Weight
}

// Undefine removes a template.
type Undefine struct {
	ID Identifier
}

// ShowTemplate asks for a template's definition to be displayed.
type ShowTemplate struct {
	ID Identifier
}

type ListTemplates struct{}

// TemplateID returns the identifier defined by a template command, if it defines one.
func TemplateID(c TemplateCommand) (Identifier, bool) {
	switch t := c.(type) {
	case DefineTrap:
		return t.ID, true
	case DefineCatapult:
		return t.ID, true
	case DefineOLSTransmitter:
		return t.ID, true
	case DefineOLSReceiver:
		return t.ID, true
	case DefineCarrier:
		return t.ID, true
	case DefineFighter:
		return t.ID, true
	case DefineTanker:
		return t.ID, true
	case DefineBoomMale:
		return t.ID, true
	case DefineBoomFemale:
		return t.ID, true
	case DefineTailhook:
		return t.ID, true
	case DefineBarrier:
		return t.ID, true
	case DefineAuxiliaryTank:
		return t.ID, true
	}
	return "", false
}

func (DefineTrap) Family() Family           { return FamilyTemplate }
func (DefineCatapult) Family() Family       { return FamilyTemplate }
func (DefineOLSTransmitter) Family() Family { return FamilyTemplate }
func (DefineOLSReceiver) Family() Family    { return FamilyTemplate }
func (DefineCarrier) Family() Family        { return FamilyTemplate }
func (DefineFighter) Family() Family        { return FamilyTemplate }
func (DefineTanker) Family() Family         { return FamilyTemplate }
func (DefineBoomMale) Family() Family       { return FamilyTemplate }
func (DefineBoomFemale) Family() Family     { return FamilyTemplate }
func (DefineTailhook) Family() Family       { return FamilyTemplate }
func (DefineBarrier) Family() Family        { return FamilyTemplate }
func (DefineAuxiliaryTank) Family() Family  { return FamilyTemplate }
func (Undefine) Family() Family             { return FamilyTemplate }
func (ShowTemplate) Family() Family         { return FamilyTemplate }
func (ListTemplates) Family() Family        { return FamilyTemplate }

func (DefineTrap) Kind() string           { return "define trap" }
func (DefineCatapult) Kind() string       { return "define catapult" }
func (DefineOLSTransmitter) Kind() string { return "define ols_xmt" }
func (DefineOLSReceiver) Kind() string    { return "define ols_rcv" }
func (DefineCarrier) Kind() string        { return "define carrier" }
func (DefineFighter) Kind() string        { return "define fighter" }
func (DefineTanker) Kind() string         { return "define tanker" }
func (DefineBoomMale) Kind() string       { return "define boom male" }
func (DefineBoomFemale) Kind() string     { return "define boom female" }
func (DefineTailhook) Kind() string       { return "define tailhook" }
func (DefineBarrier) Kind() string        { return "define barrier" }
func (DefineAuxiliaryTank) Kind() string  { return "define aux_tank" }
func (Undefine) Kind() string             { return "undefine" }
func (ShowTemplate) Kind() string         { return "show template" }
func (ListTemplates) Kind() string        { return "list templates" }

func (DefineTrap) templateCommand()           {}
func (DefineCatapult) templateCommand()       {}
func (DefineOLSTransmitter) templateCommand() {}
func (DefineOLSReceiver) templateCommand()    {}
func (DefineCarrier) templateCommand()        {}
func (DefineFighter) templateCommand()        {}
func (DefineTanker) templateCommand()         {}
func (DefineBoomMale) templateCommand()       {}
func (DefineBoomFemale) templateCommand()     {}
func (DefineTailhook) templateCommand()       {}
func (DefineBarrier) templateCommand()        {}
func (DefineAuxiliaryTank) templateCommand()  {}
func (Undefine) templateCommand()             {}
func (ShowTemplate) templateCommand()         {}
func (ListTemplates) templateCommand()        {}
