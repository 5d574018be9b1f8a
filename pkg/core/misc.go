// pkg/core/misc.go
package core

type ShowClock struct{}

// SetClockRunning pauses or resumes the simulation clock.
type SetClockRunning struct {
	Running bool
}

// ClockUpdate advances the clock by one tick.
type ClockUpdate struct{}

type SetClockRate struct {
	Rate Rate
}

// RunFile executes a command script. The path has already been checked to name a regular file.
type RunFile struct {
	Path string
}

type Exit struct{}

// Wait pauses command processing.
type Wait struct {
	Duration Rate
}

func (ShowClock) Family() Family       { return FamilyMisc }
func (SetClockRunning) Family() Family { return FamilyMisc }
func (ClockUpdate) Family() Family     { return FamilyMisc }
func (SetClockRate) Family() Family    { return FamilyMisc }
func (RunFile) Family() Family         { return FamilyMisc }
func (Exit) Family() Family            { return FamilyMisc }
func (Wait) Family() Family            { return FamilyMisc }

func (ShowClock) Kind() string       { return "clock show" }
func (SetClockRunning) Kind() string { return "clock running" }
func (ClockUpdate) Kind() string     { return "clock update" }
func (SetClockRate) Kind() string    { return "clock rate" }
func (RunFile) Kind() string         { return "run" }
func (Exit) Kind() string            { return "exit" }
func (Wait) Kind() string            { return "wait" }

func (ShowClock) miscCommand()       {}
func (SetClockRunning) miscCommand() {}
func (ClockUpdate) miscCommand()     {}
func (SetClockRate) miscCommand()    {}
func (RunFile) miscCommand()         {}
func (Exit) miscCommand()            {}
func (Wait) miscCommand()            {}
