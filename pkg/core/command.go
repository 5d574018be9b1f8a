// pkg/core/command.go
package core

// Family identifies which dispatch channel a command belongs to.
type Family int

const (
	FamilyTemplate Family = iota
	FamilyAgent
	FamilyStructural
	FamilyBehavioral
	FamilyMisc
)

func (f Family) String() string {
	switch f {
	case FamilyTemplate:
		return "template"
	case FamilyAgent:
		return "agent"
	case FamilyStructural:
		return "structural"
	case FamilyBehavioral:
		return "behavioral"
	case FamilyMisc:
		return "misc"
	default:
		return "unknown"
	}
}

// Families lists every family in routing order.
var Families = []Family{FamilyTemplate, FamilyAgent, FamilyStructural, FamilyBehavioral, FamilyMisc}

// Command is a fully validated, immutable record produced from one statement.
type Command interface {
	Family() Family
	// Kind is a short lowercase name of the grammar rule, e.g. "define trap".
	Kind() string
}

// TemplateCommand is a command routed to the template channel.
type TemplateCommand interface {
	Command
	templateCommand()
}

// AgentCommand is a command routed to the agent channel.
type AgentCommand interface {
	Command
	agentCommand()
}

// StructuralCommand is a command routed to the structural channel.
type StructuralCommand interface {
	Command
	structuralCommand()
}

// BehavioralCommand is a command routed to the behavioral channel.
type BehavioralCommand interface {
	Command
	behavioralCommand()
}

// MiscCommand is a command routed to the misc channel.
type MiscCommand interface {
	Command
	miscCommand()
}
