package parser

import (
	"log/slog"
	"sort"

	"github.com/carrierops/interpreter/pkg/core"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Dependencies holds the collaborators of an Interpreter. Sink is required.
type Dependencies struct {
	Sink      Sink
	Templates TemplateRegistry
	Files     FileProbe
	Logger    *slog.Logger
}

// Interpreter turns lines of the command language into command records
// and submits them to its Sink.
type Interpreter struct {
	deps Dependencies
}

// NewInterpreter creates an interpreter. A nil Files probe uses the OS
// filesystem and a nil Logger uses slog.Default().
func NewInterpreter(deps Dependencies) *Interpreter {
	if deps.Files == nil {
		deps.Files = NewFSProbe(nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Interpreter{deps: deps}
}

// family verbs, keyed by upper-cased first token
var verbFamilies = map[string]core.Family{
	"DEFINE":   core.FamilyTemplate,
	"UNDEFINE": core.FamilyTemplate,
	"SHOW":     core.FamilyTemplate,
	"CREATE":   core.FamilyAgent,
	"UNCREATE": core.FamilyAgent,
	"DESCRIBE": core.FamilyAgent,
	"POPULATE": core.FamilyStructural,
	"COMMIT":   core.FamilyStructural,
	"DO":       core.FamilyBehavioral,
	"@DO":      core.FamilyBehavioral,
	"GET":      core.FamilyBehavioral,
	"SET":      core.FamilyBehavioral,
	"@CLOCK":   core.FamilyMisc,
	"@RUN":     core.FamilyMisc,
	"@EXIT":    core.FamilyMisc,
	"@WAIT":    core.FamilyMisc,
}

var knownVerbs = func() []string {
	verbs := []string{"LIST"}
	for v := range verbFamilies {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}()

// Interpret processes one raw line. Statements are parsed and submitted
// left to right; the first failing statement stops the line, leaving
// earlier statements submitted and later ones unparsed.
func (in *Interpreter) Interpret(line string) error {
	statements, err := Segment(line)
	if err != nil {
		return err
	}
	for _, s := range statements {
		cmd, err := in.Parse(s)
		if err != nil {
			in.deps.Logger.Debug("Statement rejected", "statement", s, "error", err)
			return err
		}
		in.submit(cmd)
	}
	return nil
}

// Parse turns a single statement into a command record without submitting it.
func (in *Interpreter) Parse(text string) (core.Command, error) {
	st := newStatement(text)
	if st.len() == 0 {
		return nil, newError(EmptyInput, text, "nothing to interpret")
	}

	family, err := route(st)
	if err != nil {
		return nil, err
	}

	var cmd core.Command
	switch family {
	case core.FamilyTemplate:
		cmd, err = in.parseTemplate(st)
	case core.FamilyAgent:
		cmd, err = in.parseAgent(st)
	case core.FamilyStructural:
		cmd, err = in.parseStructural(st)
	case core.FamilyBehavioral:
		cmd, err = in.parseBehavioral(st)
	default:
		cmd, err = in.parseMisc(st)
	}
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// route selects the family from the first token, and for LIST the second.
func route(st statement) (core.Family, error) {
	verb := st.word(0)
	if verb == "LIST" {
		switch st.word(1) {
		case "TEMPLATES":
			return core.FamilyTemplate, nil
		case "AGENTS":
			return core.FamilyAgent, nil
		}
		return 0, st.invalid("LIST expects TEMPLATES or AGENTS, got %q", st.word(1))
	}
	if f, ok := verbFamilies[verb]; ok {
		return f, nil
	}
	if s := suggest(verb); s != "" {
		return 0, st.invalid("unknown command %q, did you mean %s?", st.tokens[0], s)
	}
	return 0, st.invalid("unknown command %q", st.tokens[0])
}

func suggest(verb string) string {
	ranks := fuzzy.RankFindFold(verb, knownVerbs)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

func (in *Interpreter) submit(cmd core.Command) {
	switch c := cmd.(type) {
	case core.TemplateCommand:
		in.deps.Sink.SubmitTemplateDefinition(c)
	case core.AgentCommand:
		in.deps.Sink.SubmitAgentCreation(c)
	case core.StructuralCommand:
		in.deps.Sink.SubmitStructural(c)
	case core.BehavioralCommand:
		in.deps.Sink.SubmitBehavioral(c)
	case core.MiscCommand:
		in.deps.Sink.SubmitMisc(c)
	}
}
