package parser

import (
	"strings"

	"github.com/carrierops/interpreter/pkg/core"
)

type agentRule = rule[core.AgentCommand]

// simpleCreate builds rules of the form CREATE <KIND> <aid> FROM <tid>.
func simpleCreate(kind string, build func(id, template core.Identifier) core.AgentCommand) agentRule {
	return newRule("CREATE "+kind+" <aid> FROM <tid>", func(r *fieldReader) core.AgentCommand {
		return build(r.ident("aid"), r.ident("tid"))
	})
}

var createRules = map[string]agentRule{
	"CARRIER": newRule("CREATE CARRIER <aid> FROM <tid> WITH CATAPULT <catapult> BARRIER <barrier> TRAP <trap> OLS <ols> AT COORDINATES <position> HEADING <heading> SPEED <speed>",
		func(r *fieldReader) core.AgentCommand {
			return core.CreateCarrier{
				ID:       r.ident("aid"),
				Template: r.ident("tid"),
				Catapult: r.ident("catapult"),
				Barrier:  r.ident("barrier"),
				Trap:     r.ident("trap"),
				OLS:      r.ident("ols"),
				Position: r.coordinates("position"),
				Heading:  r.course("heading"),
				Speed:    r.speed("speed"),
			}
		}),
	"TANKER": newRule("CREATE TANKER <aid> FROM <tid> WITH BOOM <boom> AT COORDINATES <position> ALTITUDE <altitude> HEADING <heading> SPEED <speed>",
		func(r *fieldReader) core.AgentCommand {
			return core.CreateTanker{
				ID:       r.ident("aid"),
				Template: r.ident("tid"),
				Boom:     r.ident("boom"),
				Position: r.coordinates("position"),
				Altitude: r.altitude("altitude"),
				Heading:  r.course("heading"),
				Speed:    r.speed("speed"),
			}
		}),
	"TRAP": simpleCreate("TRAP", func(id, tid core.Identifier) core.AgentCommand {
		return core.CreateTrap{ID: id, Template: tid}
	}),
	"BARRIER": simpleCreate("BARRIER", func(id, tid core.Identifier) core.AgentCommand {
		return core.CreateBarrier{ID: id, Template: tid}
	}),
	"AUX_TANK": simpleCreate("AUX_TANK", func(id, tid core.Identifier) core.AgentCommand {
		return core.CreateAuxiliaryTank{ID: id, Template: tid}
	}),
	"CATAPULT": simpleCreate("CATAPULT", func(id, tid core.Identifier) core.AgentCommand {
		return core.CreateCatapult{ID: id, Template: tid}
	}),
	"OLS_XMT": simpleCreate("OLS_XMT", func(id, tid core.Identifier) core.AgentCommand {
		return core.CreateOLSTransmitter{ID: id, Template: tid}
	}),
	"OLS_RCV": simpleCreate("OLS_RCV", func(id, tid core.Identifier) core.AgentCommand {
		return core.CreateOLSReceiver{ID: id, Template: tid}
	}),
	"TAILHOOK": simpleCreate("TAILHOOK", func(id, tid core.Identifier) core.AgentCommand {
		return core.CreateTailhook{ID: id, Template: tid}
	}),
}

var (
	fighterPrefix   = mustShape("CREATE FIGHTER <aid> FROM <tid> WITH OLS <ols> BOOM <boom> TAILHOOK <tailhook> ...")
	airborneClause  = mustShape("AT COORDINATES <position> ALTITUDE <altitude> HEADING <heading> SPEED <speed>")
	boomCreateShape = mustShape("CREATE BOOM <aid> FROM <tid>")

	uncreateRule = newRule("UNCREATE <aid>", func(r *fieldReader) core.AgentCommand {
		return core.Uncreate{ID: r.ident("aid")}
	})
	describeRule = newRule("DESCRIBE <aid>", func(r *fieldReader) core.AgentCommand {
		return core.Describe{ID: r.ident("aid")}
	})
	listAgentsRule = newRule("LIST AGENTS", func(*fieldReader) core.AgentCommand {
		return core.ListAgents{}
	})
)

func (in *Interpreter) parseAgent(st statement) (core.AgentCommand, error) {
	switch st.word(0) {
	case "UNCREATE":
		return uncreateRule.apply(st)
	case "DESCRIBE":
		return describeRule.apply(st)
	case "LIST":
		return listAgentsRule.apply(st)
	}

	switch kind := st.word(1); kind {
	case "FIGHTER":
		return parseCreateFighter(st)
	case "BOOM":
		return in.parseCreateBoom(st)
	default:
		if ru, ok := createRules[kind]; ok {
			return ru.apply(st)
		}
		return nil, st.invalid("unknown agent kind %q", kind)
	}
}

// parseCreateFighter handles the mandatory prefix followed by the optional
// TANKS, OVERRIDING and AT clauses, which must appear in that order. Only the
// AT COORDINATES pair opens the airborne clause, so tanks and override values
// may be spelled "at"; a tank named "overriding" is not expressible.
func parseCreateFighter(st statement) (core.AgentCommand, error) {
	r, perr := fighterPrefix.read(st)
	if perr != nil {
		return nil, perr
	}
	fighter := core.CreateFighter{
		ID:       r.ident("aid"),
		Template: r.ident("tid"),
		OLS:      r.ident("ols"),
		Boom:     r.ident("boom"),
		Tailhook: r.ident("tailhook"),
	}

	rest := st.from(len(fighterPrefix.tokens))

	if rest.word(0) == "TANKS" {
		n := clauseLength(rest, 1, func(i int) bool {
			return rest.word(i) == "OVERRIDING" || opensAirborne(rest, i)
		})
		if n == 0 {
			return nil, st.invalid("TANKS requires at least one identifier")
		}
		for _, t := range rest.tokens[1 : 1+n] {
			fighter.Tanks = append(fighter.Tanks, core.Identifier(t))
		}
		rest = rest.from(1 + n)
	}

	if rest.word(0) == "OVERRIDING" {
		n := clauseLength(rest, 1, func(i int) bool { return opensAirborne(rest, i) })
		if n == 0 || n%3 != 0 {
			return nil, st.invalid("OVERRIDING requires one or more <agent>.<field> WITH <value> assignments")
		}
		for i := 1; i < 1+n; i += 3 {
			a, err := parseAssignment(st, rest.tokens[i:i+3])
			if err != nil {
				return nil, err
			}
			fighter.Overrides = append(fighter.Overrides, a)
		}
		rest = rest.from(1 + n)
	}

	if rest.len() == 0 {
		return fighter, nil
	}
	if !opensAirborne(rest, 0) {
		return nil, st.invalid("unexpected %q after fighter clauses", rest.tokens[0])
	}

	ar, perr := airborneClause.read(rest)
	if perr != nil {
		return nil, perr
	}
	airborne := core.CreateFighterAirborne{
		CreateFighter: fighter,
		Position:      ar.coordinates("position"),
		Altitude:      ar.altitude("altitude"),
		Heading:       ar.course("heading"),
		Speed:         ar.speed("speed"),
	}
	if ar.err != nil {
		return nil, ar.err
	}
	return airborne, nil
}

// clauseLength counts tokens from start up to the first index where stop
// holds, or to the end.
func clauseLength(st statement, start int, stop func(i int) bool) int {
	n := 0
	for i := start; i < st.len() && !stop(i); i++ {
		n++
	}
	return n
}

func opensAirborne(st statement, i int) bool {
	return st.word(i) == "AT" && st.word(i+1) == "COORDINATES"
}

// parseAssignment reads <agent>.<field> WITH <value>.
func parseAssignment(st statement, toks []string) (core.ParameterAssignment, error) {
	target, field, ok := strings.Cut(toks[0], ".")
	if !ok || target == "" || field == "" {
		return core.ParameterAssignment{}, st.invalid("override target %q is not <agent>.<field>", toks[0])
	}
	if !strings.EqualFold(toks[1], "WITH") {
		return core.ParameterAssignment{}, st.invalid("expected WITH after %q, got %q", toks[0], toks[1])
	}
	return core.ParameterAssignment{
		Target: core.Identifier(target),
		Field:  field,
		Value:  toks[2],
	}, nil
}

// parseCreateBoom consults the template registry: the record's gender
// follows the gender of the referenced boom template.
func (in *Interpreter) parseCreateBoom(st statement) (core.AgentCommand, error) {
	r, perr := boomCreateShape.read(st)
	if perr != nil {
		return nil, perr
	}
	id, tid := r.ident("aid"), r.ident("tid")

	var tmpl core.TemplateCommand
	found := false
	if in.deps.Templates != nil {
		tmpl, found = in.deps.Templates.LookupTemplate(tid)
	}
	if !found {
		return nil, newError(UnknownTemplate, st.text, "no template %q", tid)
	}

	switch tmpl.(type) {
	case core.DefineBoomMale:
		return core.CreateBoomMale{ID: id, Template: tid}, nil
	case core.DefineBoomFemale:
		return core.CreateBoomFemale{ID: id, Template: tid}, nil
	default:
		return nil, newError(UnknownTemplate, st.text, "template %q is a %s, not a boom", tid, tmpl.Kind())
	}
}
