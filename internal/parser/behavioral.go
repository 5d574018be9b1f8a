package parser

import "github.com/carrierops/interpreter/pkg/core"

type behavioralRule = rule[core.BehavioralCommand]

var (
	getWindRule = newRule("GET WIND CONDITIONS", func(*fieldReader) core.BehavioralCommand {
		return core.GetWindConditions{}
	})
	setWindRules = map[string]behavioralRule{
		"DIRECTION": newRule("SET WIND DIRECTION <course>", func(r *fieldReader) core.BehavioralCommand {
			return core.SetWindDirection{Direction: r.course("course")}
		}),
		"SPEED": newRule("SET WIND SPEED <speed>", func(r *fieldReader) core.BehavioralCommand {
			return core.SetWindSpeed{Speed: r.speed("speed")}
		}),
	}
)

// DO rules keyed by verb. SET is further keyed by its property.
var doRules = map[string]behavioralRule{
	"ASK": newRule("DO <aid> ASK <parameter>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoAsk{Agent: r.ident("aid"), Parameter: r.askParameter("parameter")}
	}),
	"POSITION": newRule("DO <aid> POSITION", func(r *fieldReader) core.BehavioralCommand {
		return core.DoPosition{Agent: r.ident("aid")}
	}),
	"BARRIER": newRule("DO <aid> BARRIER <state>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoBarrier{Agent: r.ident("aid"), Up: r.choice("state", "UP", "DOWN")}
	}),
	"CATAPULT": newRule("DO <aid> CATAPULT LAUNCH WITH SPEED <speed>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoCatapultLaunch{Agent: r.ident("aid"), Speed: r.speed("speed")}
	}),
	"TAILHOOK": newRule("DO <aid> TAILHOOK <state>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoTailhook{Agent: r.ident("aid"), Up: r.choice("state", "UP", "DOWN")}
	}),
	"CAPTURE": newRule("DO <aid> CAPTURE OLS", func(r *fieldReader) core.BehavioralCommand {
		return core.DoCaptureOLS{Agent: r.ident("aid")}
	}),
	"BOOM": newRule("DO <aid> BOOM <state>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoBoom{Agent: r.ident("aid"), Extend: r.choice("state", "EXTEND", "RETRACT")}
	}),
	"TRANSFER": newRule("DO <aid> TRANSFER <state>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoTransfer{Agent: r.ident("aid"), Start: r.choice("state", "START", "STOP")}
	}),
}

var doSetRules = map[string]behavioralRule{
	"SPEED": newRule("DO <aid> SET SPEED <speed>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoSetSpeed{Agent: r.ident("aid"), Speed: r.speed("speed")}
	}),
	"ALTITUDE": newRule("DO <aid> SET ALTITUDE <altitude>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoSetAltitude{Agent: r.ident("aid"), Altitude: r.altitude("altitude")}
	}),
	"HEADING": newRule("DO <aid> SET HEADING <heading> <direction>", func(r *fieldReader) core.BehavioralCommand {
		return core.DoSetHeading{
			Agent:     r.ident("aid"),
			Heading:   r.course("heading"),
			Direction: r.turnDirection("direction"),
		}
	}),
}

var (
	forceCoordinatesRules = map[int]behavioralRule{
		5: newRule("@DO <aid> FORCE COORDINATES <position>", func(r *fieldReader) core.BehavioralCommand {
			return core.DoForceCoordinates{Agent: r.ident("aid"), Position: r.coordinates("position")}
		}),
		9: newRule("@DO <aid> FORCE COORDINATES <position> HEADING <heading> SPEED <speed>", func(r *fieldReader) core.BehavioralCommand {
			return core.DoForceAll{
				Agent:    r.ident("aid"),
				Position: r.coordinates("position"),
				Heading:  r.course("heading"),
				Speed:    r.speed("speed"),
			}
		}),
		11: newRule("@DO <aid> FORCE COORDINATES <position> ALTITUDE <altitude> HEADING <heading> SPEED <speed>", func(r *fieldReader) core.BehavioralCommand {
			return core.DoForceAll{
				Agent:       r.ident("aid"),
				Position:    r.coordinates("position"),
				Altitude:    r.altitude("altitude"),
				HasAltitude: true,
				Heading:     r.course("heading"),
				Speed:       r.speed("speed"),
			}
		}),
	}
	forceRules = map[string]behavioralRule{
		"ALTITUDE": newRule("@DO <aid> FORCE ALTITUDE <altitude>", func(r *fieldReader) core.BehavioralCommand {
			return core.DoForceAltitude{Agent: r.ident("aid"), Altitude: r.altitude("altitude")}
		}),
		"HEADING": newRule("@DO <aid> FORCE HEADING <heading>", func(r *fieldReader) core.BehavioralCommand {
			return core.DoForceHeading{Agent: r.ident("aid"), Heading: r.course("heading")}
		}),
		"SPEED": newRule("@DO <aid> FORCE SPEED <speed>", func(r *fieldReader) core.BehavioralCommand {
			return core.DoForceSpeed{Agent: r.ident("aid"), Speed: r.speed("speed")}
		}),
	}
)

func (in *Interpreter) parseBehavioral(st statement) (core.BehavioralCommand, error) {
	switch st.word(0) {
	case "GET":
		return getWindRule.apply(st)
	case "SET":
		if st.word(1) != "WIND" {
			return nil, st.invalid("expected WIND at token 2, got %q", st.word(1))
		}
		if ru, ok := setWindRules[st.word(2)]; ok {
			return ru.apply(st)
		}
		return nil, st.invalid("expected DIRECTION or SPEED, got %q", st.word(2))
	case "DO":
		return parseDo(st)
	default:
		return parseForce(st)
	}
}

func parseDo(st statement) (core.BehavioralCommand, error) {
	verb := st.word(2)
	if verb == "SET" {
		if ru, ok := doSetRules[st.word(3)]; ok {
			return ru.apply(st)
		}
		return nil, st.invalid("cannot set %q", st.word(3))
	}
	if ru, ok := doRules[verb]; ok {
		return ru.apply(st)
	}
	return nil, st.invalid("unknown action %q", verb)
}

func parseForce(st statement) (core.BehavioralCommand, error) {
	if st.word(2) != "FORCE" {
		return nil, st.invalid("expected FORCE at token 3, got %q", st.word(2))
	}
	property := st.word(3)
	if property == "COORDINATES" {
		if ru, ok := forceCoordinatesRules[st.len()]; ok {
			return ru.apply(st)
		}
		return nil, st.invalid("FORCE COORDINATES takes 5, 9 or 11 tokens, got %d", st.len())
	}
	if ru, ok := forceRules[property]; ok {
		return ru.apply(st)
	}
	return nil, st.invalid("cannot force %q", property)
}
