package parser

import "github.com/carrierops/interpreter/pkg/core"

type templateRule = rule[core.TemplateCommand]

// DEFINE rules keyed by the kind token. BOOM is keyed by its gender.
var defineRules = map[string]templateRule{
	"TRAP": newRule("DEFINE TRAP <tid> ORIGIN <origin> AZIMUTH <azimuth> WIDTH <width> LIMIT WEIGHT <weight> SPEED <speed> MISS <miss>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineTrap{
				ID:              r.ident("tid"),
				Origin:          r.origin("origin"),
				Azimuth:         core.AngleNavigational(r.real("azimuth")),
				Width:           core.Distance(r.real("width")),
				LimitWeight:     r.weight("weight"),
				LimitSpeed:      r.speed("speed"),
				MissProbability: r.percent("miss"),
			}
		}),
	"CATAPULT": newRule("DEFINE CATAPULT <tid> ORIGIN <origin> AZIMUTH <azimuth> LENGTH <length> ACCELERATION <acceleration> LIMIT WEIGHT <weight> SPEED <speed> RESET <reset>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineCatapult{
				ID:           r.ident("tid"),
				Origin:       r.origin("origin"),
				Azimuth:      core.AngleNavigational(r.real("azimuth")),
				Length:       core.Distance(r.real("length")),
				Acceleration: core.Acceleration(r.real("acceleration")),
				LimitWeight:  r.weight("weight"),
				LimitSpeed:   r.speed("speed"),
				ResetTime:    core.Time(r.real("reset")),
			}
		}),
	"OLS_XMT": newRule("DEFINE OLS_XMT <tid> ORIGIN <origin> AZIMUTH <azimuth> ELEVATION <elevation> RANGE <range> DIAMETER <diameter>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineOLSTransmitter{
				ID:        r.ident("tid"),
				Origin:    r.origin("origin"),
				Azimuth:   core.AngleNavigational(r.real("azimuth")),
				Elevation: core.AttitudePitch(r.real("elevation")),
				Range:     core.Distance(r.real("range")),
				Diameter:  core.Distance(r.real("diameter")),
			}
		}),
	"OLS_RCV": newRule("DEFINE OLS_RCV <tid> DIAMETER <diameter>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineOLSReceiver{
				ID:       r.ident("tid"),
				Diameter: core.Distance(r.real("diameter")),
			}
		}),
	"CARRIER": newRule("DEFINE CARRIER <tid> SPEED MAX <max> DELTA INCREASE <increase> DECREASE <decrease> TURN <turn> LAYOUT <layout>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineCarrier{
				ID:                 r.ident("tid"),
				SpeedMax:           r.speed("max"),
				DeltaSpeedIncrease: r.speed("increase"),
				DeltaSpeedDecrease: r.speed("decrease"),
				Turn:               core.AngleNavigational(r.real("turn")),
				Layout:             r.token("layout"),
			}
		}),
	"FIGHTER": newRule("DEFINE FIGHTER <tid> SPEED MIN <min> MAX <max> DELTA INCREASE <increase> DECREASE <decrease> TURN <turn> CLIMB <climb> DESCENT <descent> EMPTY WEIGHT <empty> FUEL INITIAL <fuel> DELTA <delta>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineFighter{
				ID:                 r.ident("tid"),
				SpeedMin:           r.speed("min"),
				SpeedMax:           r.speed("max"),
				DeltaSpeedIncrease: r.speed("increase"),
				DeltaSpeedDecrease: r.speed("decrease"),
				Turn:               core.AngleNavigational(r.real("turn")),
				Climb:              core.Altitude(r.real("climb")),
				Descent:            core.Altitude(r.real("descent")),
				EmptyWeight:        r.weight("empty"),
				FuelInitial:        r.weight("fuel"),
				FuelDelta:          r.weight("delta"),
			}
		}),
	"TANKER": newRule("DEFINE TANKER <tid> SPEED MIN <min> MAX <max> DELTA INCREASE <increase> DECREASE <decrease> TURN <turn> CLIMB <climb> DESCENT <descent> TANK <tank>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineTanker{
				ID:                 r.ident("tid"),
				SpeedMin:           r.speed("min"),
				SpeedMax:           r.speed("max"),
				DeltaSpeedIncrease: r.speed("increase"),
				DeltaSpeedDecrease: r.speed("decrease"),
				Turn:               core.AngleNavigational(r.real("turn")),
				Climb:              core.Altitude(r.real("climb")),
				Descent:            core.Altitude(r.real("descent")),
				Tank:               r.weight("tank"),
			}
		}),
	"TAILHOOK": newRule("DEFINE TAILHOOK <tid> TIME <time>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineTailhook{
				ID:   r.ident("tid"),
				Time: core.Time(r.real("time")),
			}
		}),
	"BARRIER": newRule("DEFINE BARRIER <tid> ORIGIN <origin> AZIMUTH <azimuth> WIDTH <width> TIME <time>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineBarrier{
				ID:      r.ident("tid"),
				Origin:  r.origin("origin"),
				Azimuth: core.AngleNavigational(r.real("azimuth")),
				Width:   core.Distance(r.real("width")),
				Time:    core.Time(r.real("time")),
			}
		}),
	"AUX_TANK": newRule("DEFINE AUX_TANK <tid> AMOUNT <amount>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineAuxiliaryTank{
				ID:     r.ident("tid"),
				Amount: r.weight("amount"),
			}
		}),
}

var boomRules = map[string]templateRule{
	"MALE": newRule("DEFINE BOOM MALE <tid> LENGTH <length> DIAMETER <diameter> FLOW <flow>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineBoomMale{
				ID:       r.ident("tid"),
				Length:   core.Distance(r.real("length")),
				Diameter: core.Distance(r.real("diameter")),
				Flow:     core.Flow(r.real("flow")),
			}
		}),
	"FEMALE": newRule("DEFINE BOOM FEMALE <tid> LENGTH <length> DIAMETER <diameter> ELEVATION <elevation> FLOW <flow>",
		func(r *fieldReader) core.TemplateCommand {
			return core.DefineBoomFemale{
				ID:        r.ident("tid"),
				Length:    core.Distance(r.real("length")),
				Diameter:  core.Distance(r.real("diameter")),
				Elevation: core.AttitudePitch(r.real("elevation")),
				Flow:      core.Flow(r.real("flow")),
			}
		}),
}

var (
	undefineRule = newRule("UNDEFINE <tid>", func(r *fieldReader) core.TemplateCommand {
		return core.Undefine{ID: r.ident("tid")}
	})
	showTemplateRule = newRule("SHOW TEMPLATE <tid>", func(r *fieldReader) core.TemplateCommand {
		return core.ShowTemplate{ID: r.ident("tid")}
	})
	listTemplatesRule = newRule("LIST TEMPLATES", func(*fieldReader) core.TemplateCommand {
		return core.ListTemplates{}
	})
)

func (in *Interpreter) parseTemplate(st statement) (core.TemplateCommand, error) {
	switch st.word(0) {
	case "UNDEFINE":
		return undefineRule.apply(st)
	case "SHOW":
		return showTemplateRule.apply(st)
	case "LIST":
		return listTemplatesRule.apply(st)
	}

	kind := st.word(1)
	if kind == "BOOM" {
		if ru, ok := boomRules[st.word(2)]; ok {
			return ru.apply(st)
		}
		return nil, st.invalid("expected MALE or FEMALE boom, got %q", st.word(2))
	}
	if ru, ok := defineRules[kind]; ok {
		return ru.apply(st)
	}
	return nil, st.invalid("unknown template kind %q", kind)
}
