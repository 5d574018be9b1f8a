package parser

import "github.com/carrierops/interpreter/pkg/core"

var (
	populateCarrierRule = newRule("POPULATE CARRIER <carrier> WITH FIGHTER|FIGHTERS <fighters>...",
		func(r *fieldReader) core.StructuralCommand {
			return core.PopulateCarrier{
				Carrier:  r.ident("carrier"),
				Fighters: r.idents("fighters"),
			}
		})
	populateWorldRule = newRule("POPULATE WORLD WITH <agents>...",
		func(r *fieldReader) core.StructuralCommand {
			return core.PopulateWorld{Agents: r.idents("agents")}
		})
	commitRule = newRule("COMMIT", func(*fieldReader) core.StructuralCommand {
		return core.Commit{}
	})
)

func (in *Interpreter) parseStructural(st statement) (core.StructuralCommand, error) {
	if st.word(0) == "COMMIT" {
		return commitRule.apply(st)
	}
	switch target := st.word(1); target {
	case "CARRIER":
		return populateCarrierRule.apply(st)
	case "WORLD":
		return populateWorldRule.apply(st)
	default:
		return nil, st.invalid("cannot populate %q", target)
	}
}
