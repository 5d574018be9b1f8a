package dispatcher

import "github.com/carrierops/interpreter/pkg/core"

// The Submit* methods satisfy parser.Sink. Handler failures are already
// logged and counted, so they are not reported back to the interpreter.

func (d *Dispatcher) SubmitTemplateDefinition(c core.TemplateCommand) {
	d.submitQuiet(core.FamilyTemplate, c)
}

func (d *Dispatcher) SubmitAgentCreation(c core.AgentCommand) {
	d.submitQuiet(core.FamilyAgent, c)
}

func (d *Dispatcher) SubmitStructural(c core.StructuralCommand) {
	d.submitQuiet(core.FamilyStructural, c)
}

func (d *Dispatcher) SubmitBehavioral(c core.BehavioralCommand) {
	d.submitQuiet(core.FamilyBehavioral, c)
}

func (d *Dispatcher) SubmitMisc(c core.MiscCommand) {
	d.submitQuiet(core.FamilyMisc, c)
}

func (d *Dispatcher) submitQuiet(family core.Family, c core.Command) {
	if err := d.Submit(family, c); err != nil {
		d.logger.Error("command not handled", "family", family.String(), "kind", c.Kind(), "error", err)
	}
}
