package worker

import (
	"fmt"

	"github.com/carrierops/interpreter/internal/dispatcher"
	"github.com/carrierops/interpreter/internal/influx"
	"github.com/carrierops/interpreter/internal/model"
	"github.com/carrierops/interpreter/pkg/core"
)

// RegisterHandlers registers one handler per command family with the dispatcher.
func (m *Manager) RegisterHandlers(d *dispatcher.Dispatcher) {
	d.Register(core.FamilyTemplate, m.journaled(m.handleTemplate), dispatcher.Logged())
	d.Register(core.FamilyAgent, m.journaled(m.handleAgent), dispatcher.Logged())
	d.Register(core.FamilyStructural, m.journaled(m.handleStructural), dispatcher.Logged())
	d.Register(core.FamilyBehavioral, m.journaled(m.handleBehavioral), dispatcher.Logged())
	d.Register(core.FamilyMisc, m.journaled(m.handleMisc), dispatcher.Logged())
}

// journaled records the command before running h, so the journal holds every
// accepted command even when applying it fails.
func (m *Manager) journaled(h dispatcher.HandlerFunc) dispatcher.HandlerFunc {
	return func(e dispatcher.Event) error {
		if err := m.record(e); err != nil {
			m.deps.LogManager.WriteLog("worker:record", err.Error(), "ERROR")
		}
		return h(e)
	}
}

func (m *Manager) record(e dispatcher.Event) error {
	if m.deps.Metrics != nil {
		if err := m.deps.Metrics.WritePoint(influx.CommandPoint(e.Sequence, e.Command, e.Timestamp)); err != nil {
			m.deps.LogManager.WriteLog("worker:record", fmt.Sprintf("Error writing metric: %v", err), "WARN")
		}
	}
	if m.backend == nil {
		return nil
	}

	var sessionID uint
	if m.session != nil {
		sessionID = m.session.ID
	}
	rec, err := model.NewCommandRecord(sessionID, e.Sequence, e.Command, e.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to build record for %s: %w", e.Command.Kind(), err)
	}
	if err := m.backend.RecordCommand(&rec); err != nil {
		return fmt.Errorf("failed to record %s: %w", e.Command.Kind(), err)
	}
	return nil
}

func (m *Manager) handleTemplate(e dispatcher.Event) error {
	switch c := e.Command.(type) {
	case core.Undefine:
		if !m.deps.Templates.Undefine(c.ID) {
			return fmt.Errorf("undefine %s: %w", c.ID, ErrUnknownTemplate)
		}
	case core.ShowTemplate:
		t, ok := m.deps.Templates.LookupTemplate(c.ID)
		if !ok {
			return fmt.Errorf("show %s: %w", c.ID, ErrUnknownTemplate)
		}
		m.deps.LogManager.WriteLog("worker:template", fmt.Sprintf("%s: %+v", c.ID, t), "INFO")
	case core.ListTemplates:
		m.deps.LogManager.WriteLog("worker:template", fmt.Sprintf("Templates: %v", m.deps.Templates.IDs()), "INFO")
	case core.TemplateCommand:
		// DEFINE of an existing id replaces it.
		m.deps.Templates.Define(c)
	}
	return nil
}

func (m *Manager) handleAgent(e dispatcher.Event) error {
	c, ok := e.Command.(core.AgentCommand)
	if !ok {
		return fmt.Errorf("unexpected %T on agent channel", e.Command)
	}

	if id, ok := core.CreatedAgent(c); ok {
		m.deps.Agents.Set(id, c)
		return nil
	}

	switch a := c.(type) {
	case core.Uncreate:
		if !m.deps.Agents.Delete(a.ID) {
			return fmt.Errorf("uncreate %s: %w", a.ID, ErrUnknownAgent)
		}
	case core.Describe:
		agent, ok := m.deps.Agents.Get(a.ID)
		if !ok {
			return fmt.Errorf("describe %s: %w", a.ID, ErrUnknownAgent)
		}
		m.deps.LogManager.WriteLog("worker:agent", fmt.Sprintf("%s: %+v", a.ID, agent), "INFO")
	case core.ListAgents:
		m.deps.LogManager.WriteLog("worker:agent", fmt.Sprintf("Agents: %v", m.deps.Agents.IDs()), "INFO")
	}
	return nil
}

func (m *Manager) handleStructural(e dispatcher.Event) error {
	switch c := e.Command.(type) {
	case core.PopulateCarrier:
		return m.requireAgents(append([]core.Identifier{c.Carrier}, c.Fighters...))
	case core.PopulateWorld:
		return m.requireAgents(c.Agents)
	}
	return nil
}

func (m *Manager) handleBehavioral(e dispatcher.Event) error {
	c, ok := e.Command.(core.BehavioralCommand)
	if !ok {
		return fmt.Errorf("unexpected %T on behavioral channel", e.Command)
	}
	if id, ok := core.BehavioralAgent(c); ok {
		return m.requireAgents([]core.Identifier{id})
	}
	return nil
}

func (m *Manager) handleMisc(e dispatcher.Event) error {
	if m.deps.Host == nil {
		return nil
	}
	switch c := e.Command.(type) {
	case core.RunFile:
		if err := m.deps.Host.RunFile(c.Path); err != nil {
			return fmt.Errorf("run %s: %w", c.Path, err)
		}
	case core.Exit:
		m.deps.Host.Exit()
	case core.Wait:
		m.deps.Host.Wait(c.Duration)
	case core.MiscCommand:
		m.deps.Host.Clock(c)
	}
	return nil
}

func (m *Manager) requireAgents(ids []core.Identifier) error {
	for _, id := range ids {
		if _, ok := m.deps.Agents.Get(id); !ok {
			return fmt.Errorf("%s: %w", id, ErrUnknownAgent)
		}
	}
	return nil
}
