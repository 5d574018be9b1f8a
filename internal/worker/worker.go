package worker

import (
	"errors"
	"fmt"
	"time"

	"github.com/carrierops/interpreter/internal/cache"
	"github.com/carrierops/interpreter/internal/influx"
	"github.com/carrierops/interpreter/internal/logging"
	"github.com/carrierops/interpreter/internal/model"
	"github.com/carrierops/interpreter/internal/parser"
	"github.com/carrierops/interpreter/internal/session"
	"github.com/carrierops/interpreter/internal/storage"
	"github.com/carrierops/interpreter/internal/util"
	"github.com/carrierops/interpreter/pkg/core"

	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
)

// ErrUnknownAgent is returned when a command names an agent that was never created.
var ErrUnknownAgent = errors.New("agent not created")

// ErrUnknownTemplate is returned when UNDEFINE names a template that does not exist.
var ErrUnknownTemplate = errors.New("template not defined")

// Host carries out the misc commands that act on the running interpreter.
type Host interface {
	RunFile(path string) error
	Exit()
	Wait(d core.Rate)
	Clock(c core.MiscCommand)
}

// PointWriter receives metric points. *influx.Manager satisfies it.
type PointWriter interface {
	WritePoint(point *influxdb2_write.Point) error
}

// Dependencies holds all dependencies for the worker manager
type Dependencies struct {
	Templates  *cache.TemplateCache
	Agents     *cache.AgentCache
	Host       Host
	Metrics    PointWriter
	LogManager *logging.SlogManager
	Session    *session.Context
	Now        func() time.Time
}

// Manager applies dispatched commands to the caches, journals them and hands
// misc commands to the host.
type Manager struct {
	deps    Dependencies
	backend storage.Backend
	session *model.Session
}

// NewManager creates a new worker manager
func NewManager(deps Dependencies, backend storage.Backend) *Manager {
	if deps.Templates == nil {
		deps.Templates = cache.NewTemplateCache()
	}
	if deps.Agents == nil {
		deps.Agents = cache.NewAgentCache()
	}
	if deps.LogManager == nil {
		deps.LogManager = logging.NewSlogManager()
	}
	if deps.Session == nil {
		deps.Session = session.NewContext()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Manager{
		deps:    deps,
		backend: backend,
	}
}

// Templates returns the template registry the parser should consult.
func (m *Manager) Templates() *cache.TemplateCache {
	return m.deps.Templates
}

// Agents returns the created-agent registry.
func (m *Manager) Agents() *cache.AgentCache {
	return m.deps.Agents
}

// StartSession clears the template and agent registries and opens a journal
// session. Without a backend only the registries are cleared.
func (m *Manager) StartSession(name, source string) error {
	m.deps.Templates.Reset()
	m.deps.Agents.Reset()
	if m.backend == nil {
		return nil
	}
	s := &model.Session{Name: name, Source: source, StartTime: m.deps.Now()}
	if err := m.backend.StartSession(s); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	m.session = s
	m.deps.Session.SetSession(s)
	m.deps.LogManager.WriteLog("worker:StartSession", fmt.Sprintf("Session %d started (%s)", s.ID, source), "INFO")
	return nil
}

// EndSession closes the journal session if one is open.
func (m *Manager) EndSession() error {
	if m.backend == nil || m.session == nil {
		return nil
	}
	if err := m.backend.EndSession(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	m.deps.LogManager.WriteLog("worker:EndSession",
		fmt.Sprintf("Session %d ended with %d templates and %d agents", m.session.ID, m.deps.Templates.Len(), m.deps.Agents.Len()), "INFO")
	if e, ok := m.backend.(storage.Exportable); ok && e.GetExportedFilePath() != "" {
		m.deps.LogManager.WriteLog("worker:EndSession", "Journal written to "+e.GetExportedFilePath(), "INFO")
	}
	m.session = nil
	m.deps.Session.Clear()
	return nil
}

// Reject journals a statement the interpreter refused.
func (m *Manager) Reject(statement string, err error) {
	r := model.Rejection{
		Statement:  statement,
		ErrorKind:  "error",
		Reason:     err.Error(),
		RecordedAt: m.deps.Now(),
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		r.ErrorKind = pe.Kind.String()
		r.Reason = pe.Reason
		if pe.Text != "" {
			r.Statement = pe.Text
		}
	}
	if m.session != nil {
		r.SessionID = m.session.ID
	}

	m.deps.LogManager.WriteLog("worker:Reject", fmt.Sprintf("%s: %s", r.ErrorKind, util.Truncate(r.Statement, 80)), "WARN")

	if m.backend != nil {
		if err := m.backend.RecordRejection(&r); err != nil {
			m.deps.LogManager.WriteLog("worker:Reject", fmt.Sprintf("Error recording rejection: %v", err), "ERROR")
		}
	}
	if m.deps.Metrics != nil {
		if err := m.deps.Metrics.WritePoint(influx.RejectionPoint(r)); err != nil {
			m.deps.LogManager.WriteLog("worker:Reject", fmt.Sprintf("Error writing metric: %v", err), "WARN")
		}
	}
}
