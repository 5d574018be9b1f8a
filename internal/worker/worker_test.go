package worker

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/carrierops/interpreter/internal/config"
	"github.com/carrierops/interpreter/internal/dispatcher"
	"github.com/carrierops/interpreter/internal/logging"
	"github.com/carrierops/interpreter/internal/parser"
	"github.com/carrierops/interpreter/internal/storage/memory"
	"github.com/carrierops/interpreter/pkg/core"
	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

type fakeHost struct {
	ran    []string
	runErr error
	exits  int
	waits  []core.Rate
	clock  []core.MiscCommand
}

func (h *fakeHost) RunFile(path string) error {
	h.ran = append(h.ran, path)
	return h.runErr
}
func (h *fakeHost) Exit()                    { h.exits++ }
func (h *fakeHost) Wait(d core.Rate)         { h.waits = append(h.waits, d) }
func (h *fakeHost) Clock(c core.MiscCommand) { h.clock = append(h.clock, c) }

type fakeMetrics struct {
	points []*influxdb2_write.Point
}

func (f *fakeMetrics) WritePoint(p *influxdb2_write.Point) error {
	f.points = append(f.points, p)
	return nil
}

type testEnv struct {
	manager *Manager
	backend *memory.Backend
	disp    *dispatcher.Dispatcher
	host    *fakeHost
	metrics *fakeMetrics
	fs      afero.Fs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	backend := memory.New(config.MemoryConfig{OutputDir: "/out"}, fs)
	require.NoError(t, backend.Init())

	env := &testEnv{
		backend: backend,
		host:    &fakeHost{},
		metrics: &fakeMetrics{},
		fs:      fs,
	}
	env.manager = NewManager(Dependencies{
		Host:       env.host,
		Metrics:    env.metrics,
		LogManager: logging.NewSlogManager(),
		Now:        func() time.Time { return fixedNow },
	}, backend)

	d, err := dispatcher.New(logging.NewDispatcherLogger(zerolog.Nop()))
	require.NoError(t, err)
	env.manager.RegisterHandlers(d)
	env.disp = d

	require.NoError(t, env.manager.StartSession("drill", "repl"))
	return env
}

func (env *testEnv) submit(t *testing.T, c core.Command) error {
	t.Helper()
	return env.disp.Submit(c.Family(), c)
}

func TestRegisterHandlers_AllFamilies(t *testing.T) {
	env := newTestEnv(t)
	for _, f := range core.Families {
		assert.True(t, env.disp.HasHandler(f), f.String())
	}
}

func TestTemplateHandler(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.submit(t, core.DefineTrap{ID: "t1"}))
	_, ok := env.manager.Templates().LookupTemplate("t1")
	assert.True(t, ok)

	require.NoError(t, env.submit(t, core.ShowTemplate{ID: "t1"}))
	require.NoError(t, env.submit(t, core.ListTemplates{}))
	require.NoError(t, env.submit(t, core.Undefine{ID: "t1"}))
	assert.Equal(t, 0, env.manager.Templates().Len())

	err := env.submit(t, core.Undefine{ID: "t1"})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	err = env.submit(t, core.ShowTemplate{ID: "t1"})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestAgentHandler(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.submit(t, core.CreateTrap{ID: "tr1", Template: "t"}))
	require.NoError(t, env.submit(t, core.CreateFighterAirborne{CreateFighter: core.CreateFighter{ID: "f2"}}))
	assert.Equal(t, []core.Identifier{"f2", "tr1"}, env.manager.Agents().IDs())

	require.NoError(t, env.submit(t, core.Describe{ID: "tr1"}))
	require.NoError(t, env.submit(t, core.ListAgents{}))
	require.NoError(t, env.submit(t, core.Uncreate{ID: "tr1"}))

	assert.ErrorIs(t, env.submit(t, core.Uncreate{ID: "tr1"}), ErrUnknownAgent)
	assert.ErrorIs(t, env.submit(t, core.Describe{ID: "tr1"}), ErrUnknownAgent)
}

func TestStructuralAndBehavioral_RequireAgents(t *testing.T) {
	env := newTestEnv(t)

	assert.ErrorIs(t, env.submit(t, core.PopulateWorld{Agents: []core.Identifier{"cv1"}}), ErrUnknownAgent)
	assert.ErrorIs(t, env.submit(t, core.DoPosition{Agent: "cv1"}), ErrUnknownAgent)

	require.NoError(t, env.submit(t, core.CreateCarrier{ID: "cv1"}))
	require.NoError(t, env.submit(t, core.CreateFighter{ID: "f1"}))
	assert.NoError(t, env.submit(t, core.PopulateCarrier{Carrier: "cv1", Fighters: []core.Identifier{"f1"}}))
	assert.NoError(t, env.submit(t, core.PopulateWorld{Agents: []core.Identifier{"cv1"}}))
	assert.NoError(t, env.submit(t, core.DoPosition{Agent: "cv1"}))
	assert.NoError(t, env.submit(t, core.Commit{}))
	assert.NoError(t, env.submit(t, core.GetWindConditions{}))
}

func TestMiscHandler_ForwardsToHost(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.submit(t, core.ShowClock{}))
	require.NoError(t, env.submit(t, core.SetClockRate{Rate: 5}))
	require.NoError(t, env.submit(t, core.Wait{Duration: 3}))
	require.NoError(t, env.submit(t, core.RunFile{Path: "setup.txt"}))
	require.NoError(t, env.submit(t, core.Exit{}))

	assert.Equal(t, []core.MiscCommand{core.ShowClock{}, core.SetClockRate{Rate: 5}}, env.host.clock)
	assert.Equal(t, []core.Rate{3}, env.host.waits)
	assert.Equal(t, []string{"setup.txt"}, env.host.ran)
	assert.Equal(t, 1, env.host.exits)

	env.host.runErr = errors.New("boom")
	assert.Error(t, env.submit(t, core.RunFile{Path: "bad.txt"}))
}

func TestEveryAcceptedCommandIsJournaled(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.submit(t, core.DefineTrap{ID: "t1"}))
	_ = env.submit(t, core.Uncreate{ID: "ghost"}) // fails, still journaled
	require.NoError(t, env.submit(t, core.Commit{}))

	recs := env.backend.Commands()
	require.Len(t, recs, 3)
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{recs[0].Sequence, recs[1].Sequence, recs[2].Sequence})
	assert.Equal(t, "define trap", recs[0].Kind)
	assert.Equal(t, "t1", recs[0].Subject)
	assert.Equal(t, "uncreate", recs[1].Kind)
	assert.Len(t, env.metrics.points, 3)
}

func TestReject(t *testing.T) {
	env := newTestEnv(t)

	env.manager.Reject("SET WIND DIRECTION 360", &parser.ParseError{
		Kind:   parser.InvalidValue,
		Text:   "SET WIND DIRECTION 360",
		Reason: "direction out of range",
	})
	env.manager.Reject("whatever", errors.New("plain failure"))

	rej := env.backend.Rejections()
	require.Len(t, rej, 2)
	assert.Equal(t, parser.InvalidValue.String(), rej[0].ErrorKind)
	assert.Equal(t, "direction out of range", rej[0].Reason)
	assert.Equal(t, "error", rej[1].ErrorKind)
	assert.Equal(t, "plain failure", rej[1].Reason)
	assert.Equal(t, fixedNow, rej[1].RecordedAt)
	assert.Len(t, env.metrics.points, 2)
}

func TestEndSession_Exports(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "drill", env.manager.deps.Session.GetSession().Name)
	require.NoError(t, env.submit(t, core.Commit{}))
	require.NoError(t, env.manager.EndSession())
	assert.Equal(t, "No session open", env.manager.deps.Session.GetSession().Name)

	path := env.backend.GetExportedFilePath()
	require.NotEmpty(t, path)
	exists, err := afero.Exists(env.fs, path)
	require.NoError(t, err)
	assert.True(t, exists)

	// second call has nothing to end
	assert.NoError(t, env.manager.EndSession())
}

func TestStartSession_ClearsRegistries(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.submit(t, core.DefineTailhook{ID: "h", Time: 2}))
	require.NoError(t, env.submit(t, core.CreateTailhook{ID: "h1", Template: "h"}))
	assert.Equal(t, 1, env.manager.Templates().Len())
	assert.Equal(t, 1, env.manager.Agents().Len())

	require.NoError(t, env.manager.EndSession())
	require.NoError(t, env.manager.StartSession("second", "repl"))

	assert.Zero(t, env.manager.Templates().Len())
	assert.Zero(t, env.manager.Agents().Len())
	_, ok := env.manager.Templates().LookupTemplate("h")
	assert.False(t, ok)
}

func TestNoBackend(t *testing.T) {
	m := NewManager(Dependencies{}, nil)
	d, err := dispatcher.New(logging.NewDispatcherLogger(zerolog.Nop()))
	require.NoError(t, err)
	m.RegisterHandlers(d)

	require.NoError(t, m.StartSession("x", "repl"))
	assert.NoError(t, d.Submit(core.FamilyTemplate, core.DefineTrap{ID: "t1"}))
	assert.NoError(t, d.Submit(core.FamilyMisc, core.Exit{}))
	m.Reject("bad", errors.New("nope"))
	assert.NoError(t, m.EndSession())
}

func TestInterpreterThroughDispatcher(t *testing.T) {
	env := newTestEnv(t)
	in := parser.NewInterpreter(parser.Dependencies{
		Sink:      env.disp,
		Templates: env.manager.Templates(),
		Files:     parser.NewFSProbe(env.fs),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, in.Interpret("DEFINE TRAP T1 ORIGIN 10:20 AZIMUTH 5 WIDTH 3 LIMIT WEIGHT 100 SPEED 50 MISS 10; CREATE TRAP tr1 FROM T1"))
	require.NoError(t, in.Interpret("@CLOCK 100; @WAIT 5 // go"))

	assert.Equal(t, 1, env.manager.Templates().Len())
	_, ok := env.manager.Agents().Get("tr1")
	assert.True(t, ok)
	assert.Equal(t, []core.Rate{5}, env.host.waits)
	assert.Len(t, env.backend.Commands(), 4)
	assert.Equal(t, uint64(4), env.disp.Submitted())
}
