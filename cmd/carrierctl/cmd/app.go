package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/carrierops/interpreter/internal/dispatcher"
	"github.com/carrierops/interpreter/internal/logging"
	"github.com/carrierops/interpreter/internal/parser"
	"github.com/carrierops/interpreter/internal/session"
	"github.com/carrierops/interpreter/internal/storage"
	"github.com/carrierops/interpreter/internal/worker"
	"github.com/carrierops/interpreter/pkg/core"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// maxRunDepth bounds @RUN nesting so a script that runs itself terminates.
const maxRunDepth = 8

var errRunTooDeep = errors.New("@RUN nested too deeply")

// AppDeps holds what an App needs from the outside world.
type AppDeps struct {
	Fs         afero.Fs
	Out        io.Writer
	Backend    storage.Backend
	Metrics    worker.PointWriter
	LogManager *logging.SlogManager
	Session    *session.Context
	Logger     zerolog.Logger
	LinePause  time.Duration
	ClockTick  time.Duration
	Sleep      func(time.Duration)
}

type clockState struct {
	running bool
	rate    core.Rate
	ticks   uint64
}

// App is one interpreter session. It also acts as the worker's Host for
// @RUN, @EXIT, @WAIT and @CLOCK.
type App struct {
	deps   AppDeps
	disp   *dispatcher.Dispatcher
	worker *worker.Manager
	interp *parser.Interpreter
	clock  clockState
	exited bool
	depth  int
}

// NewApp wires the dispatcher, worker and interpreter together.
func NewApp(deps AppDeps) (*App, error) {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.LogManager == nil {
		deps.LogManager = logging.NewSlogManager()
	}
	if deps.Sleep == nil {
		deps.Sleep = time.Sleep
	}

	a := &App{deps: deps, clock: clockState{running: true, rate: 1}}

	d, err := dispatcher.New(logging.NewDispatcherLogger(deps.Logger))
	if err != nil {
		return nil, fmt.Errorf("creating dispatcher: %w", err)
	}
	a.disp = d

	a.worker = worker.NewManager(worker.Dependencies{
		Host:       a,
		Metrics:    deps.Metrics,
		LogManager: deps.LogManager,
		Session:    deps.Session,
	}, deps.Backend)
	a.worker.RegisterHandlers(d)

	a.interp = parser.NewInterpreter(parser.Dependencies{
		Sink:      d,
		Templates: a.worker.Templates(),
		Files:     parser.NewFSProbe(deps.Fs),
		Logger:    deps.LogManager.Logger(),
	})
	return a, nil
}

// Start opens the journal session.
func (a *App) Start(name, source string) error {
	return a.worker.StartSession(name, source)
}

// Close ends the journal session and closes the backend.
func (a *App) Close() error {
	errEnd := a.worker.EndSession()
	var errClose error
	if a.deps.Backend != nil {
		errClose = a.deps.Backend.Close()
	}
	return errors.Join(errEnd, errClose)
}

// Exited reports whether @EXIT has been processed.
func (a *App) Exited() bool {
	return a.exited
}

// Line interprets one line. A rejected statement is journaled and reported
// on Out; statements before it on the same line stay submitted. Blank lines
// are skipped silently.
func (a *App) Line(line string) error {
	err := a.interp.Interpret(line)
	if err == nil || errors.Is(err, parser.ErrEmptyInput) {
		return nil
	}
	a.worker.Reject(line, err)
	fmt.Fprintf(a.deps.Out, "error: %v\n", err)
	return err
}

// RunReader interprets r line by line until EOF or @EXIT. Rejected lines do
// not stop the run. With pause set it sleeps LinePause after each line.
func (a *App) RunReader(r io.Reader, pause bool) error {
	scanner := bufio.NewScanner(r)
	for !a.exited && scanner.Scan() {
		_ = a.Line(scanner.Text())
		if pause && a.deps.LinePause > 0 {
			a.deps.Sleep(a.deps.LinePause)
		}
	}
	return scanner.Err()
}

// RunFile executes a command script read through the app's filesystem.
func (a *App) RunFile(path string) error {
	if a.depth >= maxRunDepth {
		return fmt.Errorf("%s: %w", path, errRunTooDeep)
	}
	data, err := afero.ReadFile(a.deps.Fs, path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	a.depth++
	defer func() { a.depth-- }()
	a.deps.LogManager.WriteLog("app:RunFile", "Running "+path, "INFO")
	return a.RunReader(bytes.NewReader(data), false)
}

// Exit stops the current run after the statement being processed.
func (a *App) Exit() {
	a.exited = true
}

// Wait pauses for d clock ticks.
func (a *App) Wait(d core.Rate) {
	a.deps.Sleep(time.Duration(float64(d) * float64(a.deps.ClockTick)))
}

// Clock applies a @CLOCK command.
func (a *App) Clock(c core.MiscCommand) {
	switch v := c.(type) {
	case core.ShowClock:
		state := "paused"
		if a.clock.running {
			state = "running"
		}
		fmt.Fprintf(a.deps.Out, "clock: %s rate=%g ticks=%d\n", state, float64(a.clock.rate), a.clock.ticks)
	case core.SetClockRunning:
		a.clock.running = v.Running
	case core.ClockUpdate:
		a.clock.ticks++
	case core.SetClockRate:
		a.clock.rate = v.Rate
	}
}
