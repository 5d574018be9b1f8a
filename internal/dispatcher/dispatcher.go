package dispatcher

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/carrierops/interpreter/pkg/core"
	"go.opentelemetry.io/otel/metric"
)

// ErrNoHandler is returned when a command is dispatched to a family nobody listens on.
var ErrNoHandler = errors.New("no handler registered")

// Event is one accepted command on its way to the handler for its family.
type Event struct {
	Sequence  uint64
	Family    core.Family
	Command   core.Command
	Timestamp time.Time
}

// HandlerFunc processes an event.
type HandlerFunc func(Event) error

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Option configures handler registration.
type Option func(*config)

type config struct {
	logged bool
}

// Logged adds debug logging to the handler.
func Logged() Option {
	return func(c *config) {
		c.logged = true
	}
}

// Dispatcher routes commands to the handler registered for their family.
// Handlers run synchronously on the submitting goroutine so commands are
// observed in submission order across all families.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[core.Family]HandlerFunc
	logger   Logger
	seq      atomic.Uint64
	now      func() time.Time

	counters counters
}

// New creates a new Dispatcher with the given logger. Metrics go to the
// global OTel meter provider.
func New(logger Logger) (*Dispatcher, error) {
	return NewWithMeterProvider(logger, nil)
}

// NewWithMeterProvider is New with an explicit meter provider.
func NewWithMeterProvider(logger Logger, mp metric.MeterProvider) (*Dispatcher, error) {
	c, err := newCounters(mp)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		handlers: make(map[core.Family]HandlerFunc),
		logger:   logger,
		now:      time.Now,
		counters: c,
	}, nil
}

// Register sets the handler for a family, replacing any previous one.
func (d *Dispatcher) Register(family core.Family, h HandlerFunc, opts ...Option) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	handler := h
	if cfg.logged {
		handler = d.withLogging(family, handler)
	}

	d.mu.Lock()
	d.handlers[family] = handler
	d.mu.Unlock()
}

// HasHandler returns true if a handler is registered for the family.
func (d *Dispatcher) HasHandler(family core.Family) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[family]
	return ok
}

// Dispatch routes an event to its registered handler.
func (d *Dispatcher) Dispatch(e Event) error {
	d.mu.RLock()
	h, ok := d.handlers[e.Family]
	d.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, e.Family)
	}

	err := h(e)
	d.counters.record(e.Family, err)
	return err
}

// Submit wraps a command in an event stamped with the next sequence number
// and dispatches it.
func (d *Dispatcher) Submit(family core.Family, c core.Command) error {
	return d.Dispatch(Event{
		Sequence:  d.seq.Add(1),
		Family:    family,
		Command:   c,
		Timestamp: d.now(),
	})
}

// Submitted returns how many commands have been submitted so far.
func (d *Dispatcher) Submitted() uint64 {
	return d.seq.Load()
}

func (d *Dispatcher) withLogging(family core.Family, h HandlerFunc) HandlerFunc {
	return func(e Event) error {
		start := time.Now()
		d.logger.Debug("handling command", "family", family.String(), "kind", e.Command.Kind(), "seq", e.Sequence)

		err := h(e)

		if err != nil {
			d.logger.Error("command failed", "family", family.String(), "kind", e.Command.Kind(), "duration", time.Since(start), "error", err)
		} else {
			d.logger.Debug("command complete", "family", family.String(), "kind", e.Command.Kind(), "duration", time.Since(start))
		}

		return err
	}
}
