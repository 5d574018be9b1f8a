// Package gormstorage implements the storage.Backend interface on GORM with
// in-process queues drained by a background writer goroutine.
package gormstorage

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/carrierops/interpreter/internal/database"
	"github.com/carrierops/interpreter/internal/logging"
	"github.com/carrierops/interpreter/internal/model"
	"github.com/carrierops/interpreter/internal/queue"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultFlushInterval = 2 * time.Second

// ErrNoDB is returned by Init when no database handle was injected.
var ErrNoDB = errors.New("gorm backend needs a database")

// Dependencies holds all dependencies for the GORM storage backend.
type Dependencies struct {
	DB            *gorm.DB
	LogManager    *logging.SlogManager
	FlushInterval time.Duration
}

// queues holds the write queues for batch DB insertion.
type queues struct {
	Commands   *queue.Queue[model.CommandRecord]
	Rejections *queue.Queue[model.Rejection]
}

func newQueues() *queues {
	return &queues{
		Commands:   queue.New[model.CommandRecord](),
		Rejections: queue.New[model.Rejection](),
	}
}

// Backend implements storage.Backend using GORM with queue-based batch writes.
type Backend struct {
	deps      Dependencies
	queues    *queues
	session   *model.Session
	sessionID atomic.Uint64
	stopChan  chan struct{}
	done      chan struct{}
	flushMu   sync.Mutex
	closeOnce sync.Once
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	if deps.FlushInterval <= 0 {
		deps.FlushInterval = defaultFlushInterval
	}
	if deps.LogManager == nil {
		deps.LogManager = logging.NewSlogManager()
	}
	return &Backend{
		deps:   deps,
		queues: newQueues(),
	}
}

// Init runs schema migration and starts the DB writer goroutine.
func (b *Backend) Init() error {
	if b.deps.DB == nil {
		return ErrNoDB
	}

	b.deps.LogManager.WriteLog("gorm:Init", "Migrating schema", "INFO")
	if err := database.Migrate(b.deps.DB); err != nil {
		return fmt.Errorf("failed to setup DB: %w", err)
	}

	b.stopChan = make(chan struct{})
	b.done = make(chan struct{})
	go b.writerLoop()
	return nil
}

// Close stops the writer goroutine and drains anything still queued.
func (b *Backend) Close() error {
	var err error
	b.closeOnce.Do(func() {
		if b.stopChan != nil {
			close(b.stopChan)
			<-b.done
		}
		if b.deps.DB != nil {
			err = b.Flush()
		}
	})
	return err
}

// StartSession inserts the session row synchronously so records can reference it.
func (b *Backend) StartSession(s *model.Session) error {
	if b.deps.DB == nil {
		return ErrNoDB
	}
	if err := b.deps.DB.Create(s).Error; err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	b.session = s
	b.sessionID.Store(uint64(s.ID))
	return nil
}

// EndSession flushes pending records and stamps the session's end time.
func (b *Backend) EndSession() error {
	if b.session == nil {
		return nil
	}
	if err := b.Flush(); err != nil {
		return err
	}
	b.session.EndTime = time.Now()
	return b.deps.DB.Model(b.session).Update("end_time", b.session.EndTime).Error
}

// RecordCommand queues an accepted command for the next write cycle.
func (b *Backend) RecordCommand(r *model.CommandRecord) error {
	b.queues.Commands.Push(*r)
	return nil
}

// RecordRejection queues a refused statement for the next write cycle.
func (b *Backend) RecordRejection(r *model.Rejection) error {
	b.queues.Rejections.Push(*r)
	return nil
}

// Pending reports how many records are waiting to be written.
func (b *Backend) Pending() int {
	return b.queues.Commands.Len() + b.queues.Rejections.Len()
}

// Flush writes every queued record now.
func (b *Backend) Flush() error {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	sessionID := uint(b.sessionID.Load())
	log := b.deps.LogManager.WriteLog

	errCommands := writeQueue(b.deps.DB, b.queues.Commands, "commands", log, func(items []model.CommandRecord) {
		for i := range items {
			items[i].SessionID = sessionID
		}
	})
	errRejections := writeQueue(b.deps.DB, b.queues.Rejections, "rejections", log, func(items []model.Rejection) {
		for i := range items {
			items[i].SessionID = sessionID
		}
	})
	return errors.Join(errCommands, errRejections)
}

// writeQueue writes all items from a queue to the database in a transaction.
// On failure the items go back to the head of the queue for the next cycle.
func writeQueue[T any](db *gorm.DB, q *queue.Queue[T], name string, log func(string, string, string), prepare func([]T)) error {
	if q.Empty() {
		return nil
	}

	items := q.Drain()
	if prepare != nil {
		prepare(items)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&items).Error
	})
	if err != nil {
		log("gorm:writer", fmt.Sprintf("Error creating %s: %v", name, err), "ERROR")
		q.Requeue(items)
		return fmt.Errorf("writing %s: %w", name, err)
	}

	log("gorm:writer", fmt.Sprintf("Wrote %d %s", len(items), name), "DEBUG")
	return nil
}

// writerLoop periodically drains queues into the DB.
func (b *Backend) writerLoop() {
	defer close(b.done)

	ticker := time.NewTicker(b.deps.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			_ = b.Flush()
		}
	}
}
