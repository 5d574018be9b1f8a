// internal/storage/memory/memory.go
package memory

import (
	"errors"
	"sync"
	"time"

	"github.com/carrierops/interpreter/internal/config"
	"github.com/carrierops/interpreter/internal/model"
	"github.com/spf13/afero"
)

// ErrNoSession is returned when records arrive before StartSession.
var ErrNoSession = errors.New("no session started")

// Backend keeps the journal in memory and exports it to JSON when the session ends
type Backend struct {
	cfg     config.MemoryConfig
	fs      afero.Fs
	now     func() time.Time
	session *model.Session

	commands   []model.CommandRecord
	rejections []model.Rejection

	idCounter      uint
	lastExportPath string
	mu             sync.RWMutex
}

// New creates a new memory backend writing exports to fs. A nil fs writes to the OS filesystem.
func New(cfg config.MemoryConfig, fs afero.Fs) *Backend {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Backend{
		cfg: cfg,
		fs:  fs,
		now: time.Now,
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close exports any session that was not ended explicitly
func (b *Backend) Close() error {
	b.mu.RLock()
	open := b.session != nil && b.session.EndTime.IsZero()
	b.mu.RUnlock()
	if open {
		return b.EndSession()
	}
	return nil
}

// StartSession begins a new journal, discarding anything recorded before
func (b *Backend) StartSession(s *model.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.idCounter++
	s.ID = b.idCounter
	b.session = s
	b.commands = nil
	b.rejections = nil
	b.lastExportPath = ""

	return nil
}

// EndSession stamps the end time and exports the journal
func (b *Backend) EndSession() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return ErrNoSession
	}
	b.session.EndTime = b.now()
	return b.exportJSON()
}

// RecordCommand appends an accepted command
func (b *Backend) RecordCommand(r *model.CommandRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return ErrNoSession
	}
	r.SessionID = b.session.ID
	b.commands = append(b.commands, *r)
	return nil
}

// RecordRejection appends a refused statement
func (b *Backend) RecordRejection(r *model.Rejection) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return ErrNoSession
	}
	r.SessionID = b.session.ID
	r.ID = uint(len(b.rejections) + 1)
	b.rejections = append(b.rejections, *r)
	return nil
}

// Commands returns a copy of the recorded commands
func (b *Backend) Commands() []model.CommandRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]model.CommandRecord(nil), b.commands...)
}

// Rejections returns a copy of the recorded rejections
func (b *Backend) Rejections() []model.Rejection {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]model.Rejection(nil), b.rejections...)
}

// GetExportedFilePath returns the path of the last export, or "" if none
func (b *Backend) GetExportedFilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}
