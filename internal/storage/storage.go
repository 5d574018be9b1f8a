// internal/storage/storage.go
package storage

import "github.com/carrierops/interpreter/internal/model"

// Backend is the interface all journal implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Session management (StartSession assigns ID to the passed pointer)
	StartSession(s *model.Session) error
	EndSession() error

	// Journal
	RecordCommand(r *model.CommandRecord) error
	RecordRejection(r *model.Rejection) error
}

// Exportable is an optional interface for backends that write the journal
// to a file when the session ends.
type Exportable interface {
	GetExportedFilePath() string
}
