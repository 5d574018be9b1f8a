// internal/storage/memory/memory_test.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/carrierops/interpreter/internal/config"
	"github.com/carrierops/interpreter/internal/model"
	v1 "github.com/carrierops/interpreter/internal/storage/memory/export/v1"
	"github.com/carrierops/interpreter/pkg/core"
	"github.com/spf13/afero"
)

var testStart = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestBackend(compress bool) (*Backend, afero.Fs) {
	fs := afero.NewMemMapFs()
	b := New(config.MemoryConfig{OutputDir: "/out", CompressOutput: compress}, fs)
	b.now = func() time.Time { return testStart.Add(time.Hour) }
	return b, fs
}

func mustRecord(t *testing.T, seq uint64, c core.Command) *model.CommandRecord {
	t.Helper()
	rec, err := model.NewCommandRecord(0, seq, c, testStart)
	if err != nil {
		t.Fatalf("NewCommandRecord failed: %v", err)
	}
	return &rec
}

func TestInitAndClose_NoSession(t *testing.T) {
	b, _ := newTestBackend(false)

	if err := b.Init(); err != nil {
		t.Errorf("Init failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if b.GetExportedFilePath() != "" {
		t.Error("expected no export without a session")
	}
}

func TestRecordBeforeSession(t *testing.T) {
	b, _ := newTestBackend(false)

	err := b.RecordCommand(mustRecord(t, 1, core.Commit{}))
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
	if err := b.EndSession(); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestStartSession_AssignsIDAndResets(t *testing.T) {
	b, _ := newTestBackend(false)

	first := &model.Session{Name: "one", StartTime: testStart}
	if err := b.StartSession(first); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	_ = b.RecordCommand(mustRecord(t, 1, core.Commit{}))

	second := &model.Session{Name: "two", StartTime: testStart}
	_ = b.StartSession(second)

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if len(b.Commands()) != 0 {
		t.Errorf("expected commands reset, got %d", len(b.Commands()))
	}
}

func TestRecord_StampsSession(t *testing.T) {
	b, _ := newTestBackend(false)
	s := &model.Session{Name: "drill", StartTime: testStart}
	_ = b.StartSession(s)

	if err := b.RecordCommand(mustRecord(t, 1, core.ShowClock{})); err != nil {
		t.Fatalf("RecordCommand failed: %v", err)
	}
	if err := b.RecordRejection(&model.Rejection{Statement: "NOPE", ErrorKind: "InvalidCommand"}); err != nil {
		t.Fatalf("RecordRejection failed: %v", err)
	}

	cmds := b.Commands()
	if len(cmds) != 1 || cmds[0].SessionID != s.ID {
		t.Errorf("expected one command in session %d, got %+v", s.ID, cmds)
	}
	rejs := b.Rejections()
	if len(rejs) != 1 || rejs[0].SessionID != s.ID || rejs[0].ID != 1 {
		t.Errorf("unexpected rejections: %+v", rejs)
	}
}

func TestEndSession_WritesJSON(t *testing.T) {
	b, fs := newTestBackend(false)
	_ = b.StartSession(&model.Session{Name: "Deck Drill: 1", Source: "repl", StartTime: testStart})
	_ = b.RecordCommand(mustRecord(t, 2, core.Commit{}))
	_ = b.RecordCommand(mustRecord(t, 1, core.DefineTailhook{ID: "h", Time: 1}))

	if err := b.EndSession(); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	path := b.GetExportedFilePath()
	if path != "/out/Deck_Drill__1_20240115_103000.json" {
		t.Errorf("unexpected export path %q", path)
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}

	var got v1.Journal
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if len(got.Commands) != 2 || got.Commands[0].Kind != "define tailhook" {
		t.Errorf("unexpected commands: %+v", got.Commands)
	}
	if got.Session.EndTime != "2024-01-15T11:30:00Z" {
		t.Errorf("unexpected end time %q", got.Session.EndTime)
	}
}

func TestEndSession_WritesGzip(t *testing.T) {
	b, fs := newTestBackend(true)
	_ = b.StartSession(&model.Session{Name: "gz", StartTime: testStart})
	_ = b.RecordCommand(mustRecord(t, 1, core.Exit{}))

	if err := b.EndSession(); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	path := b.GetExportedFilePath()
	if !strings.HasSuffix(path, ".json.gz") {
		t.Fatalf("expected .json.gz, got %q", path)
	}

	f, err := fs.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	var got v1.Journal
	if err := json.NewDecoder(gz).Decode(&got); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if got.Families["misc"] != 1 {
		t.Errorf("expected one misc command, got %v", got.Families)
	}
}

func TestClose_ExportsOpenSession(t *testing.T) {
	b, fs := newTestBackend(false)
	_ = b.StartSession(&model.Session{StartTime: testStart})

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	exists, _ := afero.Exists(fs, "/out/session_20240115_103000.json")
	if !exists {
		t.Error("expected Close to export the open session")
	}
}

func TestConcurrentRecording(t *testing.T) {
	b, _ := newTestBackend(false)
	_ = b.StartSession(&model.Session{StartTime: testStart})

	records := make([]*model.CommandRecord, 100)
	for i := range records {
		records[i] = mustRecord(t, uint64(i), core.ClockUpdate{})
	}

	var wg sync.WaitGroup
	for _, rec := range records {
		wg.Add(1)
		go func(r *model.CommandRecord) {
			defer wg.Done()
			_ = b.RecordCommand(r)
		}(rec)
	}
	wg.Wait()

	if len(b.Commands()) != 100 {
		t.Errorf("expected 100 commands, got %d", len(b.Commands()))
	}
}
