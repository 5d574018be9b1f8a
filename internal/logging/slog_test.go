package logging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

// withStdout swaps stdout for a pipe while fn runs and returns what was written.
func withStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := osPipe()
	require.NoError(t, err)

	orig := osStdout
	osStdout = w
	fn()
	osStdout = orig
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(out)
}

func TestSetup_Destination(t *testing.T) {
	t.Run("file keeps stdout clean", func(t *testing.T) {
		var file bytes.Buffer
		stdout := withStdout(t, func() {
			m := NewSlogManager()
			m.Setup(&file, "info", Options{})
			m.Logger().Info("to file")
		})
		assert.Contains(t, file.String(), "to file")
		assert.Contains(t, file.String(), "Logging initialized")
		assert.Empty(t, stdout)
	})

	t.Run("no file goes to stdout", func(t *testing.T) {
		stdout := withStdout(t, func() {
			m := NewSlogManager()
			m.Setup(nil, "info", Options{})
			m.Logger().Info("to console")
		})
		assert.Contains(t, stdout, "to console")
	})
}

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewSlogManager()
			m.Setup(&buf, tt.level, Options{})
			m.Logger().Debug("dbg line")
			m.Logger().Warn("warn line")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("dbg line")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn line")))
		})
	}
}

func TestLogger_DefaultBeforeSetup(t *testing.T) {
	assert.Same(t, slog.Default(), NewSlogManager().Logger())
}

func TestWriteLog(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&buf, "debug", Options{})

	m.WriteLog("worker:record", "debug entry", "DEBUG")
	m.WriteLog("worker:record", "warn entry", "warn")
	m.WriteLog("worker:record", "error entry", "ERROR")
	m.WriteLog("worker:record", "info entry", "")

	out := buf.String()
	assert.Contains(t, out, `level=DEBUG msg="debug entry" function=worker:record`)
	assert.Contains(t, out, `level=WARN msg="warn entry"`)
	assert.Contains(t, out, `level=ERROR msg="error entry"`)
	assert.Contains(t, out, `level=INFO msg="info entry"`)
}

func TestWriteLog_BeforeSetupIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSlogManager().WriteLog("fn", "dropped", "INFO")
	})
}

// closeRecorder is a Graylog stand-in that records writes and Close.
type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestGraylog(t *testing.T) {
	var file bytes.Buffer
	gl := &closeRecorder{}
	m := NewSlogManager()
	m.Setup(&file, "info", Options{Graylog: gl})

	m.Logger().Info("shipped", "agent", "f1")
	assert.Contains(t, file.String(), "shipped")
	assert.Contains(t, gl.String(), `"msg":"shipped"`)
	assert.Contains(t, gl.String(), `"agent":"f1"`)

	require.NoError(t, m.Close())
	assert.True(t, gl.closed)
}

func TestClose_WithoutGraylog(t *testing.T) {
	m := NewSlogManager()
	m.Setup(&bytes.Buffer{}, "info", Options{})
	assert.NoError(t, m.Close())
}

func TestSetup_ContextProviderStampsEveryRecord(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	m := NewSlogManager()
	m.Setup(&buf, "info", Options{
		Context: func() []slog.Attr {
			calls++
			return []slog.Attr{slog.Uint64("sessionId", 7)}
		},
	})

	m.Logger().With("family", "misc").Info("tagged")
	assert.Contains(t, buf.String(), "family=misc sessionId=7")
	assert.Equal(t, 2, calls, "initialization record plus ours")
}

type failingSink struct{ slog.Handler }

func (failingSink) Enabled(context.Context, slog.Level) bool { return true }
func (failingSink) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestSessionHandler_FailingSinkDoesNotBlockOthers(t *testing.T) {
	var buf bytes.Buffer
	good := slog.NewTextHandler(&buf, nil)
	h := newSessionHandler(nil, failingSink{}, nil, good)

	err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelInfo, "still delivered", 0))
	assert.EqualError(t, err, "sink down")
	assert.Contains(t, buf.String(), "still delivered")
}

func TestSessionHandler_Enabled(t *testing.T) {
	warnOnly := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := newSessionHandler(nil, warnOnly)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, newSessionHandler(nil).Enabled(context.Background(), slog.LevelError))
}

func TestSessionHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	h := newSessionHandler(nil, slog.NewTextHandler(&buf, nil))

	assert.Same(t, h, h.WithGroup(""))
	slog.New(h.WithGroup("cmd")).Info("grouped", "kind", "commit")
	assert.Contains(t, buf.String(), "cmd.kind=commit")
}
