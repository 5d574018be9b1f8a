package parser

import (
	"testing"

	"github.com/carrierops/interpreter/pkg/core"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMisc(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, afero.WriteFile(env.fs, "scripts/setup.txt", []byte("COMMIT\n"), 0o644))

	tests := []struct {
		input string
		want  core.Command
	}{
		{"@CLOCK", core.ShowClock{}},
		{"@CLOCK PAUSE", core.SetClockRunning{Running: false}},
		{"@CLOCK resume", core.SetClockRunning{Running: true}},
		{"@CLOCK UPDATE", core.ClockUpdate{}},
		{"@CLOCK 100", core.SetClockRate{Rate: 100}},
		{"@CLOCK 0", core.SetClockRate{Rate: 0}},
		{"@RUN scripts/setup.txt", core.RunFile{Path: "scripts/setup.txt"}},
		{"@EXIT", core.Exit{}},
		{"@WAIT 5", core.Wait{Duration: 5}},
		{"@WAIT 0", core.Wait{Duration: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, env, tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, core.FamilyMisc, got.Family())
		})
	}
}

func TestParseMisc_Invalid(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.fs.MkdirAll("scripts", 0o755))

	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"@CLOCK -1", InvalidValue},
		{"@CLOCK fast", InvalidValue},
		{"@CLOCK 1.5", InvalidValue},
		{"@CLOCK PAUSE now", InvalidCommand},
		{"@RUN missing.txt", InvalidFilename},
		{"@RUN scripts", InvalidFilename},
		{"@RUN", InvalidCommand},
		{"@RUN a b", InvalidCommand},
		{"@EXIT now", InvalidCommand},
		{"@WAIT", InvalidCommand},
		{"@WAIT -1", InvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := env.in.Parse(tt.input)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestFSProbe(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", nil, 0o644))
	require.NoError(t, fs.MkdirAll("dir", 0o755))

	probe := NewFSProbe(fs)
	assert.True(t, probe.FileExists("a.txt"))
	assert.False(t, probe.FileExists("dir"))
	assert.False(t, probe.FileExists("b.txt"))
}
