package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/carrierops/interpreter/pkg/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	tests := []struct {
		name     string
		model    interface{ TableName() string }
		expected string
	}{
		{"Session", &Session{}, "sessions"},
		{"CommandRecord", &CommandRecord{}, "command_records"},
		{"Rejection", &Rejection{}, "rejections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.model.TableName())
		})
	}
}

func TestNewCommandRecord(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cmd := core.DoSetSpeed{Agent: "f1", Speed: 300}

	rec, err := NewCommandRecord(7, 42, cmd, at)
	require.NoError(t, err)

	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), rec.SessionID)
	assert.Equal(t, uint64(42), rec.Sequence)
	assert.Equal(t, "behavioral", rec.Family)
	assert.Equal(t, "do set speed", rec.Kind)
	assert.Equal(t, "f1", rec.Subject)
	assert.Equal(t, at, rec.RecordedAt)
	assert.True(t, rec.Position.IsEmpty())

	var decoded core.DoSetSpeed
	require.NoError(t, json.Unmarshal(rec.Payload, &decoded))
	assert.Equal(t, cmd, decoded)
}

func TestNewCommandRecord_Position(t *testing.T) {
	cmd := core.DoForceCoordinates{
		Agent: "f1",
		Position: core.CoordinateWorld{
			Latitude:  core.Latitude{Degrees: 10},
			Longitude: core.Longitude{Degrees: 20},
		},
	}

	rec, err := NewCommandRecord(1, 1, cmd, time.Now())
	require.NoError(t, err)
	assert.False(t, rec.Position.IsEmpty())
}

func TestNewCommandRecord_UniqueIDs(t *testing.T) {
	a, err := NewCommandRecord(1, 1, core.Commit{}, time.Now())
	require.NoError(t, err)
	b, err := NewCommandRecord(1, 2, core.Commit{}, time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSubject(t *testing.T) {
	tests := []struct {
		cmd  core.Command
		want core.Identifier
	}{
		{core.DefineCarrier{ID: "nimitz"}, "nimitz"},
		{core.Undefine{ID: "nimitz"}, "nimitz"},
		{core.ShowTemplate{ID: "t"}, "t"},
		{core.ListTemplates{}, ""},
		{core.CreateFighterAirborne{CreateFighter: core.CreateFighter{ID: "f2"}}, "f2"},
		{core.Describe{ID: "cv1"}, "cv1"},
		{core.PopulateCarrier{Carrier: "cv1"}, "cv1"},
		{core.PopulateWorld{Agents: []core.Identifier{"a"}}, ""},
		{core.DoBoom{Agent: "k1"}, "k1"},
		{core.SetWindSpeed{Speed: 1}, ""},
		{core.Exit{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Kind(), func(t *testing.T) {
			assert.Equal(t, tt.want, Subject(tt.cmd))
		})
	}
}
