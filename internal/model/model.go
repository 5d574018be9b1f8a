package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/carrierops/interpreter/internal/geo"
	"github.com/carrierops/interpreter/pkg/core"
	"github.com/google/uuid"
	geom "github.com/peterstace/simplefeatures/geom"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Session{},
	&CommandRecord{},
	&Rejection{},
}

////////////////////////
// SESSION MODELS
////////////////////////

// Session is one run of the interpreter, from start until @EXIT or end of input.
type Session struct {
	gorm.Model
	Name      string    `json:"name" gorm:"size:127"`
	Source    string    `json:"source" gorm:"size:255"` // file path, or "repl"
	StartTime time.Time `json:"startTime" gorm:"index:idx_session_start"`
	EndTime   time.Time `json:"endTime"`
	Commands  []CommandRecord
}

func (*Session) TableName() string {
	return "sessions"
}

////////////////////////
// JOURNAL MODELS
////////////////////////

// CommandRecord is one accepted command as it left the interpreter.
type CommandRecord struct {
	ID         string         `json:"id" gorm:"primarykey;size:36"`
	SessionID  uint           `json:"sessionId" gorm:"index:idx_command_session_seq,priority:1"`
	Session    Session        `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:SessionID;"`
	Sequence   uint64         `json:"sequence" gorm:"index:idx_command_session_seq,priority:2"`
	Family     string         `json:"family" gorm:"size:16;index:idx_command_family"`
	Kind       string         `json:"kind" gorm:"size:64"`
	Subject    string         `json:"subject" gorm:"size:64;index:idx_command_subject"` // template or agent the command names
	Payload    datatypes.JSON `json:"payload"`
	Position   geom.Point     `json:"position"`
	RecordedAt time.Time      `json:"recordedAt"`
}

func (*CommandRecord) TableName() string {
	return "command_records"
}

// Rejection is a statement the interpreter refused, kept for later review.
type Rejection struct {
	ID         uint      `json:"id" gorm:"primarykey;autoIncrement"`
	SessionID  uint      `json:"sessionId" gorm:"index:idx_rejection_session"`
	Session    Session   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:SessionID;"`
	Statement  string    `json:"statement" gorm:"size:2000"`
	ErrorKind  string    `json:"errorKind" gorm:"size:64"`
	Reason     string    `json:"reason" gorm:"size:2000"`
	RecordedAt time.Time `json:"recordedAt"`
}

func (*Rejection) TableName() string {
	return "rejections"
}

////////////////////////
// CONVERSION
////////////////////////

// NewCommandRecord builds the journal row for an accepted command.
func NewCommandRecord(sessionID uint, seq uint64, c core.Command, at time.Time) (CommandRecord, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return CommandRecord{}, fmt.Errorf("encoding %s payload: %w", c.Kind(), err)
	}

	rec := CommandRecord{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Sequence:   seq,
		Family:     c.Family().String(),
		Kind:       c.Kind(),
		Subject:    string(Subject(c)),
		Payload:    datatypes.JSON(payload),
		RecordedAt: at,
	}
	if pos, ok := Position(c); ok {
		point, err := geo.PointFromWorld(pos)
		if err != nil {
			return CommandRecord{}, fmt.Errorf("%s position: %w", c.Kind(), err)
		}
		rec.Position = point
	}
	return rec, nil
}

// Subject returns the template or agent a command is about, or "" if none.
func Subject(c core.Command) core.Identifier {
	switch v := c.(type) {
	case core.TemplateCommand:
		if id, ok := core.TemplateID(v); ok {
			return id
		}
		switch t := v.(type) {
		case core.Undefine:
			return t.ID
		case core.ShowTemplate:
			return t.ID
		}
	case core.AgentCommand:
		if id, ok := core.CreatedAgent(v); ok {
			return id
		}
		switch a := v.(type) {
		case core.Uncreate:
			return a.ID
		case core.Describe:
			return a.ID
		}
	case core.StructuralCommand:
		if p, ok := v.(core.PopulateCarrier); ok {
			return p.Carrier
		}
	case core.BehavioralCommand:
		if id, ok := core.BehavioralAgent(v); ok {
			return id
		}
	}
	return ""
}

// Position returns the world position a command places or forces an agent to.
func Position(c core.Command) (core.CoordinateWorld, bool) {
	switch v := c.(type) {
	case core.CreateCarrier:
		return v.Position, true
	case core.CreateFighterAirborne:
		return v.Position, true
	case core.CreateTanker:
		return v.Position, true
	case core.DoForceCoordinates:
		return v.Position, true
	case core.DoForceAll:
		return v.Position, true
	}
	return core.CoordinateWorld{}, false
}
