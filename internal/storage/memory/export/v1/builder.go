package v1

import (
	"cmp"
	"encoding/json"
	"slices"
	"time"

	"github.com/carrierops/interpreter/internal/model"
)

// JournalData contains all the data needed to build an export
type JournalData struct {
	Session    model.Session
	Commands   []model.CommandRecord
	Rejections []model.Rejection
}

// Build converts the recorded session into its export form. Commands are
// ordered by sequence number regardless of the order they were recorded in.
func Build(data JournalData) Journal {
	out := Journal{
		Version: Version,
		Session: SessionJSON{
			Name:      data.Session.Name,
			Source:    data.Session.Source,
			StartTime: formatTime(data.Session.StartTime),
			EndTime:   formatTime(data.Session.EndTime),
		},
		Commands:   make([]CommandJSON, 0, len(data.Commands)),
		Rejections: make([]RejectionJSON, 0, len(data.Rejections)),
		Families:   make(map[string]int),
	}

	commands := slices.Clone(data.Commands)
	slices.SortStableFunc(commands, func(a, b model.CommandRecord) int {
		return cmp.Compare(a.Sequence, b.Sequence)
	})

	for _, rec := range commands {
		out.Commands = append(out.Commands, CommandJSON{
			Sequence:   rec.Sequence,
			Family:     rec.Family,
			Kind:       rec.Kind,
			Subject:    rec.Subject,
			Payload:    payloadOrNull(rec.Payload),
			Position:   position(rec),
			RecordedAt: formatTime(rec.RecordedAt),
		})
		out.Families[rec.Family]++
	}

	for _, rej := range data.Rejections {
		out.Rejections = append(out.Rejections, RejectionJSON{
			Statement:  rej.Statement,
			ErrorKind:  rej.ErrorKind,
			Reason:     rej.Reason,
			RecordedAt: formatTime(rej.RecordedAt),
		})
	}

	return out
}

func position(rec model.CommandRecord) []float64 {
	coord, ok := rec.Position.Coordinates()
	if !ok {
		return nil
	}
	return []float64{coord.XY.X, coord.XY.Y}
}

func payloadOrNull(p []byte) json.RawMessage {
	if len(p) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(p)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
