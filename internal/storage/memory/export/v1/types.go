package v1

import "encoding/json"

// Version is written into every export so readers can tell formats apart.
const Version = 1

// Journal is the root JSON structure
type Journal struct {
	Version    int             `json:"version"`
	Session    SessionJSON     `json:"session"`
	Commands   []CommandJSON   `json:"commands"`
	Rejections []RejectionJSON `json:"rejections"`
	Families   map[string]int  `json:"families"`
}

type SessionJSON struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
}

// CommandJSON is one accepted command. Position is [x, y] in EPSG:3857 metres.
type CommandJSON struct {
	Sequence   uint64          `json:"seq"`
	Family     string          `json:"family"`
	Kind       string          `json:"kind"`
	Subject    string          `json:"subject,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	Position   []float64       `json:"position,omitempty"`
	RecordedAt string          `json:"recordedAt"`
}

type RejectionJSON struct {
	Statement  string `json:"statement"`
	ErrorKind  string `json:"errorKind"`
	Reason     string `json:"reason,omitempty"`
	RecordedAt string `json:"recordedAt"`
}
