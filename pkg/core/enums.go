// pkg/core/enums.go
package core

import "strings"

// AskParameter is the quantity queried by DO <agent> ASK.
type AskParameter int

const (
	AskAll AskParameter = iota
	AskCoordinates
	AskAltitude
	AskHeading
	AskSpeed
	AskWeight
	AskFuel
)

var askParameterNames = map[AskParameter]string{
	AskAll:         "ALL",
	AskCoordinates: "COORDINATES",
	AskAltitude:    "ALTITUDE",
	AskHeading:     "HEADING",
	AskSpeed:       "SPEED",
	AskWeight:      "WEIGHT",
	AskFuel:        "FUEL",
}

func (p AskParameter) String() string {
	if n, ok := askParameterNames[p]; ok {
		return n
	}
	return "UNKNOWN"
}

// AskParameterFromName looks up a parameter case-insensitively.
func AskParameterFromName(name string) (AskParameter, bool) {
	upper := strings.ToUpper(name)
	for p, n := range askParameterNames {
		if n == upper {
			return p, true
		}
	}
	return 0, false
}

// TurnDirection selects which way an agent turns onto a new heading.
type TurnDirection int

const (
	TurnLeft TurnDirection = iota
	TurnRight
)

func (d TurnDirection) String() string {
	switch d {
	case TurnLeft:
		return "LEFT"
	case TurnRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// TurnDirectionFromName looks up a direction case-insensitively.
func TurnDirectionFromName(name string) (TurnDirection, bool) {
	switch strings.ToUpper(name) {
	case "LEFT":
		return TurnLeft, true
	case "RIGHT":
		return TurnRight, true
	}
	return 0, false
}
