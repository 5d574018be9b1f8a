// pkg/core/values.go
package core

import "strconv"

// Identifier is an opaque name for a template or an agent.
type Identifier string

// Magnitudes. Every magnitude has a minimum of zero; Percent is also capped at 100.
type (
	AngleNavigational float64
	Speed             float64
	Altitude          float64
	Weight            float64
	Distance          float64
	Flow              float64
	Time              float64
	Percent           float64
	AttitudePitch     float64
	Acceleration      float64
	Rate              float64
)

// CoordinateCartesianRelative is an integer offset from a parent agent's origin.
type CoordinateCartesianRelative struct {
	X int
	Y int
}

// Latitude in degrees, minutes and seconds.
type Latitude struct {
	Degrees int
	Minutes int
	Seconds float64
}

// Longitude in degrees, minutes and seconds.
type Longitude struct {
	Degrees int
	Minutes int
	Seconds float64
}

// CoordinateWorld is a geographic position.
type CoordinateWorld struct {
	Latitude  Latitude
	Longitude Longitude
}

// Decimal returns the latitude in decimal degrees.
func (l Latitude) Decimal() float64 {
	return dmsToDecimal(l.Degrees, l.Minutes, l.Seconds)
}

// Decimal returns the longitude in decimal degrees.
func (l Longitude) Decimal() float64 {
	return dmsToDecimal(l.Degrees, l.Minutes, l.Seconds)
}

func (l Latitude) String() string  { return formatDMS(l.Degrees, l.Minutes, l.Seconds) }
func (l Longitude) String() string { return formatDMS(l.Degrees, l.Minutes, l.Seconds) }

// String renders the coordinate in the literal form accepted by the command language.
func (c CoordinateWorld) String() string {
	return c.Latitude.String() + "/" + c.Longitude.String()
}

func dmsToDecimal(deg, min int, sec float64) float64 {
	return float64(deg) + float64(min)/60 + sec/3600
}

func formatDMS(deg, min int, sec float64) string {
	return strconv.Itoa(deg) + "*" + strconv.Itoa(min) + "'" +
		strconv.FormatFloat(sec, 'f', -1, 64) + "\""
}

// ParameterAssignment overrides one field of a referenced agent during fighter creation.
type ParameterAssignment struct {
	Target Identifier
	Field  string
	Value  string
}
