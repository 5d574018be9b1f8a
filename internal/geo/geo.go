package geo

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/carrierops/interpreter/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// ErrInvalidCoordinates is returned when a coordinate literal is malformed or out of range
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// Literal form: D*M'S"/D*M'S" with integer degrees and minutes and integer or decimal seconds.
var coordinateLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Float", Pattern: `\d+\.\d*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[*'"/]`},
})

type dmsLiteral struct {
	Degrees int     `parser:"@Int \"*\""`
	Minutes int     `parser:"@Int \"'\""`
	Seconds float64 `parser:"@(Float | Int) \"\\\"\""`
}

type coordinateLiteral struct {
	Latitude  dmsLiteral `parser:"@@ \"/\""`
	Longitude dmsLiteral `parser:"@@"`
}

var coordinateParser = participle.MustBuild[coordinateLiteral](
	participle.Lexer(coordinateLexer),
)

// ParseCoordinateWorld parses a world coordinate literal such as 49*39'30"/117*25'15.5".
func ParseCoordinateWorld(s string) (core.CoordinateWorld, error) {
	lit, err := coordinateParser.ParseString("", s)
	if err != nil {
		return core.CoordinateWorld{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoordinates, s, err)
	}

	if err := checkDMS(lit.Latitude, 90); err != nil {
		return core.CoordinateWorld{}, fmt.Errorf("%w: %q: latitude %v", ErrInvalidCoordinates, s, err)
	}
	if err := checkDMS(lit.Longitude, 180); err != nil {
		return core.CoordinateWorld{}, fmt.Errorf("%w: %q: longitude %v", ErrInvalidCoordinates, s, err)
	}

	return core.CoordinateWorld{
		Latitude: core.Latitude{
			Degrees: lit.Latitude.Degrees,
			Minutes: lit.Latitude.Minutes,
			Seconds: lit.Latitude.Seconds,
		},
		Longitude: core.Longitude{
			Degrees: lit.Longitude.Degrees,
			Minutes: lit.Longitude.Minutes,
			Seconds: lit.Longitude.Seconds,
		},
	}, nil
}

func checkDMS(d dmsLiteral, maxDegrees int) error {
	switch {
	case d.Degrees < 0 || d.Degrees > maxDegrees:
		return fmt.Errorf("degrees %d outside [0,%d]", d.Degrees, maxDegrees)
	case d.Minutes < 0 || d.Minutes >= 60:
		return fmt.Errorf("minutes %d outside [0,60)", d.Minutes)
	case d.Seconds < 0 || d.Seconds >= 60:
		return fmt.Errorf("seconds %g outside [0,60)", d.Seconds)
	}
	return nil
}

// GEO POINTS
// Positions are stored as EPSG:3857 so SQLite, which has no spatial awareness, can
// still round-trip them through the geometry's WKB Scan/Value.

// Coords3857From4326 creates a point from a longitude and latitude
func Coords3857From4326(longitude, latitude float64) (geom.Point, error) {
	f := wgs84.EPSG().Transform(4326, 3857)
	x, y, _ := f(longitude, latitude, 0)
	point, err := geom.NewPoint(geom.Coordinates{
		XY: geom.XY{X: x, Y: y},
	})
	if err != nil {
		return geom.Point{}, fmt.Errorf("projecting %g,%g: %w", longitude, latitude, err)
	}
	return point, nil
}

// PointFromWorld projects a world coordinate. Literals carry no hemisphere,
// so latitude is taken as north and longitude as east.
func PointFromWorld(c core.CoordinateWorld) (geom.Point, error) {
	return Coords3857From4326(c.Longitude.Decimal(), c.Latitude.Decimal())
}
