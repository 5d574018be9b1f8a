package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/carrierops/interpreter/internal/geo"
	"github.com/carrierops/interpreter/internal/util"
	"github.com/carrierops/interpreter/pkg/core"
)

const noMax = math.MaxInt

// parseInt reads a whole number in [min,max]. text is the enclosing statement.
func parseInt(text, field, token string, min, max int) (int, *ParseError) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, newError(InvalidValue, text, "%s: %q is not an integer", field, token)
	}
	if v < min {
		return 0, newError(InvalidValue, text, "%s: %d is below minimum %d", field, v, min)
	}
	if v > max {
		return 0, newError(InvalidValue, text, "%s: %d is above maximum %d", field, v, max)
	}
	return v, nil
}

// parseReal reads a finite decimal number no smaller than min. Hex floats,
// digit separators and the Inf/NaN spellings are not numbers here.
func parseReal(text, field, token string, min float64) (float64, *ParseError) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || !isDecimal(token) || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newError(InvalidValue, text, "%s: %q is not a number", field, token)
	}
	if v < min {
		return 0, newError(InvalidValue, text, "%s: %g is below minimum %g", field, v, min)
	}
	return v, nil
}

func isDecimal(token string) bool {
	return !strings.ContainsFunc(token, func(r rune) bool {
		return !strings.ContainsRune("0123456789.+-eE", r)
	})
}

// parseOrigin reads an x:y offset of signed integers, e.g. -10:+20.
func parseOrigin(text, token string) (core.CoordinateCartesianRelative, *ParseError) {
	xs, ys, ok := strings.Cut(token, ":")
	if !ok {
		return core.CoordinateCartesianRelative{}, newError(InvalidValue, text, "origin: %q is not x:y", token)
	}
	x, errX := strconv.Atoi(util.TrimSign(xs))
	y, errY := strconv.Atoi(util.TrimSign(ys))
	if errX != nil || errY != nil {
		return core.CoordinateCartesianRelative{}, newError(InvalidValue, text, "origin: %q is not x:y", token)
	}
	return core.CoordinateCartesianRelative{X: x, Y: y}, nil
}

func parseCoordinates(text, token string) (core.CoordinateWorld, *ParseError) {
	c, err := geo.ParseCoordinateWorld(token)
	if err != nil {
		return core.CoordinateWorld{}, newError(InvalidCoordinates, text, "%v", err)
	}
	return c, nil
}
