package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/carrierops/interpreter/pkg/core"
)

// shape is a fixed token layout compiled from a pattern such as
//
//	DEFINE TAILHOOK <tid> TIME <time>
//
// Upper-case words are keywords (alternatives separated by "|") matched
// case-insensitively, <name> is a field, <name>... is a trailing list of one
// or more fields and a bare trailing ... accepts any further tokens.
type shape struct {
	pattern  string
	tokens   []shapeToken
	fields   map[string]int
	variadic bool
	open     bool
}

type shapeToken struct {
	keywords []string
	field    string
}

func mustShape(pattern string) shape {
	parts := strings.Fields(pattern)
	sh := shape{pattern: pattern, fields: make(map[string]int)}
	for i, p := range parts {
		last := i == len(parts)-1
		switch {
		case p == "...":
			if !last {
				panic(fmt.Sprintf("shape %q: ... must be last", pattern))
			}
			sh.open = true
		case strings.HasPrefix(p, "<"):
			name, variadic := strings.CutSuffix(p, "...")
			if variadic && !last {
				panic(fmt.Sprintf("shape %q: list field must be last", pattern))
			}
			name = strings.TrimSuffix(strings.TrimPrefix(name, "<"), ">")
			sh.fields[name] = len(sh.tokens)
			sh.tokens = append(sh.tokens, shapeToken{field: name})
			sh.variadic = variadic
		default:
			sh.tokens = append(sh.tokens, shapeToken{keywords: strings.Split(p, "|")})
		}
	}
	return sh
}

// match checks keywords first so the error points at the first clause that
// does not fit, then the token count.
func (sh shape) match(st statement) *ParseError {
	for i, tok := range sh.tokens {
		if i >= st.len() {
			break
		}
		if tok.field != "" || slices.Contains(tok.keywords, st.word(i)) {
			continue
		}
		return st.invalid("expected %s at token %d, got %q",
			strings.Join(tok.keywords, " or "), i+1, st.tokens[i])
	}

	want := len(sh.tokens)
	switch {
	case sh.variadic || sh.open:
		if st.len() < want {
			return st.invalid("expected at least %d tokens, got %d (%s)", want, st.len(), sh.pattern)
		}
	case st.len() != want:
		return st.invalid("expected %d tokens, got %d (%s)", want, st.len(), sh.pattern)
	}
	return nil
}

// read matches st and returns a reader over its fields.
func (sh shape) read(st statement) (*fieldReader, *ParseError) {
	if err := sh.match(st); err != nil {
		return nil, err
	}
	return &fieldReader{st: st, shape: sh}, nil
}

// rule binds a shape to the constructor of its command record.
type rule[T core.Command] struct {
	shape shape
	build func(r *fieldReader) T
}

func newRule[T core.Command](pattern string, build func(r *fieldReader) T) rule[T] {
	return rule[T]{shape: mustShape(pattern), build: build}
}

func (ru rule[T]) apply(st statement) (T, error) {
	var zero T
	r, perr := ru.shape.read(st)
	if perr != nil {
		return zero, perr
	}
	cmd := ru.build(r)
	if r.err != nil {
		return zero, r.err
	}
	return cmd, nil
}

// fieldReader extracts typed fields from a matched statement. The first
// failure is kept and later reads return zero values.
type fieldReader struct {
	st    statement
	shape shape
	err   *ParseError
}

func (r *fieldReader) token(name string) string {
	i, ok := r.shape.fields[name]
	if !ok {
		panic(fmt.Sprintf("shape %q has no field %q", r.shape.pattern, name))
	}
	return r.st.tokens[i]
}

func (r *fieldReader) fail(err *ParseError) {
	if r.err == nil {
		r.err = err
	}
}

func (r *fieldReader) ident(name string) core.Identifier {
	return core.Identifier(r.token(name))
}

// idents returns the trailing list field as identifiers.
func (r *fieldReader) idents(name string) []core.Identifier {
	r.token(name)
	tail := r.st.tokens[r.shape.fields[name]:]
	ids := make([]core.Identifier, len(tail))
	for i, t := range tail {
		ids[i] = core.Identifier(t)
	}
	return ids
}

func (r *fieldReader) integer(name string, min, max int) int {
	if r.err != nil {
		return 0
	}
	v, err := parseInt(r.st.text, name, r.token(name), min, max)
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *fieldReader) real(name string) float64 {
	if r.err != nil {
		return 0
	}
	v, err := parseReal(r.st.text, name, r.token(name), 0)
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *fieldReader) speed(name string) core.Speed {
	return core.Speed(r.integer(name, 0, noMax))
}

func (r *fieldReader) weight(name string) core.Weight {
	return core.Weight(r.integer(name, 0, noMax))
}

func (r *fieldReader) altitude(name string) core.Altitude {
	return core.Altitude(r.integer(name, 0, noMax))
}

func (r *fieldReader) rate(name string) core.Rate {
	return core.Rate(r.integer(name, 0, noMax))
}

func (r *fieldReader) percent(name string) core.Percent {
	return core.Percent(r.integer(name, 0, 100))
}

func (r *fieldReader) course(name string) core.AngleNavigational {
	return core.AngleNavigational(r.integer(name, 0, 359))
}

func (r *fieldReader) origin(name string) core.CoordinateCartesianRelative {
	if r.err != nil {
		return core.CoordinateCartesianRelative{}
	}
	v, err := parseOrigin(r.st.text, r.token(name))
	if err != nil {
		r.fail(err)
	}
	return v
}

func (r *fieldReader) coordinates(name string) core.CoordinateWorld {
	if r.err != nil {
		return core.CoordinateWorld{}
	}
	v, err := parseCoordinates(r.st.text, r.token(name))
	if err != nil {
		r.fail(err)
	}
	return v
}

// choice reports whether the field is the first of two literal alternatives.
func (r *fieldReader) choice(name, yes, no string) bool {
	if r.err != nil {
		return false
	}
	switch strings.ToUpper(r.token(name)) {
	case yes:
		return true
	case no:
		return false
	}
	r.fail(r.st.invalid("expected %s or %s, got %q", yes, no, r.token(name)))
	return false
}

func (r *fieldReader) askParameter(name string) core.AskParameter {
	if r.err != nil {
		return 0
	}
	p, ok := core.AskParameterFromName(r.token(name))
	if !ok {
		r.fail(newError(UnknownEnumerationValue, r.st.text, "unknown parameter %q", r.token(name)))
	}
	return p
}

func (r *fieldReader) turnDirection(name string) core.TurnDirection {
	if r.err != nil {
		return 0
	}
	d, ok := core.TurnDirectionFromName(r.token(name))
	if !ok {
		r.fail(newError(UnknownEnumerationValue, r.st.text, "unknown turn direction %q", r.token(name)))
	}
	return d
}
