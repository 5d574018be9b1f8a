package parser

import (
	"strings"

	"github.com/carrierops/interpreter/internal/util"
)

// Segment splits a raw line into its trimmed, non-empty statements.
// A comment-only line yields no statements and no error.
func Segment(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, newError(EmptyInput, line, "nothing to interpret")
	}
	return util.SplitStatements(util.StripComment(line)), nil
}

// Tokenize collapses runs of whitespace and splits the statement on the remaining separators.
func Tokenize(statement string) []string {
	collapsed := util.CollapseWhitespace(statement)
	if collapsed == "" {
		return nil
	}
	return strings.Split(collapsed, " ")
}

// statement is one tokenized statement together with the text it came from.
type statement struct {
	text   string
	tokens []string
}

func newStatement(text string) statement {
	return statement{text: text, tokens: Tokenize(text)}
}

func (s statement) len() int { return len(s.tokens) }

// word returns the upper-cased token at i, or "" past the end.
func (s statement) word(i int) string {
	if i < 0 || i >= len(s.tokens) {
		return ""
	}
	return strings.ToUpper(s.tokens[i])
}

// from returns the statement's tokens starting at i, keeping the original text for errors.
func (s statement) from(i int) statement {
	if i > len(s.tokens) {
		i = len(s.tokens)
	}
	return statement{text: s.text, tokens: s.tokens[i:]}
}

func (s statement) invalid(format string, args ...any) *ParseError {
	return newError(InvalidCommand, s.text, format, args...)
}
