package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"@CLOCK 100 // go", "@CLOCK 100 "},
		{"// note", ""},
		{"COMMIT", "COMMIT"},
		{"a // b // c", "a "},
		{"a / b", "a / b"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComment(tt.input))
		})
	}
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "COMMIT", []string{"COMMIT"}},
		{"two with padding", " @CLOCK 100 ;  @WAIT 5 ", []string{"@CLOCK 100", "@WAIT 5"}},
		{"empty pieces skipped", ";; COMMIT ;  ;", []string{"COMMIT"}},
		{"nothing", "   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitStatements(tt.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "DO f1 POSITION", CollapseWhitespace("  DO \t f1\n   POSITION "))
	assert.Equal(t, "", CollapseWhitespace(" \t "))
}

func TestTrimSign(t *testing.T) {
	assert.Equal(t, "10", TrimSign("+10"))
	assert.Equal(t, "-10", TrimSign("-10"))
	assert.Equal(t, "+10", TrimSign("++10"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
}
