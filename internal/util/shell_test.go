package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellQuote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"pbqff.log", "'pbqff.log'"},
		{"my jobs/run.log", "'my jobs/run.log'"},
		{"it's.log", "'it'\\''s.log'"},
		{"$HOME/run.log", "'$HOME/run.log'"},
		{"`hostname`.log", "'`hostname`.log'"},
		{"", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShellQuote(tt.input))
		})
	}
}

func TestShellQuotePreserveTilde(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"~", "~"},
		{"~/jobs/run.log", "~/'jobs/run.log'"},
		{"~/my jobs/run.log", "~/'my jobs/run.log'"},
		{"/abs/run.log", "'/abs/run.log'"},
		{"rel/run.log", "'rel/run.log'"},
		{"~other/run.log", "'~other/run.log'"}, // another user's home, quote it
		{"", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShellQuotePreserveTilde(tt.input))
		})
	}
}
