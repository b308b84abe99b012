package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil slice", nil, nil},
		{"empty slice", []string{}, []string{}},
		{"trims whitespace", []string{"  JP  ", "DE  ", "  BR"}, []string{"JP", "DE", "BR"}},
		{"removes duplicates preserving order", []string{"JP", "DE", "JP", "BR", "DE"}, []string{"JP", "DE", "BR"}},
		{"removes empty strings", []string{"JP", "", "  ", "DE"}, []string{"JP", "DE"}},
		{"preserves case", []string{"jp", "JP", "Jp"}, []string{"jp", "JP", "Jp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no values", nil, nil},
		{"single list", []string{"JP,DE,BR"}, []string{"JP", "DE", "BR"}},
		{"repeated parameters", []string{"JP, DE", "DE,USA"}, []string{"JP", "DE", "USA"}},
		{"blank entries", []string{",, ,"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(",", tt.input...))
		})
	}
}
