package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterFields(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		allowed []string
		want    map[string]any
	}{
		{
			name:    "keeps only allowed keys",
			input:   map[string]any{"title": "Hello", "userId": "someone-else", "isAdmin": true},
			allowed: []string{"title", "content"},
			want:    map[string]any{"title": "Hello"},
		},
		{
			name:    "values unchanged",
			input:   map[string]any{"title": "T", "content": 42},
			allowed: []string{"title", "content"},
			want:    map[string]any{"title": "T", "content": 42},
		},
		{
			name:    "empty input",
			input:   map[string]any{},
			allowed: []string{"title"},
			want:    map[string]any{},
		},
		{
			name:    "nil input",
			input:   nil,
			allowed: []string{"title"},
			want:    map[string]any{},
		},
		{
			name:    "no allowed keys",
			input:   map[string]any{"title": "T"},
			allowed: nil,
			want:    map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFields(tt.input, tt.allowed...)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

func TestFilterFields_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{"title": "T", "extra": 1}

	FilterFields(input, "title")

	assert.Len(t, input, 2)
}
