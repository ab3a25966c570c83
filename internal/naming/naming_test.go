package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"String", "string"},
		{"Number", "number"},
		{"Object", "object"},
		{"file", "file"},
		{"String[]", "string[]"},
		{"ÜBER", "über"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LowerType(tt.input))
		})
	}
}
