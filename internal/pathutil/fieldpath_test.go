package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldPath(t *testing.T) {
	tests := []struct {
		name string
		path FieldPath
		want string
	}{
		{"endpoint", EndpointPath(0), "endpoints[0]"},
		{"block", EndpointPath(3).Block("parameter", "Parameter"), "endpoints[3].parameter.Parameter"},
		{"field", EndpointPath(3).Block("parameter", "Parameter").At(1), "endpoints[3].parameter.Parameter[1]"},
		{"group with space", EndpointPath(2).Block("success", "Success 200").At(0), "endpoints[2].success.Success 200[0]"},
		{"block resets field", EndpointPath(1).Block("a", "A").At(4).Block("b", "B"), "endpoints[1].b.B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestFieldPath_ValueSemantics(t *testing.T) {
	block := EndpointPath(0).Block("parameter", "Parameter")
	_ = block.At(5)
	assert.Equal(t, "endpoints[0].parameter.Parameter", block.String())
}
