package union_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unionize/union"
)

func TestIsPlainRecord(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"record", union.Record{}, true},
		{"any map", map[string]any{"a": 1}, true},
		{"typed map", map[string]int{"a": 1}, true},
		{"nil map", map[string]string(nil), true},
		{"int keys", map[int]any{1: 1}, false},
		{"struct", Audit{}, false},
		{"struct pointer", &Audit{}, false},
		{"nil", nil, false},
		{"scalar", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, union.IsPlainRecord(tt.v))
		})
	}
}
