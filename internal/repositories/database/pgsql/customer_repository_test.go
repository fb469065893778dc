package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"plain term untouched", "Abu Khalid", "Abu Khalid"},
		{"percent escaped", "50%", `50\%`},
		{"underscore escaped", "_", `\_`},
		{"backslash escaped first", `a\b`, `a\\b`},
		{"mixed metacharacters", `%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.term))
		})
	}
}
