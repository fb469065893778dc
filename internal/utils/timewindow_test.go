package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, time.March, 14, 17, 42, 9, 123, loc)
	got := StartOfDay(in)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestStartOfWeek(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	// Friday rolls back to the preceding Sunday.
	friday := time.Date(2025, time.March, 14, 17, 42, 9, 0, loc)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, loc), StartOfWeek(friday))

	// Sunday is its own week start.
	sunday := time.Date(2025, time.March, 9, 23, 59, 59, 0, loc)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, loc), StartOfWeek(sunday))
}
