package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	gen := UUIDGenerator{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := &SequenceGenerator{Prefix: "place"}
	assert.Equal(t, "place-1", gen.NewID())
	assert.Equal(t, "place-2", gen.NewID())
	for i := 0; i < 8; i++ {
		gen.NewID()
	}
	assert.Equal(t, "place-11", gen.NewID())
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 12, 1, 12, 0, 0, 0, time.FixedZone("GET", 4*3600))
	assert.Equal(t, "2024-12-01T08:00:00.000Z", Timestamp(ts))

	parsed, err := ParseTimestamp("2024-12-01T12:00:00Z")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)))

	parsed, err = ParseTimestamp(Timestamp(ts))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestPageBounds(t *testing.T) {
	const maxInt = int(^uint(0) >> 1)

	tests := []struct {
		name               string
		page, size, total  int
		wantStart, wantEnd int
		wantPages          int
	}{
		{"first page", 1, 20, 45, 0, 20, 3},
		{"last partial page", 3, 20, 45, 40, 45, 3},
		{"past the end", 4, 20, 45, 45, 45, 3},
		{"zero page", 0, 20, 45, 0, 20, 3},
		{"empty", 1, 20, 0, 0, 0, 0},
		{"huge page", 461168601842738792, 20, 45, 45, 45, 3},
		{"max page", maxInt, 50, 3, 3, 3, 1},
		{"huge page size", 1, maxInt, 3, 0, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageBounds(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantPages, TotalPages(tt.total, tt.size))
		})
	}
}
