package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		contains map[int]bool
		variable bool
		valid    bool
		str      string
	}{
		{
			name:     "exact",
			r:        Exactly(1),
			contains: map[int]bool{0: false, 1: true, 2: false},
			valid:    true,
			str:      "1",
		},
		{
			name:     "bounded",
			r:        NewRange(0, 2),
			contains: map[int]bool{0: true, 2: true, 3: false},
			valid:    true,
			str:      "0..2",
		},
		{
			name:     "unbounded",
			r:        NewRange(1, Unbounded),
			contains: map[int]bool{0: false, 1: true, 100: true},
			variable: true,
			valid:    true,
			str:      "1..*",
		},
		{
			name:  "inverted is invalid",
			r:     NewRange(3, 1),
			valid: false,
			str:   "3..1",
		},
		{
			name:  "negative is invalid",
			r:     NewRange(-1, 2),
			valid: false,
			str:   "-1..2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.variable, tt.r.Variable())
			assert.Equal(t, tt.valid, tt.r.Valid())
			assert.Equal(t, tt.str, tt.r.String())
			for n, want := range tt.contains {
				assert.Equal(t, want, tt.r.Contains(n), "Contains(%d)", n)
			}
		})
	}
}

func TestRangeCanTake(t *testing.T) {
	r := NewRange(1, 2)
	assert.True(t, r.CanTake(0))
	assert.True(t, r.CanTake(1))
	assert.False(t, r.CanTake(2))

	open := NewRange(0, Unbounded)
	assert.True(t, open.CanTake(1<<20))
}
