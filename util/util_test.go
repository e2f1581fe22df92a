package util

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	if got := Min(1, 2); got != 1 {
		t.Errorf("Min(1, 2) = %d; want 1", got)
	}
	if got := Min(5.5, 3.5); got != 3.5 {
		t.Errorf("Min(5.5, 3.5) = %v; want 3.5", got)
	}
	if got := Min(int64(-5), int64(-2)); got != -5 {
		t.Errorf("Min(-5, -2) = %d; want -5", got)
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"-1", true},
		{"-123.45", true},
		{"042", true},
		{"1e3", true},
		{"", false},
		{"-", false},
		{"-abc", false},
		{"12x", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNumeric(tt.in), "IsNumeric(%q)", tt.in)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"verbose", "verbose", 0},
		{"verbose", "verbos", 1},
		{"verbose", "vrebose", 2},
		{"output", "input", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevenshteinDistance(tt.s1, tt.s2), "distance(%q, %q)", tt.s1, tt.s2)
	}
}

func TestInsertSlice(t *testing.T) {
	got := InsertSlice([]string{"a", "d"}, 1, "b", "c")
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)

	got = InsertSlice([]string{"x"}, 0, "start")
	assert.Equal(t, []string{"start", "x"}, got)

	got = InsertSlice([]string{"x"}, 1, "end")
	assert.Equal(t, []string{"x", "end"}, got)

	base := make([]string, 0, 8)
	base = append(base, "a", "d")
	got = InsertSlice(base, 1, "b", "c")
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Equal(t, []string{"a", "d"}, base,
		"spare capacity in the input must not be written through")
}

func TestUnwrapValue(t *testing.T) {
	s := "test"
	p := &s
	pp := &p

	v, err := UnwrapValue(reflect.ValueOf(pp))
	assert.NoError(t, err)
	assert.Equal(t, "test", v.String())

	_, err = UnwrapValue(reflect.ValueOf((*string)(nil)))
	assert.Error(t, err)
}
