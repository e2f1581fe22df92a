package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remkop/clip/types"
)

func TestStateNavigation(t *testing.T) {
	s := NewState([]string{"--verbose", "copy", "src", "dst"})

	assert.Equal(t, -1, s.Pos(), "a fresh state sits before the first token")
	assert.Equal(t, "", s.CurrentArg())
	assert.Equal(t, "--verbose", s.Peek())

	assert.True(t, s.Advance())
	assert.Equal(t, "--verbose", s.CurrentArg())
	assert.Equal(t, "copy", s.Peek())

	s.Skip()
	assert.Equal(t, "src", s.CurrentArg())

	assert.True(t, s.Advance())
	assert.Equal(t, "dst", s.CurrentArg())
	assert.False(t, s.Advance(), "no tokens remain")
	assert.Equal(t, "", s.Peek())

	s.SetPos(0)
	assert.Equal(t, "--verbose", s.CurrentArg())
	assert.Equal(t, 4, s.Len())
}

func TestStateArgAt(t *testing.T) {
	s := NewState([]string{"a", "b"})

	got, err := s.ArgAt(1)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = s.ArgAt(2)
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = s.ArgAt(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestStateMutation(t *testing.T) {
	s := NewState([]string{"-abc", "value"})
	s.Advance()

	// A cluster expansion replaces the current token in place.
	s.InsertArgsAt(s.Pos()+1, "-a", "-b", "-c")
	assert.Equal(t, []string{"-abc", "-a", "-b", "-c", "value"}, s.Args())

	s.ReplaceArgs("x", "y")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"x", "y"}, s.Args())
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain words", `copy src dst`, []string{"copy", "src", "dst"}},
		{"double quotes keep spaces", `--message "hello world"`, []string{"--message", "hello world"}},
		{"single quotes keep spaces", `--path '/tmp/my dir'`, []string{"--path", "/tmp/my dir"}},
		{"escaped space", `a\ b`, []string{"a b"}},
		{"empty input", ``, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitUnterminatedQuote(t *testing.T) {
	_, err := Split(`--message "unterminated`)
	assert.Error(t, err)
}

func TestRange(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Range
		wantErr bool
	}{
		{"2", types.Exactly(2), false},
		{"0", types.Exactly(0), false},
		{"0..3", types.NewRange(0, 3), false},
		{"1..*", types.NewRange(1, types.Unbounded), false},
		{" 1 .. 2 ", types.NewRange(1, 2), false},
		{"", types.Range{}, true},
		{"x", types.Range{}, true},
		{"-1", types.Range{}, true},
		{"3..1", types.Range{}, true},
		{"1..x", types.Range{}, true},
		{"1..3..5", types.Range{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Range(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
