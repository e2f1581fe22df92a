package parse

import (
	"errors"

	"github.com/remkop/clip/util"
)

// State is the token cursor the interpreter walks during a parse. The token
// list is mutable: expanding a short-option cluster or a response file splices
// replacement tokens into the stream at the current position.
type State interface {
	Pos() int                                // current position
	SetPos(pos int)                          // move to an absolute position
	Skip()                                   // step over the current token without processing it
	Args() []string                          // the token list
	InsertArgsAt(pos int, newArgs ...string) // splice tokens in at pos
	ReplaceArgs(newArgs ...string)           // swap the whole token list
	CurrentArg() string                      // token at the current position
	ArgAt(pos int) (string, error)           // token at an absolute position
	Peek() string                            // next token without advancing
	Advance() bool                           // step to the next token
	Len() int                                // number of tokens
}

// ErrInvalidPosition is returned by ArgAt for positions outside the token list.
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the State implementation used by the interpreter.
type DefaultState struct {
	pos  int
	args []string
}

// NewState returns a State positioned before the first token; the first
// Advance moves onto it.
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

func (s *DefaultState) Pos() int {
	return s.pos
}

func (s *DefaultState) SetPos(pos int) {
	s.pos = pos
}

func (s *DefaultState) Skip() {
	s.pos++
}

func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the token at the current position, or "" when the cursor
// is outside the list.
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

func (s *DefaultState) InsertArgsAt(pos int, newArgs ...string) {
	s.args = util.InsertSlice(s.args, pos, newArgs...)
}

func (s *DefaultState) ReplaceArgs(newArgs ...string) {
	s.args = newArgs
}

func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Peek returns the next token without moving the cursor, or "" at the end of
// the list.
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

func (s *DefaultState) Len() int {
	return len(s.args)
}
