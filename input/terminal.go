// Package input covers the two ways argument values reach the parser from
// outside the token list: interactive terminal prompts and @-prefixed
// response files.
package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/remkop/clip/errs"
)

// TerminalReader abstracts terminal access so interactive prompting can be
// tested without a tty.
type TerminalReader interface {
	ReadPassword(fd int) ([]byte, error)
	IsTerminal(fd int) bool
}

// DefaultTerminal reads from the real terminal.
type DefaultTerminal struct{}

func (t *DefaultTerminal) ReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSecureString prompts on w and reads a value from the terminal without
// echoing it. A nil terminal falls back to the real one.
func GetSecureString(prompt string, w io.Writer, terminal TerminalReader) (string, error) {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	if !terminal.IsTerminal(int(os.Stdin.Fd())) {
		return "", errs.ErrNoTerminal
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	bytes, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	if len(bytes) == 0 {
		return "", errs.ErrEmptyInput
	}

	return string(bytes), nil
}
