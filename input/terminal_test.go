package input

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/remkop/clip/errs"
)

// MockTerminal for testing
type MockTerminal struct {
	Password    []byte
	IsATerminal bool
	Err         error
}

func (m *MockTerminal) ReadPassword(fd int) ([]byte, error) {
	return m.Password, m.Err
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	return m.IsATerminal
}

func TestGetSecureString(t *testing.T) {
	tests := []struct {
		name         string
		prompt       string
		mockPassword []byte
		isTerminal   bool
		mockErr      error
		want         string
		wantErr      error
	}{
		{
			name:         "successful input",
			prompt:       "Enter password: ",
			mockPassword: []byte("secretpass"),
			isTerminal:   true,
			want:         "secretpass",
		},
		{
			name:         "empty input",
			prompt:       "Enter password: ",
			mockPassword: []byte(""),
			isTerminal:   true,
			wantErr:      errs.ErrEmptyInput,
		},
		{
			name:       "not a terminal",
			prompt:     "Enter password: ",
			isTerminal: false,
			wantErr:    errs.ErrNoTerminal,
		},
		{
			name:       "read failure",
			prompt:     "Enter password: ",
			isTerminal: true,
			mockErr:    errors.New("read error"),
			wantErr:    errors.New("read error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mock := &MockTerminal{
				Password:    tt.mockPassword,
				IsATerminal: tt.isTerminal,
				Err:         tt.mockErr,
			}

			got, err := GetSecureString(tt.prompt, &buf, mock)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("GetSecureString() expected error %v, got none", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) && err.Error() != tt.wantErr.Error() {
					t.Errorf("GetSecureString() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetSecureString() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetSecureString() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(buf.String(), tt.prompt) {
				t.Errorf("prompt %q was not written", tt.prompt)
			}
		})
	}
}
