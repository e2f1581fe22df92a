package clip

// ParseError wraps a parse-time failure with where it happened: the command
// level, the token position at that level (-1 when the failure is not tied
// to a position) and the offending raw token. The wrapped sentinel stays
// reachable through errors.Is/As.
type ParseError struct {
	Err      error
	Spec     *CommandSpec
	Position int
	Token    string
}

func (e *ParseError) Error() string {
	if e.Spec != nil && e.Spec.Path() != "" {
		return e.Spec.Path() + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(spec *CommandSpec, position int, token string, err error) *ParseError {
	return &ParseError{Err: err, Spec: spec, Position: position, Token: token}
}
