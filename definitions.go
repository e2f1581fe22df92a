package clip

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/remkop/clip/i18n"
)

// ConfigureCommandFunc is used when defining a CommandSpec through NewCommand.
type ConfigureCommandFunc func(command *CommandSpec, err *error)

// ConfigureArgumentFunc is used when defining options and positional
// parameters through NewOption and NewPositional. Functions which only make
// sense for one argument kind (WithAlias, WithIndex, ...) record an error when
// applied to the other.
type ConfigureArgumentFunc func(arg Arg, err *error)

// ConfigureGroupFunc is used when defining argument groups through NewGroup.
type ConfigureGroupFunc func(group *ArgGroupSpec, err *error)

// ValueConverter turns one raw command-line fragment into a typed value.
type ValueConverter func(input string) (any, error)

// Binding connects an argument to user storage. Set receives the complete
// new value on every call: scalars get the converted value, slice and map
// arguments get the full accumulated container again after each fragment, so
// repeated parses replace rather than append.
type Binding interface {
	Get() any
	Set(value any) error
}

// UnmatchedToken records an input token no rule matched, together with its
// position in the original argument slice.
type UnmatchedToken struct {
	Token    string
	Position int
}

// TraceLevel controls how much parser diagnostics are written to the
// configured trace writer.
type TraceLevel int

const (
	TraceOff TraceLevel = iota
	TraceError
	TraceWarn
	TraceDebug
)

func (l TraceLevel) String() string {
	switch l {
	case TraceError:
		return "error"
	case TraceWarn:
		return "warn"
	case TraceDebug:
		return "debug"
	default:
		return "off"
	}
}

// ParserConfig carries the grammar settings of one command. Subcommands
// adopt the configuration of their parent when they are registered unless
// they were configured themselves.
type ParserConfig struct {
	// Prefixes lists the runes which introduce an option token.
	Prefixes []rune
	// LongPrefix introduces a long option name, Separator splits an inline
	// value from the name ("--name=value").
	LongPrefix string
	Separator  string
	// EndOfOptions is the token after which everything is an operand.
	EndOfOptions string
	// Clustering allows bundled single-letter options ("-xvf").
	Clustering bool
	// Abbreviations enables prefix and initialism matching of long names.
	Abbreviations bool
	// CaseInsensitive applies to option names and subcommand names alike.
	CaseInsensitive bool
	// CollectUnmatched stores unknown tokens on the result instead of
	// failing the parse.
	CollectUnmatched bool
	// SuggestionThreshold is the maximum edit distance for "did you mean"
	// candidates. Zero disables suggestions.
	SuggestionThreshold int

	TraceLevel  TraceLevel
	TraceWriter io.Writer
}

func defaultParserConfig() ParserConfig {
	return ParserConfig{
		Prefixes:            []rune{'-'},
		LongPrefix:          "--",
		Separator:           "=",
		EndOfOptions:        "--",
		Clustering:          true,
		SuggestionThreshold: 2,
	}
}

// TypeOf is a convenience for WithType: TypeOf[[]int]() instead of
// reflect.TypeOf([]int(nil)).
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// tracer writes parser diagnostics. Warnings render through the message
// catalog so traces follow the configured language.
type tracer struct {
	level TraceLevel
	w     io.Writer
}

func newTracer(config ParserConfig) *tracer {
	w := config.TraceWriter
	if w == nil {
		w = os.Stderr
	}
	return &tracer{level: config.TraceLevel, w: w}
}

func (t *tracer) enabled(level TraceLevel) bool {
	return t.level >= level && level > TraceOff
}

func (t *tracer) warn(key string, args ...any) {
	if !t.enabled(TraceWarn) {
		return
	}
	fmt.Fprintf(t.w, "clip: [warn] %s\n", i18n.Default().T(key, args...))
}

func (t *tracer) errorf(format string, args ...any) {
	if !t.enabled(TraceError) {
		return
	}
	fmt.Fprintf(t.w, "clip: [error] "+format+"\n", args...)
}

func (t *tracer) debugf(format string, args ...any) {
	if !t.enabled(TraceDebug) {
		return
	}
	fmt.Fprintf(t.w, "clip: [debug] "+format+"\n", args...)
}
