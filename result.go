package clip

import (
	"reflect"

	"github.com/remkop/clip/util"
)

// MatchedArg records every occurrence of one argument at one command level:
// the raw fragments consumed, the converted values in encounter order, the
// token position of the first occurrence and how often the argument
// appeared.
type MatchedArg struct {
	Arg        Arg
	Name       string
	Raw        []string
	Values     []any
	Position   int
	Occurrence int
	// Negated reports whether the last occurrence used the "no-" spelling.
	Negated bool

	value any
	// rawTokens holds the consumed tokens before split patterns applied,
	// grouped per occurrence by rawGroups; CanonicalTokens re-serializes
	// from these so arity grouping survives a round trip.
	rawTokens []string
	rawGroups []int
}

// Value returns the effective value: the last scalar, or the accumulated
// container for slice and map arguments.
func (m *MatchedArg) Value() any {
	return m.value
}

// ParseResult is the outcome of matching one CommandSpec against a token
// run. Results form a chain through Subcommand when the input selected a
// nested command. A result is never mutated after the parse returns.
type ParseResult struct {
	spec      *CommandSpec
	matches   []*MatchedArg
	byID      map[string]*MatchedArg
	unmatched []UnmatchedToken
	groups    map[*ArgGroupSpec][]map[string]any
	sub       *ParseResult
	err       error
}

func newParseResult(spec *CommandSpec) *ParseResult {
	return &ParseResult{
		spec:   spec,
		byID:   make(map[string]*MatchedArg),
		groups: make(map[*ArgGroupSpec][]map[string]any),
	}
}

// Command returns the CommandSpec this level matched against.
func (r *ParseResult) Command() *CommandSpec {
	return r.spec
}

// Matches lists the matched arguments of this level in encounter order.
func (r *ParseResult) Matches() []*MatchedArg {
	return r.matches
}

// Match returns the record for a declared name, nil when the argument never
// matched at this level.
func (r *ParseResult) Match(name string) *MatchedArg {
	canonical := canonicalName(name)
	for _, match := range r.matches {
		switch arg := match.Arg.(type) {
		case *OptionSpec:
			for _, declared := range arg.Names {
				if canonicalName(declared) == canonical {
					return match
				}
			}
		case *PositionalSpec:
			if canonicalName(arg.Name) == canonical {
				return match
			}
		}
	}
	return nil
}

// Matched reports whether the named argument matched at this level.
func (r *ParseResult) Matched(name string) bool {
	return r.Match(name) != nil
}

// Count returns how many times the named argument occurred.
func (r *ParseResult) Count(name string) int {
	if match := r.Match(name); match != nil {
		return match.Occurrence
	}
	return 0
}

// Value returns the effective value of the named argument, nil when it never
// matched and carries no default.
func (r *ParseResult) Value(name string) any {
	if match := r.Match(name); match != nil {
		return match.value
	}
	return nil
}

// Values returns every converted value of the named argument in encounter
// order.
func (r *ParseResult) Values(name string) []any {
	if match := r.Match(name); match != nil {
		return match.Values
	}
	return nil
}

// Raw returns the raw fragments the named argument consumed.
func (r *ParseResult) Raw(name string) []string {
	if match := r.Match(name); match != nil {
		return match.Raw
	}
	return nil
}

// Bool returns the named argument's value as bool, false when absent or of
// another type. Pointer values are dereferenced.
func (r *ParseResult) Bool(name string) bool {
	b, _ := deref(r.Value(name)).(bool)
	return b
}

// String returns the named argument's value as string, "" when absent.
// Pointer values are dereferenced.
func (r *ParseResult) String(name string) string {
	s, _ := deref(r.Value(name)).(string)
	return s
}

// Int64 returns the named argument's value widened to int64, 0 when absent
// or not an integer type. Pointer values are dereferenced.
func (r *ParseResult) Int64(name string) int64 {
	value := deref(r.Value(name))
	if value == nil {
		return 0
	}
	rv := reflect.ValueOf(value)
	if rv.CanInt() {
		return rv.Int()
	}
	if rv.CanUint() {
		return int64(rv.Uint())
	}
	return 0
}

// Float64 returns the named argument's value widened to float64, 0 when
// absent or not a float type. Pointer values are dereferenced.
func (r *ParseResult) Float64(name string) float64 {
	value := deref(r.Value(name))
	if value == nil {
		return 0
	}
	rv := reflect.ValueOf(value)
	if rv.CanFloat() {
		return rv.Float()
	}
	return 0
}

// Strings returns the named argument's value as []string, nil when absent
// or of another type.
func (r *ParseResult) Strings(name string) []string {
	values, _ := r.Value(name).([]string)
	return values
}

// deref sees through pointer-typed values so the coercing accessors work for
// arguments declared as *int, *bool and friends.
func deref(value any) any {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer {
		return value
	}
	unwrapped, err := util.UnwrapValue(rv)
	if err != nil {
		return nil
	}
	return unwrapped.Interface()
}

// Unmatched lists the tokens no rule matched, in input order. It is only
// populated when the command collects unmatched tokens.
func (r *ParseResult) Unmatched() []UnmatchedToken {
	return r.unmatched
}

// GroupOccurrences returns one record per completed occurrence of the
// group, each keyed by member name.
func (r *ParseResult) GroupOccurrences(group *ArgGroupSpec) []map[string]any {
	return r.groups[group]
}

// Subcommand returns the result of the nested command the input selected,
// nil when parsing stopped at this level.
func (r *ParseResult) Subcommand() *ParseResult {
	return r.sub
}

// Levels returns this result followed by the results of the selected
// subcommand chain.
func (r *ParseResult) Levels() []*ParseResult {
	levels := []*ParseResult{r}
	for sub := r.sub; sub != nil; sub = sub.sub {
		levels = append(levels, sub)
	}
	return levels
}

// Err returns what failed, nil on success. A result with a non-nil Err is a
// diagnostic snapshot of the parse up to the failure, never a success.
func (r *ParseResult) Err() error {
	return r.err
}

// CanonicalTokens re-serializes the matches into canonical token form:
// "--name" (or "--no-name") per flag occurrence, "--name=value" or a
// detached "--name v1 v2" run per valued occurrence, collected unmatched
// tokens, the end-of-options marker when an operand could be mistaken for
// an option, then the operands. Parsing the canonical tokens again
// reproduces the same values. Occurrences of one option serialize
// adjacently, so a group whose occurrences were interleaved across members
// may reject the replay.
func (r *ParseResult) CanonicalTokens() []string {
	config := r.spec.Config()
	var tokens []string
	var operands []string
	needMarker := false
	for _, match := range r.matches {
		switch arg := match.Arg.(type) {
		case *OptionSpec:
			tokens = append(tokens, canonicalOptionTokens(match, arg, config)...)
		case *PositionalSpec:
			for _, raw := range match.rawTokens {
				if looksLikeOption(raw, config) || raw == config.EndOfOptions {
					needMarker = true
				}
				operands = append(operands, raw)
			}
		}
	}
	var trailing []string
	for _, unmatched := range r.unmatched {
		if looksLikeOption(unmatched.Token, config) {
			tokens = append(tokens, unmatched.Token)
			continue
		}
		// Overflow operands go after the matched ones so a re-parse fills
		// the positional slots in the original order.
		if unmatched.Token == config.EndOfOptions {
			needMarker = true
		}
		trailing = append(trailing, unmatched.Token)
	}
	if needMarker && config.EndOfOptions != "" {
		tokens = append(tokens, config.EndOfOptions)
	}
	tokens = append(tokens, operands...)
	tokens = append(tokens, trailing...)
	if r.sub != nil {
		tokens = append(tokens, r.sub.spec.Name)
		tokens = append(tokens, r.sub.CanonicalTokens()...)
	}
	return tokens
}

func canonicalOptionTokens(match *MatchedArg, option *OptionSpec, config ParserConfig) []string {
	prefix := config.LongPrefix
	if len([]rune(match.Name)) == 1 && len(config.Prefixes) > 0 {
		prefix = string(config.Prefixes[0])
	}
	if option.Arity.Max == 0 {
		return canonicalFlagTokens(match, option, config, prefix)
	}
	var tokens []string
	start := 0
	for _, count := range match.rawGroups {
		raws := match.rawTokens[start : start+count]
		start += count
		switch {
		case count == 0:
			// A bare interactive occurrence serializes bare again.
			tokens = append(tokens, prefix+match.Name)
		case count == 1 && config.Separator != "":
			tokens = append(tokens, prefix+match.Name+config.Separator+raws[0])
		default:
			tokens = append(tokens, prefix+match.Name)
			tokens = append(tokens, raws...)
		}
	}
	return tokens
}

func canonicalFlagTokens(match *MatchedArg, option *OptionSpec, config ParserConfig, prefix string) []string {
	tokens := make([]string, 0, len(match.Values))
	for i, value := range match.Values {
		b, isBool := value.(bool)
		switch {
		case isBool && b:
			tokens = append(tokens, prefix+match.Name)
		case isBool && option.Negatable && config.LongPrefix != "":
			tokens = append(tokens, config.LongPrefix+"no-"+match.Name)
		case config.Separator != "" && i < len(match.Raw):
			tokens = append(tokens, prefix+match.Name+config.Separator+match.Raw[i])
		default:
			tokens = append(tokens, prefix+match.Name)
		}
	}
	return tokens
}
