package clip

import (
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/remkop/clip/types"
)

// Arg is either an *OptionSpec or a *PositionalSpec. Arguments are compared
// by identity, never by name, so the same name may be reused across sibling
// subcommands.
type Arg interface {
	// ID returns the identity assigned when the argument was created.
	ID() string
	// Synopsis renders the argument the way diagnostics refer to it:
	// "--name" or "-n" for options, "<name>" for positional parameters.
	Synopsis() string

	base() *ArgSpec
}

// ArgSpec holds the attributes options and positional parameters share.
type ArgSpec struct {
	Description string
	// Type is the declared value type. Slice types accumulate one element
	// per fragment, map types consume "key=value" fragments. Defaults to
	// bool for options and string for positional parameters.
	Type reflect.Type
	// Arity bounds how many detached value tokens one occurrence consumes.
	// Defaults to 0 for bool options (a flag) and 1 for everything else.
	Arity    types.Range
	Required bool
	// DefaultValue applies when the argument never appears, FallbackValue
	// when it appears without a value. Empty means unset.
	DefaultValue  string
	FallbackValue string
	// SplitPattern splits each raw value token into several fragments.
	SplitPattern *regexp.Regexp
	// Interactive arguments never consume detached value tokens; the
	// surrounding application prompts for the value instead.
	Interactive bool
	// Converter overrides registry lookup for this argument.
	Converter ValueConverter
	Binding   Binding

	id        string
	aritySet  bool
	configErr error

	// derived from Type when the argument is registered
	elemType reflect.Type
	keyType  reflect.Type
}

func (a *ArgSpec) ID() string { return a.id }

func (a *ArgSpec) base() *ArgSpec { return a }

func (a *ArgSpec) apply(target Arg, configs []ConfigureArgumentFunc) {
	var err error
	for _, config := range configs {
		config(target, &err)
		if err != nil {
			a.configErr = err
			return
		}
	}
}

// OptionSpec is a named argument. The name given to NewOption is the primary
// name; WithAlias adds alternatives. Names carry no prefix.
type OptionSpec struct {
	ArgSpec
	Names []string
	// Negatable bool options additionally match under a "no-" prefix,
	// inverting the value.
	Negatable bool
	// Inherited options are matched by the subcommands below their command.
	Inherited bool
}

// NewOption returns an option with the given primary name. Without further
// configuration the option is a bool flag. Configuration errors surface when
// the option is added to a command.
func NewOption(name string, configs ...ConfigureArgumentFunc) *OptionSpec {
	option := &OptionSpec{
		ArgSpec: ArgSpec{id: uuid.NewString(), Type: reflect.TypeOf(true)},
		Names:   []string{name},
	}
	option.apply(option, configs)
	return option
}

// Synopsis renders the primary name with the conventional prefix.
func (o *OptionSpec) Synopsis() string {
	if len(o.Names) == 0 || o.Names[0] == "" {
		return "--"
	}
	name := o.Names[0]
	if utf8.RuneCountInString(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// PositionalSpec is an argument matched by operand position instead of by
// name. Index bounds the operand slots it covers; when no index is given the
// parameter claims the next free slot after the previously declared one.
type PositionalSpec struct {
	ArgSpec
	Name  string
	Index types.Range

	indexSet bool
}

// NewPositional returns a positional parameter with the given display name.
// Without further configuration it captures one string. Configuration errors
// surface when the parameter is added to a command.
func NewPositional(name string, configs ...ConfigureArgumentFunc) *PositionalSpec {
	positional := &PositionalSpec{
		ArgSpec: ArgSpec{id: uuid.NewString(), Type: reflect.TypeOf("")},
		Name:    name,
	}
	positional.apply(positional, configs)
	return positional
}

func (p *PositionalSpec) Synopsis() string {
	return "<" + p.Name + ">"
}

// primaryName is what MatchedArg.Name reports regardless of which alias or
// abbreviation matched.
func primaryName(arg Arg) string {
	switch a := arg.(type) {
	case *OptionSpec:
		if len(a.Names) > 0 {
			return a.Names[0]
		}
		return ""
	case *PositionalSpec:
		return a.Name
	default:
		return ""
	}
}
