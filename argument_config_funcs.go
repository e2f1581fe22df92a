package clip

import (
	"reflect"
	"regexp"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/parse"
	"github.com/remkop/clip/types"
)

// WithDescription sets the text diagnostics and front-ends show for the
// argument.
func WithDescription(description string) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().Description = description
	}
}

// WithType declares the value type. Use the TypeOf helper for readability:
//
//	NewOption("count", WithType(TypeOf[int]()))
func WithType(typeOf reflect.Type) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().Type = typeOf
	}
}

// WithArity bounds how many detached value tokens one occurrence consumes.
func WithArity(arity types.Range) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		if !arity.Valid() {
			*err = errs.ErrInvalidRange.WithArgs(arity.String())
			return
		}
		spec := arg.base()
		spec.Arity = arity
		spec.aritySet = true
	}
}

// WithArityString parses arity from its declaration form: "1", "0..2",
// "1..*".
func WithArityString(arity string) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		r, e := parse.Range(arity)
		if e != nil {
			*err = e
			return
		}
		spec := arg.base()
		spec.Arity = r
		spec.aritySet = true
	}
}

// SetRequired when true, the argument must be supplied on the command line.
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().Required = required
	}
}

// WithDefaultValue applies when the argument never appears on the command
// line. The value passes through the argument's converter.
func WithDefaultValue(defaultValue string) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().DefaultValue = defaultValue
	}
}

// WithFallbackValue applies when the argument appears without a value.
func WithFallbackValue(fallbackValue string) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().FallbackValue = fallbackValue
	}
}

// WithSplitPattern splits every raw value token on the given regular
// expression before conversion, so "--tag=a,b,c" yields three values.
func WithSplitPattern(pattern string) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		re, e := regexp.Compile(pattern)
		if e != nil {
			*err = e
			return
		}
		arg.base().SplitPattern = re
	}
}

// SetInteractive marks the argument as interactively supplied: it never
// consumes detached value tokens and front-ends prompt for the value, for
// example through input.GetSecureString.
func SetInteractive(interactive bool) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().Interactive = interactive
	}
}

// WithConverter overrides registry lookup for this argument.
func WithConverter(converter ValueConverter) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().Converter = converter
	}
}

// WithBinding connects the argument to user storage. See Binding for the
// replace semantics containers follow.
func WithBinding(binding Binding) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		arg.base().Binding = binding
	}
}

// WithAlias adds alternative names for an option. Aliases carry no prefix
// and join abbreviation matching like the primary name does.
func WithAlias(aliases ...string) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		option := optionOnly("alias", arg, err)
		if option == nil {
			return
		}
		option.Names = append(option.Names, aliases...)
	}
}

// SetNegatable lets a bool option also match under a "no-" prefix, inverting
// its value. Only bool options can be negatable.
func SetNegatable(negatable bool) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		option := optionOnly("negatable", arg, err)
		if option == nil {
			return
		}
		option.Negatable = negatable
	}
}

// SetInherited makes the option matchable by every subcommand below the
// command it is declared on.
func SetInherited(inherited bool) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		option := optionOnly("inherited", arg, err)
		if option == nil {
			return
		}
		option.Inherited = inherited
	}
}

// WithIndex assigns the operand slots a positional parameter covers. Without
// it parameters claim slots in declaration order.
func WithIndex(index types.Range) ConfigureArgumentFunc {
	return func(arg Arg, err *error) {
		positional, ok := arg.(*PositionalSpec)
		if !ok {
			*err = errs.ErrInvalidAttribute.WithArgs("index", arg.Synopsis())
			return
		}
		if !index.Valid() {
			*err = errs.ErrInvalidRange.WithArgs(index.String())
			return
		}
		positional.Index = index
		positional.indexSet = true
	}
}

func optionOnly(attribute string, arg Arg, err *error) *OptionSpec {
	option, ok := arg.(*OptionSpec)
	if !ok {
		*err = errs.ErrInvalidAttribute.WithArgs(attribute, arg.Synopsis())
		return nil
	}
	return option
}
