package clip

import "io"

// WithCommandDescription sets the description for the command. This
// description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.Description = description
	}
}

// WithAliases adds alternative names under which the command is resolved.
func WithAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.Aliases = append(command.Aliases, aliases...)
	}
}

// WithOption is a wrapper for AddOption which is used to define an option.
func WithOption(option *OptionSpec) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		*err = command.AddOption(option)
	}
}

// WithPositional is a wrapper for AddPositional which is used to define a
// positional parameter.
func WithPositional(positional *PositionalSpec) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		*err = command.AddPositional(positional)
	}
}

// WithGroup is a wrapper for AddGroup which is used to define an argument
// group. Group members not yet on the command are registered automatically.
func WithGroup(group *ArgGroupSpec) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		*err = command.AddGroup(group)
	}
}

// WithSubcommands attaches a list of child commands.
func WithSubcommands(subcommands ...*CommandSpec) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		for _, subcommand := range subcommands {
			if *err = command.AddSubcommand(subcommand); *err != nil {
				return
			}
		}
	}
}

// WithPrefixes replaces the runes which introduce an option token.
func WithPrefixes(prefixes ...rune) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.Prefixes = prefixes
		command.configured = true
	}
}

// WithLongPrefix replaces the prefix introducing long option names.
func WithLongPrefix(prefix string) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.LongPrefix = prefix
		command.configured = true
	}
}

// WithSeparator replaces the rune splitting an inline value from the option
// name, "--name=value" by default.
func WithSeparator(separator string) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.Separator = separator
		command.configured = true
	}
}

// WithEndOfOptions replaces the marker after which every token is an
// operand.
func WithEndOfOptions(marker string) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.EndOfOptions = marker
		command.configured = true
	}
}

// WithClustering toggles bundled single-letter options ("-xvf").
func WithClustering(clustering bool) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.Clustering = clustering
		command.configured = true
	}
}

// WithAbbreviations toggles prefix and initialism matching of long names.
func WithAbbreviations(abbreviations bool) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.Abbreviations = abbreviations
		command.configured = true
	}
}

// WithCaseInsensitive toggles case folding for option and subcommand names.
func WithCaseInsensitive(caseInsensitive bool) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.CaseInsensitive = caseInsensitive
		command.configured = true
	}
}

// WithCollectUnmatched stores unknown tokens on the result instead of
// failing the parse.
func WithCollectUnmatched(collect bool) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.CollectUnmatched = collect
		command.configured = true
	}
}

// WithSuggestionThreshold bounds the edit distance for "did you mean"
// candidates. Zero disables suggestions.
func WithSuggestionThreshold(threshold int) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.SuggestionThreshold = threshold
		command.configured = true
	}
}

// WithTrace directs parser diagnostics at the given level to w. A nil
// writer falls back to standard error.
func WithTrace(level TraceLevel, w io.Writer) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.config.TraceLevel = level
		command.config.TraceWriter = w
		command.configured = true
	}
}

// WithConverters attaches a converter registry consulted before the
// ancestors' registries and the built-ins.
func WithConverters(converters *ConverterRegistry) ConfigureCommandFunc {
	return func(command *CommandSpec, err *error) {
		command.converters = converters
	}
}
