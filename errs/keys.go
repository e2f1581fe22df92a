// Package errs declares the sentinel errors the library reports. Every
// sentinel is a translatable error keyed into the i18n message catalogs;
// callers compare with errors.Is and read context through clip.ParseError.
package errs

// Prefix for all clip message keys
const (
	PrefixKey = "clip"
)

const (
	ErrorPrefixKey   = PrefixKey + ".error"
	ParseErrorKey    = ErrorPrefixKey + ".parse"
	WarningPrefixKey = PrefixKey + ".warning"
)

// Model-build errors are raised while a command grammar is constructed,
// never during parsing.
const (
	ErrDuplicateOptionKey     = ErrorPrefixKey + ".duplicate_option"
	ErrDuplicatePositionalKey = ErrorPrefixKey + ".duplicate_positional"
	ErrDuplicateSubcommandKey = ErrorPrefixKey + ".duplicate_subcommand"
	ErrEmptyNameKey           = ErrorPrefixKey + ".empty_name"
	ErrEmptyGroupKey          = ErrorPrefixKey + ".empty_group"
	ErrUnsupportedTypeKey     = ErrorPrefixKey + ".unsupported_type"
	ErrInvalidRangeKey        = ErrorPrefixKey + ".invalid_range"
	ErrPositionalGapKey       = ErrorPrefixKey + ".positional_gap"
	ErrInvalidAttributeKey    = ErrorPrefixKey + ".invalid_attribute"
	ErrNilBindingKey          = ErrorPrefixKey + ".nil_binding"
	ErrGroupMemberOwnedKey    = ErrorPrefixKey + ".group_member_owned"
)

// Parse-time errors carry the offending token and its position through
// clip.ParseError.
const (
	ErrUnknownOptionKey            = ErrorPrefixKey + ".unknown_option"
	ErrUnknownOptionSuggestionsKey = ErrorPrefixKey + ".unknown_option_suggestions"
	ErrAmbiguousNameKey            = ErrorPrefixKey + ".ambiguous_name"
	ErrMissingValueKey             = ErrorPrefixKey + ".missing_value"
	ErrTooFewValuesKey             = ErrorPrefixKey + ".too_few_values"
	ErrTooManyValuesKey            = ErrorPrefixKey + ".too_many_values"
	ErrMissingRequiredKey          = ErrorPrefixKey + ".missing_required"
	ErrMissingRequiredGroupKey     = ErrorPrefixKey + ".missing_required_group"
	ErrMissingGroupMembersKey      = ErrorPrefixKey + ".missing_group_members"
	ErrMutuallyExclusiveKey        = ErrorPrefixKey + ".mutually_exclusive"
	ErrGroupMultiplicityKey        = ErrorPrefixKey + ".group_multiplicity"
	ErrConversionFailedKey         = ErrorPrefixKey + ".conversion"
	ErrBindFailedKey               = ErrorPrefixKey + ".bind_failed"
	ErrUnmatchedTokenKey           = ErrorPrefixKey + ".unmatched_token"
	ErrUnknownSubcommandKey        = ErrorPrefixKey + ".unknown_subcommand"
)

// Pre-parse collaborator errors (interactive input, response files).
const (
	ErrNoTerminalKey        = ErrorPrefixKey + ".no_terminal"
	ErrEmptyInputKey        = ErrorPrefixKey + ".empty_input"
	ErrResponseFileKey      = ErrorPrefixKey + ".response_file"
	ErrResponseFileDepthKey = ErrorPrefixKey + ".response_file_depth"
)

// Conversion detail errors wrap into ErrConversionFailed.
const (
	ErrParseBoolKey     = ParseErrorKey + ".bool"
	ErrParseIntKey      = ParseErrorKey + ".int"
	ErrParseUintKey     = ParseErrorKey + ".uint"
	ErrParseFloatKey    = ParseErrorKey + ".float"
	ErrParseComplexKey  = ParseErrorKey + ".complex"
	ErrParseDurationKey = ParseErrorKey + ".duration"
	ErrParseTimeKey     = ParseErrorKey + ".time"
	ErrParseUUIDKey     = ParseErrorKey + ".uuid"
	ErrParseRegexpKey   = ParseErrorKey + ".regexp"
	ErrParseIPKey       = ParseErrorKey + ".ip"
	ErrParseURLKey      = ParseErrorKey + ".url"
	ErrParseOverflowKey = ParseErrorKey + ".overflow"
	ErrParseMapEntryKey = ParseErrorKey + ".map_entry"
)

// Warning keys render through the trace writer, never as errors.
const (
	WarnScalarOverwrittenKey   = WarningPrefixKey + ".scalar_overwritten"
	WarnRequiredWithDefaultKey = WarningPrefixKey + ".required_with_default"
	WarnInteractiveValueKey    = WarningPrefixKey + ".interactive_value"
)
