package errs

import (
	"sync"

	"github.com/remkop/clip/i18n"
)

// Model-build errors
var (
	ErrDuplicateOption     = i18n.NewError(ErrDuplicateOptionKey)
	ErrDuplicatePositional = i18n.NewError(ErrDuplicatePositionalKey)
	ErrDuplicateSubcommand = i18n.NewError(ErrDuplicateSubcommandKey)
	ErrEmptyName           = i18n.NewError(ErrEmptyNameKey)
	ErrEmptyGroup          = i18n.NewError(ErrEmptyGroupKey)
	ErrUnsupportedType     = i18n.NewError(ErrUnsupportedTypeKey)
	ErrInvalidRange        = i18n.NewError(ErrInvalidRangeKey)
	ErrPositionalGap       = i18n.NewError(ErrPositionalGapKey)
	ErrInvalidAttribute    = i18n.NewError(ErrInvalidAttributeKey)
	ErrNilBinding          = i18n.NewError(ErrNilBindingKey)
	ErrGroupMemberOwned    = i18n.NewError(ErrGroupMemberOwnedKey)
)

// Parse-time errors
var (
	ErrUnknownOption            = i18n.NewError(ErrUnknownOptionKey)
	ErrUnknownOptionSuggestions = i18n.NewError(ErrUnknownOptionSuggestionsKey)
	ErrAmbiguousName            = i18n.NewError(ErrAmbiguousNameKey)
	ErrMissingValue             = i18n.NewError(ErrMissingValueKey)
	ErrTooFewValues             = i18n.NewError(ErrTooFewValuesKey)
	ErrTooManyValues            = i18n.NewError(ErrTooManyValuesKey)
	ErrMissingRequired          = i18n.NewError(ErrMissingRequiredKey)
	ErrMissingRequiredGroup     = i18n.NewError(ErrMissingRequiredGroupKey)
	ErrMissingGroupMembers      = i18n.NewError(ErrMissingGroupMembersKey)
	ErrMutuallyExclusive        = i18n.NewError(ErrMutuallyExclusiveKey)
	ErrGroupMultiplicity        = i18n.NewError(ErrGroupMultiplicityKey)
	ErrConversionFailed         = i18n.NewError(ErrConversionFailedKey)
	ErrBindFailed               = i18n.NewError(ErrBindFailedKey)
	ErrUnmatchedToken           = i18n.NewError(ErrUnmatchedTokenKey)
	ErrUnknownSubcommand        = i18n.NewError(ErrUnknownSubcommandKey)
)

// Pre-parse collaborator errors
var (
	ErrNoTerminal        = i18n.NewError(ErrNoTerminalKey)
	ErrEmptyInput        = i18n.NewError(ErrEmptyInputKey)
	ErrResponseFile      = i18n.NewError(ErrResponseFileKey)
	ErrResponseFileDepth = i18n.NewError(ErrResponseFileDepthKey)
)

// Conversion detail errors
var (
	ErrParseBool     = i18n.NewError(ErrParseBoolKey)
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseUint     = i18n.NewError(ErrParseUintKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseComplex  = i18n.NewError(ErrParseComplexKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
	ErrParseUUID     = i18n.NewError(ErrParseUUIDKey)
	ErrParseRegexp   = i18n.NewError(ErrParseRegexpKey)
	ErrParseIP       = i18n.NewError(ErrParseIPKey)
	ErrParseURL      = i18n.NewError(ErrParseURLKey)
	ErrParseOverflow = i18n.NewError(ErrParseOverflowKey)
	ErrParseMapEntry = i18n.NewError(ErrParseMapEntryKey)
)

type systemErrors struct {
	mu  sync.Mutex
	All []*i18n.TrError
}

var sysErrors = systemErrors{
	All: []*i18n.TrError{
		ErrDuplicateOption,
		ErrDuplicatePositional,
		ErrDuplicateSubcommand,
		ErrEmptyName,
		ErrEmptyGroup,
		ErrUnsupportedType,
		ErrInvalidRange,
		ErrPositionalGap,
		ErrInvalidAttribute,
		ErrNilBinding,
		ErrGroupMemberOwned,
		ErrUnknownOption,
		ErrUnknownOptionSuggestions,
		ErrAmbiguousName,
		ErrMissingValue,
		ErrTooFewValues,
		ErrTooManyValues,
		ErrMissingRequired,
		ErrMissingRequiredGroup,
		ErrMissingGroupMembers,
		ErrMutuallyExclusive,
		ErrGroupMultiplicity,
		ErrConversionFailed,
		ErrBindFailed,
		ErrUnmatchedToken,
		ErrUnknownSubcommand,
		ErrNoTerminal,
		ErrEmptyInput,
		ErrResponseFile,
		ErrResponseFileDepth,
		ErrParseBool,
		ErrParseInt,
		ErrParseUint,
		ErrParseFloat,
		ErrParseComplex,
		ErrParseDuration,
		ErrParseTime,
		ErrParseUUID,
		ErrParseRegexp,
		ErrParseIP,
		ErrParseURL,
		ErrParseOverflow,
		ErrParseMapEntry,
	},
}

// UpdateMessageProvider points every built-in error at provider. Hosts call
// this after building a bundle for another language so diagnostics render in
// that language.
//
//	provider := i18n.NewMessageProvider(bundle, language.German)
//	errs.UpdateMessageProvider(provider)
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
