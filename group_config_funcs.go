package clip

import (
	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/parse"
	"github.com/remkop/clip/types"
)

// WithGroupMembers adds arguments as direct members. Members are registered
// on the command automatically when the group is added.
func WithGroupMembers(members ...Arg) ConfigureGroupFunc {
	return func(group *ArgGroupSpec, err *error) {
		group.members = append(group.members, members...)
	}
}

// WithSubgroups nests groups; a nested group participates in its parent's
// occurrences as a single unit.
func WithSubgroups(subgroups ...*ArgGroupSpec) ConfigureGroupFunc {
	return func(group *ArgGroupSpec, err *error) {
		group.subgroups = append(group.subgroups, subgroups...)
	}
}

// SetExclusive when true, at most one member may appear per occurrence.
func SetExclusive(exclusive bool) ConfigureGroupFunc {
	return func(group *ArgGroupSpec, err *error) {
		group.Exclusive = exclusive
	}
}

// WithMultiplicity bounds how often the whole group may occur.
func WithMultiplicity(multiplicity types.Range) ConfigureGroupFunc {
	return func(group *ArgGroupSpec, err *error) {
		if !multiplicity.Valid() {
			*err = errs.ErrInvalidRange.WithArgs(multiplicity.String())
			return
		}
		group.Multiplicity = multiplicity
	}
}

// WithMultiplicityString parses multiplicity from its declaration form:
// "1", "0..2", "1..*".
func WithMultiplicityString(multiplicity string) ConfigureGroupFunc {
	return func(group *ArgGroupSpec, err *error) {
		r, e := parse.Range(multiplicity)
		if e != nil {
			*err = e
			return
		}
		group.Multiplicity = r
	}
}

// SetGroupValidation off turns the group into display-only structure.
func SetGroupValidation(validate bool) ConfigureGroupFunc {
	return func(group *ArgGroupSpec, err *error) {
		group.Validate = validate
	}
}

// WithGroupBinding receives the occurrence records; see ArgGroupSpec.Binding.
func WithGroupBinding(binding Binding) ConfigureGroupFunc {
	return func(group *ArgGroupSpec, err *error) {
		group.Binding = binding
	}
}
