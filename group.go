package clip

import (
	"strings"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/types"
	"github.com/remkop/clip/types/queue"
)

// ArgGroupSpec constrains a set of arguments and nested groups: exclusive
// groups allow one member per occurrence, dependent groups require every
// required member once any member appears. Multiplicity bounds how often the
// whole group may occur.
type ArgGroupSpec struct {
	// Exclusive groups reject a second member the moment it matches.
	Exclusive bool
	// Multiplicity bounds the number of group occurrences, 0..1 by default.
	Multiplicity types.Range
	// Validate off turns the group into display-only structure: members are
	// enforced individually, as if ungrouped.
	Validate bool
	// Binding receives the accumulated occurrence records, one
	// map[string]any per occurrence keyed by member name, on every
	// completed occurrence.
	Binding Binding

	members   []Arg
	subgroups []*ArgGroupSpec
	configErr error
}

// NewGroup returns a validating group with multiplicity 0..1. Configuration
// errors surface when the group is added to a command.
func NewGroup(configs ...ConfigureGroupFunc) *ArgGroupSpec {
	group := &ArgGroupSpec{
		Multiplicity: types.Range{Min: 0, Max: 1},
		Validate:     true,
	}
	var err error
	for _, config := range configs {
		config(group, &err)
		if err != nil {
			group.configErr = err
			break
		}
	}
	return group
}

// Members lists the direct argument members in declaration order.
func (g *ArgGroupSpec) Members() []Arg {
	return g.members
}

// Subgroups lists the nested groups in declaration order.
func (g *ArgGroupSpec) Subgroups() []*ArgGroupSpec {
	return g.subgroups
}

// Synopsis renders the group the way diagnostics refer to it: members
// separated by "|" when exclusive, parenthesized when an occurrence is
// required, bracketed otherwise.
func (g *ArgGroupSpec) Synopsis() string {
	parts := make([]string, 0, len(g.members)+len(g.subgroups))
	for _, member := range g.members {
		parts = append(parts, member.Synopsis())
	}
	for _, subgroup := range g.subgroups {
		parts = append(parts, subgroup.Synopsis())
	}
	separator := " "
	if g.Exclusive {
		separator = " | "
	}
	joined := strings.Join(parts, separator)
	if g.Multiplicity.Min == 0 {
		return "[" + joined + "]"
	}
	return "(" + joined + ")"
}

// requiredElements lists what every occurrence must contain: required
// argument members and subgroups whose own multiplicity demands at least one
// occurrence.
func (g *ArgGroupSpec) requiredElements() []groupElement {
	var required []groupElement
	for _, member := range g.members {
		if member.base().Required {
			required = append(required, groupElement{id: member.ID(), synopsis: member.Synopsis()})
		}
	}
	for _, subgroup := range g.subgroups {
		if subgroup.Multiplicity.Min > 0 {
			required = append(required, groupElement{id: subgroup.unitID(), synopsis: subgroup.Synopsis()})
		}
	}
	return required
}

// unitID identifies a subgroup when it participates in its parent's
// occurrence as a single unit.
func (g *ArgGroupSpec) unitID() string {
	return g.Synopsis()
}

// groupElement is one participant of a group occurrence: a direct argument
// member or a nested group acting as a unit.
type groupElement struct {
	id       string
	synopsis string
}

// groupTracker accumulates occurrences of one group during a single parse.
// An occurrence closes when a member repeats or the level finishes.
type groupTracker struct {
	group   *ArgGroupSpec
	parent  *groupTracker
	seen    map[string]bool  // element ids in the current occurrence
	first   groupElement     // first element of the current occurrence
	current map[string][]any // member name -> values, current occurrence
	order   []string         // member names in encounter order
	records *queue.Q[map[string]any]
}

func newGroupTracker(group *ArgGroupSpec, parent *groupTracker) *groupTracker {
	return &groupTracker{
		group:   group,
		parent:  parent,
		seen:    make(map[string]bool),
		current: make(map[string][]any),
		records: queue.New[map[string]any](),
	}
}

// occurrences materializes the closed occurrence records, one value set per
// group occurrence, in command-line order.
func (t *groupTracker) occurrences() []map[string]any {
	out := make([]map[string]any, 0, t.records.Len())
	t.records.ForEach(func(record map[string]any, _ int) bool {
		out = append(out, record)
		return true
	})
	return out
}

// matchArg records a direct member match with its converted value.
func (t *groupTracker) matchArg(arg Arg, value any) error {
	return t.match(groupElement{id: arg.ID(), synopsis: arg.Synopsis()}, primaryName(arg), value)
}

// matchUnit records a nested group starting a new occurrence of its own.
func (t *groupTracker) matchUnit(subgroup *ArgGroupSpec) error {
	return t.match(groupElement{id: subgroup.unitID(), synopsis: subgroup.Synopsis()}, "", nil)
}

func (t *groupTracker) match(element groupElement, name string, value any) error {
	opening := len(t.seen) == 0
	if t.seen[element.id] {
		if err := t.closeOccurrence(); err != nil {
			return err
		}
		opening = true
	} else if t.group.Exclusive && len(t.seen) > 0 {
		return errs.ErrMutuallyExclusive.WithArgs(t.first.synopsis, element.synopsis, t.group.Synopsis())
	}
	if len(t.seen) == 0 {
		t.first = element
	}
	t.seen[element.id] = true
	if name != "" {
		if _, exists := t.current[name]; !exists {
			t.order = append(t.order, name)
		}
		t.current[name] = append(t.current[name], value)
	}
	if opening && t.parent != nil {
		return t.parent.matchUnit(t.group)
	}
	return nil
}

// closeOccurrence validates and records the occurrence in flight.
func (t *groupTracker) closeOccurrence() error {
	if len(t.seen) == 0 {
		return nil
	}
	if !t.group.Exclusive {
		var missing []string
		for _, element := range t.group.requiredElements() {
			if !t.seen[element.id] {
				missing = append(missing, element.synopsis)
			}
		}
		if len(missing) > 0 {
			return errs.ErrMissingGroupMembers.WithArgs(t.group.Synopsis(), quoteJoin(missing))
		}
	}
	record := make(map[string]any, len(t.current))
	for _, name := range t.order {
		values := t.current[name]
		if len(values) == 1 {
			record[name] = values[0]
		} else {
			record[name] = append([]any(nil), values...)
		}
	}
	t.records.Push(record)
	t.seen = make(map[string]bool)
	t.current = make(map[string][]any)
	t.order = nil
	t.first = groupElement{}
	if t.group.Binding != nil {
		if err := t.group.Binding.Set(t.occurrences()); err != nil {
			return errs.ErrBindFailed.WithArgs(t.group.Synopsis()).Wrap(err)
		}
	}
	return nil
}

// finish closes the open occurrence and enforces multiplicity.
func (t *groupTracker) finish() error {
	if err := t.closeOccurrence(); err != nil {
		return err
	}
	occurrences := t.records.Len()
	if occurrences == 0 {
		if t.group.Multiplicity.Min > 0 {
			return errs.ErrMissingRequiredGroup.WithArgs(t.group.Synopsis())
		}
		return nil
	}
	if !t.group.Multiplicity.Contains(occurrences) {
		return errs.ErrGroupMultiplicity.WithArgs(t.group.Synopsis(), t.group.Multiplicity.String(), occurrences)
	}
	return nil
}
