package clip

import (
	"reflect"
	"unicode/utf8"

	"github.com/ef-ds/deque"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/i18n"
	"github.com/remkop/clip/types"
	"github.com/remkop/clip/types/orderedmap"
)

// CommandSpec is one command's full grammar: its options, positional
// parameters, argument groups, subcommands and parser configuration. A spec
// is built once and is read-only during parsing; repeated parses of the same
// spec are only safe from one goroutine at a time because value bindings
// write into shared slots.
type CommandSpec struct {
	Name        string
	Aliases     []string
	Description string

	config     ParserConfig
	configured bool
	converters *ConverterRegistry

	parent      *CommandSpec
	options     []*OptionSpec
	positionals []*PositionalSpec
	groups      []*ArgGroupSpec
	subcommands []*CommandSpec

	optionsByName *orderedmap.OrderedMap[string, *OptionSpec]
	subsByName    *orderedmap.OrderedMap[string, *CommandSpec]
	argByID       map[string]Arg
	semantics     map[string]*valueSemantics
	groupOf       map[string]*ArgGroupSpec
	groupParent   map[*ArgGroupSpec]*ArgGroupSpec
	groupSeen     map[*ArgGroupSpec]bool

	initialized bool
	validated   bool
}

func (s *CommandSpec) ensureInit() {
	if s.initialized {
		return
	}
	s.config = defaultParserConfig()
	s.optionsByName = orderedmap.New[string, *OptionSpec]()
	s.subsByName = orderedmap.New[string, *CommandSpec]()
	s.argByID = make(map[string]Arg)
	s.semantics = make(map[string]*valueSemantics)
	s.groupOf = make(map[string]*ArgGroupSpec)
	s.groupParent = make(map[*ArgGroupSpec]*ArgGroupSpec)
	s.groupSeen = make(map[*ArgGroupSpec]bool)
	s.initialized = true
}

// AddOption registers an option. Both spellings of a name count as the same
// name: "someOpt" and "some-opt" collide.
func (s *CommandSpec) AddOption(option *OptionSpec) error {
	s.ensureInit()
	if option.configErr != nil {
		return option.configErr
	}
	if len(option.Names) == 0 {
		return errs.ErrEmptyName
	}
	for _, name := range option.Names {
		if name == "" {
			return errs.ErrEmptyName
		}
	}
	if option.Type == nil {
		option.Type = reflect.TypeOf(true)
	}
	if !option.aritySet {
		if option.Type.Kind() == reflect.Bool {
			option.Arity = types.Exactly(0)
		} else {
			option.Arity = types.Exactly(1)
		}
	}
	if option.Negatable && option.Type.Kind() != reflect.Bool {
		return errs.ErrInvalidAttribute.WithArgs("negatable", option.Synopsis())
	}
	semantics, err := s.semanticsFor(&option.ArgSpec)
	if err != nil {
		return err
	}
	for _, name := range option.Names {
		if _, exists := s.optionsByName.Get(canonicalName(name)); exists {
			return errs.ErrDuplicateOption.WithArgs(name)
		}
	}
	for _, name := range option.Names {
		s.optionsByName.Set(canonicalName(name), option)
	}
	s.options = append(s.options, option)
	s.argByID[option.ID()] = option
	s.semantics[option.ID()] = semantics
	s.validated = false
	return nil
}

// AddPositional registers a positional parameter. Parameters without an
// explicit index claim the slot after the previously declared parameter.
func (s *CommandSpec) AddPositional(positional *PositionalSpec) error {
	s.ensureInit()
	if positional.configErr != nil {
		return positional.configErr
	}
	if positional.Name == "" {
		return errs.ErrEmptyName
	}
	if positional.Type == nil {
		positional.Type = reflect.TypeOf("")
	}
	if !positional.indexSet {
		next := s.nextFreeIndex()
		switch positional.Type.Kind() {
		case reflect.Slice, reflect.Map:
			// A container positional spans every operand position from its
			// slot on; its arity bounds how many it takes.
			positional.Index = types.Range{Min: next, Max: types.Unbounded}
		default:
			positional.Index = types.Exactly(next)
		}
		positional.indexSet = true
	}
	if !positional.Index.Valid() {
		return errs.ErrInvalidRange.WithArgs(positional.Index.String())
	}
	if !positional.aritySet {
		switch positional.Type.Kind() {
		case reflect.Slice, reflect.Map:
			positional.Arity = types.Range{Min: 1, Max: types.Unbounded}
		default:
			positional.Arity = types.Exactly(1)
		}
		positional.aritySet = true
	}
	semantics, err := s.semanticsFor(&positional.ArgSpec)
	if err != nil {
		return err
	}
	canonical := canonicalName(positional.Name)
	for _, existing := range s.positionals {
		if canonicalName(existing.Name) == canonical {
			return errs.ErrDuplicatePositional.WithArgs(positional.Name)
		}
	}
	s.positionals = append(s.positionals, positional)
	s.argByID[positional.ID()] = positional
	s.semantics[positional.ID()] = semantics
	s.validated = false
	return nil
}

func (s *CommandSpec) nextFreeIndex() int {
	next := 0
	for _, positional := range s.positionals {
		last := positional.Index.Max
		if positional.Index.Variable() {
			last = positional.Index.Min
		}
		if last+1 > next {
			next = last + 1
		}
	}
	return next
}

// AddGroup registers a group and auto-registers members that are not yet on
// the command. Nested groups are registered recursively; an argument may
// belong to at most one validating group.
func (s *CommandSpec) AddGroup(group *ArgGroupSpec) error {
	s.ensureInit()
	if group.configErr != nil {
		return group.configErr
	}
	if err := s.registerGroup(group, nil); err != nil {
		return err
	}
	s.groups = append(s.groups, group)
	s.validated = false
	return nil
}

func (s *CommandSpec) registerGroup(group *ArgGroupSpec, parent *ArgGroupSpec) error {
	if len(group.members) == 0 && len(group.subgroups) == 0 {
		return errs.ErrEmptyGroup.WithArgs(group.Synopsis())
	}
	if !group.Multiplicity.Valid() {
		return errs.ErrInvalidRange.WithArgs(group.Multiplicity.String())
	}
	if s.groupSeen[group] {
		owner := s.groupParent[group]
		synopsis := group.Synopsis()
		if owner != nil {
			synopsis = owner.Synopsis()
		}
		return errs.ErrGroupMemberOwned.WithArgs(group.Synopsis(), synopsis)
	}
	s.groupSeen[group] = true
	if parent != nil {
		s.groupParent[group] = parent
	}
	for _, member := range group.members {
		if _, known := s.argByID[member.ID()]; !known {
			var err error
			switch arg := member.(type) {
			case *OptionSpec:
				err = s.AddOption(arg)
			case *PositionalSpec:
				err = s.AddPositional(arg)
			}
			if err != nil {
				return err
			}
		}
		if !group.Validate {
			continue
		}
		if owner, owned := s.groupOf[member.ID()]; owned && owner != group {
			return errs.ErrGroupMemberOwned.WithArgs(member.Synopsis(), owner.Synopsis())
		}
		s.groupOf[member.ID()] = group
	}
	for _, subgroup := range group.subgroups {
		if subgroup.configErr != nil {
			return subgroup.configErr
		}
		nestedParent := parent
		if group.Validate {
			nestedParent = group
		}
		if err := s.registerGroup(subgroup, nestedParent); err != nil {
			return err
		}
	}
	return nil
}

// AddSubcommand attaches a child command. The child adopts this command's
// parser configuration unless it was configured itself; adoption cascades to
// its own unconfigured children.
func (s *CommandSpec) AddSubcommand(child *CommandSpec) error {
	s.ensureInit()
	child.ensureInit()
	if child.Name == "" {
		return errs.ErrEmptyName
	}
	if child.parent != nil {
		return errs.ErrDuplicateSubcommand.WithArgs(child.Name)
	}
	for ancestor := s; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return errs.ErrDuplicateSubcommand.WithArgs(child.Name)
		}
	}
	names := append([]string{child.Name}, child.Aliases...)
	for _, name := range names {
		if _, exists := s.subsByName.Get(canonicalName(name)); exists {
			return errs.ErrDuplicateSubcommand.WithArgs(name)
		}
	}
	for _, name := range names {
		s.subsByName.Set(canonicalName(name), child)
	}
	child.parent = s
	child.adoptConfig(s.config)
	s.subcommands = append(s.subcommands, child)
	s.validated = false
	return nil
}

func (s *CommandSpec) adoptConfig(config ParserConfig) {
	if s.configured {
		return
	}
	s.config = config
	for _, child := range s.subcommands {
		child.adoptConfig(config)
	}
}

// FindOption looks a name up among this command's options and the inherited
// options of its ancestors. Both spellings of a name match.
func (s *CommandSpec) FindOption(name string) (*OptionSpec, bool) {
	s.ensureInit()
	canonical := canonicalName(name)
	for cmd, inherited := s, false; cmd != nil; cmd = cmd.parent {
		if cmd.initialized {
			if option, found := cmd.optionsByName.Get(canonical); found {
				if !inherited || option.Inherited {
					return option, true
				}
			}
		}
		inherited = true
	}
	return nil, false
}

// FindPositional returns the parameter covering the given operand index.
func (s *CommandSpec) FindPositional(index int) (*PositionalSpec, bool) {
	var (
		best  *PositionalSpec
		found bool
	)
	for _, positional := range s.positionals {
		if !positional.Index.Contains(index) {
			continue
		}
		if !found || positional.Index.Min < best.Index.Min {
			best, found = positional, true
		}
	}
	return best, found
}

// FindSubcommand resolves a token to a direct subcommand by name or alias.
func (s *CommandSpec) FindSubcommand(token string) (*CommandSpec, bool) {
	s.ensureInit()
	child, found := s.subsByName.Get(canonicalName(token))
	return child, found
}

// Options lists the declared options in declaration order.
func (s *CommandSpec) Options() []*OptionSpec { return s.options }

// Positionals lists the declared positional parameters in declaration order.
func (s *CommandSpec) Positionals() []*PositionalSpec { return s.positionals }

// Groups lists the top-level argument groups in declaration order.
func (s *CommandSpec) Groups() []*ArgGroupSpec { return s.groups }

// Subcommands lists the attached child commands in declaration order.
func (s *CommandSpec) Subcommands() []*CommandSpec { return s.subcommands }

// Parent returns the command this one is attached to, nil for a root.
func (s *CommandSpec) Parent() *CommandSpec { return s.parent }

// Config returns the effective parser configuration.
func (s *CommandSpec) Config() ParserConfig {
	s.ensureInit()
	return s.config
}

// Path returns the space-joined ancestry, "root sub subsub", for
// diagnostics.
func (s *CommandSpec) Path() string {
	if s.parent == nil {
		return s.Name
	}
	return s.parent.Path() + " " + s.Name
}

// Walk traverses the command tree breadth-first. Return false from fn to
// stop early.
func (s *CommandSpec) Walk(fn func(*CommandSpec) bool) {
	pending := deque.New()
	pending.PushBack(s)
	for pending.Len() > 0 {
		front, _ := pending.PopFront()
		cmd := front.(*CommandSpec)
		if !fn(cmd) {
			return
		}
		for _, child := range cmd.subcommands {
			pending.PushBack(child)
		}
	}
}

// Validate re-resolves converter semantics for every argument in the tree
// and checks positional index coverage. Parse runs it lazily on first use;
// callers may run it explicitly after mutating converter registries.
func (s *CommandSpec) Validate() error {
	s.ensureInit()
	var firstErr error
	s.Walk(func(cmd *CommandSpec) bool {
		if err := cmd.validateLevel(); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	if firstErr == nil {
		s.validated = true
	}
	return firstErr
}

func (s *CommandSpec) validateLevel() error {
	s.ensureInit()
	for _, option := range s.options {
		semantics, err := s.semanticsFor(&option.ArgSpec)
		if err != nil {
			return err
		}
		s.semantics[option.ID()] = semantics
		if option.Negatable && option.Type.Kind() != reflect.Bool {
			return errs.ErrInvalidAttribute.WithArgs("negatable", option.Synopsis())
		}
	}
	for _, positional := range s.positionals {
		semantics, err := s.semanticsFor(&positional.ArgSpec)
		if err != nil {
			return err
		}
		s.semantics[positional.ID()] = semantics
	}
	return s.validateIndexCoverage()
}

// validateIndexCoverage rejects a grammar where a required parameter sits at
// an index that can never be reached because a lower slot is uncovered.
func (s *CommandSpec) validateIndexCoverage() error {
	for _, positional := range s.positionals {
		if !positional.Required {
			continue
		}
		for index := 0; index < positional.Index.Min; index++ {
			if _, covered := s.FindPositional(index); !covered {
				return errs.ErrPositionalGap.WithArgs(index, positional.Synopsis())
			}
		}
	}
	return nil
}

func (s *CommandSpec) ensureValidated() error {
	if s.validated {
		return nil
	}
	return s.Validate()
}

// ConsistencyWarnings reports suspicious but legal declarations across the
// command tree: a required option carrying a default value (the default can
// never apply), and interactive options declared with a consuming arity.
func (s *CommandSpec) ConsistencyWarnings() []string {
	var warnings []string
	bundle := i18n.Default()
	s.Walk(func(cmd *CommandSpec) bool {
		for _, option := range cmd.options {
			if option.Required && option.DefaultValue != "" {
				warnings = append(warnings, bundle.T(errs.WarnRequiredWithDefaultKey, option.Synopsis()))
			}
			if option.Interactive && option.Arity.Max != 0 {
				warnings = append(warnings, bundle.T(errs.WarnInteractiveValueKey, option.Synopsis()))
			}
		}
		return true
	})
	return warnings
}

// matchRules derives the matcher behavior from the parser configuration.
func (s *CommandSpec) matchRules() matchRules {
	return matchRules{
		abbreviations:   s.config.Abbreviations,
		caseInsensitive: s.config.CaseInsensitive,
	}
}

// optionCandidates lists every option name visible at this level: own
// options first, then inherited ancestor options whose names are not
// shadowed.
func (s *CommandSpec) optionCandidates() []candidate[*OptionSpec] {
	var result []candidate[*OptionSpec]
	claimed := make(map[string]bool)
	inherited := false
	for cmd := s; cmd != nil; cmd = cmd.parent {
		for _, option := range cmd.options {
			if inherited && !option.Inherited {
				continue
			}
			for _, name := range option.Names {
				canonical := canonicalName(name)
				if claimed[canonical] {
					continue
				}
				claimed[canonical] = true
				result = append(result, candidate[*OptionSpec]{name: name, id: option.ID(), value: option})
			}
		}
		inherited = true
	}
	return result
}

// subcommandCandidates lists each child once per name and alias.
func (s *CommandSpec) subcommandCandidates() []candidate[*CommandSpec] {
	var result []candidate[*CommandSpec]
	for _, child := range s.subcommands {
		id := canonicalName(child.Name)
		result = append(result, candidate[*CommandSpec]{name: child.Name, id: id, value: child})
		for _, alias := range child.Aliases {
			result = append(result, candidate[*CommandSpec]{name: alias, id: id, value: child})
		}
	}
	return result
}

// visibleOptionNames renders the option names at this level in declaration
// order, prefixed the way a user would type them. Suggestion lists use it.
func (s *CommandSpec) visibleOptionNames() []string {
	short := "-"
	if len(s.config.Prefixes) > 0 {
		short = string(s.config.Prefixes[0])
	}
	var names []string
	for _, c := range s.optionCandidates() {
		if utf8.RuneCountInString(c.name) == 1 {
			names = append(names, short+c.name)
		} else {
			names = append(names, s.config.LongPrefix+c.name)
		}
	}
	return names
}

func (s *CommandSpec) subcommandNames() []string {
	var names []string
	for _, child := range s.subcommands {
		names = append(names, child.Name)
		names = append(names, child.Aliases...)
	}
	return names
}
