package clip

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/parse"
	"github.com/remkop/clip/types"
	"github.com/remkop/clip/util"
)

// parseContext carries the state one Parse invocation shares across command
// levels: occurrence counts keyed by argument identity (required checks see
// inherited options matched at deeper levels), the group trackers and the
// tracer.
type parseContext struct {
	seen     map[string]int
	trackers map[*ArgGroupSpec]*groupTracker
	tracer   *tracer
}

func (ctx *parseContext) trackerFor(group *ArgGroupSpec, owner *CommandSpec) *groupTracker {
	if tracker, exists := ctx.trackers[group]; exists {
		return tracker
	}
	var parent *groupTracker
	if parentGroup := owner.groupParent[group]; parentGroup != nil {
		parent = ctx.trackerFor(parentGroup, owner)
	}
	tracker := newGroupTracker(group, parent)
	ctx.trackers[group] = tracker
	return tracker
}

// interpreter walks the tokens of one command level through the matching
// state machine.
type interpreter struct {
	ctx    *parseContext
	spec   *CommandSpec
	state  parse.State
	result *ParseResult
	config ParserConfig
	rules  matchRules

	options     []candidate[*OptionSpec]
	subcommands []candidate[*CommandSpec]

	endOfOptions bool
	operandIndex int
	rawConsumed  map[string]int
	accumulators map[string]*containerAccumulator
	childErr     error
}

func parseLevel(ctx *parseContext, spec *CommandSpec, state parse.State, endOfOptions bool) (*ParseResult, error) {
	spec.ensureInit()
	it := &interpreter{
		ctx:          ctx,
		spec:         spec,
		state:        state,
		result:       newParseResult(spec),
		config:       spec.config,
		rules:        spec.matchRules(),
		options:      spec.optionCandidates(),
		subcommands:  spec.subcommandCandidates(),
		rawConsumed:  make(map[string]int),
		accumulators: make(map[string]*containerAccumulator),
		endOfOptions: endOfOptions,
	}
	for state.Advance() {
		token := state.CurrentArg()
		done, err := it.processToken(token)
		if err != nil {
			return it.failed(wrapParseError(spec, state.Pos(), token, err))
		}
		if done {
			break
		}
	}
	if it.childErr != nil {
		it.result.err = it.childErr
		return it.result, it.childErr
	}
	if err := it.finish(); err != nil {
		return it.failed(wrapParseError(spec, -1, "", err))
	}
	return it.result, nil
}

func (it *interpreter) failed(err *ParseError) (*ParseResult, error) {
	it.ctx.tracer.errorf("%s", err)
	it.result.err = err
	return it.result, err
}

func wrapParseError(spec *CommandSpec, position int, token string, err error) *ParseError {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr
	}
	return newParseError(spec, position, token, err)
}

func (it *interpreter) processToken(token string) (bool, error) {
	if !it.endOfOptions && it.config.EndOfOptions != "" && token == it.config.EndOfOptions {
		it.endOfOptions = true
		it.ctx.tracer.debugf("end of options at position %d", it.state.Pos())
		return false, nil
	}
	if !it.endOfOptions && looksLikeOption(token, it.config) {
		return false, it.processOption(token)
	}
	return it.processOperand(token)
}

// looksLikeOption reports whether a token is an option candidate: prefixed,
// longer than its prefix and not a negative number.
func looksLikeOption(token string, config ParserConfig) bool {
	if config.LongPrefix != "" && strings.HasPrefix(token, config.LongPrefix) && len(token) > len(config.LongPrefix) {
		return !util.IsNumeric(token)
	}
	for _, prefix := range config.Prefixes {
		p := string(prefix)
		if strings.HasPrefix(token, p) && len(token) > len(p) {
			return !util.IsNumeric(token)
		}
	}
	return false
}

func (it *interpreter) processOption(token string) error {
	if it.config.LongPrefix != "" && strings.HasPrefix(token, it.config.LongPrefix) {
		return it.processLongOption(token)
	}
	return it.processShortOption(token)
}

func (it *interpreter) processLongOption(token string) error {
	body := token[len(it.config.LongPrefix):]
	name, inline, hasInline := body, "", false
	if it.config.Separator != "" {
		name, inline, hasInline = strings.Cut(body, it.config.Separator)
	}
	option, found, err := resolveName(name, it.options, it.rules)
	if err != nil {
		return err
	}
	if found {
		return it.consumeOption(option, inline, hasInline, false)
	}
	if stripped, isNegation := strings.CutPrefix(name, "no-"); isNegation {
		option, found, err = resolveName(stripped, it.options, it.rules)
		if err != nil {
			return err
		}
		if found && option.Negatable {
			return it.consumeOption(option, inline, hasInline, true)
		}
	}
	return it.unknownOption(token)
}

func (it *interpreter) processShortOption(token string) error {
	prefix := it.matchedPrefix(token)
	body := token[len(prefix):]
	name, inline, hasInline := body, "", false
	if it.config.Separator != "" {
		name, inline, hasInline = strings.Cut(body, it.config.Separator)
	}
	option, found, err := resolveName(name, it.options, it.rules)
	if err != nil {
		return err
	}
	if found {
		return it.consumeOption(option, inline, hasInline, false)
	}
	if it.config.Clustering {
		if expanded, ok := it.expandCluster(name, inline, hasInline, prefix); ok {
			it.ctx.tracer.debugf("expanding cluster %q to %q", token, expanded)
			it.state.InsertArgsAt(it.state.Pos()+1, expanded...)
			return nil
		}
	}
	return it.unknownOption(token)
}

func (it *interpreter) matchedPrefix(token string) string {
	for _, prefix := range it.config.Prefixes {
		if strings.HasPrefix(token, string(prefix)) {
			return string(prefix)
		}
	}
	return it.config.LongPrefix
}

// expandCluster splits "-xvf value" style bundles into one token per
// letter. Every letter must resolve exactly; a letter whose option takes a
// value ends the cluster and the remainder of the token is its attached
// value.
func (it *interpreter) expandCluster(letters, inline string, hasInline bool, prefix string) ([]string, bool) {
	exact := matchRules{caseInsensitive: it.rules.caseInsensitive}
	runes := []rune(letters)
	if len(runes) == 0 {
		return nil, false
	}
	var expanded []string
	for i := 0; i < len(runes); i++ {
		letter := string(runes[i])
		option, found, err := resolveName(letter, it.options, exact)
		if err != nil || !found {
			return nil, false
		}
		if option.Arity.Max != 0 {
			attached := string(runes[i+1:])
			if hasInline {
				// The separator was cut off before expansion; the attached
				// value is everything after the letter, rejoined.
				if attached == "" {
					attached = inline
				} else {
					attached += it.config.Separator + inline
				}
			}
			switch {
			case attached == "":
				expanded = append(expanded, prefix+letter)
			case it.config.Separator == "":
				expanded = append(expanded, prefix+letter, attached)
			default:
				expanded = append(expanded, prefix+letter+it.config.Separator+attached)
			}
			return expanded, true
		}
		expanded = append(expanded, prefix+letter)
	}
	if hasInline && it.config.Separator != "" {
		expanded[len(expanded)-1] += it.config.Separator + inline
	}
	return expanded, true
}

func (it *interpreter) unknownOption(token string) error {
	if it.config.CollectUnmatched {
		it.collectUnmatched(token)
		return nil
	}
	names := suggest(token, it.spec.visibleOptionNames(), it.config.SuggestionThreshold)
	if len(names) > 0 {
		return errs.ErrUnknownOptionSuggestions.WithArgs(token, quoteJoin(names))
	}
	return errs.ErrUnknownOption.WithArgs(token)
}

func (it *interpreter) collectUnmatched(token string) {
	it.ctx.tracer.debugf("collecting unmatched token %q at position %d", token, it.state.Pos())
	it.result.unmatched = append(it.result.unmatched, UnmatchedToken{Token: token, Position: it.state.Pos()})
}

func (it *interpreter) consumeOption(option *OptionSpec, inline string, hasInline, negated bool) error {
	semantics := it.semanticsOf(option)
	match := it.matchFor(option)
	match.Occurrence++
	match.Negated = negated
	it.ctx.seen[option.ID()]++
	if semantics.container == nil && match.Occurrence > 1 {
		it.ctx.tracer.warn(errs.WarnScalarOverwrittenKey, option.Synopsis())
	}

	if option.Interactive {
		if hasInline {
			it.ctx.tracer.warn(errs.WarnInteractiveValueKey, option.Synopsis())
			return it.recordValues(match, option, semantics, []string{inline}, false)
		}
		if option.FallbackValue != "" {
			return it.recordValues(match, option, semantics, []string{option.FallbackValue}, false)
		}
		// The occurrence is recorded without a value; the front-end prompts
		// and feeds the binding itself.
		match.rawGroups = append(match.rawGroups, 0)
		return it.notifyGroup(option, nil)
	}

	if option.Arity.Max == 0 {
		fragment := "true"
		if option.FallbackValue != "" {
			fragment = option.FallbackValue
		}
		if negated {
			fragment = "false"
		}
		invert := false
		if hasInline {
			fragment = inline
			invert = negated
		}
		return it.recordValues(match, option, semantics, []string{fragment}, invert)
	}

	raws := make([]string, 0, 1)
	if hasInline {
		raws = append(raws, inline)
	}
	for option.Arity.CanTake(len(raws)) {
		next, exhausted := it.peek()
		if len(raws) < option.Arity.Min {
			if exhausted || it.isHardBoundary(next) {
				return it.arityError(option, len(raws))
			}
		} else if exhausted || it.isHardBoundary(next) || it.resolvesAsSubcommand(next) {
			break
		}
		it.state.Skip()
		raws = append(raws, it.state.CurrentArg())
	}
	if len(raws) == 0 && option.FallbackValue != "" {
		// Optional value absent: the bare option behaves as if followed by
		// the fallback string.
		raws = append(raws, option.FallbackValue)
	}
	return it.recordValues(match, option, semantics, raws, negated && hasInline)
}

func (it *interpreter) arityError(option *OptionSpec, got int) error {
	if option.Arity.Min == 1 && got == 0 {
		return errs.ErrMissingValue.WithArgs(option.Synopsis())
	}
	return errs.ErrTooFewValues.WithArgs(option.Synopsis(), option.Arity.Min, got)
}

func (it *interpreter) peek() (string, bool) {
	if it.state.Pos()+1 >= it.state.Len() {
		return "", true
	}
	return it.state.Peek(), false
}

// isHardBoundary reports whether the next token must not be consumed as a
// value: the end-of-options marker or a token resolving to a declared
// option. Unknown option-looking tokens are consumed as values.
func (it *interpreter) isHardBoundary(next string) bool {
	if it.config.EndOfOptions != "" && next == it.config.EndOfOptions {
		return true
	}
	return it.resolvesAsOption(next)
}

func (it *interpreter) resolvesAsOption(token string) bool {
	if !looksLikeOption(token, it.config) {
		return false
	}
	long := it.config.LongPrefix != "" && strings.HasPrefix(token, it.config.LongPrefix)
	prefix := it.config.LongPrefix
	if !long {
		prefix = it.matchedPrefix(token)
	}
	body := token[len(prefix):]
	name := body
	if it.config.Separator != "" {
		name, _, _ = strings.Cut(body, it.config.Separator)
	}
	option, found, err := resolveName(name, it.options, it.rules)
	if err != nil {
		// An ambiguous token is an option as far as boundaries go.
		return true
	}
	if found {
		return true
	}
	if long {
		if stripped, isNegation := strings.CutPrefix(name, "no-"); isNegation {
			option, found, err = resolveName(stripped, it.options, it.rules)
			if err != nil {
				return true
			}
			if found && option.Negatable {
				return true
			}
		}
	}
	if !long && it.config.Clustering {
		if _, ok := it.expandCluster(name, "", false, prefix); ok {
			return true
		}
	}
	return false
}

func (it *interpreter) resolvesAsSubcommand(token string) bool {
	if len(it.subcommands) == 0 {
		return false
	}
	_, found, err := resolveName(token, it.subcommands, it.rules)
	return found || err != nil
}

func (it *interpreter) processOperand(token string) (bool, error) {
	if positional := it.eligiblePositional(); positional != nil {
		semantics := it.semanticsOf(positional)
		match := it.matchFor(positional)
		match.Occurrence++
		it.ctx.seen[positional.ID()]++
		it.rawConsumed[positional.ID()]++
		it.operandIndex++
		return false, it.recordValues(match, positional, semantics, []string{token}, false)
	}
	child, found, err := resolveName(token, it.subcommands, it.rules)
	if err != nil {
		return false, err
	}
	if found {
		return true, it.dispatchSubcommand(child)
	}
	return false, it.unmatchedOperand(token)
}

func (it *interpreter) eligiblePositional() *PositionalSpec {
	var best *PositionalSpec
	for _, positional := range it.spec.positionals {
		if !positional.Index.Contains(it.operandIndex) {
			continue
		}
		if !positional.Arity.CanTake(it.rawConsumed[positional.ID()]) {
			continue
		}
		if best == nil || positional.Index.Min < best.Index.Min {
			best = positional
		}
	}
	return best
}

func (it *interpreter) unmatchedOperand(token string) error {
	if it.config.CollectUnmatched {
		it.collectUnmatched(token)
		return nil
	}
	if len(it.subcommands) > 0 {
		names := suggest(token, it.spec.subcommandNames(), it.config.SuggestionThreshold)
		if len(names) > 0 {
			return errs.ErrUnknownSubcommand.WithArgs(token, quoteJoin(names))
		}
	}
	return errs.ErrUnmatchedToken.WithArgs(token)
}

// dispatchSubcommand hands the remaining tokens to the child level. The
// end-of-options state carries over: a subcommand selected after the marker
// parses everything as operands.
func (it *interpreter) dispatchSubcommand(child *CommandSpec) error {
	remaining := it.state.Args()[it.state.Pos()+1:]
	it.ctx.tracer.debugf("descending into %q with %d tokens", child.Name, len(remaining))
	childResult, err := parseLevel(it.ctx, child, parse.NewState(remaining), it.endOfOptions)
	it.result.sub = childResult
	if err != nil {
		it.childErr = err
	}
	return nil
}

func (it *interpreter) matchFor(arg Arg) *MatchedArg {
	if match, exists := it.result.byID[arg.ID()]; exists {
		return match
	}
	match := &MatchedArg{Arg: arg, Name: primaryName(arg), Position: it.state.Pos()}
	it.result.byID[arg.ID()] = match
	it.result.matches = append(it.result.matches, match)
	return match
}

func (it *interpreter) semanticsOf(arg Arg) *valueSemantics {
	for cmd := it.spec; cmd != nil; cmd = cmd.parent {
		if cmd.initialized {
			if semantics, exists := cmd.semantics[arg.ID()]; exists {
				return semantics
			}
		}
	}
	// Validate guarantees semantics for every registered argument.
	return &valueSemantics{scalar: func(input string) (any, error) { return input, nil }}
}

// recordValues splits the raw tokens of one occurrence into fragments,
// converts them, accumulates the results and feeds the binding; the full
// container is handed to Binding.Set on every update so repeated parses
// replace instead of append.
func (it *interpreter) recordValues(match *MatchedArg, arg Arg, semantics *valueSemantics, raws []string, invert bool) error {
	spec := arg.base()
	var fragments []string
	for _, raw := range raws {
		fragments = append(fragments, splitFragments(spec.SplitPattern, raw)...)
	}
	if semantics.container == nil && len(fragments) > 1 {
		return errs.ErrTooManyValues.WithArgs(arg.Synopsis(), 1, len(fragments))
	}
	match.rawTokens = append(match.rawTokens, raws...)
	match.rawGroups = append(match.rawGroups, len(raws))
	accumulator := it.accumulators[arg.ID()]
	if accumulator == nil {
		accumulator = &containerAccumulator{semantics: semantics}
		it.accumulators[arg.ID()] = accumulator
	}
	occurrenceValues := make([]any, 0, len(fragments))
	for _, fragment := range fragments {
		converted, err := semantics.convertFragment(fragment)
		if err != nil {
			return errs.ErrConversionFailed.WithArgs(fragment, arg.Synopsis()).Wrap(err)
		}
		if invert {
			if b, ok := converted.(bool); ok {
				converted = !b
			}
		}
		match.Raw = append(match.Raw, fragment)
		match.Values = append(match.Values, converted)
		occurrenceValues = append(occurrenceValues, converted)
		accumulator.add(converted)
		match.value = accumulator.value
		if spec.Binding != nil {
			if err := spec.Binding.Set(accumulator.value); err != nil {
				return errs.ErrBindFailed.WithArgs(arg.Synopsis()).Wrap(err)
			}
		}
	}
	return it.notifyGroup(arg, occurrenceValues)
}

// containerAccumulator grows slice and map values fragment by fragment
// during one parse; scalars just keep the latest value.
type containerAccumulator struct {
	semantics *valueSemantics
	container reflect.Value
	value     any
}

func (a *containerAccumulator) add(converted any) {
	switch {
	case a.semantics.isSlice:
		if !a.container.IsValid() {
			a.container = reflect.MakeSlice(a.semantics.container, 0, 4)
		}
		a.container = reflect.Append(a.container, reflect.ValueOf(converted))
		a.value = a.container.Interface()
	case a.semantics.isMap:
		if !a.container.IsValid() {
			a.container = reflect.MakeMap(a.semantics.container)
		}
		entry := converted.(types.KeyValue[any, any])
		a.container.SetMapIndex(reflect.ValueOf(entry.Key), reflect.ValueOf(entry.Value))
		a.value = a.container.Interface()
	default:
		a.value = converted
	}
}

func (it *interpreter) notifyGroup(arg Arg, values []any) error {
	group, owner := it.findGroup(arg)
	if group == nil {
		return nil
	}
	tracker := it.ctx.trackerFor(group, owner)
	var value any
	switch len(values) {
	case 0:
		value = nil
	case 1:
		value = values[0]
	default:
		value = values
	}
	return tracker.matchArg(arg, value)
}

func (it *interpreter) findGroup(arg Arg) (*ArgGroupSpec, *CommandSpec) {
	for cmd := it.spec; cmd != nil; cmd = cmd.parent {
		if cmd.initialized {
			if group, exists := cmd.groupOf[arg.ID()]; exists {
				return group, cmd
			}
		}
	}
	return nil, nil
}

func splitFragments(pattern *regexp.Regexp, raw string) []string {
	if pattern == nil {
		return []string{raw}
	}
	return pattern.Split(raw, -1)
}

// finish applies defaults, validates positional arity, runs the
// missing-required walk and closes the group trackers, in that order.
func (it *interpreter) finish() error {
	if err := it.applyDefaults(); err != nil {
		return err
	}
	if err := it.checkPositionalArity(); err != nil {
		return err
	}
	if err := it.checkRequired(); err != nil {
		return err
	}
	return it.finishGroups()
}

func (it *interpreter) applyDefaults() error {
	for _, arg := range it.levelArgs() {
		spec := arg.base()
		if it.ctx.seen[arg.ID()] > 0 || spec.DefaultValue == "" || spec.Binding == nil {
			continue
		}
		semantics := it.semanticsOf(arg)
		fragments := splitFragments(spec.SplitPattern, spec.DefaultValue)
		if semantics.container == nil && len(fragments) > 1 {
			return errs.ErrTooManyValues.WithArgs(arg.Synopsis(), 1, len(fragments))
		}
		accumulator := &containerAccumulator{semantics: semantics}
		for _, fragment := range fragments {
			converted, err := semantics.convertFragment(fragment)
			if err != nil {
				return errs.ErrConversionFailed.WithArgs(fragment, arg.Synopsis()).Wrap(err)
			}
			accumulator.add(converted)
		}
		if err := spec.Binding.Set(accumulator.value); err != nil {
			return errs.ErrBindFailed.WithArgs(arg.Synopsis()).Wrap(err)
		}
		it.ctx.tracer.debugf("applied default %q to %s", spec.DefaultValue, arg.Synopsis())
	}
	return nil
}

func (it *interpreter) checkPositionalArity() error {
	for _, positional := range it.spec.positionals {
		consumed := it.rawConsumed[positional.ID()]
		if consumed > 0 && consumed < positional.Arity.Min {
			return errs.ErrTooFewValues.WithArgs(positional.Synopsis(), positional.Arity.Min, consumed)
		}
	}
	return nil
}

func (it *interpreter) checkRequired() error {
	var missing []string
	for _, arg := range it.levelArgs() {
		if !arg.base().Required || it.ctx.seen[arg.ID()] > 0 {
			continue
		}
		if group, _ := it.findGroup(arg); group != nil {
			// Required inside a validating group is enforced per occurrence
			// by the group validator.
			continue
		}
		missing = append(missing, arg.Synopsis())
	}
	if len(missing) > 0 {
		return errs.ErrMissingRequired.WithArgs(quoteJoin(missing))
	}
	return nil
}

func (it *interpreter) finishGroups() error {
	var firstErr error
	var visit func(group *ArgGroupSpec)
	visit = func(group *ArgGroupSpec) {
		if group.Validate {
			tracker := it.ctx.trackerFor(group, it.spec)
			if err := tracker.finish(); err != nil && firstErr == nil {
				firstErr = err
			}
			it.result.groups[group] = tracker.occurrences()
		}
		for _, subgroup := range group.subgroups {
			visit(subgroup)
		}
	}
	for _, group := range it.spec.groups {
		visit(group)
	}
	return firstErr
}

func (it *interpreter) levelArgs() []Arg {
	args := make([]Arg, 0, len(it.spec.options)+len(it.spec.positionals))
	for _, option := range it.spec.options {
		args = append(args, option)
	}
	for _, positional := range it.spec.positionals {
		args = append(args, positional)
	}
	return args
}
