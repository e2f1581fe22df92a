// Copyright 2024-2026, the clip authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package clip implements the engine of a command-line argument parser: a
// programmatic command model (options, positional parameters, argument
// groups, subcommands), a tokenizer and matcher state machine, a
// type-conversion registry and structured parse results.
//
// A grammar is declared once and parsed many times:
//
//	var verbose bool
//	cmd, err := clip.NewCommand("tool",
//		clip.WithOption(clip.NewOption("verbose",
//			clip.WithAlias("v"),
//			clip.WithBinding(clip.BindValue(&verbose)))),
//		clip.WithPositional(clip.NewPositional("files",
//			clip.WithType(clip.TypeOf[[]string]()),
//			clip.WithArityString("1..*"))),
//	)
//	if err != nil {
//		// a build error: duplicate name, unsupported type, ...
//	}
//	result, err := cmd.Parse(os.Args[1:])
//
// Options match by any declared name or alias and accept inline
// ("--name=value"), attached ("-oVALUE") and detached ("--name value")
// values. Single-letter boolean options cluster behind one prefix ("-xvf"),
// negatable options pair with a "--no-" spelling, and abbreviation matching
// resolves unambiguous shorthands ("--cf" for "--config-file"). Everything
// after the end-of-options marker ("--") is an operand: option matching
// stops while positional filling and subcommand selection continue.
// Subcommands nest; an option declared inherited on an ancestor stays
// matchable at every level below it.
//
// Parsing writes converted values through Binding implementations such as
// BindValue, so the caller's variables are populated when Parse returns.
// "@file" response-file tokens are expanded before parsing by
// input.ExpandResponseFiles; the engine itself never touches the file
// system.
package clip

import (
	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/parse"
)

// NewCommand builds a command grammar from functional options. Building
// stops at the first configuration error.
func NewCommand(name string, configs ...ConfigureCommandFunc) (*CommandSpec, error) {
	if name == "" {
		return nil, errs.ErrEmptyName
	}
	command := &CommandSpec{Name: name}
	command.ensureInit()
	var err error
	for _, config := range configs {
		config(command, &err)
		if err != nil {
			return nil, err
		}
	}
	return command, nil
}

// Parse matches args against the grammar. On success the result is
// complete; on failure the result still holds everything matched up to the
// failure point, with Err set, and must not be treated as success. A
// grammar that has not been validated yet is validated first.
//
// One spec must not be parsed from two goroutines at once: bindings write
// into shared slots. Independent specs parse in parallel safely.
func (s *CommandSpec) Parse(args []string) (*ParseResult, error) {
	s.ensureInit()
	if err := s.ensureValidated(); err != nil {
		return nil, err
	}
	ctx := &parseContext{
		seen:     make(map[string]int),
		trackers: make(map[*ArgGroupSpec]*groupTracker),
		tracer:   newTracer(s.config),
	}
	return parseLevel(ctx, s, parse.NewState(args), false)
}

// ParseString splits input with shell quoting rules and parses the result.
func (s *CommandSpec) ParseString(input string) (*ParseResult, error) {
	args, err := parse.Split(input)
	if err != nil {
		return nil, err
	}
	return s.Parse(args)
}
