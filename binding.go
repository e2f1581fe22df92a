package clip

import (
	"fmt"
	"reflect"

	"github.com/remkop/clip/errs"
)

// BindValue binds an argument to *target. Scalars receive the converted
// value, slice and map targets receive the full accumulated container on
// every update.
//
// Usage example:
//
//	var verbose bool
//	cmd, err := clip.NewCommand("tool",
//	    clip.WithOption(clip.NewOption("verbose", clip.WithBinding(clip.BindValue(&verbose)))),
//	)
func BindValue[T any](target *T) Binding {
	return &valueBinding[T]{target: target}
}

type valueBinding[T any] struct {
	target *T
}

func (b *valueBinding[T]) Get() any {
	if b.target == nil {
		return nil
	}
	return *b.target
}

func (b *valueBinding[T]) Set(value any) error {
	if b.target == nil {
		return errs.ErrNilBinding
	}
	typed, ok := value.(T)
	if !ok {
		rv := reflect.ValueOf(value)
		want := TypeOf[T]()
		if !rv.IsValid() || !rv.Type().ConvertibleTo(want) {
			return fmt.Errorf("%T is not assignable to %s", value, want)
		}
		typed = rv.Convert(want).Interface().(T)
	}
	*b.target = typed
	return nil
}

// BindFunc adapts a getter and setter pair into a Binding. Either may be
// nil: a nil get reports no value, a nil set discards updates.
func BindFunc(get func() any, set func(value any) error) Binding {
	return &funcBinding{get: get, set: set}
}

type funcBinding struct {
	get func() any
	set func(value any) error
}

func (b *funcBinding) Get() any {
	if b.get == nil {
		return nil
	}
	return b.get()
}

func (b *funcBinding) Set(value any) error {
	if b.set == nil {
		return nil
	}
	return b.set(value)
}
