package util

import (
	"fmt"
	"reflect"
)

// UnwrapValue recursively dereferences v and returns the underlying value.
// Returns an error when a nil pointer is encountered.
func UnwrapValue(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil pointer encountered")
		}
		v = v.Elem()
	}
	return v, nil
}
