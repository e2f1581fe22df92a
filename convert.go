package clip

import (
	"errors"
	"net"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	ordered "github.com/wk8/go-ordered-map"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/i18n"
	"github.com/remkop/clip/types"
)

// ConverterRegistry maps value types to converters. Registration order is
// kept so Types and diagnostics stay deterministic. Commands consult their
// own registry first, then their ancestors, then the built-ins.
type ConverterRegistry struct {
	converters *ordered.OrderedMap // reflect.Type -> ValueConverter
}

// NewConverterRegistry returns an empty registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{converters: ordered.New()}
}

// Register adds or replaces the converter for typeOf.
func (r *ConverterRegistry) Register(typeOf reflect.Type, converter ValueConverter) *ConverterRegistry {
	r.converters.Set(typeOf, converter)
	return r
}

// Lookup returns the converter registered for exactly typeOf.
func (r *ConverterRegistry) Lookup(typeOf reflect.Type) (ValueConverter, bool) {
	value, found := r.converters.Get(typeOf)
	if !found {
		return nil, false
	}
	return value.(ValueConverter), true
}

// Types lists the registered types in registration order.
func (r *ConverterRegistry) Types() []reflect.Type {
	result := make([]reflect.Type, 0, r.converters.Len())
	for pair := r.converters.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Key.(reflect.Type))
	}
	return result
}

// DefaultConverters returns a fresh registry holding the built-in
// converters: strings, bool, the numeric types, time.Duration, time.Time,
// uuid.UUID, *regexp.Regexp, net.IP, *url.URL and []byte.
func DefaultConverters() *ConverterRegistry {
	r := NewConverterRegistry()
	r.Register(TypeOf[string](), func(input string) (any, error) {
		return input, nil
	})
	r.Register(TypeOf[bool](), convertBool)
	r.Register(TypeOf[int](), intConverter(TypeOf[int](), strconv.IntSize))
	r.Register(TypeOf[int8](), intConverter(TypeOf[int8](), 8))
	r.Register(TypeOf[int16](), intConverter(TypeOf[int16](), 16))
	r.Register(TypeOf[int32](), intConverter(TypeOf[int32](), 32))
	r.Register(TypeOf[int64](), intConverter(TypeOf[int64](), 64))
	r.Register(TypeOf[uint](), uintConverter(TypeOf[uint](), strconv.IntSize))
	r.Register(TypeOf[uint8](), uintConverter(TypeOf[uint8](), 8))
	r.Register(TypeOf[uint16](), uintConverter(TypeOf[uint16](), 16))
	r.Register(TypeOf[uint32](), uintConverter(TypeOf[uint32](), 32))
	r.Register(TypeOf[uint64](), uintConverter(TypeOf[uint64](), 64))
	r.Register(TypeOf[float32](), floatConverter(TypeOf[float32](), 32))
	r.Register(TypeOf[float64](), floatConverter(TypeOf[float64](), 64))
	r.Register(TypeOf[complex64](), complexConverter(TypeOf[complex64](), 64))
	r.Register(TypeOf[complex128](), complexConverter(TypeOf[complex128](), 128))
	r.Register(TypeOf[time.Duration](), func(input string) (any, error) {
		d, err := time.ParseDuration(input)
		if err != nil {
			return nil, errs.ErrParseDuration.WithArgs(input)
		}
		return d, nil
	})
	r.Register(TypeOf[time.Time](), func(input string) (any, error) {
		t, err := dateparse.ParseLocal(input)
		if err != nil {
			return nil, errs.ErrParseTime.WithArgs(input)
		}
		return t, nil
	})
	r.Register(TypeOf[uuid.UUID](), func(input string) (any, error) {
		id, err := uuid.Parse(input)
		if err != nil {
			return nil, errs.ErrParseUUID.WithArgs(input)
		}
		return id, nil
	})
	r.Register(TypeOf[*regexp.Regexp](), func(input string) (any, error) {
		re, err := regexp.Compile(input)
		if err != nil {
			return nil, errs.ErrParseRegexp.WithArgs(input)
		}
		return re, nil
	})
	r.Register(TypeOf[net.IP](), func(input string) (any, error) {
		ip := net.ParseIP(input)
		if ip == nil {
			return nil, errs.ErrParseIP.WithArgs(input)
		}
		return ip, nil
	})
	r.Register(TypeOf[*url.URL](), func(input string) (any, error) {
		u, err := url.Parse(input)
		if err != nil {
			return nil, errs.ErrParseURL.WithArgs(input)
		}
		return u, nil
	})
	// Exact converter on a container type gives the argument scalar
	// semantics: one fragment, one []byte value.
	r.Register(TypeOf[[]byte](), func(input string) (any, error) {
		return []byte(input), nil
	})
	return r
}

var builtinConverters = DefaultConverters()

func convertBool(input string) (any, error) {
	b, err := strconv.ParseBool(input)
	if err != nil {
		return nil, errs.ErrParseBool.WithArgs(input)
	}
	return b, nil
}

func intConverter(typeOf reflect.Type, bits int) ValueConverter {
	return func(input string) (any, error) {
		n, err := strconv.ParseInt(input, 10, bits)
		if err != nil {
			return nil, numericError(errs.ErrParseInt, typeOf, input, err)
		}
		return reflect.ValueOf(n).Convert(typeOf).Interface(), nil
	}
}

func uintConverter(typeOf reflect.Type, bits int) ValueConverter {
	return func(input string) (any, error) {
		n, err := strconv.ParseUint(input, 10, bits)
		if err != nil {
			return nil, numericError(errs.ErrParseUint, typeOf, input, err)
		}
		return reflect.ValueOf(n).Convert(typeOf).Interface(), nil
	}
}

func floatConverter(typeOf reflect.Type, bits int) ValueConverter {
	return func(input string) (any, error) {
		f, err := strconv.ParseFloat(input, bits)
		if err != nil {
			return nil, numericError(errs.ErrParseFloat, typeOf, input, err)
		}
		return reflect.ValueOf(f).Convert(typeOf).Interface(), nil
	}
}

func complexConverter(typeOf reflect.Type, bits int) ValueConverter {
	return func(input string) (any, error) {
		c, err := strconv.ParseComplex(input, bits)
		if err != nil {
			return nil, numericError(errs.ErrParseComplex, typeOf, input, err)
		}
		return reflect.ValueOf(c).Convert(typeOf).Interface(), nil
	}
}

func numericError(sentinel *i18n.TrError, typeOf reflect.Type, input string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return errs.ErrParseOverflow.WithArgs(input, typeOf.String())
	}
	return sentinel.WithArgs(input)
}

// resolveConverter finds the converter for typeOf along the command chain:
// exact registrations win, then kind fallbacks so named types like
// "type Port uint16" convert without registration, then pointer types
// resolve through their element type.
func (s *CommandSpec) resolveConverter(typeOf reflect.Type) (ValueConverter, bool) {
	if converter, found := s.lookupExact(typeOf); found {
		return converter, true
	}
	if kt := kindType(typeOf.Kind()); kt != nil && kt != typeOf {
		if base, found := builtinConverters.Lookup(kt); found {
			return adaptConverter(typeOf, base), true
		}
	}
	if typeOf.Kind() == reflect.Pointer {
		if elem, found := s.resolveConverter(typeOf.Elem()); found {
			return wrapPointer(typeOf, elem), true
		}
	}
	return nil, false
}

func (s *CommandSpec) lookupExact(typeOf reflect.Type) (ValueConverter, bool) {
	for cmd := s; cmd != nil; cmd = cmd.parent {
		if cmd.converters == nil {
			continue
		}
		if converter, found := cmd.converters.Lookup(typeOf); found {
			return converter, true
		}
	}
	return builtinConverters.Lookup(typeOf)
}

// kindType maps a kind to the builtin type carrying its converter. Named
// types reuse the builtin converter and convert the result.
func kindType(kind reflect.Kind) reflect.Type {
	switch kind {
	case reflect.String:
		return TypeOf[string]()
	case reflect.Bool:
		return TypeOf[bool]()
	case reflect.Int:
		return TypeOf[int]()
	case reflect.Int8:
		return TypeOf[int8]()
	case reflect.Int16:
		return TypeOf[int16]()
	case reflect.Int32:
		return TypeOf[int32]()
	case reflect.Int64:
		return TypeOf[int64]()
	case reflect.Uint:
		return TypeOf[uint]()
	case reflect.Uint8:
		return TypeOf[uint8]()
	case reflect.Uint16:
		return TypeOf[uint16]()
	case reflect.Uint32:
		return TypeOf[uint32]()
	case reflect.Uint64:
		return TypeOf[uint64]()
	case reflect.Float32:
		return TypeOf[float32]()
	case reflect.Float64:
		return TypeOf[float64]()
	case reflect.Complex64:
		return TypeOf[complex64]()
	case reflect.Complex128:
		return TypeOf[complex128]()
	default:
		return nil
	}
}

// adaptConverter converts the base converter's result to the named type.
func adaptConverter(typeOf reflect.Type, base ValueConverter) ValueConverter {
	return func(input string) (any, error) {
		value, err := base(input)
		if err != nil {
			return nil, err
		}
		rv := reflect.ValueOf(value)
		if rv.Type() == typeOf {
			return value, nil
		}
		return rv.Convert(typeOf).Interface(), nil
	}
}

func wrapPointer(typeOf reflect.Type, elem ValueConverter) ValueConverter {
	return func(input string) (any, error) {
		value, err := elem(input)
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(typeOf.Elem())
		ptr.Elem().Set(reflect.ValueOf(value))
		return ptr.Interface(), nil
	}
}

// valueSemantics captures what the interpreter needs to know about an
// argument's type: how fragments convert and whether values accumulate into
// a container.
type valueSemantics struct {
	scalar    ValueConverter
	element   ValueConverter
	key       ValueConverter
	container reflect.Type
	isSlice   bool
	isMap     bool
}

// semanticsFor derives conversion semantics at registration time so that
// unsupported types fail when the argument is added, not when it is parsed.
func (s *CommandSpec) semanticsFor(spec *ArgSpec) (*valueSemantics, error) {
	typeOf := spec.Type
	if typeOf == nil {
		typeOf = TypeOf[string]()
	}
	if spec.Converter != nil {
		return &valueSemantics{scalar: spec.Converter}, nil
	}
	// An exact registration on the full type wins even for containers:
	// []byte stays one value per fragment.
	if converter, found := s.lookupExact(typeOf); found {
		return &valueSemantics{scalar: converter}, nil
	}
	switch typeOf.Kind() {
	case reflect.Slice:
		element, found := s.resolveConverter(typeOf.Elem())
		if !found {
			return nil, errs.ErrUnsupportedType.WithArgs(typeOf.String())
		}
		spec.elemType = typeOf.Elem()
		return &valueSemantics{element: element, container: typeOf, isSlice: true}, nil
	case reflect.Map:
		key, found := s.resolveConverter(typeOf.Key())
		if !found {
			return nil, errs.ErrUnsupportedType.WithArgs(typeOf.String())
		}
		element, found := s.resolveConverter(typeOf.Elem())
		if !found {
			return nil, errs.ErrUnsupportedType.WithArgs(typeOf.String())
		}
		spec.keyType = typeOf.Key()
		spec.elemType = typeOf.Elem()
		return &valueSemantics{key: key, element: element, container: typeOf, isMap: true}, nil
	default:
		converter, found := s.resolveConverter(typeOf)
		if !found {
			return nil, errs.ErrUnsupportedType.WithArgs(typeOf.String())
		}
		return &valueSemantics{scalar: converter}, nil
	}
}

// convertFragment turns one raw fragment into a typed value. Map fragments
// split on the first '=' into a types.KeyValue pair.
func (v *valueSemantics) convertFragment(fragment string) (any, error) {
	switch {
	case v.isSlice:
		return v.element(fragment)
	case v.isMap:
		rawKey, rawValue, found := strings.Cut(fragment, "=")
		if !found {
			return nil, errs.ErrParseMapEntry.WithArgs(fragment)
		}
		key, err := v.key(rawKey)
		if err != nil {
			return nil, err
		}
		value, err := v.element(rawValue)
		if err != nil {
			return nil, err
		}
		return types.KeyValue[any, any]{Key: key, Value: value}, nil
	default:
		return v.scalar(fragment)
	}
}
