package util

import "strconv"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Min[T Numeric](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// IsNumeric reports whether s parses as a signed decimal integer or float.
// The tokenizer uses it to keep negative numbers ("-1", "-123.45") from being
// mistaken for option tokens.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
