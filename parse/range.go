package parse

import (
	"strconv"
	"strings"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/types"
)

// Range parses the declaration form of a count range: "2" is exact, "0..3"
// bounded, "1..*" open-ended. Arity, positional index coverage and group
// multiplicity all use this form.
func Range(input string) (types.Range, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return types.Range{}, errs.ErrInvalidRange.WithArgs(input)
	}

	lo, hi, bounded := strings.Cut(s, "..")
	if !bounded {
		n, err := parseBound(lo)
		if err != nil {
			return types.Range{}, errs.ErrInvalidRange.WithArgs(input).Wrap(err)
		}
		return types.Exactly(n), nil
	}

	min, err := parseBound(lo)
	if err != nil {
		return types.Range{}, errs.ErrInvalidRange.WithArgs(input).Wrap(err)
	}

	max := types.Unbounded
	if strings.TrimSpace(hi) != "*" {
		max, err = parseBound(hi)
		if err != nil {
			return types.Range{}, errs.ErrInvalidRange.WithArgs(input).Wrap(err)
		}
	}

	r := types.NewRange(min, max)
	if !r.Valid() {
		return types.Range{}, errs.ErrInvalidRange.WithArgs(input)
	}
	return r, nil
}

func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
