package clip

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/util"
)

// candidate pairs one visible name with the object it selects. Options
// contribute one candidate per declared name, commands one per name and
// alias. Candidates sharing an id are the same object, so a token reaching
// several of them through abbreviation is not ambiguous.
type candidate[T any] struct {
	name  string
	id    string
	value T
}

type matchRules struct {
	abbreviations   bool
	caseInsensitive bool
}

// canonicalName is the registration identity of a name: its kebab-case
// form. Names whose canonical forms collide would make abbreviation
// matching undecidable, so registration rejects them.
func canonicalName(name string) string {
	return strcase.ToKebab(name)
}

// resolveName finds the candidate a token selects. Exact matches win. With
// abbreviations enabled a token may also match a name's canonical form, the
// initials of its chunks ("gRU" for "gitRemoteUrl"), chunk-wise prefixes
// ("git-rem-u" for "git-remote-url") or a plain prefix. A token reaching
// more than one candidate through abbreviation is reported as ambiguous.
func resolveName[T any](token string, candidates []candidate[T], rules matchRules) (T, bool, error) {
	var zero T
	equal := func(a, b string) bool { return a == b }
	if rules.caseInsensitive {
		equal = strings.EqualFold
	}
	for _, c := range candidates {
		if equal(c.name, token) {
			return c.value, true, nil
		}
	}
	if !rules.abbreviations {
		return zero, false, nil
	}
	canonical := canonicalName(token)
	for _, c := range candidates {
		if canonicalName(c.name) == canonical {
			return c.value, true, nil
		}
	}

	var (
		first T
		found bool
		seen  = make(map[string]bool)
		names []string
	)
	for _, c := range candidates {
		if !abbreviationMatch(token, c.name, rules.caseInsensitive) {
			continue
		}
		if seen[c.id] {
			continue
		}
		seen[c.id] = true
		if !found {
			first, found = c.value, true
		}
		names = append(names, c.name)
	}
	if len(names) > 1 {
		return zero, false, errs.ErrAmbiguousName.WithArgs(token, quoteJoin(names))
	}
	if found {
		return first, true, nil
	}
	return zero, false, nil
}

func abbreviationMatch(token, name string, caseInsensitive bool) bool {
	fold := func(s string) string { return s }
	if caseInsensitive {
		fold = strings.ToLower
	}
	if token != "" && strings.HasPrefix(fold(name), fold(token)) {
		return true
	}
	nameChunks := chunks(name)
	if len(nameChunks) < 2 {
		return false
	}
	tokenRunes := []rune(fold(token))
	if len(tokenRunes) == len(nameChunks) {
		all := true
		for i, chunk := range nameChunks {
			runes := []rune(fold(chunk))
			if len(runes) == 0 || runes[0] != tokenRunes[i] {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	tokenChunks := chunks(token)
	if len(tokenChunks) != len(nameChunks) {
		return false
	}
	for i := range tokenChunks {
		if tokenChunks[i] == "" || !strings.HasPrefix(fold(nameChunks[i]), fold(tokenChunks[i])) {
			return false
		}
	}
	return true
}

// chunks splits a name at '-', '_' and lower-to-upper boundaries:
// "gitRemoteUrl" and "git-remote-url" both yield [git remote url] (with
// original casing kept).
func chunks(name string) []string {
	var (
		result  []string
		current strings.Builder
	)
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_':
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
		case i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]):
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result
}

// suggest lists names within the edit-distance threshold of token, in the
// order the names were declared.
func suggest(token string, names []string, threshold int) []string {
	if threshold <= 0 {
		return nil
	}
	var result []string
	for _, name := range names {
		if util.LevenshteinDistance(token, name) <= threshold {
			result = append(result, name)
		}
	}
	return result
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, ", ")
}
