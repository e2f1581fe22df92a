package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remkop/clip/parse"
)

func FuzzParse(f *testing.F) {
	f.Add("-vxffile")
	f.Add("--file=a=b,c")
	f.Add("-Dk=v,k2=v2 rest1 rest2")
	f.Add("--no-verbose -- --file")
	f.Add("-漢字=こんにちは こんにち")
	f.Add("--count")
	f.Add("0")
	f.Add("-")
	f.Add("--")
	f.Add("-x -5 -123.45")
	f.Add("   --file ok   ")
	f.Add("--verb --fi x")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil || len(args) == 0 {
			return
		}

		cmd, err := NewCommand("fuzz",
			WithOption(NewOption("verbose", WithAlias("v"), SetNegatable(true))),
			WithOption(NewOption("xtra", WithAlias("x"))),
			WithOption(NewOption("file", WithAlias("f"), WithType(TypeOf[string]()))),
			WithOption(NewOption("define", WithAlias("D"), WithType(TypeOf[map[string]string]()), WithSplitPattern(","))),
			WithOption(NewOption("count", WithType(TypeOf[int]()), WithArityString("0..1"), WithFallbackValue("1"))),
			WithOption(NewOption("漢字", WithType(TypeOf[string]()))),
			WithPositional(NewPositional("rest", WithType(TypeOf[[]string]()), WithArityString("0..*"))),
		)
		if err != nil {
			t.Fatalf("building the model grammar: %v", err)
		}

		first, err1 := cmd.Parse(args)
		second, err2 := cmd.Parse(args)

		if err1 != nil {
			// Failures must be as reproducible as successes.
			assert.Error(t, err2, "args %q failed once, must fail again", args)
			if err2 != nil {
				assert.Equal(t, err1.Error(), err2.Error(), "args %q must fail the same way", args)
			}
			if first != nil {
				assert.Error(t, first.Err(), "a failed parse marks its diagnostic result")
			}
			return
		}
		assert.NoError(t, err2, "args %q parsed once, must parse again", args)

		canonical := first.CanonicalTokens()
		assert.Equal(t, canonical, second.CanonicalTokens(), "args %q must re-serialize identically", args)

		for _, match := range first.Matches() {
			assert.True(t, first.Matched(match.Name), "matched argument %q must be visible by name", match.Name)
			assert.Equal(t, match.Occurrence, first.Count(match.Name))
			assert.GreaterOrEqual(t, match.Occurrence, 1)
		}

		replay, err := cmd.Parse(canonical)
		if assert.NoError(t, err, "canonical tokens %q of %q must replay cleanly", canonical, args) {
			assert.Equal(t, canonical, replay.CanonicalTokens(),
				"the canonical form of %q is a fixed point", args)
		}
	})
}
