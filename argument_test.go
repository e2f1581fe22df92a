package clip

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgument_Synopsis(t *testing.T) {
	assert.Equal(t, "--verbose", NewOption("verbose").Synopsis(), "long names render with the long prefix")
	assert.Equal(t, "-v", NewOption("v").Synopsis(), "single-rune names render with the short prefix")
	assert.Equal(t, "-漢", NewOption("漢").Synopsis(), "rune count decides the prefix, not byte length")
	assert.Equal(t, "--verbose", NewOption("verbose", WithAlias("v")).Synopsis(), "aliases never change the synopsis")
	assert.Equal(t, "<files>", NewPositional("files").Synopsis(), "positional parameters render in angle brackets")
}

func TestArgument_Defaults(t *testing.T) {
	option := NewOption("verbose")
	assert.Equal(t, reflect.TypeOf(true), option.Type, "options default to bool")
	assert.Equal(t, "verbose", primaryName(option))

	positional := NewPositional("file")
	assert.Equal(t, reflect.TypeOf(""), positional.Type, "positional parameters default to string")
	assert.Equal(t, "file", primaryName(positional))

	aliased := NewOption("output", WithAlias("o", "out"))
	assert.Equal(t, []string{"output", "o", "out"}, aliased.Names)
	assert.Equal(t, "output", primaryName(aliased), "the first name stays primary")
}
