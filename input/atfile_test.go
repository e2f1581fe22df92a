package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remkop/clip/errs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExpandResponseFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("tokens without @ pass through", func(t *testing.T) {
		got, err := ExpandResponseFiles([]string{"--verbose", "copy", "src"})
		require.NoError(t, err)
		assert.Equal(t, []string{"--verbose", "copy", "src"}, got)
	})

	t.Run("file contents replace the token", func(t *testing.T) {
		path := writeFile(t, dir, "args.txt", "--verbose\n--out result.txt\n")

		got, err := ExpandResponseFiles([]string{"copy", "@" + path, "src"})
		require.NoError(t, err)
		assert.Equal(t, []string{"copy", "--verbose", "--out", "result.txt", "src"}, got)
	})

	t.Run("comments and blank lines are skipped", func(t *testing.T) {
		path := writeFile(t, dir, "commented.txt", "# header\n\n--level 3\n  # indented comment\n")

		got, err := ExpandResponseFiles([]string{"@" + path})
		require.NoError(t, err)
		assert.Equal(t, []string{"--level", "3"}, got)
	})

	t.Run("quoting keeps spaces inside one token", func(t *testing.T) {
		path := writeFile(t, dir, "quoted.txt", `--message "hello world"`+"\n")

		got, err := ExpandResponseFiles([]string{"@" + path})
		require.NoError(t, err)
		assert.Equal(t, []string{"--message", "hello world"}, got)
	})

	t.Run("nested response files expand recursively", func(t *testing.T) {
		inner := writeFile(t, dir, "inner.txt", "--deep\n")
		outer := writeFile(t, dir, "outer.txt", "--shallow\n@"+inner+"\n")

		got, err := ExpandResponseFiles([]string{"@" + outer})
		require.NoError(t, err)
		assert.Equal(t, []string{"--shallow", "--deep"}, got)
	})

	t.Run("double @ escapes expansion", func(t *testing.T) {
		got, err := ExpandResponseFiles([]string{"@@literal"})
		require.NoError(t, err)
		assert.Equal(t, []string{"@literal"}, got)
	})

	t.Run("missing file stays literal", func(t *testing.T) {
		got, err := ExpandResponseFiles([]string{"@" + filepath.Join(dir, "no-such-file")})
		require.NoError(t, err)
		assert.Equal(t, []string{"@" + filepath.Join(dir, "no-such-file")}, got)
	})

	t.Run("bare @ stays literal", func(t *testing.T) {
		got, err := ExpandResponseFiles([]string{"@"})
		require.NoError(t, err)
		assert.Equal(t, []string{"@"}, got)
	})

	t.Run("self-including file hits the depth limit", func(t *testing.T) {
		path := filepath.Join(dir, "loop.txt")
		require.NoError(t, os.WriteFile(path, []byte("@"+path+"\n"), 0o644))

		_, err := ExpandResponseFiles([]string{"@" + path})
		assert.ErrorIs(t, err, errs.ErrResponseFileDepth)
	})

	t.Run("unterminated quote reports the file", func(t *testing.T) {
		path := writeFile(t, dir, "broken.txt", `--message "unterminated`+"\n")

		_, err := ExpandResponseFiles([]string{"@" + path})
		assert.ErrorIs(t, err, errs.ErrResponseFile)
	})
}
