package input

import (
	"os"
	"strings"

	"github.com/remkop/clip/errs"
	"github.com/remkop/clip/parse"
)

// MaxResponseFileDepth bounds how deeply response files may include further
// response files before expansion gives up.
const MaxResponseFileDepth = 10

// ExpandResponseFiles replaces every "@file" token with the arguments read
// from that file, recursively. Within a file, blank lines and lines starting
// with '#' are skipped; every other line is tokenized with shell quoting
// rules, so one line may carry several arguments.
//
// A token starting with "@@" escapes expansion and passes through with one
// '@' stripped. A token naming a file that does not exist also passes
// through unchanged.
func ExpandResponseFiles(args []string) ([]string, error) {
	return expandArgs(args, 0)
}

func expandArgs(args []string, depth int) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "@@"):
			out = append(out, arg[1:])
		case len(arg) > 1 && arg[0] == '@':
			if depth >= MaxResponseFileDepth {
				return nil, errs.ErrResponseFileDepth.WithArgs(arg)
			}
			name := arg[1:]
			data, err := os.ReadFile(name)
			if err != nil {
				if os.IsNotExist(err) {
					out = append(out, arg)
					continue
				}
				return nil, errs.ErrResponseFile.WithArgs(name).Wrap(err)
			}
			tokens, err := splitFile(string(data))
			if err != nil {
				return nil, errs.ErrResponseFile.WithArgs(name).Wrap(err)
			}
			expanded, err := expandArgs(tokens, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		default:
			out = append(out, arg)
		}
	}
	return out, nil
}

func splitFile(content string) ([]string, error) {
	var tokens []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		words, err := parse.Split(line)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, words...)
	}
	return tokens, nil
}
