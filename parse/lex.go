package parse

import "github.com/google/shlex"

// Split tokenizes a command line into arguments following POSIX shell quoting
// rules. Response-file lines and interactive input pass through here before
// they join the token stream.
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
