package cli

import (
	"fmt"
	"strings"
)

type exclusiveFlagsError struct {
	flags []string
	set   []string
}

func (e exclusiveFlagsError) Error() string {
	if len(e.set) == 0 {
		return fmt.Sprintf("one of %s is required", joinFlags(e.flags))
	}
	return fmt.Sprintf("only one of %s may be set (got %s)", joinFlags(e.flags), joinFlags(e.set))
}

func errExclusiveFlags(flags, set []string) error {
	return exclusiveFlagsError{flags: flags, set: set}
}

type badArgError struct {
	name  string
	value string
	want  string
}

func (e badArgError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.name, e.value, e.want)
}

func errBadArg(name, value, want string) error {
	return badArgError{name: name, value: value, want: want}
}

func joinFlags(flags []string) string {
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = "--" + f
	}
	return strings.Join(out, ", ")
}
