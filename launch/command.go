package launch

import (
	"sort"
	"strings"
)

// Command is an external executable together with its arguments and
// environment overrides. The rest of the environment is inherited.
type Command struct {
	Path string
	Args []string
	Env  map[string]string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// environ merges the overrides into the base environment. Overrides are
// appended in sorted order, so the result is stable.
func (c Command) environ(base []string) []string {
	if len(c.Env) == 0 {
		return base
	}

	env := make([]string, 0, len(base)+len(c.Env))

	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, ok := c.Env[name]; !ok {
			env = append(env, kv)
		}
	}

	names := make([]string, 0, len(c.Env))
	for name := range c.Env {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		env = append(env, name+"="+c.Env[name])
	}

	return env
}
