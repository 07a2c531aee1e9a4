package main

import (
	"fmt"
	"strings"
)

// boolFlags take no value.
var boolFlags = map[string]bool{
	"json":       true,
	"no-persist": true,
	"watch":      true,
}

// flagSet holds "--name value" and "--name=value" pairs.
type flagSet map[string]string

func (f flagSet) get(name, def string) string {
	if v, ok := f[name]; ok && v != "" {
		return v
	}
	return def
}

func (f flagSet) has(name string) bool {
	_, ok := f[name]
	return ok
}

// parseArgs splits args into positional words and flags. "--" ends flag
// parsing.
func parseArgs(args []string) ([]string, flagSet, error) {
	var positional []string
	flags := flagSet{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
			positional = append(positional, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		switch {
		case boolFlags[name]:
			if hasValue {
				return nil, nil, fmt.Errorf("flag --%s takes no value", name)
			}
			flags[name] = "true"
		case hasValue:
			flags[name] = value
		case i+1 < len(args):
			flags[name] = args[i+1]
			i++
		default:
			return nil, nil, fmt.Errorf("flag --%s needs a value", name)
		}
	}
	return positional, flags, nil
}
