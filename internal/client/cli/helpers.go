package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFlags splits command arguments into --flag values and positionals.
// A flag followed by another flag (or nothing) is boolean and gets "true".
func parseFlags(args []string) (map[string]string, []string) {
	flags := map[string]string{}
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			flags[name] = args[i+1]
			i++
		} else {
			flags[name] = "true"
		}
	}
	return flags, positional
}

func intFlag(flags map[string]string, name string, fallback int) (int, error) {
	raw, ok := flags[name]
	if !ok {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s value %q", name, raw)
	}
	return value, nil
}

func floatFlag(flags map[string]string, name string, fallback float64) (float64, error) {
	raw, ok := flags[name]
	if !ok {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s value %q", name, raw)
	}
	return value, nil
}

func boolFlag(flags map[string]string, name string) bool {
	return flags[name] == "true"
}
