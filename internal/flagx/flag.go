// Package flagx lets several components share os.Args: each one keeps only
// the flags it owns and parses them with its own flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Set names the flags owned by one component. Value flags consume the next
// argument unless it starts with "-"; Bool flags never consume a value.
type Set struct {
	Value []string
	Bool  []string
}

// Filter returns the arguments belonging to s, in their original order.
// Both "-f value" and "-f=value" forms are recognised.
func (s Set) Filter(args []string) []string {
	value := make(map[string]bool, len(s.Value))
	for _, f := range s.Value {
		value[f] = true
	}
	boolean := make(map[string]bool, len(s.Bool))
	for _, f := range s.Bool {
		boolean[f] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if value[name] || boolean[name] {
				filtered = append(filtered, arg)
			}
			continue
		}

		switch {
		case boolean[arg]:
			filtered = append(filtered, arg)
		case value[arg]:
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// FilterArgs keeps only allowedFlags (all taking a value) and their values.
func FilterArgs(args []string, allowedFlags []string) []string {
	return Set{Value: allowedFlags}.Filter(args)
}

// ConfigPath returns the JSON config file named by -c or -config in args,
// or "" when neither is present. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// JsonConfigFlags is ConfigPath applied to the process arguments.
func JsonConfigFlags() string {
	return ConfigPath(os.Args[1:])
}
