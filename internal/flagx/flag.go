// Package flagx helps configuration packages parse only the flags they own,
// leaving unrelated arguments for other components.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Keep returns the subset of args containing only the given flags and their
// values. Both "-f value" and "-f=value" forms are recognized.
func Keep(args []string, names ...string) []string {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if eq := strings.IndexByte(arg, '='); eq > 0 && strings.HasPrefix(arg, "-") {
			if wanted[arg[:eq]] {
				kept = append(kept, arg)
			}
			continue
		}

		if wanted[arg] {
			kept = append(kept, arg)
			// A following non-flag argument is this flag's value.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				kept = append(kept, args[i+1])
				i++
			}
		}
	}
	return kept
}

// ConfigFilePath extracts the path given via -c or -config, ignoring every
// other argument. Returns "" when neither flag is present.
func ConfigFilePath() string {
	var path string

	args := Keep(os.Args[1:], "-c", "-config")

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(args)

	return path
}
