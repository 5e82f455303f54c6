// Package flagx lets each package parse its own flags without tripping
// over flags owned by other packages: FilterArgs narrows the argument list
// to a known set before it reaches a FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments belonging to the flags listed in
// allowed. Both the "-f value" and "-f=value" forms are recognized; for the
// separate form the following argument is kept as the value unless it looks
// like another flag.
func FilterArgs(args []string, allowed []string) []string {
	want := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		want[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			if _, ok := want[strings.SplitN(arg, "=", 2)[0]]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := want[arg]; ok {
			out = append(out, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, args[i+1])
				i++
			}
		}
	}

	return out
}

// JsonConfigFlags returns the config file path passed via -c or -config,
// or "" when neither flag is present. Any other flags in os.Args stay
// untouched for their owning packages to parse.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
