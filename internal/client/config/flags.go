package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/memorizer/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   server base URL (e.g., "http://localhost:8080")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
