package config

import (
	"flag"
	"os"

	"github.com/akarpovs/stockkeeper/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the inventory gateway (default from Config)
//	-k string   API key for unauthenticated reads
//
// Arguments are filtered down to the flags handled here so parsing does not
// interfere with flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.Keep(os.Args[1:], "-a", "-k")

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayURL, "a", cfg.GatewayURL, "base URL of the inventory gateway")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key for unauthenticated reads")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
