package config

import (
	"flag"
	"io"
	"time"

	"github.com/tamakara/booth/internal/flagx"
)

// parseFlags overlays cfg with -a, -d and -t. Other arguments are filtered
// out with flagx.FilterArgs so they do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("booth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the marketplace backend")
	fs.StringVar(&cfg.SessionDSN, "d", cfg.SessionDSN, "path of the local session database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	return nil
}
