package config

import (
	"flag"
	"os"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/flagx"
)

var clientFlags = flagx.Set{
	Value: []string{"-a", "-t", "-n", "-l", "-v", "-o", "-s"},
	Bool:  []string{"-tui"},
}

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about, so
// -c/-config and anything else is left to other components.
func parseFlags(cfg *Config) {
	args := clientFlags.Filter(os.Args[1:])

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.PageSize, "n", cfg.PageSize, "explorer page size")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "start the terminal UI")
	fs.StringVar(&cfg.LogBackend, "l", cfg.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "o", cfg.LogFile, "log file")
	fs.StringVar(&cfg.StateFile, "s", cfg.StateFile, "local preferences file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
