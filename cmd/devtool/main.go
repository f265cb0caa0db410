package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/ContentRegistry_Go/internal/logger"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Loader diagnostics go to stderr, out of the way of command output
	logger.InitLoggerWithWriter(loggerConfig(), os.Stderr)

	registry := newCommandRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}

func newCommandRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ValidateCommand{})
	r.Register(&FetchCommand{})
	r.Register(&DumpCommand{})
	r.Register(&BenchCommand{})
	return r
}

// loggerConfig starts from the development defaults but only surfaces warnings,
// so skipped elements and failed categories show up without debug noise.
func loggerConfig() logger.Config {
	cfg := logger.DevelopmentConfig()
	cfg.Level = logger.LogLevelWarn
	cfg.ServiceName = "devtool"
	cfg.AddSource = false
	return cfg
}
