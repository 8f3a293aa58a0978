package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/qmoi-infer/internal/analysis/prediction"
	"github.com/Alias1177/qmoi-infer/internal/config"
	"github.com/Alias1177/qmoi-infer/internal/endpoint"
)

// main reads one inference request from stdin and writes the trade
// recommendation to stdout, or {"error": ...} to stderr with exit status 1.
func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet; report through the error channel only.
		reportConfigError(stderr, os.Stderr, err)
		return endpoint.ExitFailure
	}

	setupLogging(stderr, cfg)

	return endpoint.New(prediction.NewPredictor()).Serve(stdin, stdout, stderr)
}

// reportConfigError writes the error object to w, falling back to a plain
// line on fallback when w cannot be written.
func reportConfigError(w, fallback io.Writer, err error) {
	cfgErr := fmt.Errorf("config: %w", err)
	if werr := endpoint.WriteError(w, cfgErr); werr != nil {
		fmt.Fprintln(fallback, cfgErr)
	}
}

// setupLogging configures the global logger. Unknown levels disable logging
// so the error channel carries only the error object.
func setupLogging(w io.Writer, cfg *config.Config) {
	var output io.Writer = w
	if cfg.LogPretty {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.Disabled
	}
	log.Logger = log.Logger.Level(level)
}
