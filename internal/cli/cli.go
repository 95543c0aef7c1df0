// Package cli implements the phasediagram and blogimage command-line tools.
//
// Both tools share one [CLI] value holding the logger and the output
// writer. Flags are parsed into option structs and handed to the pipeline
// and imagegen packages; no rendering or API logic lives here.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. --verbose (-v) switches to
// debug level. Results (written paths, catalog listings) go to stdout.
//
// # Configuration
//
// Settings are read by the config package (.env, blogimages.toml,
// environment). Flags given on the command line win over all of them.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/smartsdlc/blogimages/pkg/imagegen"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// GeneratorFactory creates an image generator for an API key.
type GeneratorFactory func(ctx context.Context, apiKey string) (imagegen.Generator, error)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command results. Defaults to os.Stdout.
	Out io.Writer

	// NewGenerator is called once per blogimage run, after the API key has
	// been resolved. Defaults to a Gemini client.
	NewGenerator GeneratorFactory

	// levelSet records an explicit level so config cannot override it.
	levelSet bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:       newLogger(w, level),
		Out:          os.Stdout,
		NewGenerator: newGeminiGenerator,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.levelSet = true
}

// applyLogLevel sets a configured level unless one was set explicitly.
func (c *CLI) applyLogLevel(name string) {
	if !c.levelSet {
		c.Logger.SetLevel(parseLevel(name))
	}
}

func newGeminiGenerator(ctx context.Context, apiKey string) (imagegen.Generator, error) {
	g, err := imagegen.NewGeminiClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return g, nil
}
