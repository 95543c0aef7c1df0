// Package config loads settings shared by both command-line tools.
//
// Values are resolved in this order, later sources winning:
//
//  1. built-in defaults ([Defaults])
//  2. an optional TOML file (blogimages.toml in the working directory, or
//     the path passed to [Load])
//  3. environment variables, after loading a .env file if one exists
//
// Command-line flags are applied on top by the CLI.
//
// The API key is only ever read from the environment; it is not a valid key
// in the TOML file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go-simpler.org/env"

	"github.com/smartsdlc/blogimages/pkg/errors"
	"github.com/smartsdlc/blogimages/pkg/imagegen"
	"github.com/smartsdlc/blogimages/pkg/pipeline"
)

const (
	// DefaultFile is read when present and no explicit file is given.
	DefaultFile = "blogimages.toml"

	// DotEnvFile is loaded into the environment before reading variables.
	DotEnvFile = ".env"
)

// Config holds every tunable setting.
type Config struct {
	APIKey string `env:"GEMINI_API_KEY" toml:"-"`
	Model  string `env:"GEMINI_MODEL" toml:"model"`

	Resolution  string `env:"BLOGIMAGES_RESOLUTION" toml:"resolution"`
	AspectRatio string `env:"BLOGIMAGES_ASPECT_RATIO" toml:"aspect_ratio"`
	Style       string `env:"BLOGIMAGES_STYLE" toml:"style"`

	DiagramDir string `env:"BLOGIMAGES_DIAGRAM_DIR" toml:"diagram_dir"`
	Catalog    string `env:"BLOGIMAGES_CATALOG" toml:"catalog"`

	LogLevel string `env:"LOG_LEVEL" toml:"log_level"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Model:       imagegen.DefaultModel,
		Resolution:  string(imagegen.DefaultResolution),
		AspectRatio: imagegen.DefaultAspectRatio,
		Style:       string(imagegen.DefaultStyle),
		DiagramDir:  pipeline.DefaultOutputDir,
		LogLevel:    "info",
	}
}

// Load resolves the configuration. An empty path falls back to
// [DefaultFile] if it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	return load(DotEnvFile, path)
}

func load(dotenv, path string) (*Config, error) {
	if err := godotenv.Load(dotenv); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", dotenv)
	}

	cfg := Defaults()

	file, required := path, true
	if file == "" {
		file, required = DefaultFile, false
	}
	if err := decodeFile(&cfg, file, required); err != nil {
		return nil, err
	}

	if err := env.Load(&cfg, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read environment")
	}
	return &cfg, nil
}

func decodeFile(cfg *Config, path string, required bool) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if !required {
				return nil
			}
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s: unknown key %s", path, undecoded[0])
	}
	return nil
}
