// Package config loads optional CLI defaults from a TOML file. Flags always
// override config values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// default config file looked up in the working directory
const DefaultPath = "scriptcue.toml"

type Config struct {
	Translate Translate `toml:"translate"`
	Export    Export    `toml:"export"`
}

// Translate contains defaults for the translate command.
type Translate struct {
	Provider    string `toml:"provider"`
	Model       string `toml:"model"`
	BatchSize   int    `toml:"batch_size"`
	Concurrency int    `toml:"concurrency"`
}

// Export contains defaults for the export command.
type Export struct {
	Format       string `toml:"format"`
	SpeakerAName string `toml:"speaker_a_name"`
	SpeakerBName string `toml:"speaker_b_name"`
}

func Default() Config {
	return Config{
		Translate: Translate{
			Provider:    "gemini",
			BatchSize:   50,
			Concurrency: 3,
		},
		Export: Export{
			Format: "srt",
		},
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults apply. A file that exists but does not parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
