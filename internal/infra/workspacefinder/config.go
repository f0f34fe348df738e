package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads collections.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadConfigFile(filepath.Join(root, ConfigFileName))
}

// LoadConfigFile parses the given config file on top of domain.DefaultConfig.
// On error the defaults are still returned alongside it.
func LoadConfigFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if f := strings.TrimSpace(y.Collections.Output.Format); f != "" {
		cfg.Output.Format = strings.ToLower(f)
	}
	if y.Collections.Roster.HaltOnError != nil {
		cfg.Roster.HaltOnError = *y.Collections.Roster.HaltOnError
	}
	if y.Collections.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Collections.Logging.Debug
	}

	return cfg, nil
}

type yamlConfig struct {
	Collections struct {
		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Roster struct {
			HaltOnError *bool `yaml:"halt_on_error"`
		} `yaml:"roster"`

		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"collections"`
}
