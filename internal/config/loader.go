package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration for the given project directory with the
// following priority (highest to lowest):
// 1. Environment variables (PYDOCSTUB_*)
// 2. Config file (.pydocstub.yaml in the project directory)
// 3. Default values
func Load(projectDir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(".pydocstub")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectDir)

	v.SetEnvPrefix("PYDOCSTUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("paths.library_root")
	v.BindEnv("paths.tests_root")
	v.BindEnv("output.dir")
	v.BindEnv("output.force")

	cfg := Default()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file just means defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
