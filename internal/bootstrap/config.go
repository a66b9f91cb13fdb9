// SPDX-FileCopyrightText: © 2026 The sgf-parser authors
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import (
	"os"

	"github.com/spf13/viper"

	"github.com/umutseven92/sgf-parser/parser"
)

// Config holds the tool settings. Values come from the optional env file
// and the environment; command line flags override them later.
type Config struct {
	// Lenient enables the implicit-close mode for unterminated trees.
	Lenient bool `mapstructure:"SGF_LENIENT"`
	// MaxDepth bounds the variation nesting.
	MaxDepth int `mapstructure:"SGF_MAX_DEPTH"`
	// CatalogPath points to a YAML file with extra property definitions.
	CatalogPath string `mapstructure:"SGF_CATALOG"`
}

// Setup loads the configuration from the given env file. A missing file
// is not an error, the defaults and the environment still apply.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("env")

	v.SetDefault("SGF_LENIENT", false)
	v.SetDefault("SGF_MAX_DEPTH", parser.DefaultMaxDepth)
	v.SetDefault("SGF_CATALOG", "")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(cfgPath); statErr == nil {
			return nil, err
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
