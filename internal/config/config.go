// Copyright 2019 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the simplify CLI's optional configuration file. The
// core pass in package simplify never reads a file itself (per its Options
// being Go-level functional options); this package exists purely so the CLI
// can let a project pin an iteration cap or a list of rules to disable in a
// checked-in file instead of repeating flags on every invocation.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const defaultFileName = ".simplify.yaml"

// Config is the decoded shape of a .simplify.yaml file.
type Config struct {
	// MaxIterations overrides rewrite.DefaultMaxIterations when positive.
	MaxIterations int `yaml:"maxIterations"`

	// DisabledRules lists rule names (e.g. "R7") to skip, same as
	// simplify.WithDisabledRules.
	DisabledRules []string `yaml:"disabledRules"`
}

// Load reads and decodes the configuration file at path. A missing file at
// the default location is not an error; Load returns a zero Config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultFileName
		if _, err := os.Stat(path); err != nil {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
