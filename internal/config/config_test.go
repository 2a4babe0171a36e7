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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"corelang.org/simplify/internal/config"
)

func TestLoadDecodesMaxIterationsAndDisabledRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("maxIterations: 4\ndisabledRules: [R7, R12]\n"), 0o644))

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxIterations)
	assert.Equal(t, []string{"R7", "R12"}, cfg.DisabledRules)
}

func TestLoadWithMissingDefaultFileReturnsZeroConfig(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer os.Chdir(old)

	cfg, err := config.Load("")
	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxIterations)
	assert.Nil(t, cfg.DisabledRules)
}

func TestLoadWithExplicitMissingPathIsAnError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
