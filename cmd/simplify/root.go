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

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"corelang.org/simplify/internal/config"
	"corelang.org/simplify/internal/jsonast"
	"corelang.org/simplify/simplify"
)

// newRootCmd creates the simplify command. There are no subcommands: the
// whole tool is one filter, in the tradition of gofmt rather than of a
// multi-verb CLI like the teacher's own cue command.
func newRootCmd() *cobra.Command {
	var (
		maxIterations int
		disabledRules []string
		configPath    string
		outPath       string
	)

	cmd := &cobra.Command{
		Use:   "simplify [file]",
		Short: "simplify rewrites a JSON-encoded AST to a simplified fixed point.",
		Long: `simplify reads an ESTree-style JSON AST from a file argument or, absent
one, from stdin. It runs the fixed table of local rewrite rules and the
sequence folder to a fixed point and writes the resulting JSON AST to stdout,
or to the file named by --out.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("simplify: loading config: %w", err)
			}

			var opts []simplify.Option
			if cmd.Flags().Changed("max-iterations") {
				opts = append(opts, simplify.WithMaxIterations(maxIterations))
			} else if cfg.MaxIterations > 0 {
				opts = append(opts, simplify.WithMaxIterations(cfg.MaxIterations))
			}

			rules := append(append([]string{}, cfg.DisabledRules...), disabledRules...)
			if len(rules) > 0 {
				opts = append(opts, simplify.WithDisabledRules(rules...))
			}

			in, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("simplify: reading input: %w", err)
			}

			root, err := jsonast.Unmarshal(in)
			if err != nil {
				return fmt.Errorf("simplify: decoding AST: %w", err)
			}

			got, err := simplify.Simplify(root, opts...)
			if err != nil {
				return fmt.Errorf("simplify: %w", err)
			}

			out, err := jsonast.Marshal(got)
			if err != nil {
				return fmt.Errorf("simplify: encoding AST: %w", err)
			}
			out = append(out, '\n')

			return writeOutput(cmd, outPath, out)
		},
	}

	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "fixed-point iteration cap (default: the pass's built-in cap)")
	cmd.Flags().StringArrayVar(&disabledRules, "disable-rule", nil, "rule name to disable (repeatable)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a .simplify.yaml config file")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return ioutil.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return ioutil.WriteFile(path, data, os.FileMode(0o644))
}
