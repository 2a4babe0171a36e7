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

// Command simplify reads an ESTree-style JSON AST, runs the simplification
// pass over it, and writes the rewritten tree back out as JSON. It is
// ambient tooling around package simplify, not part of the pass itself: the
// core never touches a file or a flag.
package main

import "os"

func main() {
	os.Exit(run())
}

// run executes the command using os.Args and returns the process exit code.
// It takes no arguments so it can be registered directly with
// testscript.RunMain, which execs this binary as a subprocess named
// "simplify" and expects a func() int.
func run() int {
	cmd := newRootCmd()
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
