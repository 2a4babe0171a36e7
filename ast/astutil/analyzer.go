// Copyright 2018 The CUE Authors
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

package astutil

import "corelang.org/simplify/ast"

// Analyzer is the scope analyzer's contract with the walker (§6). The core
// never computes purity, type identity, or completion-record status itself;
// it only asks. internal/analysis provides a conservative, self-contained
// implementation; embedders with a real scope analyzer can supply their own.
type Analyzer interface {
	// IsPure reports whether evaluating e has no side effects and cannot
	// throw.
	IsPure(e ast.Expr) bool

	// BaseTypeMatches reports whether a and b are provably the same
	// primitive type tag on every execution.
	BaseTypeMatches(a, b ast.Expr) bool

	// IsCompletionRecord reports whether the statement at c's current
	// position may have its value observed by the enclosing construct.
	IsCompletionRecord(c *Cursor) bool
}
