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

package rewrite

import (
	"sort"

	"github.com/mpvl/unique"
)

// tracker collects the names of every rule invoked during one Apply pass.
// It records an invocation whether or not the rule actually fired, which is
// cheap and good enough for the diagnostic use this serves: telling an
// embedder which rules were live during a pass, not which of them changed
// something.
type tracker struct {
	names   []string
	running string
}

func (t *tracker) record(name string) {
	t.names = append(t.names, name)
	t.running = name
}

// current returns the name of the rule whose HookFunc started most recently
// (running is not cleared when a hook returns), or "" before any hook has
// run. apply reads this from inside a recover to attribute a Cursor
// precondition panic to the rule that triggered it.
func (t *tracker) current() string {
	return t.running
}

// dedupedNames returns the sorted, duplicate-free set of rules recorded so far.
func (t *tracker) dedupedNames() []string {
	if len(t.names) == 0 {
		return nil
	}
	cp := append([]string(nil), t.names...)
	ss := sort.StringSlice(cp)
	n := unique.Sort(ss)
	return ss[:n]
}

func (t *tracker) reset() {
	t.names = t.names[:0]
}
