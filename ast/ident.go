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

package ast

import (
	"unicode"
	"unicode/utf8"
)

// keywords that may never be used as a bare identifier, even though they are
// otherwise spelled like one. R2 and R3 must not turn a string literal key
// or property name into one of these.
var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "export": true,
	"extends": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true,
	"new": true, "return": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
	"let": true, "static": true, "yield": true, "await": true,
	"enum": true, "null": true, "true": true, "false": true,
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') ||
		(r >= utf8.RuneSelf && unicode.IsLetter(r))
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || ('0' <= r && r <= '9') ||
		(r >= utf8.RuneSelf && unicode.IsDigit(r))
}

// IsValidIdentifier reports whether s could be written as a bare identifier
// in the target grammar: a non-empty, non-keyword run of identifier
// characters starting with an identifier-start character. R2 (property key
// literal to identifier) and R3 (computed member access to dotted) both
// gate on this.
func IsValidIdentifier(s string) bool {
	if s == "" || keywords[s] {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}
