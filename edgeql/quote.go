// Copyright 2025 Gel Data Inc. and the contributors.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package edgeql

import (
	"strings"
)

// reserved is the set of reserved EdgeQL keywords; identifiers that
// collide with them must be backtick-quoted.
var reserved = map[string]struct{}{}

func init() {
	for _, kw := range []string{
		"administer", "alter", "analyze", "and", "anyarray", "anyobject",
		"anytuple", "anytype", "begin", "by", "case", "check", "commit",
		"configure", "create", "deallocate", "delete", "describe",
		"detached", "discard", "distinct", "do", "drop", "else", "end",
		"except", "exists", "explain", "extending", "false", "fetch",
		"filter", "for", "get", "global", "grant", "group", "if",
		"ilike", "import", "in", "insert", "inspect", "intersect",
		"introspect", "is", "like", "limit", "listen", "load", "lock",
		"match", "module", "move", "never", "not", "notify", "offset",
		"on", "optional", "or", "order", "over", "partition", "policy",
		"prepare", "raise", "refresh", "release", "reset", "revoke",
		"rollback", "select", "set", "single", "start", "true", "typeof",
		"union", "update", "variadic", "when", "window", "with",
	} {
		reserved[kw] = struct{}{}
	}
}

// IsReservedKeyword reports whether s (case-insensitively) is a
// reserved EdgeQL keyword.
func IsReservedKeyword(s string) bool {
	_, ok := reserved[strings.ToLower(s)]
	return ok
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func validIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentCont(s[i]) {
			return false
		}
	}
	// names of the __foo__ form are reserved for the implementation
	return !(strings.HasPrefix(s, "__") && strings.HasSuffix(s, "__"))
}

// QuoteIdent produces a textual EdgeQL identifier; the result is
// backtick-quoted if s is not a plain identifier or collides with a
// reserved keyword.
func QuoteIdent(s string) string {
	if validIdent(s) && !IsReservedKeyword(s) {
		return s
	}
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// QuoteString produces a single-quoted EdgeQL string literal.
// Only the backslash and the quote are escaped; everything else is
// legal inside an EdgeQL string as-is.
func QuoteString(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 2)
	out.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '\'' {
			out.WriteByte('\\')
		}
		out.WriteByte(c)
	}
	out.WriteByte('\'')
	return out.String()
}

const hexdigits = "0123456789abcdef"

// QuoteBytes produces an EdgeQL bytes literal (b'...'); bytes outside
// printable ASCII are emitted as \xHH escapes.
func QuoteBytes(b []byte) string {
	var out strings.Builder
	out.Grow(len(b) + 3)
	out.WriteString("b'")
	for _, c := range b {
		switch {
		case c == '\\' || c == '\'':
			out.WriteByte('\\')
			out.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			out.WriteByte(c)
		default:
			out.WriteString("\\x")
			out.WriteByte(hexdigits[c>>4])
			out.WriteByte(hexdigits[c&0xf])
		}
	}
	out.WriteByte('\'')
	return out.String()
}
