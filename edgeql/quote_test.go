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
	"testing"
)

func TestQuoteIdent(t *testing.T) {
	testcases := []struct {
		in   string
		want string
	}{
		{"title", "title"},
		{"_private", "_private"},
		{"x2", "x2"},
		{"select", "`select`"},
		{"SELECT", "`SELECT`"},
		{"with space", "`with space`"},
		{"2fast", "`2fast`"},
		{"", "``"},
		{"__type__", "`__type__`"},
		{"back`tick", "`back``tick`"},
		{"naïve", "`naïve`"},
	}
	for i := range testcases {
		got := QuoteIdent(testcases[i].in)
		if got != testcases[i].want {
			t.Errorf("testcase %d: QuoteIdent(%q) = %q, want %q",
				i, testcases[i].in, got, testcases[i].want)
		}
	}
}

func TestQuoteString(t *testing.T) {
	testcases := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"hello", "'hello'"},
		{"it's", `'it\'s'`},
		{`back\slash`, `'back\\slash'`},
		{"tab\tstays", "'tab\tstays'"},
		{"ünïcode", "'ünïcode'"},
	}
	for i := range testcases {
		got := QuoteString(testcases[i].in)
		if got != testcases[i].want {
			t.Errorf("testcase %d: QuoteString(%q) = %q, want %q",
				i, testcases[i].in, got, testcases[i].want)
		}
	}
}

func TestQuoteBytes(t *testing.T) {
	testcases := []struct {
		in   []byte
		want string
	}{
		{nil, "b''"},
		{[]byte("abc"), "b'abc'"},
		{[]byte{'a', 0x00, 0xff}, `b'a\x00\xff'`},
		{[]byte("it's"), `b'it\'s'`},
		{[]byte{'\n'}, `b'\x0a'`},
	}
	for i := range testcases {
		got := QuoteBytes(testcases[i].in)
		if got != testcases[i].want {
			t.Errorf("testcase %d: QuoteBytes(%q) = %q, want %q",
				i, testcases[i].in, got, testcases[i].want)
		}
	}
}

func TestIsReservedKeyword(t *testing.T) {
	for _, kw := range []string{"select", "SELECT", "Filter", "union"} {
		if !IsReservedKeyword(kw) {
			t.Errorf("%q not recognized as reserved", kw)
		}
	}
	for _, s := range []string{"title", "selectx", ""} {
		if IsReservedKeyword(s) {
			t.Errorf("%q wrongly recognized as reserved", s)
		}
	}
}
