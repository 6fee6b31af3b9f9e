package simplify_test

import (
	"strings"
	"testing"

	"github.com/es-debug/luasimplify/internal/simplify"
	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	tt := []struct {
		name   string
		text   string
		first  bool
		result string
		ok     bool
	}{
		{
			name:   "first line is kept verbatim",
			text:   "#!/usr/bin/env lua   -- shebang  ",
			first:  true,
			result: "#!/usr/bin/env lua   -- shebang  ",
			ok:     true,
		},
		{
			name:   "empty first line is kept",
			text:   "",
			first:  true,
			result: "",
			ok:     true,
		},
		{
			name:   "plain line",
			text:   "print(x)",
			result: "print(x)\n",
			ok:     true,
		},
		{
			name:   "trailing comment",
			text:   "x = 1 -- set x",
			result: "x = 1\n",
			ok:     true,
		},
		{
			name:   "whitespace is collapsed",
			text:   "  local x   =\t\t1  ",
			result: "local x = 1\n",
			ok:     true,
		},
		{
			name:   "comment marker inside string literal",
			text:   `s = "a--b"`,
			result: "s = \"a\n",
			ok:     true,
		},
		{
			name:   "spaces inside string literal are collapsed",
			text:   `s = "a    b"`,
			result: "s = \"a b\"\n",
			ok:     true,
		},
		{
			name:   "comment directly after code",
			text:   "return y--done",
			result: "return y\n",
			ok:     true,
		},
		{
			name:   "ascii separators are whitespace",
			text:   "a\x1fb\x1c\x1dc",
			result: "a b c\n",
			ok:     true,
		},
		{
			name:   "unicode spaces are whitespace",
			text:   "a\u00a0\u2003b",
			result: "a b\n",
			ok:     true,
		},
		{
			name: "empty line",
			text: "",
		},
		{
			name: "whitespace only",
			text: " \t  ",
		},
		{
			name: "full line comment",
			text: "-- full line comment",
		},
		{
			name: "indented comment",
			text: "\t   -- indented",
		},
		{
			name: "ascii separators only",
			text: "\x1c\x1d\x1e\x1f",
		},
		{
			name: "block comment opener",
			text: "--[[",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := simplify.Transform(tc.text, tc.first)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.result, result)
		})
	}
}

func TestTransformOutputShape(t *testing.T) {
	lines := []string{
		"local   t = {  1,\t2 ,  3 }  -- table",
		"\t\tif a  then   b() end",
		"x=1",
		"  s = 'a--b'  ",
		"a\x1e  b\x1f",
	}

	for _, text := range lines {
		t.Run(text, func(t *testing.T) {
			result, ok := simplify.Transform(text, false)
			assert.True(t, ok)

			body, found := strings.CutSuffix(result, "\n")
			assert.True(t, found, "result must end with a newline")
			assert.NotContains(t, body, "\n")
			assert.NotContains(t, body, "  ")
			assert.Equal(t, strings.TrimSpace(body), body)

			again, ok := simplify.Transform(body, false)
			assert.True(t, ok)
			assert.Equal(t, result, again, "transform must be idempotent")
		})
	}
}
