package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewrite_StripsEnglishPrefix(t *testing.T) {
	rw, err := Compile(map[string]string{"en/:rest*": ":rest*"})
	require.NoError(t, err)

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"en/guide/intro.md", "guide/intro.md", true},
		{"/en/guide/intro.md", "/guide/intro.md", true},
		{"en/index.md", "index.md", true},
		{"/en/", "/", true},
		{"/en/guide/", "/guide/", true},
		{"zh/guide/intro.md", "zh/guide/intro.md", false},
		{"english/intro.md", "english/intro.md", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := rw.Rewrite(tc.in)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRewrite_SpecificRuleWins(t *testing.T) {
	rw, err := Compile(map[string]string{
		"packages/:pkg/src/:slug*": ":pkg/:slug*",
		"packages/core/src/index.md": "index.md",
		":any*":                      "misc/:any*",
	})
	require.NoError(t, err)

	got, ok := rw.Rewrite("packages/core/src/index.md")
	require.True(t, ok)
	require.Equal(t, "index.md", got)

	got, ok = rw.Rewrite("packages/cli/src/usage/flags.md")
	require.True(t, ok)
	require.Equal(t, "cli/usage/flags.md", got)

	got, ok = rw.Rewrite("notes.md")
	require.True(t, ok)
	require.Equal(t, "misc/notes.md", got)

	rules := rw.Rules()
	require.Len(t, rules, 3)
	require.Equal(t, "packages/core/src/index.md", rules[0].Source.String())
}

func TestRewrite_Modifiers(t *testing.T) {
	rw, err := Compile(map[string]string{
		"docs/:section/:page?": "d/:section/:page?",
		"api/:path+":           "reference/:path+",
	})
	require.NoError(t, err)

	got, ok := rw.Rewrite("docs/start")
	require.True(t, ok)
	require.Equal(t, "d/start", got)

	got, ok = rw.Rewrite("docs/start/install.md")
	require.True(t, ok)
	require.Equal(t, "d/start/install.md", got)

	_, ok = rw.Rewrite("api")
	require.False(t, ok, ":path+ needs at least one segment")

	got, ok = rw.Rewrite("api/v1/users.md")
	require.True(t, ok)
	require.Equal(t, "reference/v1/users.md", got)
}

func TestCompile_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown target placeholder": {"en/:rest*": ":other*"},
		"empty placeholder name":     {"en/:": "x"},
		"duplicate placeholder":      {":a/:a": ":a"},
		"embedded placeholder":       {"en-:lang/x": "x"},
		"empty segment":              {"en//x": "x"},
	}
	for name, rewrites := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Compile(rewrites)
			require.Error(t, err)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, []string{":rest*"}, Placeholders("en/:rest*"))
	require.Equal(t, []string{":pkg", ":slug*"}, Placeholders("/packages/:pkg/src/:slug*/"))
	require.Empty(t, Placeholders("static/path"))
}

func TestRewrite_NilRewriter(t *testing.T) {
	var rw *Rewriter
	got, ok := rw.Rewrite("/en/x")
	require.False(t, ok)
	require.Equal(t, "/en/x", got)
}
