package locale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/config"
)

func newDefaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(config.Default().Locales)
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	r := newDefaultResolver(t)

	cases := map[string]string{
		"/":               "root",
		"/guide/intro":    "root",
		"/ja":             "ja",
		"/ja/":            "ja",
		"/ja/guide/intro": "ja",
		"zh/guide":        "zh",
		"/fr/index.html":  "fr",
		"/japan/travel":   "root",
		"/french":         "root",
	}
	for path, want := range cases {
		require.Equal(t, want, r.Resolve(path), "path %s", path)
	}
}

func TestSplit(t *testing.T) {
	r := newDefaultResolver(t)

	key, rest := r.Split("/ja/guide/intro")
	require.Equal(t, "ja", key)
	require.Equal(t, "/guide/intro", rest)

	key, rest = r.Split("/ja")
	require.Equal(t, "ja", key)
	require.Equal(t, "/", rest)

	key, rest = r.Split("guide")
	require.Equal(t, "root", key)
	require.Equal(t, "/guide", rest)
}

func TestResolve_LongestPrefixWins(t *testing.T) {
	r, err := NewResolver(map[string]config.LocaleEntry{
		"root":  {Label: "English", Lang: "en", Link: "/"},
		"pt":    {Label: "Português", Lang: "pt-PT", Link: "/pt"},
		"pt/br": {Label: "Português (Brasil)", Lang: "pt-BR", Link: "/pt/br/"},
	})
	require.NoError(t, err)
	require.Equal(t, "pt/br", r.Resolve("/pt/br/guide"))
	require.Equal(t, "pt", r.Resolve("/pt/guide"))
}

func TestLocalize(t *testing.T) {
	r := newDefaultResolver(t)
	require.Equal(t, "/ja/guide/intro", r.Localize("ja", "/guide/intro"))
	require.Equal(t, "/guide/intro", r.Localize("root", "guide/intro"))
	require.Equal(t, "/guide", r.Localize("unknown", "/guide"))
}

func TestNegotiate(t *testing.T) {
	r := newDefaultResolver(t)

	cases := map[string]string{
		"":                         "root",
		"ja,en;q=0.8":              "ja",
		"ja-JP":                    "ja",
		"fr-CA,fr;q=0.9,en;q=0.5": "fr",
		"zh-CN":                    "zh",
		"en-GB":                    "root",
		"not a header;;;":          "root",
	}
	for header, want := range cases {
		require.Equal(t, want, r.Negotiate(header), "header %q", header)
	}
}

func TestEntry_JapaneseUnchanged(t *testing.T) {
	r := newDefaultResolver(t)
	le, ok := r.Entry("ja")
	require.True(t, ok)
	require.Equal(t, config.LocaleEntry{Label: "日本語", Lang: "ja-JP", Link: "/ja"}, le)
}

func TestNewResolver_Errors(t *testing.T) {
	_, err := NewResolver(map[string]config.LocaleEntry{"ja": {Lang: "ja"}})
	require.Error(t, err)

	_, err = NewResolver(map[string]config.LocaleEntry{
		"root": {Lang: "en"},
		"xx":   {Lang: "!!"},
	})
	require.Error(t, err)
}

func TestKeys(t *testing.T) {
	require.Equal(t, []string{"root", "fr", "ja", "zh"}, newDefaultResolver(t).Keys())
}
