package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
)

func TestDefault_IsValid(t *testing.T) {
	report := Validate(Default())
	require.True(t, report.OK(), "issues: %v", report.Issues)
}

func TestDefault_LocaleLinks(t *testing.T) {
	cfg := Default()
	require.Equal(t, "/", cfg.Locales[RootLocale].Link)
	for key, le := range cfg.Locales {
		if key == RootLocale {
			continue
		}
		require.Equal(t, "/"+key, le.Link, "locale %s", key)
	}
}

func TestDefault_JapaneseLocaleUnchanged(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)
	require.Equal(t, LocaleEntry{Label: "日本語", Lang: "ja-JP", Link: "/ja"}, cfg.Locales["ja"])
}

func TestDefault_FreshValuePerCall(t *testing.T) {
	a := Default()
	a.Locales["ja"] = LocaleEntry{Label: "changed"}
	a.ThemeConfig.SocialLinks[0].Icon = "changed"
	a.Rewrites["x"] = "y"

	b := Default()
	require.Equal(t, "日本語", b.Locales["ja"].Label)
	require.Equal(t, "github", b.ThemeConfig.SocialLinks[0].Icon)
	require.NotContains(t, b.Rewrites, "x")
}

func TestLoad_MatchesDefault(t *testing.T) {
	for _, name := range []string{"site.yaml", "site.json"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(Default(), cfg); diff != "" {
				t.Fatalf("loaded config differs from default (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Idempotent(t *testing.T) {
	path := filepath.Join("testdata", "site.yaml")
	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("reload differs (-first +second):\n%s", diff)
	}
	require.Equal(t, first.Snapshot(), second.Snapshot())
}

func TestLoad_DuplicateLocaleKeyRejected(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate_locale.yaml"))
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
	require.Contains(t, err.Error(), "already defined")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestLoad_InvalidReturnsValidationError(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryValidation))
}

func TestDecode_UnknownFieldRejected(t *testing.T) {
	_, err := Decode(strings.NewReader("title: x\nthemes: {}\n"))
	require.Error(t, err)
}

func TestDecode_EmptyDocument(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
}

func TestDecode_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCSITE_TITLE", "From Env")
	cfg, err := Decode(strings.NewReader("title: ${DOCSITE_TITLE}\nlocales: {}\n"))
	require.NoError(t, err)
	require.Equal(t, "From Env", cfg.Title)
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, Default(), format))

			got, err := Decode(&buf)
			require.NoError(t, err)
			if diff := cmp.Diff(Default(), got); diff != "" {
				t.Fatalf("round trip differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	require.Error(t, Encode(&bytes.Buffer{}, Default(), Format("toml")))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().Snapshot(), cfg.Snapshot())

	err = Init(path, false)
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryConfig))

	require.NoError(t, os.WriteFile(path, []byte("title: old\n"), 0o644))
	require.NoError(t, Init(path, true))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "Docsite", cfg.Title)
}

func TestClone_IsDeep(t *testing.T) {
	orig := Default()
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs:\n%s", diff)
	}

	c.Locales["zh"] = LocaleEntry{Label: "x", Lang: "zh", Link: "/zh"}
	c.Rewrites["a"] = "b"
	c.ThemeConfig.SocialLinks[0].Link = "https://example.com"

	require.Equal(t, "简体中文", orig.Locales["zh"].Label)
	require.NotContains(t, orig.Rewrites, "a")
	require.Equal(t, "https://github.com/docsite/docsite", orig.ThemeConfig.SocialLinks[0].Link)

	var nilCfg *SiteConfig
	require.Nil(t, nilCfg.Clone())
}

func TestLocaleKeys_RootFirst(t *testing.T) {
	require.Equal(t, []string{"root", "fr", "ja", "zh"}, Default().LocaleKeys())
}

func TestEncode_LocalesRootFirst(t *testing.T) {
	markers := map[Format]func(key string) string{
		FormatYAML: func(key string) string { return "\n  " + key + ":\n" },
		FormatJSON: func(key string) string { return `"` + key + `": {` },
	}
	for format, marker := range markers {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, Default(), format))
		out := buf.String()

		prev := -1
		for _, key := range []string{"root", "fr", "ja", "zh"} {
			idx := strings.Index(out, marker(key))
			require.Greater(t, idx, prev, "%s: locale %s out of order", format, key)
			prev = idx
		}
	}
}
