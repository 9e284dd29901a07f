package export

import (
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// Hugo renders the config as a hugo.yaml site configuration.
type Hugo struct{}

func (Hugo) Name() string     { return "hugo" }
func (Hugo) FileName() string { return "hugo.yaml" }

// hugoLanguageKey maps a locale key to the Hugo language key. The root locale
// uses the base language of its tag.
func hugoLanguageKey(key string, le config.LocaleEntry) (string, error) {
	if key != config.RootLocale {
		return key, nil
	}
	tag, err := language.Parse(le.Lang)
	if err != nil {
		return "", fmt.Errorf("root locale: %w", err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

func (Hugo) Render(cfg *config.SiteConfig) ([]byte, error) {
	params := map[string]any{
		"description": cfg.Description,
	}
	root := map[string]any{
		"title":    cfg.Title,
		"uglyURLs": !cfg.CleanURLs,
		"params":   params,
	}

	// Languages: root locale becomes the default content language.
	languages := map[string]any{}
	seen := map[string]string{}
	for i, key := range cfg.LocaleKeys() {
		le := cfg.Locales[key]
		hk, err := hugoLanguageKey(key, le)
		if err != nil {
			return nil, err
		}
		if other, dup := seen[hk]; dup {
			return nil, fmt.Errorf("locales %q and %q both map to Hugo language %q", other, key, hk)
		}
		seen[hk] = key
		languages[hk] = map[string]any{
			"languageName": le.Label,
			"languageCode": le.Lang,
			"weight":       i + 1,
			"contentDir":   "content/" + hk,
		}
		if key == config.RootLocale {
			root["defaultContentLanguage"] = hk
			root["languageCode"] = le.Lang
		}
	}
	if len(languages) > 0 {
		root["languages"] = languages
		root["defaultContentLanguageInSubdir"] = false
	}

	// Outline -> table of contents.
	if lo, hi, ok := cfg.ThemeConfig.Outline.Levels(); ok {
		root["markup"] = map[string]any{
			"tableOfContents": map[string]any{"startLevel": lo, "endLevel": hi, "ordered": false},
		}
		params["toc"] = true
	} else {
		params["toc"] = false
	}
	if cfg.ThemeConfig.Outline.Label != "" {
		params["tocLabel"] = cfg.ThemeConfig.Outline.Label
	}

	// Social links -> main menu entries with icons.
	if n := len(cfg.ThemeConfig.SocialLinks); n > 0 {
		mainMenu := make([]map[string]any, 0, n)
		for i, sl := range cfg.ThemeConfig.SocialLinks {
			mainMenu = append(mainMenu, map[string]any{
				"name":   sl.Icon,
				"url":    sl.Link,
				"weight": 100 + i,
				"params": map[string]any{"icon": sl.Icon},
			})
		}
		root["menu"] = map[string]any{"main": mainMenu}
	}

	if len(cfg.Rewrites) > 0 {
		params["rewrites"] = cfg.Rewrites
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Hugo config: %w", err)
	}
	return data, nil
}
