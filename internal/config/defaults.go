package config

// Default returns the built-in site configuration. Every call builds a fresh
// value, so callers may modify the result without affecting later calls.
func Default() *SiteConfig {
	return &SiteConfig{
		Title:       "Docsite",
		Description: "Multilingual documentation built from one source tree",
		CleanURLs:   true,
		Rewrites: map[string]string{
			// English sources live under en/ but are served from the root.
			"en/:rest*": ":rest*",
		},
		ThemeConfig: ThemeConfig{
			SocialLinks: []SocialLink{
				{Icon: "github", Link: "https://github.com/docsite/docsite"},
			},
			Outline: DeepOutline(),
		},
		Locales: map[string]LocaleEntry{
			RootLocale: {Label: "English", Lang: "en-US", Link: "/"},
			"zh":       {Label: "简体中文", Lang: "zh-CN", Link: "/zh"},
			"fr":       {Label: "Français", Lang: "fr-FR", Link: "/fr"},
			"ja":       {Label: "日本語", Lang: "ja-JP", Link: "/ja"},
		},
	}
}
