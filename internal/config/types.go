package config

// RootLocale is the locale key served at the site root.
const RootLocale = "root"

// SiteConfig is the declarative configuration handed to the site generator.
// Field names follow the generator's schema so the value serializes 1:1.
type SiteConfig struct {
	Title       string            `yaml:"title" json:"title" validate:"required"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	CleanURLs   bool              `yaml:"cleanUrls" json:"cleanUrls"`
	Rewrites    map[string]string `yaml:"rewrites,omitempty" json:"rewrites,omitempty"`
	ThemeConfig ThemeConfig       `yaml:"themeConfig" json:"themeConfig"`
	Locales     Locales           `yaml:"locales" json:"locales" validate:"required,min=1,dive"`
}

// ThemeConfig holds the default theme options.
type ThemeConfig struct {
	SocialLinks []SocialLink `yaml:"socialLinks" json:"socialLinks" validate:"required,min=1,dive"`
	Outline     Outline      `yaml:"outline,omitempty" json:"outline,omitzero"`
}

// SocialLink is an icon shown in the navigation bar.
type SocialLink struct {
	Icon string `yaml:"icon" json:"icon" validate:"required"`
	Link string `yaml:"link" json:"link" validate:"required,url"`
}

// LocaleEntry describes one language variant of the site.
type LocaleEntry struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Lang  string `yaml:"lang" json:"lang" validate:"required,bcp47_language_tag"`
	Link  string `yaml:"link" json:"link" validate:"required,startswith=/"`
}
