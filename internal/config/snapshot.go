package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Snapshot computes a stable hash of every configuration field. Map entries are
// hashed in sorted key order so equal configs always produce equal snapshots.
func (c *SiteConfig) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	// parts are length-prefixed
	w := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(strconv.Itoa(len(p))))
			h.Write([]byte{':'})
			h.Write([]byte(p))
		}
		h.Write([]byte{'\n'})
	}

	w("title", c.Title)
	w("description", c.Description)
	w("clean_urls", strconv.FormatBool(c.CleanURLs))
	for _, src := range c.RewriteSources() {
		w("rewrite", src, c.Rewrites[src])
	}
	for i, sl := range c.ThemeConfig.SocialLinks {
		w("social", strconv.Itoa(i), sl.Icon, sl.Link)
	}
	o := c.ThemeConfig.Outline
	w("outline", string(o.Mode), strconv.Itoa(o.Min), strconv.Itoa(o.Max), o.Label)
	for _, key := range c.LocaleKeys() {
		le := c.Locales[key]
		w("locale", key, le.Label, le.Lang, le.Link)
	}
	return hex.EncodeToString(h.Sum(nil))
}
