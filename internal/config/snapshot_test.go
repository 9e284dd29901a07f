package config

import "testing"

func TestSnapshotStableAcrossCalls(t *testing.T) {
	a := Default().Snapshot()
	b := Default().Snapshot()
	if a != b {
		t.Fatalf("expected snapshots equal, got\nA=%s\nB=%s", a, b)
	}
	if a == "" {
		t.Fatal("expected non-empty snapshot")
	}
}

func TestSnapshotDetectsMeaningfulChange(t *testing.T) {
	base := Default().Snapshot()

	mutations := map[string]func(*SiteConfig){
		"title":    func(c *SiteConfig) { c.Title = "Other" },
		"cleanUrl": func(c *SiteConfig) { c.CleanURLs = false },
		"rewrite":  func(c *SiteConfig) { c.Rewrites["fr/:rest*"] = "fr/:rest*" },
		"outline":  func(c *SiteConfig) { c.ThemeConfig.Outline = LevelOutline(2, 3) },
		"locale":   func(c *SiteConfig) { c.Locales["ja"] = LocaleEntry{Label: "Japanese", Lang: "ja-JP", Link: "/ja"} },
		"social":   func(c *SiteConfig) { c.ThemeConfig.SocialLinks[0].Icon = "gitlab" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(c)
			if c.Snapshot() == base {
				t.Fatalf("expected snapshot change after %s modification", name)
			}
		})
	}
}

func TestSnapshotNil(t *testing.T) {
	var c *SiteConfig
	if c.Snapshot() != "" {
		t.Fatal("nil config should have empty snapshot")
	}
}

func TestSnapshotSeparatorsDoNotCollide(t *testing.T) {
	a := Default()
	a.Rewrites = map[string]string{"docs=en": "guide"}
	b := Default()
	b.Rewrites = map[string]string{"docs": "en=guide"}
	if a.Snapshot() == b.Snapshot() {
		t.Fatal("expected distinct snapshots for rewrites differing only in separator placement")
	}

	c := Default()
	c.Title, c.Description = "Docs", "x"
	d := Default()
	d.Title, d.Description = "Docs\x00", ""
	if c.Snapshot() == d.Snapshot() {
		t.Fatal("expected distinct snapshots for shifted field boundaries")
	}
}
