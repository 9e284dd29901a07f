package export

import (
	"bytes"
	"encoding/json"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// VitePress renders the config as an ES module whose default export is the
// configuration object.
type VitePress struct{}

func (VitePress) Name() string     { return "vitepress" }
func (VitePress) FileName() string { return ".vitepress/config.mts" }

func (VitePress) Render(cfg *config.SiteConfig) ([]byte, error) {
	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.WriteString("import { defineConfig } from 'vitepress'\n\n")
	out.WriteString("export default defineConfig(")
	out.Write(bytes.TrimRight(body.Bytes(), "\n"))
	out.WriteString(")\n")
	return out.Bytes(), nil
}
