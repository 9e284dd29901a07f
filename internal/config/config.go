package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Format selects the serialization used by Encode.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Load reads, decodes and validates the configuration file at path.
func Load(path string) (*SiteConfig, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if report := Validate(cfg); !report.OK() {
		return nil, report.Err()
	}
	return cfg, nil
}

// Read decodes the configuration file at path without validating it.
// Variables from .env files are loaded first and ${VAR} references are expanded.
func Read(path string) (*SiteConfig, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", logfields.Error(err))
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, derrors.ConfigDecode(path, err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := Decode(f)
	if err != nil {
		return nil, derrors.ConfigDecode(path, err)
	}
	return cfg, nil
}

// Decode parses a YAML or JSON document. Unknown and duplicate keys are rejected.
func Decode(r io.Reader) (*SiteConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)

	var cfg SiteConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty configuration document")
		}
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Encode writes cfg to w in the requested format.
func Encode(w io.Writer, cfg *SiteConfig, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(cfg)
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Init writes the built-in configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ConfigExists(configPath)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, Default(), FormatYAML); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0o644); err != nil {
		return derrors.WriteFailed(configPath, err)
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *SiteConfig) Clone() *SiteConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.Rewrites != nil {
		out.Rewrites = make(map[string]string, len(c.Rewrites))
		for k, v := range c.Rewrites {
			out.Rewrites[k] = v
		}
	}
	if c.ThemeConfig.SocialLinks != nil {
		out.ThemeConfig.SocialLinks = append([]SocialLink(nil), c.ThemeConfig.SocialLinks...)
	}
	if c.Locales != nil {
		out.Locales = make(Locales, len(c.Locales))
		for k, v := range c.Locales {
			out.Locales[k] = v
		}
	}
	return &out
}

// LocaleKeys returns the locale keys with the root locale first and the rest sorted.
func (c *SiteConfig) LocaleKeys() []string { return c.Locales.Keys() }

// RewriteSources returns the rewrite source patterns in sorted order.
func (c *SiteConfig) RewriteSources() []string {
	keys := make([]string, 0, len(c.Rewrites))
	for k := range c.Rewrites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
