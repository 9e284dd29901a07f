// Package locale maps request paths and Accept-Language headers to configured locales.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// Resolver answers locale questions for a fixed set of locale entries.
// It is immutable and safe for concurrent use.
type Resolver struct {
	entries map[string]config.LocaleEntry
	// non-root keys ordered by link length (longest first)
	byPrefix []string
	tagKeys  []string
	tags     []language.Tag
	matcher  language.Matcher
}

// NewResolver builds a Resolver. A root locale is required and every lang
// must parse as a BCP 47 tag.
func NewResolver(locales map[string]config.LocaleEntry) (*Resolver, error) {
	rootEntry, ok := locales[config.RootLocale]
	if !ok {
		return nil, fmt.Errorf("missing %q locale", config.RootLocale)
	}

	r := &Resolver{entries: make(map[string]config.LocaleEntry, len(locales))}
	rootTag, err := language.Parse(rootEntry.Lang)
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", config.RootLocale, err)
	}
	// root first so it is the matcher's fallback
	r.tagKeys = append(r.tagKeys, config.RootLocale)
	r.tags = append(r.tags, rootTag)
	r.entries[config.RootLocale] = rootEntry

	keys := make([]string, 0, len(locales))
	for k := range locales {
		if k != config.RootLocale {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		le := locales[k]
		tag, err := language.Parse(le.Lang)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", k, err)
		}
		r.entries[k] = le
		r.tagKeys = append(r.tagKeys, k)
		r.tags = append(r.tags, tag)
		r.byPrefix = append(r.byPrefix, k)
	}
	sort.SliceStable(r.byPrefix, func(i, j int) bool {
		return len(linkPrefix(r.entries[r.byPrefix[i]].Link)) > len(linkPrefix(r.entries[r.byPrefix[j]].Link))
	})
	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

func linkPrefix(link string) string {
	return "/" + strings.Trim(link, "/")
}

func normalize(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// Entry returns the entry for key.
func (r *Resolver) Entry(key string) (config.LocaleEntry, bool) {
	le, ok := r.entries[key]
	return le, ok
}

// Resolve returns the locale key owning path. The longest matching locale link
// wins; paths outside every locale prefix belong to the root locale.
func (r *Resolver) Resolve(path string) string {
	key, _ := r.Split(path)
	return key
}

// Split returns the owning locale key and the path relative to that locale's link.
func (r *Resolver) Split(path string) (string, string) {
	p := normalize(path)
	for _, k := range r.byPrefix {
		prefix := linkPrefix(r.entries[k].Link)
		if p == prefix {
			return k, "/"
		}
		if strings.HasPrefix(p, prefix+"/") {
			return k, strings.TrimPrefix(p, prefix)
		}
	}
	return config.RootLocale, p
}

// Localize prefixes a root-relative path with the link of locale key.
// Unknown keys resolve to the root locale.
func (r *Resolver) Localize(key, path string) string {
	le, ok := r.entries[key]
	if !ok {
		le = r.entries[config.RootLocale]
	}
	prefix := strings.TrimSuffix(le.Link, "/")
	rel := strings.TrimPrefix(path, "/")
	return prefix + "/" + rel
}

// Negotiate picks the locale best matching an Accept-Language header value.
// Unparseable or unmatched headers fall back to the root locale.
func (r *Resolver) Negotiate(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return config.RootLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return config.RootLocale
	}
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return config.RootLocale
	}
	return r.tagKeys[idx]
}

// Keys returns the locale keys in matcher order (root first, then sorted).
func (r *Resolver) Keys() []string {
	return append([]string(nil), r.tagKeys...)
}
