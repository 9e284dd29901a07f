package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/idna"
	"golang.org/x/text/language"

	derrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/rewrite"
)

// Issue is a single validation finding.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (i Issue) String() string { return i.Field + ": " + i.Reason }

// ValidationReport collects every issue found in a configuration.
type ValidationReport struct {
	Issues []Issue `json:"issues"`
}

// OK reports whether no issues were found.
func (r *ValidationReport) OK() bool { return r == nil || len(r.Issues) == 0 }

// Err converts the report into a validation error, or nil when OK.
func (r *ValidationReport) Err() error {
	if r.OK() {
		return nil
	}
	reasons := make([]string, 0, len(r.Issues))
	for _, is := range r.Issues {
		reasons = append(reasons, is.String())
	}
	return derrors.ValidationFailed(r.Issues[0].Field, strings.Join(reasons, "; ")).
		WithContext("issues", len(r.Issues))
}

func (r *ValidationReport) add(field, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Field: field, Reason: fmt.Sprintf(format, args...)})
}

var (
	validateOnce sync.Once
	structValid  *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		structValid = v
	})
	return structValid
}

// Validate checks cfg and returns every issue found. Field-level rules come from
// struct tags; cross-field rules (locale links, rewrite placeholders) are checked here.
func Validate(cfg *SiteConfig) *ValidationReport {
	r := &ValidationReport{}
	if cfg == nil {
		r.add("config", "configuration is nil")
		return r
	}

	validateStruct(cfg, r)
	validateSocialLinks(cfg, r)
	validateLocales(cfg, r)
	validateRewrites(cfg, r)
	validateOutline(cfg, r)

	sort.SliceStable(r.Issues, func(i, j int) bool { return r.Issues[i].Field < r.Issues[j].Field })
	return r
}

func validateStruct(cfg *SiteConfig, r *ValidationReport) {
	err := structValidator().Struct(cfg)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		r.add("config", "%v", err)
		return
	}
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			r.add(field, "is required")
		case "min":
			r.add(field, "needs at least %s entries", fe.Param())
		case "url":
			r.add(field, "must be a URL, got %q", fe.Value())
		case "startswith":
			r.add(field, "must start with %q", fe.Param())
		case "bcp47_language_tag":
			r.add(field, "must be a BCP 47 language tag, got %q", fe.Value())
		default:
			r.add(field, "failed %q check", fe.Tag())
		}
	}
}

func validateSocialLinks(cfg *SiteConfig, r *ValidationReport) {
	for i, sl := range cfg.ThemeConfig.SocialLinks {
		if sl.Link == "" {
			continue
		}
		field := fmt.Sprintf("themeConfig.socialLinks[%d].link", i)
		u, err := url.Parse(sl.Link)
		if err != nil {
			continue // reported by the url tag
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			r.add(field, "must use http or https, got %q", u.Scheme)
			continue
		}
		if u.Hostname() == "" {
			r.add(field, "must include a host")
			continue
		}
		if _, err := idna.Lookup.ToASCII(u.Hostname()); err != nil {
			r.add(field, "invalid host %q: %v", u.Hostname(), err)
		}
	}
}

func validateLocales(cfg *SiteConfig, r *ValidationReport) {
	if len(cfg.Locales) == 0 {
		return
	}
	root, ok := cfg.Locales[RootLocale]
	if !ok {
		r.add("locales", "a %q locale is required", RootLocale)
	} else if root.Link != "/" {
		r.add("locales[root].link", "root locale must link to /, got %q", root.Link)
	}

	seenTags := map[string]string{}
	for _, key := range cfg.LocaleKeys() {
		le := cfg.Locales[key]
		if key != RootLocale {
			want := "/" + key
			if le.Link != want && le.Link != want+"/" {
				r.add("locales["+key+"].link", "must be %q, got %q", want, le.Link)
			}
		}
		tag, err := language.Parse(le.Lang)
		if err != nil {
			continue // reported by the bcp47 tag
		}
		canon := tag.String()
		if other, dup := seenTags[canon]; dup {
			r.add("locales["+key+"].lang", "language %q already used by locale %q", le.Lang, other)
			continue
		}
		seenTags[canon] = key
	}
}

func validateRewrites(cfg *SiteConfig, r *ValidationReport) {
	for _, src := range cfg.RewriteSources() {
		dst := cfg.Rewrites[src]
		field := "rewrites[" + src + "]"
		if _, err := rewrite.ParsePattern(src); err != nil {
			r.add(field, "invalid source pattern: %v", err)
			continue
		}
		if _, err := rewrite.ParsePattern(dst); err != nil {
			r.add(field, "invalid target pattern: %v", err)
			continue
		}
		targets := map[string]int{}
		for _, p := range rewrite.Placeholders(dst) {
			targets[p]++
		}
		for _, p := range rewrite.Placeholders(src) {
			if n := targets[p]; n != 1 {
				r.add(field, "placeholder %s must appear exactly once in target %q, found %d", p, dst, n)
			}
		}
	}
}

func validateOutline(cfg *SiteConfig, r *ValidationReport) {
	o := cfg.ThemeConfig.Outline
	switch o.Mode {
	case "", OutlineDeep, OutlineDisabled:
		return
	case OutlineLevels:
		if o.Min < MinHeadingLevel || o.Max > MaxHeadingLevel || o.Min > o.Max {
			r.add("themeConfig.outline", "levels must satisfy %d <= min <= max <= %d, got [%d, %d]",
				MinHeadingLevel, MaxHeadingLevel, o.Min, o.Max)
		}
	default:
		r.add("themeConfig.outline", "unknown outline mode %q", o.Mode)
	}
}
