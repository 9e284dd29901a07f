package rewrite

import (
	"fmt"
	"sort"
	"strings"
)

// Rule is one compiled source -> target rewrite.
type Rule struct {
	Source Pattern
	Target Pattern
}

// Rewriter applies an ordered set of rules. It is immutable and safe for concurrent use.
type Rewriter struct {
	rules []Rule
}

// Compile builds a Rewriter from a source -> target map. Rules with more static
// segments (then fewer placeholders) are tried first so the most specific rule
// wins regardless of map iteration order.
func Compile(rewrites map[string]string) (*Rewriter, error) {
	rules := make([]Rule, 0, len(rewrites))
	for src, dst := range rewrites {
		sp, err := ParsePattern(src)
		if err != nil {
			return nil, fmt.Errorf("rewrite %q: %w", src, err)
		}
		tp, err := ParsePattern(dst)
		if err != nil {
			return nil, fmt.Errorf("rewrite %q: %w", src, err)
		}
		available := sp.params()
		for name := range tp.params() {
			if _, ok := available[name]; !ok {
				return nil, fmt.Errorf("rewrite %q: target %q references unknown placeholder :%s", src, dst, name)
			}
		}
		rules = append(rules, Rule{Source: sp, Target: tp})
	}

	sort.Slice(rules, func(i, j int) bool {
		a, b := rules[i].Source, rules[j].Source
		if sa, sb := a.staticCount(), b.staticCount(); sa != sb {
			return sa > sb
		}
		if pa, pb := len(a.params()), len(b.params()); pa != pb {
			return pa < pb
		}
		return a.raw < b.raw
	})
	return &Rewriter{rules: rules}, nil
}

// Rules returns the rules in evaluation order.
func (r *Rewriter) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Rewrite maps path through the first matching rule. Leading and trailing
// slashes on the input are preserved. Paths that match no rule are returned
// unchanged with ok set to false.
func (r *Rewriter) Rewrite(path string) (string, bool) {
	if r == nil {
		return path, false
	}
	leading := strings.HasPrefix(path, "/")
	trailing := len(path) > 1 && strings.HasSuffix(path, "/")

	trimmed := strings.Trim(path, "/")
	var parts []string
	if trimmed != "" {
		parts = strings.Split(trimmed, "/")
	}

	for _, rule := range r.rules {
		caps, ok := rule.Source.match(parts)
		if !ok {
			continue
		}
		out := rule.Target.expand(caps)
		if trailing && out != "" {
			out += "/"
		}
		if leading {
			out = "/" + out
		}
		return out, true
	}
	return path, false
}
