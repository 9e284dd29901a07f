// Package rewrite implements the generator's path rewrite rules.
//
// A pattern is a slash separated list of segments. A segment is either static
// text or a placeholder: ":name" matches one segment, ":name*" zero or more,
// ":name+" one or more and ":name?" zero or one.
package rewrite

import (
	"fmt"
	"strings"
)

type modifier byte

const (
	modOne      modifier = 0
	modZeroMore modifier = '*'
	modOneMore  modifier = '+'
	modOptional modifier = '?'
)

type segment struct {
	static string
	name   string
	mod    modifier
	raw    string
}

func (s segment) isParam() bool { return s.name != "" }

// Pattern is a parsed rewrite pattern.
type Pattern struct {
	raw      string
	segments []segment
}

// String returns the pattern as written.
func (p Pattern) String() string { return p.raw }

// ParsePattern parses a rewrite pattern. Leading and trailing slashes are ignored.
func ParsePattern(pattern string) (Pattern, error) {
	p := Pattern{raw: pattern}
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		return p, nil
	}
	seen := map[string]bool{}
	for _, part := range strings.Split(trimmed, "/") {
		if part == "" {
			return p, fmt.Errorf("empty segment in %q", pattern)
		}
		if !strings.HasPrefix(part, ":") {
			if strings.Contains(part, ":") {
				return p, fmt.Errorf("placeholder must span a whole segment in %q", pattern)
			}
			p.segments = append(p.segments, segment{static: part, raw: part})
			continue
		}
		seg := segment{raw: part}
		name := part[1:]
		if n := len(name); n > 0 {
			switch modifier(name[n-1]) {
			case modZeroMore, modOneMore, modOptional:
				seg.mod = modifier(name[n-1])
				name = name[:n-1]
			}
		}
		if !validName(name) {
			return p, fmt.Errorf("invalid placeholder %q in %q", part, pattern)
		}
		if seen[name] {
			return p, fmt.Errorf("placeholder :%s used twice in %q", name, pattern)
		}
		seen[name] = true
		seg.name = name
		p.segments = append(p.segments, seg)
	}
	return p, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// Placeholders returns the placeholder tokens of pattern as written (for
// example ":rest*"), in order of appearance. Malformed segments are skipped.
func Placeholders(pattern string) []string {
	var out []string
	for _, part := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if strings.HasPrefix(part, ":") {
			out = append(out, part)
		}
	}
	return out
}

// params returns the placeholder names in the pattern.
func (p Pattern) params() map[string]modifier {
	out := map[string]modifier{}
	for _, s := range p.segments {
		if s.isParam() {
			out[s.name] = s.mod
		}
	}
	return out
}

func (p Pattern) staticCount() int {
	n := 0
	for _, s := range p.segments {
		if !s.isParam() {
			n++
		}
	}
	return n
}

// match binds path segments to placeholders. Variadic placeholders are matched
// greedily with backtracking.
func (p Pattern) match(parts []string) (map[string][]string, bool) {
	caps := map[string][]string{}
	if matchSegments(p.segments, parts, caps) {
		return caps, true
	}
	return nil, false
}

func matchSegments(segs []segment, parts []string, caps map[string][]string) bool {
	if len(segs) == 0 {
		return len(parts) == 0
	}
	s := segs[0]
	if !s.isParam() {
		if len(parts) == 0 || parts[0] != s.static {
			return false
		}
		return matchSegments(segs[1:], parts[1:], caps)
	}

	lo, hi := 1, 1
	switch s.mod {
	case modZeroMore:
		lo, hi = 0, len(parts)
	case modOneMore:
		lo, hi = 1, len(parts)
	case modOptional:
		lo, hi = 0, 1
	}
	if hi > len(parts) {
		hi = len(parts)
	}
	for n := hi; n >= lo; n-- {
		if matchSegments(segs[1:], parts[n:], caps) {
			caps[s.name] = append([]string(nil), parts[:n]...)
			return true
		}
	}
	return false
}

// expand renders the pattern using captured values.
func (p Pattern) expand(caps map[string][]string) string {
	out := make([]string, 0, len(p.segments))
	for _, s := range p.segments {
		if s.isParam() {
			out = append(out, caps[s.name]...)
			continue
		}
		out = append(out, s.static)
	}
	return strings.Join(out, "/")
}
