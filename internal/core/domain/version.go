package domain

import (
	"cmp"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// packageVersion is a parsed package version: one to four numeric parts and an
// optional prerelease label. Build metadata is dropped.
type packageVersion struct {
	parts [4]string
	pre   string
}

func parseVersion(v string) (packageVersion, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	v, _, _ = strings.Cut(v, "+")
	numbers, pre, hasPre := strings.Cut(v, "-")

	var pv packageVersion
	// Prerelease labels follow semver rules.
	if hasPre {
		if !semver.IsValid("v0.0.0-" + pre) {
			return pv, false
		}
		pv.pre = pre
	}

	parts := strings.Split(numbers, ".")
	if len(parts) > len(pv.parts) {
		return pv, false
	}
	for i, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return pv, false
		}
		pv.parts[i] = strings.TrimLeft(p, "0")
	}
	return pv, true
}

func compareNumeric(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func (v packageVersion) compare(o packageVersion) int {
	for i := range v.parts {
		if c := compareNumeric(v.parts[i], o.parts[i]); c != 0 {
			return c
		}
	}
	switch {
	case v.pre == o.pre:
		return 0
	case v.pre == "":
		return 1
	case o.pre == "":
		return -1
	}
	return semver.Compare("v0.0.0-"+v.pre, "v0.0.0-"+o.pre)
}

// ValidVersion reports whether v is a usable package version, such as
// "1.0", "4.0.0.0" or "1.0-beta".
func ValidVersion(v string) bool {
	_, ok := parseVersion(v)
	return ok
}

// CompareVersions orders two package versions. Missing parts count as zero.
// Invalid versions sort before valid ones.
func CompareVersions(a, b string) int {
	va, okA := parseVersion(a)
	vb, okB := parseVersion(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return va.compare(vb)
}

// VersionRange is a NuGet-style version interval.
//
//	1.0        at least 1.0
//	[1.0]      exactly 1.0
//	[1.0,2.0)  1.0 up to but excluding 2.0
//	(,2.0]     anything up to 2.0
//
// An empty Min or Max leaves that side unbounded.
type VersionRange struct {
	Min          string
	Max          string
	MinInclusive bool
	MaxInclusive bool
}

// AnyVersion matches every version.
var AnyVersion = VersionRange{}

// AtLeast returns the range accepting v and anything newer.
func AtLeast(v string) VersionRange {
	return VersionRange{Min: v, MinInclusive: true}
}

// Exactly returns the range accepting only v.
func Exactly(v string) VersionRange {
	return VersionRange{Min: v, Max: v, MinInclusive: true, MaxInclusive: true}
}

// ParseVersionRange parses the NuGet range syntax.
func ParseVersionRange(s string) (VersionRange, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return AnyVersion, nil
	}

	if s[0] != '[' && s[0] != '(' {
		if !ValidVersion(s) {
			return VersionRange{}, zerr.With(zerr.Wrap(ErrInvalidVersionRange, "version is not valid"), "range", s)
		}
		return AtLeast(s), nil
	}

	last := s[len(s)-1]
	if len(s) < 3 || (last != ']' && last != ')') {
		return VersionRange{}, zerr.With(zerr.Wrap(ErrInvalidVersionRange, "unterminated interval"), "range", s)
	}

	r := VersionRange{
		MinInclusive: s[0] == '[',
		MaxInclusive: last == ']',
	}
	body := s[1 : len(s)-1]

	lo, hi, isInterval := strings.Cut(body, ",")
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if !isInterval {
		if !r.MinInclusive || !r.MaxInclusive || !ValidVersion(lo) {
			return VersionRange{}, zerr.With(zerr.Wrap(ErrInvalidVersionRange, "exact version must use [x]"), "range", s)
		}
		return Exactly(lo), nil
	}

	if lo != "" && !ValidVersion(lo) {
		return VersionRange{}, zerr.With(zerr.Wrap(ErrInvalidVersionRange, "invalid lower bound"), "range", s)
	}
	if hi != "" && !ValidVersion(hi) {
		return VersionRange{}, zerr.With(zerr.Wrap(ErrInvalidVersionRange, "invalid upper bound"), "range", s)
	}
	if lo != "" && hi != "" && CompareVersions(lo, hi) > 0 {
		return VersionRange{}, zerr.With(zerr.Wrap(ErrInvalidVersionRange, "lower bound exceeds upper bound"), "range", s)
	}

	r.Min, r.Max = lo, hi
	if lo == "" {
		r.MinInclusive = false
	}
	if hi == "" {
		r.MaxInclusive = false
	}
	return r, nil
}

// MustParseVersionRange is like ParseVersionRange but panics on error.
func MustParseVersionRange(s string) VersionRange {
	r, err := ParseVersionRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Satisfies reports whether v lies inside the range.
func (r VersionRange) Satisfies(v string) bool {
	if !ValidVersion(v) {
		return false
	}
	if r.Min != "" {
		c := CompareVersions(v, r.Min)
		if c < 0 || (c == 0 && !r.MinInclusive) {
			return false
		}
	}
	if r.Max != "" {
		c := CompareVersions(v, r.Max)
		if c > 0 || (c == 0 && !r.MaxInclusive) {
			return false
		}
	}
	return true
}

// IsAny reports whether the range has no bounds.
func (r VersionRange) IsAny() bool {
	return r.Min == "" && r.Max == ""
}

// String renders the range in the syntax accepted by ParseVersionRange.
func (r VersionRange) String() string {
	switch {
	case r.IsAny():
		return ""
	case r.Max == "" && r.MinInclusive:
		return r.Min
	case r.Min == r.Max && r.MinInclusive && r.MaxInclusive:
		return "[" + r.Min + "]"
	}

	var b strings.Builder
	if r.MinInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(r.Min)
	b.WriteString(", ")
	b.WriteString(r.Max)
	if r.MaxInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r VersionRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *VersionRange) UnmarshalText(text []byte) error {
	parsed, err := ParseVersionRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
