package domain

import "cmp"

// Variant is a group of items a package declares for one platform tag.
type Variant[T any] struct {
	Platform TargetPlatform
	Items    T
}

type matchKind int

const (
	matchDirect matchKind = iota
	matchPortable
	matchAny
)

// Specificity ranks how closely a tag fits a target. Lower is more specific.
// Order: direct family matches, then portable profiles, then "any platform";
// within a kind, earlier fallback family, then newer tag version, then the
// narrower portable profile.
type Specificity struct {
	kind    matchKind
	rank    int
	version string
	breadth int
}

// Compare orders two specificities; a negative result means s is more specific.
func (s Specificity) Compare(o Specificity) int {
	if c := cmp.Compare(s.kind, o.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(s.rank, o.rank); c != 0 {
		return c
	}
	if c := CompareVersions(platformVersion(o.version), platformVersion(s.version)); c != 0 {
		return c
	}
	return cmp.Compare(s.breadth, o.breadth)
}

// Match reports whether assets tagged with tag apply to target, and how specifically.
func Match(target, tag TargetPlatform) (Specificity, bool) {
	if tag.IsAny() {
		if target.IsRestricted() {
			return Specificity{}, false
		}
		return Specificity{kind: matchAny}, true
	}
	if target.IsAny() {
		return Specificity{}, false
	}

	if !target.IsPortable() {
		return matchConcrete(target, tag)
	}

	// A portable target needs the tag to work on every member platform.
	members := target.Members()
	if len(members) == 0 {
		return Specificity{}, false
	}
	var worst Specificity
	for i, m := range members {
		s, ok := matchConcrete(m, tag)
		if !ok {
			return Specificity{}, false
		}
		if i == 0 || s.Compare(worst) > 0 {
			worst = s
		}
	}
	return worst, true
}

func matchConcrete(target, tag TargetPlatform) (Specificity, bool) {
	if !tag.IsPortable() {
		return matchFamily(target, tag)
	}

	members := tag.Members()
	var best Specificity
	found := false
	for _, m := range members {
		s, ok := matchFamily(target, m)
		if !ok {
			continue
		}
		if !found || s.Compare(best) < 0 {
			best, found = s, true
		}
	}
	if !found {
		return Specificity{}, false
	}
	best.kind = matchPortable
	best.breadth = len(members)
	return best, true
}

// matchFamily matches a non-portable tag along the target's fallback families.
func matchFamily(target, tag TargetPlatform) (Specificity, bool) {
	rank, ok := target.fallbackRank(tag.Identifier)
	if !ok {
		return Specificity{}, false
	}
	if CompareVersions(platformVersion(tag.Version), platformVersion(target.Version)) > 0 {
		return Specificity{}, false
	}
	return Specificity{kind: matchDirect, rank: rank, version: tag.Version}, true
}

func platformVersion(v string) string {
	if v == "" {
		return "0.0"
	}
	return v
}

// Compatible reports whether assets tagged with tag apply to target.
func Compatible(target, tag TargetPlatform) bool {
	_, ok := Match(target, tag)
	return ok
}

// SelectVariant returns the items of the most specific variant compatible with target.
// When two variants are equally specific the one declared first wins.
func SelectVariant[T any](target TargetPlatform, variants []Variant[T]) (T, bool) {
	var (
		best  T
		score Specificity
		found bool
	)
	for _, v := range variants {
		s, ok := Match(target, v.Platform)
		if !ok {
			continue
		}
		if !found || s.Compare(score) < 0 {
			best, score, found = v.Items, s, true
		}
	}
	return best, found
}
