package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Identifiers of the platform families known to the compatibility resolver.
const (
	PlatformNet        = "net"
	PlatformDnx        = "dnx"
	PlatformDnxCore    = "dnxcore"
	PlatformAspNetCore = "aspnetcore"
	PlatformCore       = "core"
	PlatformPortable   = "portable"
)

// platformFamily describes how a target consumes assets tagged for other identifiers.
type platformFamily struct {
	desktop    bool
	restricted bool
	// fallback lists the identifiers a target of this family can consume,
	// most specific first.
	fallback []string
}

var families = map[string]platformFamily{
	PlatformNet:        {desktop: true, fallback: []string{PlatformNet}},
	PlatformDnx:        {desktop: true, fallback: []string{PlatformDnx, PlatformNet}},
	PlatformDnxCore:    {restricted: true, fallback: []string{PlatformDnxCore, PlatformAspNetCore, PlatformCore}},
	PlatformAspNetCore: {restricted: true, fallback: []string{PlatformAspNetCore, PlatformCore}},
}

// long-form identifiers as written in "Identifier,Version=vX.Y".
var longIdentifiers = map[string]string{
	".netframework": PlatformNet,
	"dnx":           PlatformDnx,
	"dnxcore":       PlatformDnxCore,
	"asp.netcore":   PlatformAspNetCore,
	".netcore":      PlatformCore,
	".netportable":  PlatformPortable,
}

// TargetPlatform identifies a platform family, version and optional profile.
// The zero value is the "any platform" tag used for assets that declare no platform.
type TargetPlatform struct {
	Identifier string
	Version    string
	Profile    string
}

// AnyPlatform is the tag carried by assets that support no specific platform.
var AnyPlatform = TargetPlatform{}

// ParsePlatform parses a short name ("net45", "dnx451", "dnxcore50",
// "portable-net45+win8") or a long name ("DNX,Version=v4.5.1").
// The empty string and "any" parse to AnyPlatform.
func ParsePlatform(s string) (TargetPlatform, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "any") {
		return AnyPlatform, nil
	}
	if strings.Contains(s, ",") {
		return parseLongPlatform(s)
	}

	lower := strings.ToLower(s)
	if profile, ok := strings.CutPrefix(lower, PlatformPortable+"-"); ok {
		if profile == "" {
			return TargetPlatform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "portable profile is empty"), "platform", s)
		}
		return TargetPlatform{Identifier: PlatformPortable, Profile: profile}, nil
	}

	i := strings.IndexFunc(lower, func(r rune) bool { return r >= '0' && r <= '9' })
	if i == 0 {
		return TargetPlatform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "missing identifier"), "platform", s)
	}
	if i < 0 {
		return TargetPlatform{Identifier: lower}, nil
	}

	version, err := shortVersion(lower[i:])
	if err != nil {
		return TargetPlatform{}, zerr.With(err, "platform", s)
	}
	return TargetPlatform{Identifier: lower[:i], Version: version}, nil
}

// MustParsePlatform is like ParsePlatform but panics on error.
func MustParsePlatform(s string) TargetPlatform {
	p, err := ParsePlatform(s)
	if err != nil {
		panic(err)
	}
	return p
}

// shortVersion expands "451" to "4.5.1"; dotted input is kept as is.
func shortVersion(digits string) (string, error) {
	if strings.Contains(digits, ".") {
		if !ValidVersion(digits) {
			return "", zerr.Wrap(ErrInvalidPlatform, "invalid platform version")
		}
		return digits, nil
	}
	parts := make([]string, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", zerr.Wrap(ErrInvalidPlatform, "invalid platform version")
		}
		parts = append(parts, string(r))
	}
	if len(parts) == 1 {
		parts = append(parts, "0")
	}
	if len(parts) > 3 {
		return "", zerr.Wrap(ErrInvalidPlatform, "platform version has too many parts")
	}
	return strings.Join(parts, "."), nil
}

func parseLongPlatform(s string) (TargetPlatform, error) {
	fields := strings.Split(s, ",")
	name := strings.ToLower(strings.TrimSpace(fields[0]))

	p := TargetPlatform{Identifier: name}
	if mapped, ok := longIdentifiers[name]; ok {
		p.Identifier = mapped
	}

	for _, f := range fields[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(f), "=")
		if !ok {
			return TargetPlatform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "malformed platform component"), "platform", s)
		}
		switch strings.ToLower(key) {
		case "version":
			v := strings.TrimPrefix(strings.TrimPrefix(value, "v"), "V")
			if !ValidVersion(v) {
				return TargetPlatform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "invalid platform version"), "platform", s)
			}
			p.Version = v
		case "profile":
			p.Profile = strings.ToLower(value)
		}
	}

	if p.Identifier == PlatformPortable {
		p.Version = ""
	}
	return p, nil
}

// IsAny reports whether p is the "any platform" tag.
func (p TargetPlatform) IsAny() bool {
	return p == AnyPlatform
}

// IsPortable reports whether p names a portable profile.
func (p TargetPlatform) IsPortable() bool {
	return p.Identifier == PlatformPortable
}

// IsDesktop reports whether p belongs to a desktop family.
func (p TargetPlatform) IsDesktop() bool {
	return families[p.Identifier].desktop
}

// IsRestricted reports whether p refuses assets that declare no platform.
// Core families and portable targets are restricted.
func (p TargetPlatform) IsRestricted() bool {
	return p.IsPortable() || families[p.Identifier].restricted
}

// Members returns the platforms named by a portable profile.
func (p TargetPlatform) Members() []TargetPlatform {
	if !p.IsPortable() {
		return nil
	}
	var members []TargetPlatform
	for name := range strings.SplitSeq(p.Profile, "+") {
		m, err := ParsePlatform(name)
		if err != nil || m.IsAny() || m.IsPortable() {
			continue
		}
		members = append(members, m)
	}
	return members
}

// fallbackRank returns the position of identifier in p's fallback chain.
func (p TargetPlatform) fallbackRank(identifier string) (int, bool) {
	fam, ok := families[p.Identifier]
	if !ok {
		return 0, identifier == p.Identifier
	}
	for i, id := range fam.fallback {
		if id == identifier {
			return i, true
		}
	}
	return 0, false
}

// String renders the short name of p.
func (p TargetPlatform) String() string {
	switch {
	case p.IsAny():
		return "any"
	case p.IsPortable():
		return PlatformPortable + "-" + p.Profile
	case p.Version == "":
		return p.Identifier
	}

	parts := strings.Split(p.Version, ".")
	compact := true
	for _, part := range parts {
		if len(part) != 1 {
			compact = false
			break
		}
	}
	if !compact {
		return p.Identifier + p.Version
	}
	for len(parts) > 2 && parts[len(parts)-1] == "0" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 2 && parts[1] == "0" {
		return p.Identifier + parts[0] + "0"
	}
	return p.Identifier + strings.Join(parts, "")
}

// MarshalText implements encoding.TextMarshaler.
func (p TargetPlatform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *TargetPlatform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
