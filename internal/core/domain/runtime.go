package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// RuntimeNamePrefix starts every runtime name, e.g. "dnx-clr-win-x86.1.0.0".
	RuntimeNamePrefix = "dnx-"

	// ActiveRuntimeAlias asks for the runtime bundle itself runs under.
	ActiveRuntimeAlias = "active"

	// DefaultRuntimeName picks the platform used when neither runtimes nor platforms are given.
	DefaultRuntimeName = "dnx-clr-win-x86.1.0.0"
)

// PlatformForRuntime derives the target platform a runtime executes.
// "dnx-coreclr-*" runs dnxcore50; any other "dnx-<flavor>-*" runs dnx451.
func PlatformForRuntime(name string) (TargetPlatform, error) {
	base := strings.ToLower(filepath.Base(name))
	rest, ok := strings.CutPrefix(base, RuntimeNamePrefix)
	if !ok {
		return TargetPlatform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "not a runtime name"), "runtime", name)
	}
	flavor := rest
	if i := strings.IndexAny(rest, "-."); i >= 0 {
		flavor = rest[:i]
	}
	switch flavor {
	case "coreclr":
		return TargetPlatform{Identifier: PlatformDnxCore, Version: "5.0"}, nil
	case "clr", "mono":
		return TargetPlatform{Identifier: PlatformDnx, Version: "4.5.1"}, nil
	default:
		return TargetPlatform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "unknown runtime flavor"), "runtime", name)
	}
}

// RuntimeNotFoundError carries every location probed for a missing runtime.
type RuntimeNotFoundError struct {
	Name   string
	Probed []string
}

func (e *RuntimeNotFoundError) Error() string {
	var b strings.Builder
	b.WriteString("Unable to locate runtime '")
	b.WriteString(e.Name)
	b.WriteString("'\nLocations probed:")
	for _, p := range e.Probed {
		b.WriteString("\n")
		b.WriteString(p)
	}
	return b.String()
}

// Is lets errors.Is match ErrRuntimeNotFound.
func (e *RuntimeNotFoundError) Is(target error) bool {
	return target == ErrRuntimeNotFound
}
