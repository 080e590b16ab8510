package domain

import (
	"fmt"
	"strings"
)

// HookStage names a project lifecycle hook.
type HookStage string

const (
	HookPrepare    HookStage = "prepare"
	HookPreBundle  HookStage = "prebundle"
	HookPostBundle HookStage = "postbundle"
)

// ProjectPlatform lists dependencies that only apply to one target platform.
type ProjectPlatform struct {
	Platform     TargetPlatform
	Dependencies []Dependency
}

// Project is a loaded project manifest.
type Project struct {
	Name      string
	Version   string
	Directory string
	// WebRoot is the project-relative directory of public web content.
	WebRoot       string
	Dependencies  []Dependency
	Platforms     []ProjectPlatform
	Scripts       map[HookStage][]string
	BundleExclude []string
}

// Identity returns the project's library identity.
func (p *Project) Identity() LibraryIdentity {
	return NewLibraryIdentity(p.Name, p.Version)
}

// TargetPlatforms returns the declared platforms in manifest order.
func (p *Project) TargetPlatforms() []TargetPlatform {
	out := make([]TargetPlatform, 0, len(p.Platforms))
	for _, pp := range p.Platforms {
		out = append(out, pp.Platform)
	}
	return out
}

// DeclaresPlatform reports whether platform is one of the project's targets.
func (p *Project) DeclaresPlatform(platform TargetPlatform) bool {
	for _, pp := range p.Platforms {
		if pp.Platform == platform {
			return true
		}
	}
	return false
}

// DependenciesFor returns the shared dependencies followed by those specific to platform.
func (p *Project) DependenciesFor(platform TargetPlatform) []Dependency {
	deps := append([]Dependency(nil), p.Dependencies...)
	for _, pp := range p.Platforms {
		if pp.Platform == platform {
			deps = append(deps, pp.Dependencies...)
		}
	}
	return deps
}

// FileFormatWarning is a non-fatal problem found in a manifest.
type FileFormatWarning struct {
	Message string
	Path    string
	Line    int
	Column  int
}

// String renders the warning the way bundle reports it.
func (w FileFormatWarning) String() string {
	return fmt.Sprintf("Warning: At line %d - %s", w.Line, w.Message)
}

// IsAppRoot reports whether name collides with the reserved app root directory.
func IsAppRoot(name string) bool {
	return strings.EqualFold(strings.Trim(name, `/\`), AppRootName)
}
