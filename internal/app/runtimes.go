package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolveRuntimes locates every requested runtime and checks that the project targets its platform.
func (a *App) resolveRuntimes(project *domain.Project, names []string) ([]domain.BundleRuntime, error) {
	runtimes := make([]domain.BundleRuntime, 0, len(names))
	for _, name := range names {
		if strings.EqualFold(name, domain.ActiveRuntimeAlias) {
			active, ok := a.locator.ActiveRuntime()
			if !ok {
				return nil, zerr.With(zerr.Wrap(domain.ErrRuntimeNotFound, "Cannot resolve the active runtime name"), "env", domain.EnvActiveRuntime)
			}
			a.logger.Verbose("Resolved the active runtime as " + active)
			name = active
		}

		path, err := a.locator.Locate(name)
		if err != nil {
			return nil, err
		}

		platform, err := domain.PlatformForRuntime(name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrPlatformMismatch,
				fmt.Sprintf("'%s' is not a target framework of the project being bundled", filepath.Base(name))), "runtime", name)
		}
		if !project.DeclaresPlatform(platform) {
			return nil, zerr.With(zerr.Wrap(domain.ErrPlatformMismatch,
				fmt.Sprintf("'%s' is not a target framework of the project being bundled", platform)), "runtime", name)
		}

		runtimes = append(runtimes, domain.BundleRuntime{
			Name:     filepath.Base(path),
			Platform: platform,
			Path:     path,
		})
	}
	return runtimes, nil
}
