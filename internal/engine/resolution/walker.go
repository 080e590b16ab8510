// Package resolution walks a project's dependency graph for one target platform.
package resolution

import (
	"context"
	"strings"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result is the outcome of one walk.
type Result struct {
	Context *domain.ResolutionContext
	// Packages holds the content handle of every resolved package.
	Packages map[domain.LibraryIdentity]ports.PackageContent
	// Projects holds every resolved project, including the root.
	Projects map[domain.LibraryIdentity]*domain.Project
}

// Walker resolves dependency graphs against a package repository and sibling projects.
// A Walker holds no per-walk state and may run walks concurrently.
type Walker struct {
	repo     ports.PackageRepository
	projects ports.ProjectResolver
}

// NewWalker creates a Walker. projects may be nil when the project has no siblings.
func NewWalker(repo ports.PackageRepository, projects ports.ProjectResolver) *Walker {
	return &Walker{repo: repo, projects: projects}
}

type node struct {
	desc domain.LibraryDescription
	deps []domain.Dependency
}

type resolved struct {
	node    node
	content ports.PackageContent
	project *domain.Project
}

// Walk resolves root's dependency closure for platform, breadth first.
// Dependencies that cannot be found become unresolved libraries; the walk continues.
func (w *Walker) Walk(ctx context.Context, platform domain.TargetPlatform, root *domain.Project) (*Result, error) {
	res := &Result{
		Packages: make(map[domain.LibraryIdentity]ports.PackageContent),
		Projects: make(map[domain.LibraryIdentity]*domain.Project),
	}

	rootID := root.Identity()
	res.Projects[rootID] = root

	queue := []node{{
		desc: domain.LibraryDescription{
			Identity: rootID,
			Kind:     domain.LibraryKindProject,
			Resolved: true,
			Path:     root.Directory,
		},
		deps: root.DependenciesFor(platform),
	}}
	visited := map[domain.LibraryIdentity]bool{rootID: true}
	lookups := make(map[string]resolved)

	var libraries []domain.LibraryDescription
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[0]
		queue = queue[1:]

		for _, dep := range current.deps {
			key := dep.Name + " " + dep.Range.String()
			r, seen := lookups[key]
			if !seen {
				var err error
				r, err = w.resolve(ctx, platform, root, dep)
				if err != nil {
					return nil, zerr.With(err, "dependency", dep.String())
				}
				lookups[key] = r
			}

			id := r.node.desc.Identity
			current.desc.Dependencies = append(current.desc.Dependencies, id)
			if visited[id] {
				continue
			}
			visited[id] = true

			switch {
			case r.content != nil:
				res.Packages[id] = r.content
			case r.project != nil:
				res.Projects[id] = r.project
			}
			queue = append(queue, r.node)
		}

		libraries = append(libraries, current.desc)
	}

	res.Context = domain.NewResolutionContext(platform, w.repo.Root(), libraries)
	return res, nil
}

func (w *Walker) resolve(ctx context.Context, platform domain.TargetPlatform, root *domain.Project, dep domain.Dependency) (resolved, error) {
	// A reference back to the root closes a cycle; it never goes to the resolver or the repository.
	if strings.EqualFold(dep.Name, root.Name) && (dep.Range.IsAny() || dep.Range.Satisfies(root.Version)) {
		return resolved{
			node: node{desc: domain.LibraryDescription{
				Identity: root.Identity(),
				Kind:     domain.LibraryKindProject,
				Resolved: true,
				Path:     root.Directory,
			}},
			project: root,
		}, nil
	}

	if w.projects != nil {
		if p, ok := w.projects.FindProject(dep.Name); ok && (dep.Range.IsAny() || dep.Range.Satisfies(p.Version)) {
			return resolved{
				node: node{
					desc: domain.LibraryDescription{
						Identity: p.Identity(),
						Kind:     domain.LibraryKindProject,
						Resolved: true,
						Path:     p.Directory,
					},
					deps: p.DependenciesFor(platform),
				},
				project: p,
			}, nil
		}
	}

	pkg, err := w.repo.FindPackage(ctx, dep.Name, dep.Range)
	if err != nil {
		return resolved{}, err
	}
	if pkg == nil {
		return resolved{
			node: node{desc: domain.LibraryDescription{
				Identity: dep.UnresolvedIdentity(),
				Kind:     domain.LibraryKindUnresolved,
			}},
		}, nil
	}

	assets, err := pkg.Assets()
	if err != nil {
		return resolved{}, err
	}
	return resolved{
		node: node{
			desc: domain.LibraryDescription{
				Identity: pkg.Identity(),
				Kind:     domain.LibraryKindPackage,
				Resolved: true,
				Path:     pkg.Path(),
			},
			deps: assets.DependenciesFor(platform),
		},
		content: pkg,
	}, nil
}
