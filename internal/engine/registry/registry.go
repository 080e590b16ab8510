// Package registry merges per-platform resolution results into one library set.
package registry

import (
	"iter"
	"strings"
	"sync"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/engine/resolution"
)

// PackageEntry is a package discovered by at least one walk.
type PackageEntry struct {
	Library  domain.LibraryDescription
	Content  ports.PackageContent
	Contexts []*domain.ResolutionContext
}

// ProjectEntry is a project discovered by at least one walk.
type ProjectEntry struct {
	Project  *domain.Project
	Contexts []*domain.ResolutionContext
}

// Registry is the arena of libraries across every resolution context.
// Entries keep first-discovery order, so registering results in a fixed
// order yields a fixed library order.
type Registry struct {
	mu sync.Mutex

	contexts     []*domain.ResolutionContext
	packages     []*PackageEntry
	packageIndex map[domain.LibraryIdentity]*PackageEntry
	projects     []*ProjectEntry
	projectIndex map[string]*ProjectEntry
	contextIndex map[domain.LibraryIdentity][]*domain.ResolutionContext
	order        []domain.LibraryIdentity
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		packageIndex: make(map[domain.LibraryIdentity]*PackageEntry),
		projectIndex: make(map[string]*ProjectEntry),
		contextIndex: make(map[domain.LibraryIdentity][]*domain.ResolutionContext),
	}
}

// Register merges one walk result.
func (r *Registry) Register(res *resolution.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := res.Context
	r.contexts = append(r.contexts, ctx)

	for lib := range ctx.Libraries() {
		if _, seen := r.contextIndex[lib.Identity]; !seen {
			r.order = append(r.order, lib.Identity)
		}
		r.contextIndex[lib.Identity] = append(r.contextIndex[lib.Identity], ctx)

		switch lib.Kind {
		case domain.LibraryKindPackage:
			r.addPackage(lib, res.Packages[lib.Identity], ctx)
		case domain.LibraryKindProject:
			if p, ok := res.Projects[lib.Identity]; ok {
				r.addProject(p, ctx)
			}
		}
	}
}

func (r *Registry) addPackage(lib domain.LibraryDescription, content ports.PackageContent, ctx *domain.ResolutionContext) {
	entry, ok := r.packageIndex[lib.Identity]
	if !ok {
		entry = &PackageEntry{Library: lib, Content: content}
		r.packageIndex[lib.Identity] = entry
		r.packages = append(r.packages, entry)
	}
	if entry.Content == nil {
		entry.Content = content
	}
	entry.Contexts = append(entry.Contexts, ctx)
}

func (r *Registry) addProject(p *domain.Project, ctx *domain.ResolutionContext) {
	key := strings.ToLower(p.Name)
	entry, ok := r.projectIndex[key]
	if !ok {
		entry = &ProjectEntry{Project: p}
		r.projectIndex[key] = entry
		r.projects = append(r.projects, entry)
	}
	entry.Contexts = append(entry.Contexts, ctx)
}

// Contexts returns the registered contexts in registration order.
func (r *Registry) Contexts() []*domain.ResolutionContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.ResolutionContext(nil), r.contexts...)
}

// Libraries yields every library identity with the contexts containing it.
func (r *Registry) Libraries() iter.Seq2[domain.LibraryIdentity, []*domain.ResolutionContext] {
	r.mu.Lock()
	order := append([]domain.LibraryIdentity(nil), r.order...)
	r.mu.Unlock()

	return func(yield func(domain.LibraryIdentity, []*domain.ResolutionContext) bool) {
		for _, id := range order {
			if !yield(id, r.ContextsOf(id)) {
				return
			}
		}
	}
}

// ContextsOf returns every context containing id.
func (r *Registry) ContextsOf(id domain.LibraryIdentity) []*domain.ResolutionContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.ResolutionContext(nil), r.contextIndex[id]...)
}

// Packages returns the package entries in first-discovery order.
func (r *Registry) Packages() []*PackageEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*PackageEntry(nil), r.packages...)
}

// Projects returns the project entries in first-discovery order.
func (r *Registry) Projects() []*ProjectEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*ProjectEntry(nil), r.projects...)
}

// DependencyContexts returns the library-to-contexts map of a bundle.
func (r *Registry) DependencyContexts() map[domain.LibraryIdentity][]*domain.ResolutionContext {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[domain.LibraryIdentity][]*domain.ResolutionContext, len(r.contextIndex))
	for id, ctxs := range r.contextIndex {
		out[id] = append([]*domain.ResolutionContext(nil), ctxs...)
	}
	return out
}

// HasUnresolved reports whether any registered context has unresolved libraries.
func (r *Registry) HasUnresolved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contexts {
		if c.HasUnresolved() {
			return true
		}
	}
	return false
}
