package config

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/bundle/internal/core/domain"
)

// projectDirs are searched, in order, below the search root.
var projectDirs = []string{"", "src", "test"}

// resolver finds sibling projects by name. It is safe for concurrent use.
type resolver struct {
	loader *Loader
	root   string

	mu    sync.Mutex
	cache map[string]*domain.Project
}

func newResolver(loader *Loader, root string) *resolver {
	return &resolver{
		loader: loader,
		root:   root,
		cache:  make(map[string]*domain.Project),
	}
}

// FindProject returns the project named name, if one exists below the search root.
func (r *resolver) FindProject(name string) (*domain.Project, bool) {
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.cache[key]; ok {
		return p, p != nil
	}

	var found *domain.Project
	for _, dir := range projectDirs {
		candidate := filepath.Join(r.root, dir, name)
		p, _, err := r.loader.Load(candidate)
		if err != nil {
			if !errors.Is(err, domain.ErrProjectNotFound) && r.loader.Logger != nil {
				r.loader.Logger.Warn("ignoring project " + candidate + ": " + err.Error())
			}
			continue
		}
		found = p
		break
	}

	r.cache[key] = found
	return found, found != nil
}
