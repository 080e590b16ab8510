package ports

import "go.trai.ch/bundle/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks

// ProjectLoader reads project manifests.
type ProjectLoader interface {
	// Load reads the manifest in dir. Warnings are non-fatal format problems.
	Load(dir string) (*domain.Project, []domain.FileFormatWarning, error)
	// Resolver returns a resolver for sibling projects below searchRoot.
	Resolver(searchRoot string) ProjectResolver
}

// ProjectResolver finds projects referenced by name.
type ProjectResolver interface {
	FindProject(name string) (*domain.Project, bool)
}
