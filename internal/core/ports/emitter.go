package ports

import (
	"context"

	"go.trai.ch/bundle/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks

// Emitter writes the bundle output tree.
type Emitter interface {
	Emit(ctx context.Context, root *domain.BundleRoot, lock *domain.LockFile) error
}

// NativeImageGenerator precompiles bundled assemblies.
type NativeImageGenerator interface {
	// Prepare checks that generation can run before anything is emitted.
	Prepare(ctx context.Context, root *domain.BundleRoot) error
	// Generate runs after the bundle is emitted.
	Generate(ctx context.Context, root *domain.BundleRoot) error
}
