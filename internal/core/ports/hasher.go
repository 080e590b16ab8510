package ports

import "context"

// Hasher computes package integrity digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeIntegrity returns the base64 SHA-512 digest of the package archive.
	ComputeIntegrity(ctx context.Context, pkg PackageContent) (string, error)
}
