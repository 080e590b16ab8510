package ports

import "go.trai.ch/bundle/internal/core/domain"

// IntegrityStore caches archive digests between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type IntegrityStore interface {
	// Get returns the record for path. Returns nil, nil if not found.
	Get(path string) (*domain.IntegrityRecord, error)

	// Put stores the record.
	Put(record domain.IntegrityRecord) error
}
