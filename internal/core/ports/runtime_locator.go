package ports

// RuntimeLocator finds runtimes on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime_locator.go -destination=mocks/mock_runtime_locator.go -package=mocks
type RuntimeLocator interface {
	// Locate returns the directory of the named runtime or a
	// *domain.RuntimeNotFoundError listing every probed location.
	Locate(name string) (string, error)
	// ActiveRuntime returns the name of the runtime bundle runs under, if known.
	ActiveRuntime() (string, bool)
}
