package ports

// Logger is the report sink. Each method is one channel of a bundle run.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Error reports a fatal problem.
	Error(err error)
	// Warn reports a problem the run continues past.
	Warn(msg string)
	// Info reports progress.
	Info(msg string)
	// Verbose reports detail shown only with --verbose.
	Verbose(msg string)
	// Quiet reports messages that survive --quiet, such as missing dependencies.
	Quiet(msg string)
}
