package domain

// LogLevel is the report channel of a message. The values line up with log/slog
// so adapters can convert with a cast.
type LogLevel int

const (
	LogLevelVerbose LogLevel = -4
	LogLevelInfo    LogLevel = 0
	LogLevelWarn    LogLevel = 4
	LogLevelError   LogLevel = 8
	// LogLevelQuiet sits above error so it survives --quiet.
	LogLevelQuiet LogLevel = 12
)

// String returns the channel name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelVerbose:
		return "verbose"
	case LogLevelWarn:
		return "warning"
	case LogLevelError:
		return "error"
	case LogLevelQuiet:
		return "quiet"
	default:
		return "info"
	}
}
