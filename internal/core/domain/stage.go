package domain

// Stage names the steps of a bundle run, in execution order.
type Stage string

const (
	StageValidate         Stage = "validate"
	StagePrepare          Stage = "prepare"
	StagePreBundle        Stage = "prebundle"
	StageResolveRuntimes  Stage = "resolve-runtimes"
	StageResolvePlatforms Stage = "resolve-platforms"
	StageMerge            Stage = "merge"
	StageNativeInit       Stage = "native-init"
	StageEmit             Stage = "emit"
	StagePostBundle       Stage = "postbundle"
	StageNativeImage      Stage = "native-image"
)

// StageError tags a fatal error with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
