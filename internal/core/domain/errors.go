package domain

import "go.trai.ch/zerr"

// Stage failure classes. Orchestrator stages wrap one of these so callers
// can branch with errors.Is.
var (
	// ErrConfiguration is returned when bundle options or the project manifest are invalid.
	ErrConfiguration = zerr.New("invalid bundle configuration")

	// ErrRuntimeNotFound is returned when a requested runtime cannot be located.
	ErrRuntimeNotFound = zerr.New("unable to locate runtime")

	// ErrPlatformMismatch is returned when a runtime targets a platform the project does not declare.
	ErrPlatformMismatch = zerr.New("runtime platform is not a target framework of the project")

	// ErrHookFailure is returned when a lifecycle hook command fails.
	ErrHookFailure = zerr.New("lifecycle hook failed")

	// ErrNativeImageFailure is returned when native image generation cannot run or fails.
	ErrNativeImageFailure = zerr.New("native image generation failed")

	// ErrUnresolvedDependencies is reported when a bundle was emitted with missing dependencies.
	// It never stops the pipeline.
	ErrUnresolvedDependencies = zerr.New("bundle has unresolved dependencies")
)

// Errors raised by value parsing.
var (
	// ErrInvalidPlatform is returned when a platform name cannot be parsed.
	ErrInvalidPlatform = zerr.New("invalid target platform")

	// ErrInvalidVersion is returned when a version string is not a valid semantic version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidVersionRange is returned when a version range cannot be parsed.
	ErrInvalidVersionRange = zerr.New("invalid version range")
)

// Errors raised by adapters.
var (
	// ErrProjectNotFound is returned when no project manifest exists in a directory.
	ErrProjectNotFound = zerr.New("project manifest not found")

	// ErrProjectReadFailed is returned when the project manifest cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project manifest")

	// ErrProjectParseFailed is returned when the project manifest is not valid YAML.
	ErrProjectParseFailed = zerr.New("failed to parse project manifest")

	// ErrPackageMetadataInvalid is returned when a package metadata file cannot be decoded.
	ErrPackageMetadataInvalid = zerr.New("invalid package metadata")

	// ErrPackageReadFailed is returned when package content cannot be read.
	ErrPackageReadFailed = zerr.New("failed to read package content")

	// ErrStoreReadFailed is returned when reading from the integrity store fails.
	ErrStoreReadFailed = zerr.New("failed to read integrity record")

	// ErrStoreWriteFailed is returned when writing to the integrity store fails.
	ErrStoreWriteFailed = zerr.New("failed to write integrity record")

	// ErrOutputNotEmpty is returned when the output directory has content and overwrite is off.
	ErrOutputNotEmpty = zerr.New("output directory is not empty")

	// ErrEmitFailed is returned when the bundle output tree cannot be written.
	ErrEmitFailed = zerr.New("failed to write bundle output")
)
