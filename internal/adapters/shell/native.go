package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.NativeImageGenerator = (*NativeImageGenerator)(nil)

// nativeDirName holds generated images inside each bundled package.
const nativeDirName = "native"

// NativeImageGenerator precompiles bundled packages with the crossgen tool shipped in each runtime.
type NativeImageGenerator struct {
	logger ports.Logger
}

// NewNativeImageGenerator creates a new NativeImageGenerator.
func NewNativeImageGenerator(logger ports.Logger) *NativeImageGenerator {
	return &NativeImageGenerator{logger: logger}
}

// Prepare checks that every bundled runtime carries the tool.
func (g *NativeImageGenerator) Prepare(_ context.Context, root *domain.BundleRoot) error {
	if len(root.Runtimes) == 0 {
		return zerr.Wrap(domain.ErrNativeImageFailure, "Fail to initiate native image generation process: no runtime is bundled")
	}
	for _, rt := range root.Runtimes {
		if _, err := crossgenPath(rt.Path); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrNativeImageFailure, "Fail to initiate native image generation process"), "runtime", rt.Name)
		}
	}
	return nil
}

// Generate writes images for every package bundled for a runtime's platform.
func (g *NativeImageGenerator) Generate(ctx context.Context, root *domain.BundleRoot) error {
	for _, rt := range root.Runtimes {
		tool, err := crossgenPath(rt.Path)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrNativeImageFailure, "Native image generation failed"), "runtime", rt.Name)
		}
		platform := rt.Platform.String()

		for _, pkg := range root.Packages {
			if !slices.Contains(pkg.Platforms, rt.Platform) {
				continue
			}
			id := pkg.Library.Identity
			dir := filepath.Join(root.AppRootPath(), domain.PackagesDirName, id.Name.String(), id.Version.String())
			args := []string{"-platform", platform, "-in", dir, "-out", filepath.Join(dir, nativeDirName, platform)}
			if err := g.run(ctx, tool, root.AppRootPath(), args); err != nil {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrNativeImageFailure, "Native image generation failed: "+err.Error()), "runtime", rt.Name), "package", id.String())
			}
		}
	}
	return nil
}

func (g *NativeImageGenerator) run(ctx context.Context, tool, dir string, args []string) error {
	cmd := exec.CommandContext(ctx, tool, args...) //nolint:gosec // Tool comes from the bundled runtime
	cmd.Dir = dir
	cmd.Env = os.Environ()

	stdout := &logWriter{logger: g.logger, level: "info"}
	stderr := &logWriter{logger: g.logger, level: "warn"}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	defer stdout.Flush()
	defer stderr.Flush()

	if err := cmd.Run(); err != nil {
		var exitCode int
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// crossgenPath finds the tool in the runtime's bin directory.
func crossgenPath(runtimeDir string) (string, error) {
	name := "crossgen"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return lookPath(name, []string{filepath.Join(runtimeDir, "bin")})
}

// lookPath searches dirs for an executable file.
func lookPath(file string, dirs []string) (string, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && (runtime.GOOS == "windows" || m&0o111 != 0) {
		return nil
	}
	return os.ErrPermission
}
