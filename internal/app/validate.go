package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckResult is the outcome of one validation check.
type CheckResult struct {
	Name string
	Err  error
}

// validated holds the project and the reconciled options once every check passed.
type validated struct {
	project    *domain.Project
	outputPath string
	webRoot    string
	webRootOut string
}

type check struct {
	name string
	run  func(v *validated) error
}

// checks run in order; the first failure stops validation.
var checks = []check{
	{"web root output requires a web root", func(v *validated) error {
		if v.webRoot == "" && v.webRootOut != "" {
			return zerr.Wrap(domain.ErrConfiguration,
				"'--wwwroot-out' option can be used only when the '--wwwroot' option or 'webroot' in "+domain.ProjectFileName+" is specified")
		}
		return nil
	}},
	{"web root exists", func(v *validated) error {
		if v.webRoot == "" {
			return nil
		}
		info, err := os.Stat(filepath.Join(v.project.Directory, v.webRoot))
		if err != nil || !info.IsDir() {
			return zerr.With(zerr.Wrap(domain.ErrConfiguration,
				fmt.Sprintf("The specified wwwroot folder '%s' doesn't exist in the project directory", v.webRoot)), "path", v.project.Directory)
		}
		return nil
	}},
	{"web root output is not reserved", func(v *validated) error {
		if domain.IsAppRoot(v.webRootOut) {
			return zerr.Wrap(domain.ErrConfiguration,
				fmt.Sprintf("'%s' is a reserved folder name. Please choose another name for the wwwroot-out folder", domain.AppRootName))
		}
		return nil
	}},
}

// Validate loads the project and runs every configuration check, returning one
// result per check that ran. Checks after the first failure do not run.
func (a *App) Validate(opts BundleOptions) []CheckResult {
	_, results := a.runChecks(opts)
	return results
}

func (a *App) validate(opts BundleOptions) (*validated, error) {
	v, results := a.runChecks(opts)
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
	}
	return v, nil
}

func (a *App) runChecks(opts BundleOptions) (*validated, []CheckResult) {
	dir := projectDir(opts.ProjectDir)
	project, warnings, err := a.loader.Load(dir)
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrConfiguration,
			fmt.Sprintf("Unable to locate %s: %s", domain.ProjectFileName, err.Error())), "path", dir)
		return nil, []CheckResult{{Name: "project manifest", Err: err}}
	}
	for _, w := range warnings {
		a.logger.Info(w.String())
	}

	v := &validated{
		project:    project,
		outputPath: opts.OutputPath,
		webRoot:    opts.WebRoot,
		webRootOut: opts.WebRootOut,
	}
	if v.outputPath == "" {
		v.outputPath = domain.DefaultOutputPath(project.Directory)
	}
	if abs, err := filepath.Abs(v.outputPath); err == nil {
		v.outputPath = abs
	}
	if v.webRoot == "" {
		v.webRoot = project.WebRoot
	}
	if v.webRootOut == "" {
		v.webRootOut = v.webRoot
	}

	results := []CheckResult{{Name: "project manifest"}}
	for _, c := range checks {
		err := c.run(v)
		results = append(results, CheckResult{Name: c.name, Err: err})
		if err != nil {
			return nil, results
		}
	}
	return v, results
}

// projectDir accepts either a project directory or the path of its manifest.
func projectDir(path string) string {
	if path == "" {
		path = "."
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}
