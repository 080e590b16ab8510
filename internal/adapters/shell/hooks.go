// Package shell runs project hook scripts and external tools.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

var _ ports.HookRunner = (*HookRunner)(nil)

// hookVariable matches %scope:Name% tokens.
var hookVariable = regexp.MustCompile(`%([A-Za-z]+:[A-Za-z]+)%`)

// HookRunner implements ports.HookRunner with an in-process POSIX shell.
type HookRunner struct {
	logger ports.Logger
}

// NewHookRunner creates a new HookRunner.
func NewHookRunner(logger ports.Logger) *HookRunner {
	return &HookRunner{logger: logger}
}

// Execute runs the project's scripts for stage in order, stopping at the first failure.
// Scripts run in the project directory; their output goes to the logger and to the
// telemetry vertex carried by ctx, if any.
func (h *HookRunner) Execute(ctx context.Context, project *domain.Project, stage domain.HookStage, vars ports.VariableResolver) error {
	for _, script := range project.Scripts[stage] {
		line := Substitute(script, vars)
		h.logger.Verbose(fmt.Sprintf("Running %s script: %s", stage, line))

		if err := h.run(ctx, project.Directory, line); err != nil {
			msg := fmt.Sprintf("'%s' script failed: %s", stage, err.Error())
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrHookFailure, msg), "stage", string(stage)), "script", line)
		}
	}
	return nil
}

func (h *HookRunner) run(ctx context.Context, dir, script string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "script")
	if err != nil {
		return zerr.Wrap(err, "failed to parse script")
	}

	stdout := &logWriter{logger: h.logger, level: "info"}
	stderr := &logWriter{logger: h.logger, level: "warn"}
	defer stdout.Flush()
	defer stderr.Flush()

	var out, errOut io.Writer = stdout, stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		out = io.MultiWriter(stdout, v.Stdout())
		errOut = io.MultiWriter(stderr, v.Stderr())
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, out, errOut),
	)
	if err != nil {
		return zerr.Wrap(err, "failed to create interpreter")
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return zerr.New(fmt.Sprintf("exit code %d", int(status)))
		}
		return err
	}
	return nil
}

// Substitute replaces %scope:Name% tokens with values from vars.
// Unknown tokens are left as written.
func Substitute(script string, vars ports.VariableResolver) string {
	if vars == nil {
		return script
	}
	return hookVariable.ReplaceAllStringFunc(script, func(token string) string {
		if v, ok := vars(token[1 : len(token)-1]); ok {
			return v
		}
		return token
	})
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := strings.IndexByte(string(w.buf), '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush writes any trailing partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimSuffix(line, "\r")
	if w.level == "info" {
		w.logger.Info(line)
	} else {
		w.logger.Warn(line)
	}
}
