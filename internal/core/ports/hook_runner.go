package ports

import (
	"context"

	"go.trai.ch/bundle/internal/core/domain"
)

// VariableResolver returns the value of a hook variable such as "project:Name".
type VariableResolver func(name string) (string, bool)

// HookRunner runs project lifecycle scripts.
//
//go:generate go run go.uber.org/mock/mockgen -source=hook_runner.go -destination=mocks/mock_hook_runner.go -package=mocks
type HookRunner interface {
	// Execute runs every script the project declares for stage.
	// A project without scripts for the stage succeeds immediately.
	Execute(ctx context.Context, project *domain.Project, stage domain.HookStage, vars VariableResolver) error
}
