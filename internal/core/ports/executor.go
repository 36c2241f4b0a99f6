// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/prep/internal/core/domain"
)

// Executor runs rendered shell command lines.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd.Line in cmd.Dir with cmd.Env layered over the inherited environment.
	//
	// A non-zero exit status is returned as an error carrying an "exit_code" field.
	Execute(ctx context.Context, cmd domain.Command) error
}
