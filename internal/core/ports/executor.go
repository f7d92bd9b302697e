// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/ukbuild/internal/core/domain"
)

// Executor defines the interface for running external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the command and waits for it to exit.
	//
	// The captured output is returned even when the command fails. A non-zero
	// exit status yields an error wrapping domain.ErrCommandFailed; a failure to
	// start yields an error wrapping domain.ErrToolStart.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
