package ports

import (
	"context"
	"io"

	"go.trai.ch/prep/internal/core/domain"
)

// ImageRuntime talks to a container engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=image.go -destination=mocks/mock_image.go -package=mocks
type ImageRuntime interface {
	// ImageExists reports whether an image with the given reference is present locally.
	ImageExists(ctx context.Context, name string) (bool, error)
	// BuildImage builds contextDir (which holds a Dockerfile) and tags the result as name.
	// Build output is streamed to out.
	BuildImage(ctx context.Context, contextDir, name string, noCache bool, out io.Writer) error
	// RunContainer runs a container to completion, streaming its output to out,
	// and returns the container's exit code.
	RunContainer(ctx context.Context, spec domain.ContainerSpec, out io.Writer) (int, error)
}
