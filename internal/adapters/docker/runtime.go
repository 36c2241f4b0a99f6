// Package docker implements ports.ImageRuntime on the Docker Engine API.
package docker

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Client is the subset of the Docker SDK client the runtime needs.
type Client interface {
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImageBuild(ctx context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error)
	ContainerCreate(
		ctx context.Context,
		config *container.Config,
		hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig,
		platform *ocispec.Platform,
		containerName string,
	) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerWait(
		ctx context.Context,
		containerID string,
		condition container.WaitCondition,
	) (<-chan container.WaitResponse, <-chan error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
}

var _ ports.ImageRuntime = (*Runtime)(nil)

// Runtime implements ports.ImageRuntime.
type Runtime struct {
	client Client
}

// NewRuntime wraps a Docker client.
func NewRuntime(client Client) *Runtime {
	return &Runtime{client: client}
}

// ImageExists reports whether name is present locally.
func (r *Runtime) ImageExists(ctx context.Context, name string) (bool, error) {
	images, err := r.client.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", name)),
	})
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to list images"), "image", name)
	}
	return len(images) > 0, nil
}

// BuildImage sends contextDir as the build context and tags the result as name.
func (r *Runtime) BuildImage(ctx context.Context, contextDir, name string, noCache bool, out io.Writer) error {
	if _, err := os.Stat(filepath.Join(contextDir, domain.DockerfileName)); err != nil {
		return zerr.With(domain.ErrDockerfileNotFound, "dir", contextDir)
	}

	buildCtx, err := buildContext(contextDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImageBuildFailed.Error()), "image", name)
	}
	defer buildCtx.Close() //nolint:errcheck // Unblocks the tar writer if the daemon stops reading

	resp, err := r.client.ImageBuild(ctx, buildCtx, build.ImageBuildOptions{
		Tags:        []string{name},
		Dockerfile:  domain.DockerfileName,
		Remove:      true,
		ForceRemove: true,
		NoCache:     noCache,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImageBuildFailed.Error()), "image", name)
	}
	defer resp.Body.Close() //nolint:errcheck // Stream fully consumed below

	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, out, 0, false, nil); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImageBuildFailed.Error()), "image", name)
	}
	return nil
}

// RunContainer creates, starts and waits for a container, then removes it.
// Logs are copied to out while the container runs.
func (r *Runtime) RunContainer(ctx context.Context, spec domain.ContainerSpec, out io.Writer) (int, error) {
	created, err := r.client.ContainerCreate(ctx, containerConfig(spec), hostConfig(spec), nil, nil, spec.Name)
	if err != nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrContainerRunFailed.Error()), "image", spec.Image)
	}
	defer func() {
		_ = r.client.ContainerRemove(context.WithoutCancel(ctx), created.ID, container.RemoveOptions{Force: true})
	}()

	if err := r.client.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrContainerRunFailed.Error()), "image", spec.Image)
	}

	logs, err := r.client.ContainerLogs(ctx, created.ID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrContainerRunFailed.Error()), "image", spec.Image)
	}
	defer logs.Close() //nolint:errcheck // Closed after the stream drains

	var exitCode int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := stdcopy.StdCopy(out, out, logs)
		return err
	})
	g.Go(func() error {
		statusCh, errCh := r.client.ContainerWait(gctx, created.ID, container.WaitConditionNotRunning)
		select {
		case status := <-statusCh:
			if status.Error != nil && status.Error.Message != "" {
				return zerr.New(status.Error.Message)
			}
			exitCode = status.StatusCode
			return nil
		case err := <-errCh:
			return err
		}
	})
	if err := g.Wait(); err != nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrContainerRunFailed.Error()), "image", spec.Image)
	}
	return int(exitCode), nil
}

func containerConfig(spec domain.ContainerSpec) *container.Config {
	return &container.Config{
		Image:      spec.Image,
		Cmd:        spec.Command,
		WorkingDir: spec.WorkingDir,
		Env:        domain.Options(spec.Env).Environ(),
	}
}

func hostConfig(spec domain.ContainerSpec) *container.HostConfig {
	mounts := make([]mount.Mount, 0, len(spec.Mounts))
	for _, m := range spec.Mounts {
		mounts = append(mounts, mount.Mount{
			Type:     mount.TypeBind,
			Source:   m.Source,
			Target:   m.Target,
			ReadOnly: m.ReadOnly,
		})
	}
	slices.SortFunc(mounts, func(a, b mount.Mount) int {
		switch {
		case a.Target < b.Target:
			return -1
		case a.Target > b.Target:
			return 1
		default:
			return 0
		}
	})
	return &container.HostConfig{
		NetworkMode: container.NetworkMode(spec.Network),
		Mounts:      mounts,
	}
}
