package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	containerWorkDir   = "/testbed"
	containerOutputDir = "/testbed_output"
	verifyScript       = "cd /testbed && python run_verification.py && " +
		"cp -f results.json /testbed_output/result.json 2>/dev/null || true"
)

// BuildOptions configuration for the BuildImages method.
type BuildOptions struct {
	Force         bool
	SkipExisting  bool
	ExitOnFailure bool
}

// BuildStats counts the images handled by BuildImages.
type BuildStats struct {
	Total   int
	Built   int
	Skipped int
	Failed  int
}

// VerifyStats counts the instances handled by VerifyImages.
type VerifyStats struct {
	Total    int
	Verified int
	Missing  int
	Failed   int
}

type taskFile struct {
	path string
	data []byte
	id   domain.InstanceID
}

// BuildImages builds one image per task instance found under tasksDir.
func (a *App) BuildImages(ctx context.Context, tasksDir string, opts BuildOptions) (BuildStats, error) {
	var stats BuildStats
	tasks, err := a.scanTasks(tasksDir)
	if err != nil {
		return stats, err
	}

	seen := make(map[string]struct{})
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		image, err := a.namer.ImageName(task.id)
		if err != nil {
			a.logger.Error(zerr.With(err, "file", task.path))
			stats.Failed++
			continue
		}
		if _, dup := seen[image]; dup {
			continue
		}
		seen[image] = struct{}{}
		stats.Total++

		a.logger.Info(fmt.Sprintf("Image %s (task %s)", image, task.id))
		exists, err := a.runtime.ImageExists(ctx, image)
		if err != nil {
			a.logger.Error(err)
			stats.Failed++
			if opts.ExitOnFailure {
				return stats, zerr.With(domain.ErrImageBuildFailed, "image", image)
			}
			continue
		}
		if exists && !opts.Force {
			// Only a forced build replaces an existing image.
			if opts.SkipExisting {
				a.logger.Info("image exists, skipping build")
				stats.Skipped++
			} else {
				a.logger.Info("image exists, reusing it")
				stats.Built++
			}
			continue
		}

		if err := a.runtime.BuildImage(ctx, filepath.Dir(task.path), image, opts.Force, a.out); err != nil {
			a.logger.Error(zerr.With(err, "file", task.path))
			stats.Failed++
			if opts.ExitOnFailure {
				return stats, zerr.With(domain.ErrImageBuildFailed, "image", image)
			}
			continue
		}
		a.logger.Info("built " + image)
		stats.Built++
	}

	a.logger.Info(fmt.Sprintf("%d images: %d built, %d skipped, %d failed",
		stats.Total, stats.Built, stats.Skipped, stats.Failed))
	if stats.Failed > 0 {
		return stats, zerr.With(domain.ErrImageBuildFailed, "failed", stats.Failed)
	}
	return stats, nil
}

// VerifyImages runs the verification container for every valid task instance whose image exists.
func (a *App) VerifyImages(ctx context.Context, tasksDir string) (VerifyStats, error) {
	var stats VerifyStats
	tasks, err := a.scanTasks(tasksDir)
	if err != nil {
		return stats, err
	}

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if filepath.Base(task.path) != task.id.Raw+".json" {
			continue
		}
		if _, err := a.validator.Validate(task.data); err != nil {
			a.logger.Warn(fmt.Sprintf("skipping %s: %v", filepath.Base(task.path), err))
			continue
		}
		stats.Total++

		image, err := a.namer.ImageName(task.id)
		if err != nil {
			a.logger.Error(zerr.With(err, "file", task.path))
			stats.Failed++
			continue
		}
		exists, err := a.runtime.ImageExists(ctx, image)
		if err != nil {
			a.logger.Error(err)
			stats.Failed++
			continue
		}
		if !exists {
			a.logger.Warn(fmt.Sprintf("image %s not found, skipping %s", image, task.id))
			stats.Missing++
			continue
		}

		if err := a.verifyInstance(ctx, task, image); err != nil {
			a.logger.Error(zerr.With(err, "instance", task.id.Raw))
			stats.Failed++
			continue
		}
		stats.Verified++
	}

	a.logger.Info(fmt.Sprintf("%d instances: %d verified, %d without image, %d failed",
		stats.Total, stats.Verified, stats.Missing, stats.Failed))
	if stats.Failed > 0 {
		return stats, zerr.With(domain.ErrVerificationFailed, "failed", stats.Failed)
	}
	return stats, nil
}

func (a *App) verifyInstance(ctx context.Context, task taskFile, image string) error {
	dir, err := filepath.Abs(filepath.Dir(task.path))
	if err != nil {
		return err
	}

	var mounts []domain.Mount
	for _, name := range []string{domain.VerificationScriptName, domain.TestPatchFileName, domain.CodePatchFileName} {
		src := filepath.Join(dir, name)
		if _, err := os.Stat(src); err != nil {
			a.logger.Warn(fmt.Sprintf("%s not found, not mounted", name))
			continue
		}
		mounts = append(mounts, domain.Mount{Source: src, Target: containerWorkDir + "/" + name})
	}
	mounts = append(mounts, domain.Mount{Source: dir, Target: containerOutputDir})

	result := filepath.Join(dir, domain.ContainerResultFileName)
	if err := os.Remove(result); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn(fmt.Sprintf("could not remove stale %s: %v", domain.ContainerResultFileName, err))
	}

	code, err := a.runtime.RunContainer(ctx, domain.ContainerSpec{
		Image:      image,
		Name:       "prep-verify-" + strings.ToLower(task.id.Raw),
		Command:    []string{"/bin/bash", "-c", verifyScript},
		WorkingDir: containerWorkDir,
		Env:        map[string]string{"INSTANCE_ID": task.id.Raw},
		Mounts:     mounts,
		Network:    a.settings.DockerNetwork,
	}, a.out)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("container exited with status %d", code))

	if _, err := os.Stat(result); err != nil {
		return zerr.With(domain.ErrResultMissing, "dir", dir)
	}
	a.logger.Info("result written to " + result)
	return nil
}

// scanTasks reads every task document below dir. Files that are not JSON objects with a
// parsable instance_id are skipped.
func (a *App) scanTasks(dir string) ([]taskFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrTasksDirNotFound, "dir", dir)
	}

	var tasks []taskFile
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" || d.Name() == domain.ContainerResultFileName {
			return nil
		}

		data, err := os.ReadFile(path) //nolint:gosec // Walking a caller-provided tasks directory
		if err != nil {
			return err
		}
		var head struct {
			InstanceID string `json:"instance_id"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			a.logger.Warn("skipping invalid JSON file " + d.Name())
			return nil
		}
		if head.InstanceID == "" {
			return nil
		}
		id, err := domain.ParseInstanceID(head.InstanceID)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("skipping %s: %v", d.Name(), err))
			return nil
		}
		tasks = append(tasks, taskFile{path: path, data: data, id: id})
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan tasks directory"), "dir", dir)
	}
	return tasks, nil
}
