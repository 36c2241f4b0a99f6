// Package fs provides file hashing, fingerprinting and copying.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxHashWorkers bounds concurrent file reads while fingerprinting.
const maxHashWorkers = 8

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash digests of files and project definitions.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the xxhash of a file's content.
func (h *Hasher) HashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	return digest.Sum64(), nil
}

// Fingerprint hashes the project definition and the content of every copy source,
// resolved against dir. Sources are read concurrently; the digest order follows the step order.
func (h *Hasher) Fingerprint(ctx context.Context, project *domain.Project, dir string) (string, error) {
	digest := xxhash.New()
	hashProjectDefinition(project, digest)

	sources := copySources(project, dir)
	sums := make([]string, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxHashWorkers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := h.HashFile(src)
			if err != nil {
				if _, statErr := os.Stat(src); os.IsNotExist(statErr) {
					sums[i] = "missing"
					return nil
				}
				return err
			}
			sums[i] = strconv.FormatUint(sum, 16)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	for _, sum := range sums {
		writeField(digest, sum)
	}
	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// copySources resolves every copy source of the project against dir.
func copySources(project *domain.Project, dir string) []string {
	var sources []string
	for _, step := range project.Steps {
		if step.Kind != domain.StepCopy {
			continue
		}
		for _, f := range step.Files {
			sources = append(sources, resolvePath(dir, f.From))
		}
	}
	return sources
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

func hashProjectDefinition(p *domain.Project, digest *xxhash.Digest) {
	writeField(digest, p.Name)
	writeField(digest, p.WorkingDir)
	writeField(digest, p.SystemManagerOrDefault())
	writeField(digest, p.PackageManagerOrDefault())
	writeField(digest, string(p.OnFailure))
	writeField(digest, strconv.FormatBool(p.Hermetic))
	hashEnvironment(p.Options, digest)

	for _, step := range p.Steps {
		writeField(digest, step.Name)
		writeField(digest, string(step.Kind))
		writeField(digest, string(step.OnFailure))
		writeList(digest, step.Packages)
		writeList(digest, step.Requirements)
		writeList(digest, step.Editable)
		writeField(digest, strconv.FormatBool(step.Update))
		for _, f := range step.Files {
			writeField(digest, f.From)
			writeField(digest, f.To)
		}
		_, _ = digest.Write([]byte{0})
		hashEnvironment(step.Env, digest)
		writeField(digest, step.Command)
	}
}

// hashEnvironment hashes variables in sorted order.
func hashEnvironment(env map[string]string, digest *xxhash.Digest) {
	for _, kv := range domain.Options(env).Environ() {
		writeField(digest, kv)
	}
	_, _ = digest.Write([]byte{0})
}

func writeList(digest *xxhash.Digest, values []string) {
	for _, v := range values {
		writeField(digest, v)
	}
	_, _ = digest.Write([]byte{0})
}

func writeField(digest *xxhash.Digest, s string) {
	_, _ = digest.WriteString(s)
	_, _ = digest.Write([]byte{0})
}
