package docker

import (
	"io"
	"os"
	"path/filepath"

	"github.com/moby/go-archive"
	"github.com/moby/patternmatcher/ignorefile"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/zerr"
)

const dockerignoreName = ".dockerignore"

// buildContext streams dir as an uncompressed tar, honouring its .dockerignore.
// The caller must close the returned reader.
func buildContext(dir string) (io.ReadCloser, error) {
	excludes, err := readDockerignore(dir)
	if err != nil {
		return nil, err
	}
	return archive.TarWithOptions(dir, &archive.TarOptions{ExcludePatterns: excludes})
}

// readDockerignore never excludes the Dockerfile or the ignore file itself,
// the daemon needs both.
func readDockerignore(dir string) ([]string, error) {
	path := filepath.Join(dir, dockerignoreName)
	f, err := os.Open(path) //nolint:gosec // Path is inside the build context
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open .dockerignore"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only

	patterns, err := ignorefile.ReadAll(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read .dockerignore"), "path", path)
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	return append(patterns, "!"+domain.DockerfileName, "!"+dockerignoreName), nil
}
