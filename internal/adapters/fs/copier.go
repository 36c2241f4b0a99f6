package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileCopier = (*Copier)(nil)

// Copier copies files, skipping destinations whose content already matches.
type Copier struct {
	hasher *Hasher
}

// NewCopier creates a Copier.
func NewCopier(hasher *Hasher) *Copier {
	return &Copier{hasher: hasher}
}

// Copy writes src to dst atomically and keeps the source permission bits.
func (c *Copier) Copy(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return false, zerr.With(domain.ErrSourceNotFound, "path", src)
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", src)
	}
	if info.IsDir() {
		return false, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "source is a directory"), "path", src)
	}

	same, err := c.sameContent(src, dst, info.Size())
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	data, err := os.ReadFile(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}
	if err := tmp.Close(); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}
	return true, nil
}

func (c *Copier) sameContent(src, dst string, size int64) (bool, error) {
	dstInfo, err := os.Stat(dst)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}
	if dstInfo.IsDir() {
		return false, zerr.With(zerr.Wrap(domain.ErrCopyFailed, "destination is a directory"), "path", dst)
	}
	if dstInfo.Size() != size {
		return false, nil
	}

	srcSum, err := c.hasher.HashFile(src)
	if err != nil {
		return false, err
	}
	dstSum, err := c.hasher.HashFile(dst)
	if err != nil {
		return false, err
	}
	return srcSum == dstSum, nil
}
