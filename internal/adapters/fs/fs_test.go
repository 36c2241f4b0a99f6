package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prep/internal/adapters/fs"
	"go.trai.ch/prep/internal/core/domain"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	write(t, a, "same")
	write(t, b, "same")

	h := fs.NewHasher()
	sumA, err := h.HashFile(a)
	require.NoError(t, err)
	sumB, err := h.HashFile(b)
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB)

	_, err = h.HashFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func marimoProject(dir string) *domain.Project {
	return &domain.Project{
		Name:       "marimo",
		WorkingDir: dir,
		Steps: []domain.Step{
			{Kind: domain.StepPackages, Editable: []string{".[dev]"}},
			{Kind: domain.StepCopy, Files: []domain.CopySpec{
				{From: "frontend/index.html", To: "marimo/_static/index.html"},
				{From: "frontend/public/favicon.ico", To: "marimo/_static/favicon.ico"},
			}},
		},
	}
}

func TestHasher_Fingerprint(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "frontend/index.html"), "<html></html>")

	h := fs.NewHasher()
	ctx := context.Background()

	first, err := h.Fingerprint(ctx, marimoProject(dir), dir)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	again, err := h.Fingerprint(ctx, marimoProject(dir), dir)
	require.NoError(t, err)
	assert.Equal(t, first, again, "fingerprint must be deterministic")

	write(t, filepath.Join(dir, "frontend/public/favicon.ico"), "icon")
	withIcon, err := h.Fingerprint(ctx, marimoProject(dir), dir)
	require.NoError(t, err)
	assert.NotEqual(t, first, withIcon, "new source content changes the fingerprint")

	changed := marimoProject(dir)
	changed.Steps[0].Editable = []string{"."}
	other, err := h.Fingerprint(ctx, changed, dir)
	require.NoError(t, err)
	assert.NotEqual(t, withIcon, other, "definition changes the fingerprint")
}

func TestHasher_Fingerprint_EnvOrderIndependent(t *testing.T) {
	h := fs.NewHasher()
	p1 := &domain.Project{Name: "gpflow", Options: domain.Options{"A": "1", "B": "2"}}
	p2 := &domain.Project{Name: "gpflow", Options: domain.Options{"B": "2", "A": "1"}}

	f1, err := h.Fingerprint(context.Background(), p1, "")
	require.NoError(t, err)
	f2, err := h.Fingerprint(context.Background(), p2, "")
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestHasher_Fingerprint_SourcesFollowDir(t *testing.T) {
	profileDir := t.TempDir()
	checkout := t.TempDir()
	write(t, filepath.Join(profileDir, "frontend/index.html"), "<html></html>")
	write(t, filepath.Join(checkout, "frontend/index.html"), "<html></html>")

	h := fs.NewHasher()
	ctx := context.Background()
	project := marimoProject(profileDir)

	base, err := h.Fingerprint(ctx, project, profileDir)
	require.NoError(t, err)
	moved, err := h.Fingerprint(ctx, project, checkout)
	require.NoError(t, err)
	assert.Equal(t, base, moved, "identical sources in another dir hash the same")

	write(t, filepath.Join(checkout, "frontend/index.html"), "<html>v2</html>")
	edited, err := h.Fingerprint(ctx, project, checkout)
	require.NoError(t, err)
	assert.NotEqual(t, base, edited)
}

func TestCopier_Copy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "frontend/index.html")
	dst := filepath.Join(dir, "marimo/_static/index.html")
	write(t, src, "<html>v1</html>")

	c := fs.NewCopier(fs.NewHasher())

	changed, err := c.Copy(src, dst)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<html>v1</html>", string(got))

	changed, err = c.Copy(src, dst)
	require.NoError(t, err)
	assert.False(t, changed, "identical destination is left alone")

	write(t, src, "<html>v2!</html>")
	changed, err = c.Copy(src, dst)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<html>v2!</html>", string(got))

	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestCopier_Copy_MissingSource(t *testing.T) {
	dir := t.TempDir()
	c := fs.NewCopier(fs.NewHasher())

	changed, err := c.Copy(filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	require.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.False(t, changed)

	_, statErr := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCopier_Copy_SameSizeDifferentContent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	write(t, src, "aaaa")
	write(t, dst, "bbbb")

	changed, err := fs.NewCopier(fs.NewHasher()).Copy(src, dst)
	require.NoError(t, err)
	assert.True(t, changed)
}
