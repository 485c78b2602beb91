package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func TestFindPDFs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pdf"))
	touch(t, filepath.Join(root, "a.PDF"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "2025", "oct.pdf"))
	touch(t, filepath.Join(root, ".cache", "old.pdf"))
	touch(t, filepath.Join(root, ".hidden.pdf"))

	tests := []struct {
		name       string
		skipHidden bool
		want       []string
	}{
		{"skip hidden", true, []string{"2025/oct.pdf", "a.PDF", "b.pdf"}},
		{"include hidden", false, []string{".cache/old.pdf", ".hidden.pdf", "2025/oct.pdf", "a.PDF", "b.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, stats, err := FindPDFs(root, tt.skipHidden)
			require.NoError(t, err)

			var rel []string
			for _, p := range paths {
				r, err := filepath.Rel(root, p)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}
			assert.Equal(t, tt.want, rel)
			assert.Equal(t, uint32(len(tt.want)), stats.Matched)
			assert.Zero(t, stats.Failed)
		})
	}
}

func TestFindPDFs_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.pdf")
	touch(t, path)

	paths, stats, err := FindPDFs(path, true)

	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
	assert.Equal(t, uint32(1), stats.Matched)
}

func TestFindPDFs_Errors(t *testing.T) {
	_, _, err := FindPDFs("  ", true)
	assert.Error(t, err)

	_, _, err = FindPDFs(filepath.Join(t.TempDir(), "missing"), true)
	assert.Error(t, err)

	txt := filepath.Join(t.TempDir(), "a.txt")
	touch(t, txt)
	_, _, err = FindPDFs(txt, true)
	assert.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/x/.git"))
	assert.False(t, IsHidden("/x/git"))
	assert.False(t, IsHidden("."))
}
