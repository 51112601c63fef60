package fsloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/adapters/fsloader"
	"go.trai.ch/smelt/internal/core/domain"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "foo/bar.smt", "ns foo.bar\n")
	writeSource(t, root, "foo/bar_macros.smt", "ns foo.bar macros\n")

	l := fsloader.New(root, nil)

	t.Run("ordinary namespace", func(t *testing.T) {
		src, ok := l.Load(domain.NamespaceID{Name: "foo.bar"})
		require.True(t, ok)
		assert.Equal(t, "ns foo.bar\n", src)
	})

	t.Run("macro variant maps to its own file", func(t *testing.T) {
		src, ok := l.Load(domain.NamespaceID{Name: "foo.bar", Macros: true})
		require.True(t, ok)
		assert.Equal(t, "ns foo.bar macros\n", src)
	})

	t.Run("unknown namespace is a miss, not an error", func(t *testing.T) {
		_, ok := l.Load(domain.NamespaceID{Name: "no.such.ns"})
		assert.False(t, ok)
	})

	t.Run("macro variant without a file misses", func(t *testing.T) {
		writeSource(t, root, "only/plain.smt", "ns only.plain\n")
		_, ok := l.Load(domain.NamespaceID{Name: "only.plain", Macros: true})
		assert.False(t, ok)
	})
}
