// Package fsloader implements a filesystem-backed source loader.
package fsloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

// Ext is the file extension for namespace source files.
const Ext = ".smt"

// macroFileSuffix distinguishes macro-variant source files on disk.
const macroFileSuffix = "_macros"

// Loader resolves namespace identities to source files under a root
// directory: "foo.bar" maps to <root>/foo/bar.smt, and its macro variant to
// <root>/foo/bar_macros.smt.
type Loader struct {
	root   string
	logger ports.Logger
}

var _ ports.SourceLoader = (*Loader)(nil)

// New creates a Loader rooted at root.
func New(root string, logger ports.Logger) *Loader {
	return &Loader{root: root, logger: logger}
}

// Load reads the source file for id. A missing file means the namespace is
// unknown, which is a normal miss, not an error; unexpected read failures are
// logged and reported as misses too, since the loader contract has no error
// channel.
func (l *Loader) Load(id domain.NamespaceID) (string, bool) {
	data, err := os.ReadFile(l.pathFor(id))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && l.logger != nil {
			l.logger.Warn(fmt.Sprintf("source load failed for %s: %v", id.CacheKey(), err))
		}
		return "", false
	}
	return string(data), true
}

func (l *Loader) pathFor(id domain.NamespaceID) string {
	rel := filepath.FromSlash(id.Path())
	if id.Macros {
		rel += macroFileSuffix
	}
	return filepath.Join(l.root, rel+Ext)
}
