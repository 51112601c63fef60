// Package domain contains core domain types for the compiled-namespace cache.
package domain

import "strings"

// MacroSuffix is the fixed marker appended to a namespace name to form the
// cache key of its macro variant.
const MacroSuffix = "$macros"

// NamespaceID identifies a namespace together with its flavor: ordinary
// runtime code or macro-only code evaluated at compile time.
type NamespaceID struct {
	// Name is the dotted namespace name, e.g. "foo.bar".
	Name string

	// Macros marks the compile-time variant of the namespace.
	Macros bool
}

// CacheKey returns the string key used to index the output cache.
// Macro identities get the MacroSuffix appended; a name that already ends in
// the suffix therefore collides with its own macro variant. That is a known
// limitation of the string keyspace, not something this layer corrects.
func (id NamespaceID) CacheKey() string {
	if id.Macros {
		return id.Name + MacroSuffix
	}
	return id.Name
}

// Path derives the filesystem-style path for the namespace by replacing every
// dot separator with a slash, e.g. "foo.bar" -> "foo/bar".
func (id NamespaceID) Path() string {
	return strings.ReplaceAll(id.Name, ".", "/")
}

// ParseProvidedName converts a raw provided name from emitted output into a
// NamespaceID. A trailing MacroSuffix marks the macro variant and is stripped
// from the name. This is the single seam that decides macro-ness; the provide
// scanner itself only recovers raw names.
func ParseProvidedName(raw string) NamespaceID {
	if name, ok := strings.CutSuffix(raw, MacroSuffix); ok {
		return NamespaceID{Name: name, Macros: true}
	}
	return NamespaceID{Name: raw}
}
