package ports

import "go.trai.ch/smelt/internal/core/domain"

// SourceLoader supplies source text for namespaces that miss the output
// cache. Returning false means the namespace is unknown; that is not an
// error, the compiler engine decides how to surface it.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type SourceLoader interface {
	Load(id domain.NamespaceID) (string, bool)
}

// SourceLoaderFunc adapts a plain function to the SourceLoader interface.
type SourceLoaderFunc func(id domain.NamespaceID) (string, bool)

// Load implements SourceLoader.
func (f SourceLoaderFunc) Load(id domain.NamespaceID) (string, bool) {
	return f(id)
}
