package domain

import (
	"maps"

	"github.com/cespare/xxhash/v2"
)

// Lang tags where a cached namespace record came from.
type Lang string

const (
	// LangSource marks a record holding raw source obtained from an external
	// source loader; it has not been compiled by this process.
	LangSource Lang = "source"
	// LangCompiled marks a record holding output emitted by the compiler
	// engine.
	LangCompiled Lang = "compiled"
)

// NamespaceRecord is the output cache's value type.
//
// Analysis is a snapshot of the engine's internal metadata for the namespace
// taken at cache-write time. It may go stale if the engine later re-analyzes
// the namespace under different conditions; the cache never refreshes it.
type NamespaceRecord struct {
	Lang Lang

	// ID identifies the namespace. Only meaningful for compiled records;
	// source records carry the zero value.
	ID NamespaceID

	// Path is the filesystem-style path derived from the namespace name.
	Path string

	// Source is the raw text: emitted output for compiled records, loader
	// supplied source otherwise.
	Source string

	// Fingerprint is an xxhash of Source. Diagnostic only; the cache never
	// uses it for invalidation.
	Fingerprint uint64

	// Analysis is the engine metadata snapshot, nil when absent.
	Analysis map[string]any
}

// NewCompiledRecord builds a record for a namespace produced by the compiler
// engine. The analysis metadata is copied so later engine mutations do not
// leak into the cache.
func NewCompiledRecord(id NamespaceID, source string, analysis map[string]any) NamespaceRecord {
	var snapshot map[string]any
	if analysis != nil {
		snapshot = maps.Clone(analysis)
	}
	return NamespaceRecord{
		Lang:        LangCompiled,
		ID:          id,
		Path:        id.Path(),
		Source:      source,
		Fingerprint: xxhash.Sum64String(source),
		Analysis:    snapshot,
	}
}

// NewSourceRecord builds a record for source obtained directly from an
// external loader. It carries no identity and no analysis snapshot.
func NewSourceRecord(source string) NamespaceRecord {
	return NamespaceRecord{
		Lang:        LangSource,
		Source:      source,
		Fingerprint: xxhash.Sum64String(source),
	}
}

// MacroArtifact is the payload the compiler engine hands to the cache-update
// hook when a macro namespace has been compiled and is about to be evaluated.
// Name comes from the engine's own cache metadata and never carries the
// macro suffix.
type MacroArtifact struct {
	Name     string
	Source   string
	Analysis map[string]any
}
