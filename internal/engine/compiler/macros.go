package compiler

import (
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

// macroReadyHook builds the cache-update hook the engine invokes when a macro
// namespace has been compiled and is about to be evaluated. Macro namespaces
// must be durably cached before evaluation so they are never recompiled
// within the same process, including by a resolver call re-entering while
// the enclosing compile is still running.
//
// The hook is only ever invoked for cacheable entries, so the artifact is
// written unconditionally under the macro cache key. The acknowledgement is
// fire-and-forget: the engine requires the call to proceed but ignores any
// value.
func (c *Compiler) macroReadyHook() ports.MacroReadyFunc {
	return func(artifact domain.MacroArtifact, ack func()) {
		id := domain.NamespaceID{Name: artifact.Name, Macros: true}
		c.out.Merge(map[string]domain.NamespaceRecord{
			id.CacheKey(): domain.NewCompiledRecord(id, artifact.Source, artifact.Analysis),
		})
		ack()
	}
}
