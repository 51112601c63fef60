package compiler

import (
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

// resolveHook builds the engine's dependency resolution hook, bound to the
// shared output cache and the host's source loader.
//
// Cache hits answer with the cached record as-is; the reply protocol is
// honored even though this path is synchronous, so the engine cannot tell a
// hit from an asynchronous resolution. Misses fall back to the loader and
// wrap its source in a LangSource record. A namespace unknown to both is
// reported with a nil reply, never an error: unresolved references are the
// engine's failure to surface.
func (c *Compiler) resolveHook(loader ports.SourceLoader) ports.ResolveFunc {
	return func(id domain.NamespaceID, reply ports.ResolveReply) {
		if rec, ok := c.out.Get(id.CacheKey()); ok {
			reply(&rec)
			return
		}

		if src, ok := loader.Load(id); ok {
			rec := domain.NewSourceRecord(src)
			reply(&rec)
			return
		}

		reply(nil)
	}
}
