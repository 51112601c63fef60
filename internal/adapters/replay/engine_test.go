package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/smelt/internal/adapters/replay"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// resolveFrom answers resolution requests from a map of cache key to record.
func resolveFrom(records map[string]domain.NamespaceRecord) ports.ResolveFunc {
	return func(id domain.NamespaceID, reply ports.ResolveReply) {
		if rec, ok := records[id.CacheKey()]; ok {
			reply(&rec)
			return
		}
		reply(nil)
	}
}

func compileOnce(t *testing.T, e *replay.Engine, source, name string, opts ports.CompileOptions) ports.EmitResult {
	t.Helper()
	var res ports.EmitResult
	called := 0
	e.Compile(source, name, opts, func(r ports.EmitResult) {
		res = r
		called++
	})
	require.Equal(t, 1, called, "done must be called exactly once")
	return res
}

func TestEngine_EmitsProvideRequireBody(t *testing.T) {
	e := replay.New()

	res := compileOnce(t, e, "ns foo.bar\nrequire lib.dep\nvar x = 1;\n", "ignored", ports.CompileOptions{
		Resolve: resolveFrom(map[string]domain.NamespaceRecord{
			"lib.dep": domain.NewCompiledRecord(domain.NamespaceID{Name: "lib.dep"}, "cached", nil),
		}),
	})

	require.NoError(t, res.Err)
	assert.Equal(t, "goog.provide('foo.bar');\ngoog.require('lib.dep');\nvar x = 1;\n", res.Output)
}

func TestEngine_FallbackName(t *testing.T) {
	e := replay.New()

	res := compileOnce(t, e, "var x = 1;\n", "fallback.ns", ports.CompileOptions{})

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "goog.provide('fallback.ns');")
}

func TestEngine_LoaderSourceCompiledInPlace(t *testing.T) {
	e := replay.New()

	res := compileOnce(t, e, "ns foo.app\nrequire lib.dep\n", "foo.app", ports.CompileOptions{
		Resolve: resolveFrom(map[string]domain.NamespaceRecord{
			"lib.dep": domain.NewSourceRecord("ns lib.dep\nvar dep = 1;\n"),
		}),
	})

	require.NoError(t, res.Err)
	// Dependency output precedes the requiring unit's.
	assert.Equal(t,
		"goog.provide('lib.dep');\nvar dep = 1;\n"+
			"goog.provide('foo.app');\ngoog.require('lib.dep');\n",
		res.Output)
}

func TestEngine_UnresolvedRequire(t *testing.T) {
	e := replay.New()

	res := compileOnce(t, e, "ns foo.app\nrequire missing.ns\n", "foo.app", ports.CompileOptions{
		Resolve: resolveFrom(nil),
	})

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), domain.ErrUnresolvedNamespace.Error())

	var ze *zerr.Error
	require.ErrorAs(t, res.Err, &ze)
	assert.Equal(t, "missing.ns", ze.Metadata()["namespace"])

	assert.Empty(t, res.Output)
}

func TestEngine_MacroFlow(t *testing.T) {
	e := replay.New()

	var order []string
	var artifact domain.MacroArtifact

	opts := ports.CompileOptions{
		Resolve: resolveFrom(map[string]domain.NamespaceRecord{
			"util.m$macros": domain.NewSourceRecord("ns util.m\nvar m = 1;\n"),
		}),
		OnMacroReady: func(a domain.MacroArtifact, ack func()) {
			order = append(order, "cache-update")
			artifact = a
			ack()
		},
		Eval: func(string) error {
			order = append(order, "eval")
			return nil
		},
	}

	res := compileOnce(t, e, "ns foo.app\nrequire-macros util.m\n", "foo.app", opts)

	require.NoError(t, res.Err)
	// The cache update must land before evaluation.
	assert.Equal(t, []string{"cache-update", "eval"}, order)
	assert.Equal(t, "util.m", artifact.Name)
	assert.Contains(t, artifact.Source, "goog.provide('util.m$macros');")
	assert.Equal(t, true, artifact.Analysis["macro"])

	// Macro output is evaluated, not emitted with the requiring unit.
	assert.NotContains(t, res.Output, "util.m$macros")
}

func TestEngine_CachedMacrosSkipped(t *testing.T) {
	e := replay.New()

	opts := ports.CompileOptions{
		Resolve: resolveFrom(map[string]domain.NamespaceRecord{
			"util.m$macros": domain.NewCompiledRecord(
				domain.NamespaceID{Name: "util.m", Macros: true}, "cached macro out", nil),
		}),
		OnMacroReady: func(domain.MacroArtifact, func()) {
			t.Fatal("cached macros must not trigger the cache-update hook")
		},
		Eval: func(string) error {
			t.Fatal("cached macros must not be re-evaluated")
			return nil
		},
	}

	res := compileOnce(t, e, "ns foo.app\nrequire-macros util.m\n", "foo.app", opts)
	require.NoError(t, res.Err)
}

func TestEngine_UnacknowledgedMacroUpdate(t *testing.T) {
	e := replay.New()

	opts := ports.CompileOptions{
		Resolve: resolveFrom(map[string]domain.NamespaceRecord{
			"util.m$macros": domain.NewSourceRecord("ns util.m\n"),
		}),
		OnMacroReady: func(domain.MacroArtifact, func()) {
			// Never ack.
		},
	}

	res := compileOnce(t, e, "ns foo.app\nrequire-macros util.m\n", "foo.app", opts)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "not acknowledged")
}

func TestEngine_RequireDepthBounded(t *testing.T) {
	e := replay.New()

	// The loader keeps answering with source that requires itself; without
	// a depth bound this would recurse forever.
	opts := ports.CompileOptions{
		Resolve: func(_ domain.NamespaceID, reply ports.ResolveReply) {
			rec := domain.NewSourceRecord("ns loop.ns\nrequire loop.ns\n")
			reply(&rec)
		},
	}

	res := compileOnce(t, e, "ns foo.app\nrequire loop.ns\n", "foo.app", opts)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "require depth exceeded")
}

func TestEngine_AnalysisSnapshot(t *testing.T) {
	e := replay.New()

	res := compileOnce(t, e, "ns foo.bar\n", "foo.bar", ports.CompileOptions{})
	require.NoError(t, res.Err)

	meta, ok := e.Analysis("foo.bar")
	require.True(t, ok)
	assert.Equal(t, "foo.bar", meta["name"])
	assert.Equal(t, false, meta["macro"])

	// Mutating the returned map must not leak into the engine.
	meta["name"] = "tampered"
	again, _ := e.Analysis("foo.bar")
	assert.Equal(t, "foo.bar", again["name"])

	_, ok = e.Analysis("never.compiled")
	assert.False(t, ok)
}

func TestEngine_StateAdvancesAcrossCompiles(t *testing.T) {
	e := replay.New()

	compileOnce(t, e, "ns a.one\n", "a.one", ports.CompileOptions{})
	compileOnce(t, e, "ns a.two\n", "a.two", ports.CompileOptions{})

	dump := e.DumpState()
	assert.Contains(t, dump, "a.one")
	assert.Contains(t, dump, "a.two")
}
