package ports

import "go.trai.ch/smelt/internal/core/domain"

// ResolveReply delivers the outcome of a dependency resolution request back
// to the engine. A nil record signals that the namespace could not be
// resolved; the engine is expected to treat that as a fatal unresolved
// reference for the compile in flight.
type ResolveReply func(rec *domain.NamespaceRecord)

// ResolveFunc is the dependency resolution hook the engine calls for every
// unresolved reference. The reply is invoked exactly once per request,
// synchronously or not; the engine must not depend on which.
type ResolveFunc func(id domain.NamespaceID, reply ResolveReply)

// MacroReadyFunc is called when the engine has compiled a macro namespace and
// is about to evaluate it. The hook must invoke ack exactly once for the
// engine to proceed; the engine ignores anything beyond the acknowledgement.
type MacroReadyFunc func(artifact domain.MacroArtifact, ack func())

// EvalFunc executes emitted or macro code on the engine's behalf.
type EvalFunc func(code string) error

// CompileOptions wires the per-compile hooks and switches into the engine.
type CompileOptions struct {
	Eval         EvalFunc
	Resolve      ResolveFunc
	OnMacroReady MacroReadyFunc

	// SourceMap enables source-map generation in the engine.
	SourceMap bool

	// Verbose enables the engine's own chatty logging.
	Verbose bool
}

// EmitResult is the terminal outcome of one engine compile call.
type EmitResult struct {
	// Output is the emitted compiled text, empty on failure.
	Output string

	// Err is non-nil when compilation failed.
	Err error
}

// Engine is the opaque external compiler. Implementations own a single
// process-wide mutable state that is only ever advanced by successive
// Compile calls, never reset.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// Compile compiles source for the target namespace name. done is called
	// exactly once with the outcome, possibly before Compile returns.
	Compile(source, name string, opts CompileOptions, done func(EmitResult))

	// Redirect routes the engine's print and error output to sink until the
	// returned restore function is called.
	Redirect(sink Logger) (restore func())

	// Analysis returns a copy of the engine's internal analysis metadata for
	// the named namespace, keyed by the engine's own name for it (macro
	// namespaces carry the macro suffix).
	Analysis(name string) (map[string]any, bool)

	// DumpState renders the engine's internal state for diagnostics.
	DumpState() string
}
