// Package compiler orchestrates single compile calls through the output
// cache, the dependency resolver and the external compiler engine.
package compiler

import (
	"fmt"
	"log/slog"
	"sync"

	"go.trai.ch/smelt/internal/cache"
	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
)

// Config carries the host-supplied options for one compile call. Zero fields
// fall back to documented defaults.
type Config struct {
	// Name is the target namespace for this compile. Defaults to
	// domain.DefaultName.
	Name string

	// Logger receives the engine's redirected print and error output.
	// Defaults to a slog-backed console logger.
	Logger ports.Logger

	// Loader supplies source for namespaces that miss the cache. Defaults to
	// a loader that knows nothing.
	Loader ports.SourceLoader

	// Eval executes emitted and macro code. Defaults to a no-op; Go has no
	// ambient eval, so hosts that need execution must supply one.
	Eval ports.Evaluator

	// OnSuccess receives the emitted output. Defaults to a no-op.
	OnSuccess func(output string)

	// OnFailure receives the normalized compile error. Defaults to a no-op.
	OnFailure func(err *domain.CompileError)
}

// Compiler wires compile calls through the engine and the output cache. Both
// collaborators are constructed once by the host and shared across calls;
// the engine state only ever advances, and the cache only ever grows.
// Correctness assumes the host serializes compiles or accepts
// last-writer-wins on cache merges.
type Compiler struct {
	engine ports.Engine
	out    *cache.Output
}

// New creates a Compiler around the shared engine and output cache.
func New(engine ports.Engine, out *cache.Output) *Compiler {
	return &Compiler{engine: engine, out: out}
}

// Compile compiles source under cfg. The outcome is delivered exclusively
// through cfg's continuations; exactly one of OnSuccess and OnFailure fires,
// exactly once. Evaluator and loader errors are not caught here: the
// evaluator's error goes back to the engine, which owns the decision.
func (c *Compiler) Compile(source string, cfg Config) {
	cfg = cfg.withDefaults()

	restore := c.engine.Redirect(cfg.Logger)
	defer restore()

	var once sync.Once
	done := func(res ports.EmitResult) {
		once.Do(func() {
			if res.Err != nil {
				cfg.OnFailure(domain.NormalizeCompileError(res.Err))
				return
			}
			c.cacheProvides(res.Output)
			cfg.OnSuccess(res.Output)
		})
	}

	opts := ports.CompileOptions{
		Eval:         c.evalHook(cfg),
		Resolve:      c.resolveHook(cfg.Loader),
		OnMacroReady: c.macroReadyHook(),
		SourceMap:    true,
		Verbose:      false,
	}

	c.engine.Compile(source, cfg.Name, opts, done)
}

// HasCompiled reports whether the ordinary variant of the named namespace is
// present in the output cache.
func (c *Compiler) HasCompiled(name string) bool {
	return c.out.HasCompiled(name)
}

// DumpCache renders the output cache for diagnostics.
func (c *Compiler) DumpCache() string {
	return c.out.Dump()
}

// DumpEngine renders the engine's internal state for diagnostics.
func (c *Compiler) DumpEngine() string {
	return c.engine.DumpState()
}

// cacheProvides scans emitted output for provide declarations and merges a
// compiled record per discovered namespace in one batch. Every record carries
// the full emitted text: a single compile unit may define several namespaces
// jointly, and the output is not split per namespace.
func (c *Compiler) cacheProvides(output string) {
	ids := domain.ScanProvides(output)
	if len(ids) == 0 {
		return
	}

	entries := make(map[string]domain.NamespaceRecord, len(ids))
	for _, id := range ids {
		analysis, _ := c.engine.Analysis(id.CacheKey())
		entries[id.CacheKey()] = domain.NewCompiledRecord(id, output, analysis)
	}
	c.out.Merge(entries)
}

// evalHook wraps the host evaluator to log before executing. The error is
// handed back to the engine untouched.
func (c *Compiler) evalHook(cfg Config) ports.EvalFunc {
	return func(code string) error {
		cfg.Logger.Info(fmt.Sprintf("evaluating %d bytes", len(code)))
		return cfg.Eval.Eval(code)
	}
}

func (cfg Config) withDefaults() Config {
	if cfg.Name == "" {
		cfg.Name = domain.DefaultName
	}
	if cfg.Logger == nil {
		cfg.Logger = consoleLogger{}
	}
	if cfg.Loader == nil {
		cfg.Loader = ports.SourceLoaderFunc(func(domain.NamespaceID) (string, bool) {
			return "", false
		})
	}
	if cfg.Eval == nil {
		cfg.Eval = ports.EvaluatorFunc(func(string) error { return nil })
	}
	if cfg.OnSuccess == nil {
		cfg.OnSuccess = func(string) {}
	}
	if cfg.OnFailure == nil {
		cfg.OnFailure = func(*domain.CompileError) {}
	}
	return cfg
}

// consoleLogger is the fallback logger when the host supplies none.
type consoleLogger struct{}

func (consoleLogger) Info(msg string) { slog.Info(msg) }

func (consoleLogger) Warn(msg string) { slog.Warn(msg) }

func (consoleLogger) Error(err error) {
	if err != nil {
		slog.Error(err.Error())
	}
}
