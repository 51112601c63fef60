// Package replay implements a minimal reference compiler engine.
//
// It exists so the CLI and the end-to-end tests have a real collaborator
// behind the ports.Engine interface: it understands a line-directive source
// form (ns / require / require-macros / body), emits goog.provide and
// goog.require declarations, drives the resolution, macro cache-update and
// eval hooks, and keeps per-namespace analysis metadata. Production hosts
// embed their own engine.
package replay

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxRequireDepth bounds require recursion. Cycle detection is this engine's
// job, not the cache layer's; a depth bound keeps a cyclic require from
// hanging the process.
const maxRequireDepth = 64

// Engine is a process-wide compiler state. It is only ever advanced by
// successive Compile calls, never reset.
type Engine struct {
	mu       sync.Mutex
	sink     ports.Logger
	analysis map[string]map[string]any
	seq      int
}

// New creates an Engine with empty state.
func New() *Engine {
	return &Engine{analysis: make(map[string]map[string]any)}
}

// Compile compiles source for the target namespace name. done is called
// exactly once, synchronously.
func (e *Engine) Compile(source, name string, opts ports.CompileOptions, done func(ports.EmitResult)) {
	out, err := e.compileUnit(source, name, opts, false, 0)
	if err != nil {
		done(ports.EmitResult{Err: err})
		return
	}
	done(ports.EmitResult{Output: out})
}

// Redirect routes the engine's diagnostic output to sink until restore is
// called.
func (e *Engine) Redirect(sink ports.Logger) func() {
	e.mu.Lock()
	prev := e.sink
	e.sink = sink
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		e.sink = prev
		e.mu.Unlock()
	}
}

// Analysis returns a copy of the analysis metadata recorded for name.
func (e *Engine) Analysis(name string) (map[string]any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	meta, ok := e.analysis[name]
	if !ok {
		return nil, false
	}
	return maps.Clone(meta), true
}

// DumpState renders the analyzed namespaces for diagnostics.
func (e *Engine) DumpState() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(e.analysis)) {
		fmt.Fprintf(&b, "%s\tseq=%v\n", name, e.analysis[name]["seq"])
	}
	return b.String()
}

// unit is one parsed compile unit of the line-directive source form.
type unit struct {
	name          string
	requires      []string
	macroRequires []string
	body          []string
}

func parseUnit(source, fallback string) unit {
	u := unit{name: fallback}

	for line := range strings.Lines(source) {
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "ns "):
			u.name = strings.TrimSpace(strings.TrimPrefix(line, "ns "))
		case strings.HasPrefix(line, "require-macros "):
			u.macroRequires = append(u.macroRequires, strings.TrimSpace(strings.TrimPrefix(line, "require-macros ")))
		case strings.HasPrefix(line, "require "):
			u.requires = append(u.requires, strings.TrimSpace(strings.TrimPrefix(line, "require ")))
		default:
			u.body = append(u.body, line)
		}
	}

	return u
}

func (e *Engine) compileUnit(source, fallback string, opts ports.CompileOptions, macro bool, depth int) (string, error) {
	if depth > maxRequireDepth {
		return "", zerr.With(zerr.New("require depth exceeded"), "namespace", fallback)
	}

	u := parseUnit(source, fallback)

	var deps strings.Builder
	for _, dep := range u.requires {
		sub, err := e.resolveRequire(dep, opts, depth)
		if err != nil {
			return "", err
		}
		deps.WriteString(sub)
	}

	for _, dep := range u.macroRequires {
		if err := e.loadMacros(dep, opts, depth); err != nil {
			return "", err
		}
	}

	out := deps.String() + e.emit(u, macro, opts)
	return out, nil
}

// resolveRequire asks the resolution hook for dep. Cached namespaces need no
// re-emission; loader-supplied source is compiled in place and its output
// prepended to the requiring unit's.
func (e *Engine) resolveRequire(dep string, opts ports.CompileOptions, depth int) (string, error) {
	rec := e.resolve(domain.NamespaceID{Name: dep}, opts)
	switch {
	case rec == nil:
		return "", zerr.With(domain.ErrUnresolvedNamespace, "namespace", dep)
	case rec.Lang == domain.LangSource:
		return e.compileUnit(rec.Source, dep, opts, false, depth+1)
	default:
		return "", nil
	}
}

// loadMacros compiles and evaluates the macro variant of dep. The compiled
// artifact is handed to the cache-update hook before evaluation; a cache hit
// means the macros were already evaluated this process and nothing is done.
func (e *Engine) loadMacros(dep string, opts ports.CompileOptions, depth int) error {
	id := domain.NamespaceID{Name: dep, Macros: true}

	rec := e.resolve(id, opts)
	switch {
	case rec == nil:
		return zerr.With(domain.ErrUnresolvedNamespace, "namespace", id.CacheKey())
	case rec.Lang == domain.LangCompiled:
		return nil
	}

	out, err := e.compileUnit(rec.Source, dep, opts, true, depth+1)
	if err != nil {
		return err
	}

	if opts.OnMacroReady != nil {
		analysis, _ := e.Analysis(id.CacheKey())
		acked := false
		opts.OnMacroReady(domain.MacroArtifact{Name: dep, Source: out, Analysis: analysis}, func() {
			acked = true
		})
		if !acked {
			return zerr.With(zerr.New("macro cache update not acknowledged"), "namespace", id.CacheKey())
		}
	}

	if opts.Eval != nil {
		if err := opts.Eval(out); err != nil {
			return zerr.Wrap(err, "macro evaluation failed")
		}
	}

	return nil
}

func (e *Engine) resolve(id domain.NamespaceID, opts ports.CompileOptions) *domain.NamespaceRecord {
	if opts.Resolve == nil {
		return nil
	}

	var rec *domain.NamespaceRecord
	opts.Resolve(id, func(r *domain.NamespaceRecord) { rec = r })
	return rec
}

// emit renders the unit's output and records its analysis metadata under the
// engine's name for it.
func (e *Engine) emit(u unit, macro bool, opts ports.CompileOptions) string {
	engineName := u.name
	if macro {
		engineName += domain.MacroSuffix
	}

	e.mu.Lock()
	e.seq++
	e.analysis[engineName] = map[string]any{
		"name":     u.name,
		"requires": slices.Clone(u.requires),
		"macro":    macro,
		"seq":      e.seq,
	}
	sink := e.sink
	e.mu.Unlock()

	if opts.Verbose && sink != nil {
		sink.Info("compiled " + engineName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "goog.provide('%s');\n", engineName)
	for _, dep := range u.requires {
		fmt.Fprintf(&b, "goog.require('%s');\n", dep)
	}
	for _, line := range u.body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
