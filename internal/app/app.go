// Package app implements the application layer for smelt.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/smelt/internal/core/ports"
	"go.trai.ch/smelt/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	compiler *compiler.Compiler
	loader   ports.SourceLoader
	logger   ports.Logger
	config   domain.ProjectConfig
	out      io.Writer
}

// New creates a new App instance.
func New(
	comp *compiler.Compiler,
	loader ports.SourceLoader,
	log ports.Logger,
	cfg domain.ProjectConfig,
) *App {
	return &App{
		compiler: comp,
		loader:   loader,
		logger:   log,
		config:   cfg,
		out:      os.Stdout,
	}
}

// WithOutput redirects emitted output and inspection dumps. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// CompileOptions configuration for the CompileFile method.
type CompileOptions struct {
	// Name overrides the target namespace from the project configuration.
	Name string

	// Inspect prints the output cache and engine state after the compile.
	Inspect bool
}

// CompileFile compiles the source file at path and writes the emitted output
// to the app's output writer. The compile outcome arrives through the
// orchestrator's continuations; a failure is adapted back into an error for
// the CLI.
func (a *App) CompileFile(path string, opts CompileOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(domain.ErrNoSourceFile, zerr.With(zerr.Wrap(err, "failed to read source"), "path", path))
	}

	name := opts.Name
	if name == "" {
		name = a.config.Name
	}

	var failure *domain.CompileError
	a.compiler.Compile(string(data), compiler.Config{
		Name:   name,
		Logger: a.logger,
		Loader: a.loader,
		OnSuccess: func(output string) {
			_, _ = io.WriteString(a.out, output)
		},
		OnFailure: func(err *domain.CompileError) {
			failure = err
			a.logger.Error(err)
		},
	})

	if opts.Inspect {
		a.inspect()
	}

	if failure != nil {
		return errors.Join(domain.ErrCompileFailed, failure)
	}

	a.logger.Info(fmt.Sprintf("compiled %s", name))
	return nil
}

func (a *App) inspect() {
	_, _ = io.WriteString(a.out, "--- output cache ---\n")
	_, _ = io.WriteString(a.out, a.compiler.DumpCache())
	_, _ = io.WriteString(a.out, "--- engine state ---\n")
	_, _ = io.WriteString(a.out, a.compiler.DumpEngine())
}
