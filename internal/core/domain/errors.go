package domain

import "go.trai.ch/zerr"

var (
	// ErrUnresolvedNamespace is reported by the compiler engine when a
	// required namespace is absent from both the cache and the source loader.
	ErrUnresolvedNamespace = zerr.New("unresolved namespace")

	// ErrCompileFailed wraps any compile outcome delivered to the failure
	// continuation; the CLI maps it to a non-zero exit code.
	ErrCompileFailed = zerr.New("compile failed")

	// ErrNoSourceFile is returned when the CLI is invoked without a readable
	// source file.
	ErrNoSourceFile = zerr.New("no source file")

	// ErrConfigInvalid is returned when smelt.yaml exists but cannot be
	// parsed.
	ErrConfigInvalid = zerr.New("invalid configuration")
)
