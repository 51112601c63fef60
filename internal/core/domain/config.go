package domain

// ConfigFileName is the project configuration file searched for upward from
// the working directory.
const ConfigFileName = "smelt.yaml"

// DefaultName is the target namespace used when neither the configuration
// nor the host supplies one.
const DefaultName = "unknown"

// ProjectConfig is the host-facing configuration for a compile session.
type ProjectConfig struct {
	// Name is the default target namespace for compiles.
	Name string

	// Root is the directory the filesystem source loader resolves namespace
	// paths against.
	Root string

	// LogJSON switches the logger from pretty to JSON output.
	LogJSON bool
}

// DefaultProjectConfig returns the configuration used when no smelt.yaml is
// present.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{Name: DefaultName, Root: "."}
}
