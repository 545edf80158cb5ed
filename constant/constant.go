// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Huekit is the canonical application identifier used for filesystem paths and CLI branding.
	Huekit = "huekit"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)
