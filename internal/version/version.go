// Package version holds the build version, set with
// -ldflags "-X dnafix/internal/version.Version=v1.2.3".
package version

var Version = "dev"

// Tool is the program name used in usage text and log headers.
const Tool = "dnafix"
