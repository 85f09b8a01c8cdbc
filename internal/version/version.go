// Package version holds build version information.
package version

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/astrabot/odin-insight/internal/version.Version=...".
var Version = "dev"
