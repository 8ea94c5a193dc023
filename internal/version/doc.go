// Package version exposes rainy build metadata.
//
// Version, Commit and BuildTime are injected with -ldflags "-X ..." and keep
// development defaults otherwise.
package version
