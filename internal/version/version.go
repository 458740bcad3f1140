// Package version carries the build version, overridden with -ldflags.
package version

var Version = "dev"
