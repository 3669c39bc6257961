// Package version holds the restkit version, set at build time with
//
//	-ldflags "-X github.com/hashicorp-forge/restkit/internal/version.Version=v1.2.3"
package version

// Version is the version of the restkit binary.
var Version = "0.1.0-dev"
