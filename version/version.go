// Package version exposes build metadata. Values may be set at link time:
//
//	go build -ldflags "-X github.com/farcloser/replaygain/version.version=v1.0.0 -X ..."
package version

import "runtime/debug"

//nolint:gochecknoglobals // set through -ldflags
var (
	name    = "replaygain"
	version = ""
	commit  = ""
)

func Name() string {
	return name
}

// Version returns the link-time version, then the module version, then "dev".
func Version() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}

// Commit returns the link-time commit, then the VCS revision stamped by the toolchain.
func Commit() string {
	if commit != "" {
		return commit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}
