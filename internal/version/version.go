// Package version reports build information.
//
// The values are set at build time:
//
//	go build -ldflags "-X github.com/information-sharing-networks/journey/internal/version.version=v1.2.0 \
//	  -X github.com/information-sharing-networks/journey/internal/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// the commit falls back to the vcs revision recorded by the go toolchain.
package version

import "runtime/debug"

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

func Get() Info {
	info := Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	if info.GitCommit == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					info.GitCommit = s.Value
				}
			}
		}
	}
	return info
}
