package version

import (
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Unknown is reported when no usable version is available.
const Unknown = "unknown"

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// Resolve returns the semantic version of this build without a leading
// "v": the link-time Version when it parses, else the main module version
// recorded by the go tool, else Unknown.
func Resolve() string {
	if v, ok := normalize(Version); ok {
		return v
	}
	if info, ok := readBuildInfo(); ok {
		if v, ok := normalize(info.Main.Version); ok {
			return v
		}
	}
	return Unknown
}

func normalize(raw string) (string, bool) {
	switch raw {
	case "", "dev", "(devel)", Unknown:
		return "", false
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return "", false
	}
	return v.String(), true
}

// String returns a human-readable version string.
func String() string {
	return "APX Lint v" + Resolve() + " (" + Commit + ", " + BuildDate + ")"
}
