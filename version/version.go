// Package version reports the version of the tonic tools.
package version

import "runtime/debug"

// Version can be set at build time:
//
//	go build -ldflags "-X github.com/vsariola/tonic/version.Version=$(git describe --dirty)" ./cmd/tonic
var Version string

// Hash is the short VCS revision the binary was built from, with a "-dirty"
// suffix if the tree had local modifications, or "" when unknown.
var Hash = revision(debug.ReadBuildInfo())

// VersionOrHash is Version when set and Hash otherwise.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

func revision(info *debug.BuildInfo, ok bool) string {
	if !ok {
		return ""
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
