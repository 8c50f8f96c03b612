package locator

import (
	goversion "github.com/hashicorp/go-version"
)

// strategy captures what differs between operating systems during
// discovery: which locations to probe, what counts as an installation,
// how to see through symlinks, and where version metadata lives.
type strategy interface {
	// enumerate returns the well-known locations to probe, in probe order.
	// Entries may be missing from disk or duplicated; the locator filters.
	enumerate() []string

	// isCandidate reports whether path plausibly names a Zed installation.
	isCandidate(path string) bool

	// resolveRealPath follows one symlink level. It returns path unchanged
	// when path is not a link or the link cannot be read.
	resolveRealPath(path string) string

	// version extracts the installation's version from metadata near path,
	// or nil when no readable metadata exists.
	version(path string) *goversion.Version
}

// strategyForGOOS selects the discovery strategy for an operating system.
// Systems without a known Zed install layout get a strategy that
// discovers nothing.
func strategyForGOOS(goos string) strategy {
	switch goos {
	case "darwin":
		return newDarwinStrategy()
	case "linux":
		return newLinuxStrategy()
	default:
		return unsupportedStrategy{}
	}
}
