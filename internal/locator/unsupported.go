package locator

import (
	goversion "github.com/hashicorp/go-version"
)

// unsupportedStrategy discovers nothing. Windows and any other system
// without a known Zed install layout get this strategy.
type unsupportedStrategy struct{}

func (unsupportedStrategy) enumerate() []string { return nil }

func (unsupportedStrategy) isCandidate(string) bool { return false }

func (unsupportedStrategy) resolveRealPath(path string) string { return path }

func (unsupportedStrategy) version(string) *goversion.Version { return nil }
