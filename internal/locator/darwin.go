package locator

import (
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/thoreinstein/zedkit/internal/bundle"
)

// applicationsDir is where macOS keeps user-visible application bundles.
const applicationsDir = "/Applications"

// darwinStrategy discovers Zed on macOS: application bundles under
// /Applications plus a Homebrew-style binary fallback.
type darwinStrategy struct {
	applications string
}

func newDarwinStrategy() darwinStrategy {
	return darwinStrategy{applications: applicationsDir}
}

func (s darwinStrategy) enumerate() []string {
	var candidates []string

	// The glob picks up renamed and multi-channel bundles (Zed Preview.app).
	matches, err := filepath.Glob(filepath.Join(s.applications, "Zed*.app"))
	if err == nil {
		candidates = append(candidates, matches...)
	}

	candidates = append(candidates,
		filepath.Join(s.applications, "Zed.app"),
		"/usr/local/bin/zed",
	)
	return candidates
}

func (s darwinStrategy) isCandidate(path string) bool {
	if path == "" {
		return false
	}
	if bundle.IsBundle(path) {
		return strings.Contains(strings.ToLower(path), matchToken)
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return strings.Contains(strings.ToLower(filepath.Base(path)), matchToken)
}

func (s darwinStrategy) resolveRealPath(path string) string {
	return path
}

func (s darwinStrategy) version(path string) *goversion.Version {
	contents, ok := bundle.ContentsDir(path)
	if !ok {
		return nil
	}
	v, ok := bundle.ShortVersion(contents)
	if !ok {
		return nil
	}
	return v
}
