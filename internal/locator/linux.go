package locator

import (
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/thoreinstein/zedkit/internal/paths"
)

// linuxStrategy discovers Zed on Linux: distro packages, the official
// install script's per-user trees, and Flatpak exports.
type linuxStrategy struct {
	home    string
	binHome string
}

func newLinuxStrategy() linuxStrategy {
	return linuxStrategy{
		home:    paths.Home(),
		binHome: paths.BinHome(),
	}
}

func (s linuxStrategy) enumerate() []string {
	candidates := []string{
		"/usr/bin/zed",
		"/usr/local/bin/zed",
		"/var/lib/flatpak/exports/bin/dev.zed.Zed",
	}
	if s.home != "" {
		// zed.sh installs per-user under ~/.local, one tree per channel.
		candidates = append(candidates,
			filepath.Join(s.home, ".local", "zed.app", "bin", "zed"),
			filepath.Join(s.home, ".local", "zed-preview.app", "bin", "zed"),
		)
	}
	if s.binHome != "" {
		candidates = append(candidates, filepath.Join(s.binHome, "zed"))
	}
	return candidates
}

func (s linuxStrategy) isCandidate(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return strings.Contains(strings.ToLower(filepath.Base(path)), matchToken)
}

func (s linuxStrategy) resolveRealPath(path string) string {
	target, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}

func (s linuxStrategy) version(string) *goversion.Version {
	// Linux installs carry no bundle metadata.
	return nil
}
