// Package bundle reads version metadata out of macOS application bundles.
package bundle

import (
	"os"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"howett.net/plist"

	"github.com/thoreinstein/zedkit/pkg/fileutil"
)

// Extension is the directory suffix of a macOS application bundle.
const Extension = ".app"

// InfoFileName is the property list carrying bundle metadata.
const InfoFileName = "Info.plist"

// info models the subset of Info.plist keys we care about.
type info struct {
	ShortVersion string `plist:"CFBundleShortVersionString"`
}

// IsBundle reports whether path names an application bundle directory.
func IsBundle(path string) bool {
	if path == "" {
		return false
	}
	path = filepath.Clean(path)
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// ContentsDir locates the Contents directory holding a bundle's metadata,
// starting from either a bundle path or an executable inside one.
//
// A *.app directory maps to its own Contents directory. A binary inside
// <bundle>/Contents/MacOS maps back to the bundle's Contents directory.
// Any other file maps to a Contents directory next to it, which simply
// won't exist for paths outside a bundle.
func ContentsDir(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	path = filepath.Clean(path)
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return filepath.Join(path, "Contents"), true
	}

	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	if strings.EqualFold(filepath.Base(parent), "MacOS") {
		grand := filepath.Dir(parent)
		if grand == parent {
			return "", false
		}
		root := filepath.Dir(grand)
		if root == grand {
			return "", false
		}
		return filepath.Join(root, "Contents"), true
	}
	return filepath.Join(parent, "Contents"), true
}

// ShortVersion reads CFBundleShortVersionString from the Info.plist under
// contentsDir and parses it as a version.
//
// Returns false when the plist is missing or malformed, when the key is
// absent, or when the value does not parse as a version. None of these are
// errors; bundles without readable metadata are still valid installations.
func ShortVersion(contentsDir string) (*goversion.Version, bool) {
	data, err := fileutil.ReadFileWithLimit(filepath.Join(contentsDir, InfoFileName))
	if err != nil {
		return nil, false
	}

	var meta info
	if _, err := plist.Unmarshal(data, &meta); err != nil {
		return nil, false
	}
	if meta.ShortVersion == "" {
		return nil, false
	}

	v, err := goversion.NewVersion(meta.ShortVersion)
	if err != nil {
		return nil, false
	}
	return v, true
}
