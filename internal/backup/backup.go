// Package backup preserves existing files before zedkit overwrites them.
//
// Destructive writes are rare in zedkit (only `zedkit init --force`
// replaces a file the user may have edited), so the strategy is a plain
// sibling copy rather than a managed backup store: the previous content
// stays next to the original with a .bak suffix.
package backup

import (
	"io"
	"os"

	"github.com/thoreinstein/zedkit/internal/errors"
)

// Suffix is appended to the original filename for safety copies.
const Suffix = ".bak"

// File copies path to path+Suffix, preserving the original permission
// bits, and returns the path of the safety copy. An existing copy is
// replaced. A missing source is not an error; the returned path is
// empty in that case.
func File(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "opening source file")
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", errors.Wrap(err, "stat source file")
	}

	target := path + Suffix
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", errors.Wrap(err, "creating backup file")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", errors.Wrap(err, "copying file")
	}
	if err := dst.Close(); err != nil {
		return "", errors.Wrap(err, "closing backup file")
	}

	if err := os.Chmod(target, info.Mode().Perm()); err != nil {
		return "", errors.Wrap(err, "setting permissions")
	}

	return target, nil
}
