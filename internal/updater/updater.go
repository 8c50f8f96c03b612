// Package updater checks for and applies zedkit release updates.
package updater

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/creativeprojects/go-selfupdate"

	"github.com/thoreinstein/zedkit/internal/backup"
	"github.com/thoreinstein/zedkit/internal/errors"
)

const (
	// Repository is the GitHub repository zedkit releases are published to.
	Repository = "thoreinstein/zedkit"

	// Timeout bounds a full check-and-apply cycle.
	Timeout = 5 * time.Minute
)

// Updater handles checking for and applying updates to the running binary.
type Updater struct {
	current string
	su      *selfupdate.Updater
}

// New creates an Updater for the given running version.
// Release assets are verified against the published checksum file.
func New(version string) (*Updater, error) {
	su, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{
			UniqueFilename: "checksums.txt",
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating updater")
	}

	return &Updater{
		current: strings.TrimPrefix(version, "v"),
		su:      su,
	}, nil
}

// Check queries GitHub for the latest release.
// Returns nil when the current version is already up to date.
func (u *Updater) Check(ctx context.Context) (*selfupdate.Release, error) {
	latest, found, err := u.su.DetectLatest(ctx, selfupdate.ParseSlug(Repository))
	if err != nil {
		return nil, errors.Wrap(err, "checking for updates")
	}
	if !found {
		return nil, errors.New("no releases found")
	}

	if latest.LessOrEqual(u.current) {
		return nil, nil
	}

	return latest, nil
}

// Apply downloads the release and replaces the running executable.
// The previous binary is kept as a backup and restored if the swap fails.
func (u *Updater) Apply(ctx context.Context, release *selfupdate.Release) error {
	exe, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "locating executable")
	}

	bak, err := backup.File(exe)
	if err != nil {
		return errors.Wrap(err, "creating backup")
	}

	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		if rbErr := os.Rename(bak, exe); rbErr != nil {
			return errors.Wrapf(err, "update failed, rollback also failed: %v", rbErr)
		}
		return errors.Wrap(err, "update failed (rolled back)")
	}

	_ = os.Remove(bak)
	return nil
}
