package commands

import (
	"log/slog"

	"github.com/thoreinstein/zedkit/internal/config"
	"github.com/thoreinstein/zedkit/internal/locator"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// currentConfig returns the loaded configuration, falling back to defaults
// when loading failed or has not happened yet.
func currentConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return config.Default()
}

// newLocator builds a Locator honoring configured extra search paths.
func newLocator(logger *slog.Logger) *locator.Locator {
	c := currentConfig()
	return locator.New(
		locator.WithExtraPaths(c.Search.ExtraPaths),
		locator.WithLogger(logger),
	)
}
