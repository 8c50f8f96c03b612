// Package config provides configuration management for the zedkit CLI.
//
// This package handles loading and validating the zedkit tool's own
// configuration file. It is distinct from Zed's project settings, which
// are materialized by the settings package.
//
// # Configuration File
//
// The default configuration file location is ~/.config/zedkit/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	search:
//	  extra_paths:            # optional, probed after the built-in candidates
//	    - /opt/zed/bin/zed
//	zed:
//	  path: /usr/bin/zed      # optional, pins the installation to launch
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// An empty path searches the default locations and falls back to default
// values when no file exists. A non-empty path must name an existing file.
//
// Environment variables override file values using the ZEDKIT prefix, for
// example ZEDKIT_ZED_PATH=/usr/local/bin/zed.
//
// # Validation
//
// All loaded configurations are validated automatically. You can also
// validate a configuration manually:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
