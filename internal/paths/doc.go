// Package paths provides path resolution for Zed settings artifacts and
// zedkit's own configuration files.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config, ~/.local/bin).
//
// # Project Settings
//
// Zed reads workspace configuration from a .zed directory at the project
// root:
//
//	paths.ProjectSettingsDir(root)  // <root>/.zed/
//	paths.ProjectSettingsPath(root) // <root>/.zed/settings.json
//
// # Error Handling
//
// Functions that derive paths from inputs return empty strings for empty
// inputs. Functions that can fail (home directory lookup) have a Resolve
// variant returning an error:
//
//	home, err := paths.ResolveHome()
//	if errors.Is(err, paths.ErrHomeDirNotFound) {
//	    // no usable home directory
//	}
package paths
