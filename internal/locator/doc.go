// Package locator discovers Zed editor installations on the local machine.
//
// Discovery probes a fixed list of well-known locations per operating
// system, classifies each candidate, and reports one [Installation] record
// per hit. The strategy for the running system is picked at construction
// time; tests can select another system's strategy explicitly:
//
//	loc := locator.New(locator.WithGOOS("linux"))
//	for inst := range loc.Installations() {
//	    fmt.Println(inst.Name, inst.Path)
//	}
//
// # Candidate Locations
//
// On macOS, candidates are Zed*.app bundles under /Applications plus
// /usr/local/bin/zed. On Linux, candidates cover distro packages
// (/usr/bin/zed, /usr/local/bin/zed), Flatpak exports, the official
// install script's per-user trees under ~/.local, and ~/.local/bin/zed.
// Windows has no supported install layout and discovers nothing.
// User-configured locations are appended via [WithExtraPaths].
//
// # Version Metadata
//
// macOS bundles report the version parsed from Info.plist's
// CFBundleShortVersionString; it also decorates the display name
// ("Zed [1.186.11]"). Installations without readable metadata report
// version 0.0.0 and a bare "Zed" label. Metadata problems are never
// errors: a bundle with a broken Info.plist is still launchable.
//
// Discovery is read-only and rebuilt on every call; nothing is cached
// between calls.
package locator
