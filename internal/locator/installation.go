package locator

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// DisplayName is the user-facing editor label.
const DisplayName = "Zed"

// matchToken identifies Zed paths and binaries, compared case-insensitively.
const matchToken = "zed"

// LanguageVersion is the newest language version the integration advertises
// to project generators.
const LanguageVersion = "12.0"

// zeroVersion is reported for installations without readable metadata.
var zeroVersion = goversion.Must(goversion.NewVersion("0.0.0"))

// Installation describes one discovered Zed installation.
type Installation struct {
	// Name is the display label, including the bundle version when one
	// was extracted: "Zed [1.186.11]".
	Name string

	// Path is the location the installation was discovered at. Symlinks
	// are kept as found; launching through them behaves the same.
	Path string

	// Version is the extracted bundle version, or 0.0.0 when metadata was
	// missing or unreadable. Never nil.
	Version *goversion.Version

	// Prerelease marks preview release channels. Discovery does not
	// classify channels; always false.
	Prerelease bool

	// SupportsAnalyzers reports external analyzer integration. Zed
	// has none.
	SupportsAnalyzers bool

	// LanguageVersion is the newest language version the integration
	// advertises for this installation.
	LanguageVersion string
}

// newInstallation builds the record for a discovered path. v may be nil;
// the zero version is substituted and the display label stays bare.
func newInstallation(path string, v *goversion.Version) Installation {
	name := DisplayName
	if v != nil {
		s := v.Segments()
		name = fmt.Sprintf("%s [%d.%d.%d]", DisplayName, s[0], s[1], s[2])
	} else {
		v = zeroVersion
	}
	return Installation{
		Name:            name,
		Path:            path,
		Version:         v,
		LanguageVersion: LanguageVersion,
	}
}
