package dllfiles

import "fmt"

// Architecture is the build variant of a library
type Architecture int

const (
	// X32 is a 32-bit build, tagged "32" on the listing page
	X32 Architecture = iota
	// X64 is a 64-bit build, tagged "64" on the listing page
	X64
)

// Architectures lists every architecture in installation order
var Architectures = []Architecture{X32, X64}

// Tag returns the architecture indicator used in the listing page markup
func (a Architecture) Tag() string {
	switch a {
	case X32:
		return "32"
	case X64:
		return "64"
	default:
		return ""
	}
}

// String returns a short human readable name ("x32", "x64")
func (a Architecture) String() string {
	switch a {
	case X32:
		return "x32"
	case X64:
		return "x64"
	default:
		return fmt.Sprintf("Architecture(%d)", int(a))
	}
}

// ParseArchitecture maps a markup tag or a user supplied value to an Architecture.
// Accepted forms are "32", "x32", "64" and "x64".
func ParseArchitecture(s string) (Architecture, bool) {
	switch s {
	case "32", "x32":
		return X32, true
	case "64", "x64":
		return X64, true
	default:
		return 0, false
	}
}

// PageLinks holds the absolute detail page URL found for each architecture.
// An architecture missing from the map has no build on the listing page.
type PageLinks map[Architecture]string

// Lookup returns the detail page URL for arch and whether one was found
func (p PageLinks) Lookup(arch Architecture) (string, bool) {
	url, ok := p[arch]
	return url, ok
}

// complete reports whether every architecture slot is filled
func (p PageLinks) complete() bool {
	for _, arch := range Architectures {
		if _, ok := p[arch]; !ok {
			return false
		}
	}
	return true
}

// SystemDirs maps each architecture to its system installation directory
type SystemDirs struct {
	X32 string
	X64 string
}

// DefaultSystemDirs returns the Windows system directories
func DefaultSystemDirs() SystemDirs {
	return SystemDirs{X32: DefaultX32Dir, X64: DefaultX64Dir}
}

// For returns the directory libraries of arch are installed into
func (d SystemDirs) For(arch Architecture) string {
	if arch == X32 {
		return d.X32
	}
	return d.X64
}

// Outcome is the result of installing one architecture
type Outcome int

const (
	// OutcomeUnknown is returned alongside an error; no outcome was reached
	OutcomeUnknown Outcome = iota
	// OutcomeNoMatchingMember means the archive held no library; nothing was written
	OutcomeNoMatchingMember
	// OutcomeInstalled means a library was written to the system directory
	OutcomeInstalled
	// OutcomeSkippedAlreadyPresent means the destination already existed and was left untouched
	OutcomeSkippedAlreadyPresent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeSkippedAlreadyPresent:
		return "already present"
	case OutcomeNoMatchingMember:
		return "no library in archive"
	case OutcomeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Page is a fetched document. The status is kept alongside the body
// because the host answers missing libraries with a marked error page.
type Page struct {
	URL        string
	StatusCode int
	Body       []byte
}
