// errors.go
package dllget

import (
	"fmt"

	"github.com/arc-language/dllget/pkg/dllfiles"
)

var (
	// ErrArgument indicates a missing or malformed library name
	ErrArgument = dllfiles.ErrArgument

	// ErrNetwork indicates a request could not be sent or its response read
	ErrNetwork = dllfiles.ErrNetwork

	// ErrNotFound indicates the library page or its download url does not exist
	ErrNotFound = dllfiles.ErrNotFound

	// ErrArchive indicates the downloaded payload is not a zip archive
	ErrArchive = dllfiles.ErrArchive

	// ErrIO indicates the library could not be written to the system directory
	ErrIO = dllfiles.ErrIO

	// ErrPlatformNotSupported indicates the default system directories do not exist here
	ErrPlatformNotSupported = dllfiles.ErrPlatformNotSupported
)

// Error wraps an error with the stage and library it happened for
type Error struct {
	Op      string // Stage that failed
	Arch    string // Architecture, empty for the listing stage
	Library string // Requested library
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	switch {
	case e.Arch != "" && e.Library != "":
		return fmt.Sprintf("%s for %s %s: %v", e.Op, e.Arch, e.Library, e.Err)
	case e.Library != "":
		return fmt.Sprintf("%s for %s: %v", e.Op, e.Library, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
