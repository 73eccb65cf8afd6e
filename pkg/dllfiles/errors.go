package dllfiles

import "errors"

var (
	// ErrArgument indicates a missing or malformed library name
	ErrArgument = errors.New("invalid argument")

	// ErrNetwork indicates a request could not be sent or its response read
	ErrNetwork = errors.New("network error")

	// ErrNotFound indicates a missing listing page or a detail page without a download url
	ErrNotFound = errors.New("not found")

	// ErrArchive indicates the downloaded payload is not a readable zip archive
	ErrArchive = errors.New("invalid archive")

	// ErrIO indicates the destination file could not be created or written
	ErrIO = errors.New("io error")

	// ErrPlatformNotSupported indicates the default system directories do not exist on this OS
	ErrPlatformNotSupported = errors.New("platform not supported")
)
