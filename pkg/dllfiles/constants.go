package dllfiles

const (
	// DefaultBaseURL is the file host every listing and detail page is fetched from
	DefaultBaseURL = "https://cn.dll-files.com"

	// DefaultX32Dir is where 32-bit libraries live on a 64-bit Windows install
	DefaultX32Dir = "C:\\Windows\\SysWOW64"

	// DefaultX64Dir is where 64-bit libraries live on a 64-bit Windows install
	DefaultX64Dir = "C:\\Windows\\System32"

	// LibraryExtension marks a requested name and an archive member as a dynamic-link library
	LibraryExtension = ".dll"
)

// Markup anchors of the listing and detail pages. Extraction depends on
// these literals; if the host changes its markup they stop matching.
const (
	notFoundMarker     = "error-404"
	sectionTag         = "file-info-grid"
	metaInfoTag        = "right-pane"
	trackingAttribute  = "data-ga-action"
	downloadURLVarName = "downloadUrl"
)
