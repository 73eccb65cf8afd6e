// dllget.go
package dllget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/arc-language/dllget/pkg/core"
	"github.com/arc-language/dllget/pkg/dllfiles"
)

// Re-export pipeline types for convenience
type (
	Architecture = dllfiles.Architecture
	PageLinks    = dllfiles.PageLinks
	Outcome      = dllfiles.Outcome
	Config       = core.Config
)

// Re-export pipeline constants
const (
	X32 = dllfiles.X32
	X64 = dllfiles.X64

	OutcomeInstalled             = dllfiles.OutcomeInstalled
	OutcomeSkippedAlreadyPresent = dllfiles.OutcomeSkippedAlreadyPresent
	OutcomeNoMatchingMember      = dllfiles.OutcomeNoMatchingMember
	OutcomeUnknown               = dllfiles.OutcomeUnknown
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// ParseLibraryName lower-cases a requested library name and checks that it
// names a dynamic-link library. It never touches the network.
func ParseLibraryName(arg string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(arg))
	if name == "" {
		return "", fmt.Errorf("library name is required: %w", ErrArgument)
	}
	if !strings.HasSuffix(name, dllfiles.LibraryExtension) {
		return "", fmt.Errorf("%q must end with %s: %w", arg, dllfiles.LibraryExtension, ErrArgument)
	}
	return name, nil
}

// Result is what happened to one architecture of a run
type Result struct {
	Arch        Architecture
	PageURL     string // empty when the listing has no build for Arch
	DownloadURL string
	Outcome     Outcome // only set by Install
	Err         error
}

// PageFound reports whether the listing page had a build for the architecture
func (r Result) PageFound() bool {
	return r.PageURL != ""
}

// Manager drives the resolve, extract and install stages
type Manager struct {
	config    *Config
	resolver  *dllfiles.PageResolver
	extractor *dllfiles.LinkExtractor
	installer *dllfiles.ArchiveInstaller
	logger    *log.Logger
}

// NewManager creates a manager from config. A nil logger logs to stdout in
// debug mode and nowhere otherwise.
func NewManager(config *Config, logger *log.Logger) (*Manager, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if logger == nil {
		if config.Debug {
			logger = log.New(os.Stdout, "[DLLFILES] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	client := dllfiles.NewClientWithTimeout(config.Timeout)
	client.SetUserAgent(config.UserAgent)
	client.SetProgress(config.Progress)

	m := &Manager{
		config:    config,
		resolver:  dllfiles.NewPageResolver(client, config.BaseURL, logger),
		extractor: dllfiles.NewLinkExtractor(client, logger),
		installer: dllfiles.NewArchiveInstaller(client, config.SystemDirs(), logger),
		logger:    logger,
	}

	if config.Debug {
		m.logger.Printf("Initialized dllget Manager")
		m.logger.Printf("  BaseURL: %s", config.BaseURL)
		m.logger.Printf("  X32Dir: %s", config.X32Dir)
		m.logger.Printf("  X64Dir: %s", config.X64Dir)
	}

	return m, nil
}

// Destination returns where library is installed for arch
func (m *Manager) Destination(arch Architecture, library string) string {
	return m.installer.Destination(arch, library)
}

// Resolve returns the detail pages listed for library
func (m *Manager) Resolve(ctx context.Context, library string) (PageLinks, error) {
	links, err := m.resolver.Resolve(ctx, library)
	if err != nil {
		return nil, &Error{Op: "getting the download pages", Library: library, Err: err}
	}
	return links, nil
}

// Install resolves library and installs it for every architecture in archs.
// A failing architecture does not stop the others; their errors are joined.
// report, when not nil, is called as soon as each architecture finishes.
func (m *Manager) Install(ctx context.Context, library string, archs []Architecture, report func(Result)) ([]Result, error) {
	return m.run(ctx, library, archs, true, report)
}

// Links resolves library down to its final download URLs without installing
func (m *Manager) Links(ctx context.Context, library string, archs []Architecture, report func(Result)) ([]Result, error) {
	return m.run(ctx, library, archs, false, report)
}

func (m *Manager) run(ctx context.Context, library string, archs []Architecture, install bool, report func(Result)) ([]Result, error) {
	library, err := ParseLibraryName(library)
	if err != nil {
		return nil, err
	}
	if len(archs) == 0 {
		archs = dllfiles.Architectures
	}

	links, err := m.Resolve(ctx, library)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(archs))
	var errs []error

	for _, arch := range archs {
		result := m.runArch(ctx, library, arch, links, install)
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
		if report != nil {
			report(result)
		}
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

func (m *Manager) runArch(ctx context.Context, library string, arch Architecture, links PageLinks, install bool) Result {
	result := Result{Arch: arch}

	pageURL, ok := links.Lookup(arch)
	if !ok {
		m.logger.Printf("No %s build listed for %s", arch, library)
		return result
	}
	result.PageURL = pageURL

	downloadURL, err := m.extractor.Extract(ctx, pageURL)
	if err != nil {
		result.Err = &Error{Op: "getting the download url", Arch: arch.String(), Library: library, Err: err}
		return result
	}
	result.DownloadURL = downloadURL

	if !install {
		return result
	}

	outcome, err := m.installer.Install(ctx, downloadURL, arch, library)
	if err != nil {
		result.Err = &Error{Op: "installing", Arch: arch.String(), Library: library, Err: err}
		return result
	}
	result.Outcome = outcome

	return result
}
