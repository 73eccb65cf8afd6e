package dllfiles

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ArchiveInstaller downloads a library archive and places its library
// member into the system directory of an architecture
type ArchiveInstaller struct {
	client *Client
	dirs   SystemDirs
	logger *log.Logger
}

// NewArchiveInstaller creates a new ArchiveInstaller
func NewArchiveInstaller(client *Client, dirs SystemDirs, logger *log.Logger) *ArchiveInstaller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ArchiveInstaller{
		client: client,
		dirs:   dirs,
		logger: logger,
	}
}

// Destination returns where library is installed for arch. The requested
// name is used, never the name of the archive member.
func (i *ArchiveInstaller) Destination(arch Architecture, library string) string {
	return filepath.Join(i.dirs.For(arch), library)
}

// Install downloads the archive at downloadURL into memory and installs it
func (i *ArchiveInstaller) Install(ctx context.Context, downloadURL string, arch Architecture, library string) (Outcome, error) {
	i.logger.Printf("Downloading archive: %s", downloadURL)

	var buf bytes.Buffer
	written, err := i.client.Download(ctx, downloadURL, &buf)
	if err != nil {
		return OutcomeUnknown, fmt.Errorf("downloading archive: %w", err)
	}
	i.logger.Printf("  Downloaded %d bytes", written)

	return i.InstallArchive(bytes.NewReader(buf.Bytes()), written, arch, library)
}

// InstallArchive installs the first library member of a zip archive.
// Members are visited in stored order; once the destination exists every
// further member is skipped, so the first one wins. An archive without a
// library member installs nothing and is not an error.
func (i *ArchiveInstaller) InstallArchive(r io.ReaderAt, size int64, arch Architecture, library string) (Outcome, error) {
	reader, err := zip.NewReader(r, size)
	if err != nil {
		return OutcomeUnknown, fmt.Errorf("opening archive: %w: %w", ErrArchive, err)
	}

	dest := i.Destination(arch, library)
	outcome := OutcomeNoMatchingMember

	for _, member := range reader.File {
		if member.FileInfo().IsDir() || !strings.HasSuffix(member.Name, LibraryExtension) {
			continue
		}

		err := writeMember(member, dest)
		if errors.Is(err, fs.ErrExist) {
			i.logger.Printf("  Skipping %s: %s already exists", member.Name, dest)
			if outcome == OutcomeNoMatchingMember {
				outcome = OutcomeSkippedAlreadyPresent
			}
			continue
		}
		if err != nil {
			return OutcomeUnknown, fmt.Errorf("installing %s: %w", member.Name, err)
		}
		i.logger.Printf("  Installed %s -> %s", member.Name, dest)
		outcome = OutcomeInstalled
	}

	if outcome == OutcomeNoMatchingMember {
		i.logger.Printf("  Archive holds no %s member", LibraryExtension)
	}

	return outcome, nil
}

// writeMember creates dest exclusively and copies member into it. An
// existing dest is reported as fs.ErrExist and left alone; a failed copy
// removes the partial file.
func writeMember(member *zip.File, dest string) error {
	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("opening member: %w: %w", ErrArchive, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fs.ErrExist
		}
		return fmt.Errorf("creating file: %w: %w", ErrIO, err)
	}

	_, err = io.Copy(out, src)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("writing file: %w: %w", ErrIO, err)
	}

	return nil
}
