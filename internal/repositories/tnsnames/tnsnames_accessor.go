package tnsnames

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

const (
	// TnsNamesFilename is the name of the managed file inside the TNS_ADMIN directory.
	TnsNamesFilename = "tnsnames.ora"
	// BuildFilename is the temporary file the new content is written to before it replaces the live file.
	BuildFilename = "tnsnames.tmpbuild.ora"
)

const defaultFileMode os.FileMode = 0644

// maxLineSize bounds a single tnsnames line; connect descriptors can be long.
const maxLineSize = 1024 * 1024

// TnsNamesAccessor reads and atomically replaces a tnsnames file.
type TnsNamesAccessor struct {
	filePath       string
	buildFilePath  string
	managedSection bool
	now            func() time.Time
}

/*
NewTnsNamesAccessor creates an accessor for the tnsnames file in tnsAdminDir.

With managedSection set, only the part of the file after the managed
section marker belongs to tnssync; everything before it is kept verbatim.
Otherwise the whole file is managed.
*/
func NewTnsNamesAccessor(tnsAdminDir string, managedSection bool) (ports.TnsNamesAccessor, error) {
	if tnsAdminDir == "" {
		return nil, fmt.Errorf("TNS_ADMIN directory cannot be empty")
	}
	return &TnsNamesAccessor{
		filePath:       filepath.Join(tnsAdminDir, TnsNamesFilename),
		buildFilePath:  filepath.Join(tnsAdminDir, BuildFilename),
		managedSection: managedSection,
		now:            time.Now,
	}, nil
}

// Path implements the ports.TnsNamesAccessor interface.
func (a *TnsNamesAccessor) Path() string {
	return a.filePath
}

// ReadCurrent implements the ports.TnsNamesAccessor interface.
func (a *TnsNamesAccessor) ReadCurrent() (netservice.TnsNamesFile, error) {
	slog.Debug("reading current tnsnames file", "path", a.filePath, "managed_section", a.managedSection)

	file, err := os.Open(a.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("current tnsnames file is missing", "path", a.filePath)
			return netservice.TnsNamesFile{}, nil
		}
		return netservice.TnsNamesFile{}, fmt.Errorf("failed to open tnsnames file %s: %w", a.filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	parsed := parseTnsNames(scanner, a.managedSection)
	if err := scanner.Err(); err != nil {
		return netservice.TnsNamesFile{}, fmt.Errorf("error scanning tnsnames file %s: %w", a.filePath, err)
	}

	if parsed.Corrupt {
		slog.Debug("tnsnames file is corrupt",
			"path", a.filePath, "line", parsed.CorruptLineNumber, "text", parsed.CorruptLine)
	}
	slog.Debug("current tnsnames file read", "path", a.filePath, "entries", len(parsed.Entries), "marker_found", parsed.MarkerFound)
	return parsed, nil
}

/*
Write implements the ports.TnsNamesAccessor interface.

The content is written to the build file next to the live file, synced and
then renamed over the live file, so readers see either the old or the new
file and never a partial one.
*/
func (a *TnsNamesAccessor) Write(prefix []string, entries []netservice.ResolvedEntry) error {
	content := renderTnsNames(prefix, entries, a.managedSection, a.now())

	mode := defaultFileMode
	if info, err := os.Stat(a.filePath); err == nil {
		mode = info.Mode().Perm()
	}

	slog.Debug("writing build file", "path", a.buildFilePath, "entries", len(entries))
	if err := writeBuildFile(a.buildFilePath, content, mode); err != nil {
		return fmt.Errorf("%w: %w", netservice.ErrWriteFailed, err)
	}

	slog.Debug("replacing tnsnames file", "build_file", a.buildFilePath, "path", a.filePath)
	if err := os.Rename(a.buildFilePath, a.filePath); err != nil {
		_ = os.Remove(a.buildFilePath)
		return fmt.Errorf("%w: can not move build file %s to %s: %w", netservice.ErrWriteFailed, a.buildFilePath, a.filePath, err)
	}
	return nil
}

func writeBuildFile(path string, content []byte, mode os.FileMode) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("can not create build file %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = file.Close()
			_ = os.Remove(path)
		}
	}()

	// OpenFile only applies mode on create; a leftover build file keeps its own.
	if err = file.Chmod(mode); err != nil {
		return fmt.Errorf("can not set mode of build file %s: %w", path, err)
	}

	if _, err = file.Write(content); err != nil {
		return fmt.Errorf("can not write build file %s: %w", path, err)
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("can not sync build file %s: %w", path, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("can not close build file %s: %w", path, err)
	}
	return nil
}
