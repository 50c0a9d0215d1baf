package aliaslist

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

// AliasListFilename is the name of the alias list inside the TNS_ADMIN directory.
const AliasListFilename = "tnssync.ora"

// utf8BOM is dropped from the start of the file; editors on Windows often add it.
const utf8BOM = "\ufeff"

// AliasListLoader reads the desired aliases from a tnssync.ora file.
type AliasListLoader struct {
	filePath string
}

// NewAliasListLoader creates a new AliasListLoader for the given file.
func NewAliasListLoader(filePath string) (ports.AliasListProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("alias list file path cannot be empty")
	}
	return &AliasListLoader{filePath: filePath}, nil
}

// Source implements the ports.AliasListProvider interface.
func (l *AliasListLoader) Source() string {
	return l.filePath
}

/*
LoadAliases implements the ports.AliasListProvider interface.

A later declaration of the same alias overrides an earlier one. The result
is sorted by alias name regardless of the order in the file.
*/
func (l *AliasListLoader) LoadAliases() ([]netservice.AliasEntry, error) {
	slog.Debug("reading alias list", "path", l.filePath)

	file, err := os.Open(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", netservice.ErrAliasListMissing, l.filePath)
		}
		return nil, fmt.Errorf("failed to open alias list %s: %w", l.filePath, err)
	}
	defer file.Close()

	byName := make(map[string]netservice.AliasEntry)
	lineNumber := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		entry, kind := parseAliasLine(line)
		switch kind {
		case lineSkipped:
			continue
		case lineInvalid:
			return nil, &netservice.ParseError{Path: l.filePath, Line: lineNumber, Text: line}
		}

		if previous, exists := byName[entry.Name]; exists && previous.ServiceName != entry.ServiceName {
			slog.Debug("alias redeclared, later line wins",
				"alias", entry.Name, "previous", previous.ServiceName, "service", entry.ServiceName, "line", lineNumber)
		}
		byName[entry.Name] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning alias list %s: %w", l.filePath, err)
	}

	aliases := make([]netservice.AliasEntry, 0, len(byName))
	for _, entry := range byName {
		aliases = append(aliases, entry)
	}
	sort.Slice(aliases, func(i, j int) bool { return aliases[i].Name < aliases[j].Name })

	slog.Debug("alias list loaded", "path", l.filePath, "aliases", len(aliases))
	return aliases, nil
}
