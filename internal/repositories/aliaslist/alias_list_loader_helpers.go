package aliaslist

import (
	"regexp"
	"strings"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
)

type lineKind int

const (
	lineSkipped lineKind = iota
	lineEntry
	lineInvalid
)

// commentPrefix marks a comment line in the alias list.
const commentPrefix = "#"

// netServiceName matches Oracle net service names: letters, digits, '_', '.' and '-'.
const netServiceName = `[A-Za-z0-9_][A-Za-z0-9_.\-]*`

var (
	shorthandLineRegex = regexp.MustCompile(`^(` + netServiceName + `)$`)
	mappingLineRegex   = regexp.MustCompile(`^(` + netServiceName + `)\s*=\s*(` + netServiceName + `)$`)
)

/*
parseAliasLine classifies a single alias list line.

Accepted forms, tried in order:

	SALES           alias SALES for service SALES
	HR = HRPROD     alias HR for service HRPROD

Blank lines and comments are skipped. Everything else is invalid.
*/
func parseAliasLine(line string) (netservice.AliasEntry, lineKind) {
	trimmedLine := strings.TrimSpace(line)

	if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
		return netservice.AliasEntry{}, lineSkipped
	}

	if m := shorthandLineRegex.FindStringSubmatch(trimmedLine); m != nil {
		return netservice.NewAliasEntry(m[1], m[1]), lineEntry
	}

	if m := mappingLineRegex.FindStringSubmatch(trimmedLine); m != nil {
		return netservice.NewAliasEntry(m[1], m[2]), lineEntry
	}

	return netservice.AliasEntry{}, lineInvalid
}
