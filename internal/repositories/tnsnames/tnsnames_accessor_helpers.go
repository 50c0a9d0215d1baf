package tnsnames

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
)

const headMessage = "#This is an automatically generated file, please do not modify it!\n" +
	"#Edit tnssync.ora file instead of this!"

// markerLine is written in place of the marker; only its ManagedSectionMarker prefix is matched on read.
const markerLine = netservice.ManagedSectionMarker + " (entries below this line are generated by tnssync)"

const modifiedTimeLayout = "2006-01-02 15:04:05.000"

var entryLineRegex = regexp.MustCompile(`^\s*([A-Za-z0-9_][A-Za-z0-9_.\-]*)\s*=\s*(.*)$`)

func isMarkerLine(trimmedLine string) bool {
	return strings.HasPrefix(trimmedLine, netservice.ManagedSectionMarker)
}

// scanRawLines works like bufio.ScanLines but keeps the line terminator.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

/*
parseTnsNames reads a tnsnames file line by line.

Without managedSection every line belongs to the managed region. With it,
lines up to the first marker line are collected as the unmanaged prefix,
byte for byte including their line terminators, and parsing starts after
the marker. Within the managed region blank lines and comments are skipped
and every other line must be "NAME = VALUE"; the first line that is not
stops parsing and marks the file corrupt.
*/
func parseTnsNames(scanner *bufio.Scanner, managedSection bool) netservice.TnsNamesFile {
	parsed := netservice.TnsNamesFile{Exists: true}
	inManagedRegion := !managedSection
	lineNumber := 0

	scanner.Split(scanRawLines)
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Text()
		trimmedLine := strings.TrimSpace(raw)

		if !inManagedRegion {
			if isMarkerLine(trimmedLine) {
				parsed.MarkerFound = true
				inManagedRegion = true
				continue
			}
			parsed.Prefix = append(parsed.Prefix, raw)
			continue
		}

		line := strings.TrimRight(raw, "\r\n")

		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}

		if m := entryLineRegex.FindStringSubmatch(line); m != nil {
			parsed.Entries = append(parsed.Entries, netservice.NewResolvedEntry(m[1], m[2]))
			continue
		}

		parsed.Corrupt = true
		parsed.CorruptLine = line
		parsed.CorruptLineNumber = lineNumber
		break
	}
	return parsed
}

/*
renderTnsNames builds the full file content. Entries are written sorted by name.
Prefix lines are written as they were read; a newline is added only when the
last one has none, so the marker starts on its own line.
*/
func renderTnsNames(prefix []string, entries []netservice.ResolvedEntry, managedSection bool, modified time.Time) []byte {
	sorted := make([]netservice.ResolvedEntry, len(entries))
	copy(sorted, entries)
	netservice.SortResolved(sorted)

	var buf bytes.Buffer
	if managedSection {
		for _, line := range prefix {
			buf.WriteString(line)
		}
		if n := len(prefix); n > 0 && !strings.HasSuffix(prefix[n-1], "\n") {
			buf.WriteByte('\n')
		}
		buf.WriteString(markerLine)
		buf.WriteByte('\n')
	}

	buf.WriteString(headMessage)
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "#Modified: %s\n", modified.Format(modifiedTimeLayout))
	buf.WriteByte('\n')

	for _, e := range sorted {
		buf.WriteString(e.Line())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
