package netservice

import (
	"errors"
	"fmt"
)

var (
	// ErrAliasListMissing indicates that the alias list file does not exist. A run without it is a no-op.
	ErrAliasListMissing = errors.New("alias list file is missing")

	// ErrAliasListCorrupt indicates a line in the alias list that matches no accepted grammar.
	ErrAliasListCorrupt = errors.New("alias list is corrupt")

	// ErrDirectoryUnreachable indicates that no configured directory server accepted a connection.
	ErrDirectoryUnreachable = errors.New("no directory server reachable")

	// ErrDirectorySearch indicates a failed or malformed directory search.
	ErrDirectorySearch = errors.New("directory search failed")

	// ErrWriteFailed indicates that the tnsnames file could not be replaced.
	ErrWriteFailed = errors.New("failed to write tnsnames file")
)

// ParseError reports the offending line of a corrupt alias list.
type ParseError struct {
	Path string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: invalid entry %q", e.Path, e.Line, e.Text)
}

// Unwrap makes errors.Is(err, ErrAliasListCorrupt) hold for every ParseError.
func (e *ParseError) Unwrap() error {
	return ErrAliasListCorrupt
}
