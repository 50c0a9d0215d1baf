package testutil

import (
	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

// WriteCall records the arguments of one MockTnsNamesAccessor.Write call.
type WriteCall struct {
	Prefix  []string
	Entries []netservice.ResolvedEntry
}

// MockTnsNamesAccessor is a mock implementation of ports.TnsNamesAccessor.
type MockTnsNamesAccessor struct {
	ReadCurrentFunc func() (netservice.TnsNamesFile, error)
	WriteFunc       func(prefix []string, entries []netservice.ResolvedEntry) error
	PathValue       string

	// WriteCalls keeps track of the arguments passed to Write.
	WriteCalls []WriteCall
}

// ReadCurrent implements the ports.TnsNamesAccessor interface.
func (m *MockTnsNamesAccessor) ReadCurrent() (netservice.TnsNamesFile, error) {
	if m.ReadCurrentFunc != nil {
		return m.ReadCurrentFunc()
	}
	return netservice.TnsNamesFile{}, nil
}

// Write implements the ports.TnsNamesAccessor interface.
func (m *MockTnsNamesAccessor) Write(prefix []string, entries []netservice.ResolvedEntry) error {
	m.WriteCalls = append(m.WriteCalls, WriteCall{Prefix: prefix, Entries: entries})
	if m.WriteFunc != nil {
		return m.WriteFunc(prefix, entries)
	}
	return nil
}

// Path implements the ports.TnsNamesAccessor interface.
func (m *MockTnsNamesAccessor) Path() string {
	return m.PathValue
}

var _ ports.TnsNamesAccessor = (*MockTnsNamesAccessor)(nil)
