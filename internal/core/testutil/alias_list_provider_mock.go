package testutil

import (
	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

// MockAliasListProvider is a mock implementation of ports.AliasListProvider.
type MockAliasListProvider struct {
	LoadAliasesFunc func() ([]netservice.AliasEntry, error)
	SourceValue     string
}

// LoadAliases implements the ports.AliasListProvider interface.
func (m *MockAliasListProvider) LoadAliases() ([]netservice.AliasEntry, error) {
	if m.LoadAliasesFunc != nil {
		return m.LoadAliasesFunc()
	}
	return []netservice.AliasEntry{}, nil
}

// Source implements the ports.AliasListProvider interface.
func (m *MockAliasListProvider) Source() string {
	return m.SourceValue
}

var _ ports.AliasListProvider = (*MockAliasListProvider)(nil)
