package testutil

import (
	"errors"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

// MockReconciliationService is a mock implementation of ports.ReconciliationService.
type MockReconciliationService struct {
	PlanFunc               func() (ports.PlanResult, error)
	SyncFunc               func() (ports.SyncResult, error)
	ListManagedEntriesFunc func() (netservice.TnsNamesFile, error)
	PathValue              string
}

// Plan implements the ports.ReconciliationService interface.
func (m *MockReconciliationService) Plan() (ports.PlanResult, error) {
	if m.PlanFunc != nil {
		return m.PlanFunc()
	}
	return ports.PlanResult{}, errors.New("MockReconciliationService: PlanFunc not implemented")
}

// Sync implements the ports.ReconciliationService interface.
func (m *MockReconciliationService) Sync() (ports.SyncResult, error) {
	if m.SyncFunc != nil {
		return m.SyncFunc()
	}
	return ports.SyncResult{}, errors.New("MockReconciliationService: SyncFunc not implemented")
}

// ListManagedEntries implements the ports.ReconciliationService interface.
func (m *MockReconciliationService) ListManagedEntries() (netservice.TnsNamesFile, error) {
	if m.ListManagedEntriesFunc != nil {
		return m.ListManagedEntriesFunc()
	}
	return netservice.TnsNamesFile{}, errors.New("MockReconciliationService: ListManagedEntriesFunc not implemented")
}

// TnsNamesPath implements the ports.ReconciliationService interface.
func (m *MockReconciliationService) TnsNamesPath() string {
	return m.PathValue
}

var _ ports.ReconciliationService = (*MockReconciliationService)(nil)
