package testutil

import (
	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

// MockDirectoryResolver is a mock implementation of ports.DirectoryResolver.
type MockDirectoryResolver struct {
	ResolveFunc func(serviceNames []string) (map[string]netservice.ServiceRecord, error)
	CloseFunc   func() error

	// ResolveCalls keeps track of the arguments passed to Resolve.
	ResolveCalls [][]string
	CloseCalls   int
}

// Resolve implements the ports.DirectoryResolver interface.
func (m *MockDirectoryResolver) Resolve(serviceNames []string) (map[string]netservice.ServiceRecord, error) {
	m.ResolveCalls = append(m.ResolveCalls, serviceNames)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(serviceNames)
	}
	return map[string]netservice.ServiceRecord{}, nil
}

// Close implements the ports.DirectoryResolver interface.
func (m *MockDirectoryResolver) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

/*
MockDirectoryResolverFactory is a mock implementation of
ports.DirectoryResolverFactory. Without NewResolverFunc it hands out
Resolver, creating one when unset.
*/
type MockDirectoryResolverFactory struct {
	NewResolverFunc func() (ports.DirectoryResolver, error)
	Resolver        *MockDirectoryResolver

	NewResolverCalls int
}

// NewResolver implements the ports.DirectoryResolverFactory interface.
func (m *MockDirectoryResolverFactory) NewResolver() (ports.DirectoryResolver, error) {
	m.NewResolverCalls++
	if m.NewResolverFunc != nil {
		return m.NewResolverFunc()
	}
	if m.Resolver == nil {
		m.Resolver = &MockDirectoryResolver{}
	}
	return m.Resolver, nil
}

// StaticRecords returns a ResolveFunc that serves the given name to description pairs.
func StaticRecords(descriptions map[string]string) func([]string) (map[string]netservice.ServiceRecord, error) {
	return func(serviceNames []string) (map[string]netservice.ServiceRecord, error) {
		records := make(map[string]netservice.ServiceRecord)
		for _, name := range serviceNames {
			if desc, ok := descriptions[name]; ok {
				records[name] = netservice.NewServiceRecord(name, desc)
			}
		}
		return records, nil
	}
}

var (
	_ ports.DirectoryResolver        = (*MockDirectoryResolver)(nil)
	_ ports.DirectoryResolverFactory = (*MockDirectoryResolverFactory)(nil)
)
