package ports

import "github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"

/*
DirectoryResolver looks up net service records in a directory server.
An implementation connects lazily, keeps its first successful connection
for all later lookups and releases it on Close.
*/
type DirectoryResolver interface {
	// Resolve returns the records found for the given upper-cased service names, keyed by name.
	// Names with no directory record are absent from the map.
	Resolve(serviceNames []string) (map[string]netservice.ServiceRecord, error)

	// Close releases the connection, if any.
	Close() error
}

// DirectoryResolverFactory creates a fresh DirectoryResolver for one run.
type DirectoryResolverFactory interface {
	NewResolver() (DirectoryResolver, error)
}
