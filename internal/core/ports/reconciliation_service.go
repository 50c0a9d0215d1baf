package ports

import "github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"

// PlanResult holds the outcome of comparing the desired entries with the current file.
type PlanResult struct {
	// SourceMissing is set when the alias list does not exist; nothing else is populated.
	SourceMissing bool

	Aliases    []netservice.AliasEntry
	Unresolved []netservice.AliasEntry
	Desired    []netservice.ResolvedEntry
	Current    netservice.TnsNamesFile
	Changes    []netservice.EntryChange

	NeedsWrite bool
	Reason     string
}

// SyncResult extends PlanResult with the outcome of the write step.
type SyncResult struct {
	PlanResult
	Written bool
}

// ReconciliationService defines the contract for syncing the tnsnames file with the directory.
type ReconciliationService interface {
	// Plan computes the desired entries and the write decision without touching the file.
	Plan() (PlanResult, error)

	// Sync runs Plan and rewrites the tnsnames file when the decision is positive.
	Sync() (SyncResult, error)

	// ListManagedEntries returns the current state of the tnsnames file.
	ListManagedEntries() (netservice.TnsNamesFile, error)

	// TnsNamesPath returns the location of the managed tnsnames file.
	TnsNamesPath() string
}
