package ports

import "github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"

// AliasListProvider defines the interface for sourcing the desired alias list.
type AliasListProvider interface {
	// LoadAliases returns the aliases sorted by alias name.
	// It returns an error wrapping netservice.ErrAliasListMissing when the source does not exist
	// and netservice.ErrAliasListCorrupt when a line cannot be parsed.
	LoadAliases() ([]netservice.AliasEntry, error)

	// Source identifies the alias list for display, e.g. its file path.
	Source() string
}
