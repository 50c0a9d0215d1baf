package reconciliation

import "github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"

/*
buildDesired pairs every alias with the description of its service.
Aliases whose service is not in records are returned as unresolved.
The desired entries are sorted by name.
*/
func buildDesired(aliases []netservice.AliasEntry, records map[string]netservice.ServiceRecord) ([]netservice.ResolvedEntry, []netservice.AliasEntry) {
	desired := make([]netservice.ResolvedEntry, 0, len(aliases))
	var unresolved []netservice.AliasEntry

	for _, a := range aliases {
		record, ok := records[a.ServiceName]
		if !ok {
			unresolved = append(unresolved, a)
			continue
		}
		desired = append(desired, netservice.NewResolvedEntry(a.Name, record.Description))
	}

	netservice.SortResolved(desired)
	return desired, unresolved
}

// decide reports whether the file must be rewritten, and why.
// A missing file with nothing to write is already up to date.
func decide(current netservice.TnsNamesFile, desired []netservice.ResolvedEntry) (bool, string) {
	switch {
	case current.Corrupt:
		return true, reasonCorrupt
	case !netservice.SameEntries(desired, current.Entries):
		if !current.Exists {
			return true, reasonNoFile
		}
		return true, reasonDiffer
	default:
		return false, reasonUpToDate
	}
}
