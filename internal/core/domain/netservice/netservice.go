/*
Package netservice defines the core domain entities for syncing Oracle Net
service names from a directory server into a tnsnames file.
*/
package netservice

import (
	"sort"
	"strings"
)

/*
AliasEntry maps a local alias to the canonical net service name registered
in the directory. Both names are upper-cased on construction.
*/
type AliasEntry struct {
	Name        string `yaml:"alias"`
	ServiceName string `yaml:"service"`
}

// NewAliasEntry creates an AliasEntry with normalized names.
func NewAliasEntry(name, serviceName string) AliasEntry {
	return AliasEntry{
		Name:        NormalizeName(name),
		ServiceName: NormalizeName(serviceName),
	}
}

/*
ServiceRecord is a net service found in the directory. Description holds the
full connect descriptor and is treated as an opaque string.
*/
type ServiceRecord struct {
	ServiceName string
	Description string
}

// NewServiceRecord creates a ServiceRecord with a normalized name and a trimmed description.
func NewServiceRecord(serviceName, description string) ServiceRecord {
	return ServiceRecord{
		ServiceName: NormalizeName(serviceName),
		Description: strings.TrimSpace(description),
	}
}

/*
ResolvedEntry is a single "NAME = DESCRIPTION" line of the tnsnames file.
Two entries are equal when both fields are equal.
*/
type ResolvedEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// NewResolvedEntry creates a ResolvedEntry with a normalized name and a trimmed description.
func NewResolvedEntry(name, description string) ResolvedEntry {
	return ResolvedEntry{
		Name:        NormalizeName(name),
		Description: strings.TrimSpace(description),
	}
}

// Line renders the entry in tnsnames format.
func (e ResolvedEntry) Line() string {
	return e.Name + " = " + e.Description
}

// NormalizeName trims and upper-cases a net service or alias name.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// DistinctServiceNames returns the sorted set of service names referenced by the aliases.
func DistinctServiceNames(aliases []AliasEntry) []string {
	seen := make(map[string]struct{}, len(aliases))
	names := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if _, ok := seen[a.ServiceName]; ok {
			continue
		}
		seen[a.ServiceName] = struct{}{}
		names = append(names, a.ServiceName)
	}
	sort.Strings(names)
	return names
}

// SortResolved orders entries by name, then by description.
func SortResolved(entries []ResolvedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Description < entries[j].Description
	})
}

/*
SameEntries reports whether a and b hold the same set of entries.
Order and duplicates are ignored.
*/
func SameEntries(a, b []ResolvedEntry) bool {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for e := range setA {
		if _, ok := setB[e]; !ok {
			return false
		}
	}
	return true
}

func toSet(entries []ResolvedEntry) map[ResolvedEntry]struct{} {
	set := make(map[ResolvedEntry]struct{}, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}
	return set
}
