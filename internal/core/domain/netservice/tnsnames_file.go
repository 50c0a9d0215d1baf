package netservice

import "sort"

// ManagedSectionMarker starts the comment line that opens the generated region of a tnsnames file.
const ManagedSectionMarker = "#@TNSSYNC-MANAGED-SECTION"

/*
TnsNamesFile is the parsed state of an existing tnsnames file.

Prefix holds the unmanaged lines found before the managed section marker,
verbatim and each with its original line terminator. Entries holds the
entries of the managed region read before parsing stopped. When Corrupt is
set the file cannot be used as a diff baseline and must be rewritten.
*/
type TnsNamesFile struct {
	Exists            bool
	MarkerFound       bool
	Prefix            []string
	Entries           []ResolvedEntry
	Corrupt           bool
	CorruptLine       string
	CorruptLineNumber int
}

// ChangeAction describes how a single entry differs between two entry sets.
type ChangeAction string

const (
	ChangeAdd    ChangeAction = "add"
	ChangeRemove ChangeAction = "remove"
	ChangeUpdate ChangeAction = "update"
)

// EntryChange is one line of difference between the current file and the desired entries.
type EntryChange struct {
	Name    string       `yaml:"name"`
	Action  ChangeAction `yaml:"action"`
	Current string       `yaml:"current,omitempty"`
	Desired string       `yaml:"desired,omitempty"`
}

/*
Diff lists the per-name differences between current and desired, sorted by
name. It is informational: when current holds the same name more than once
the last occurrence is compared.
*/
func Diff(current, desired []ResolvedEntry) []EntryChange {
	currentByName := make(map[string]string, len(current))
	for _, e := range current {
		currentByName[e.Name] = e.Description
	}
	desiredByName := make(map[string]string, len(desired))
	for _, e := range desired {
		desiredByName[e.Name] = e.Description
	}

	changes := []EntryChange{}
	for name, want := range desiredByName {
		have, ok := currentByName[name]
		switch {
		case !ok:
			changes = append(changes, EntryChange{Name: name, Action: ChangeAdd, Desired: want})
		case have != want:
			changes = append(changes, EntryChange{Name: name, Action: ChangeUpdate, Current: have, Desired: want})
		}
	}
	for name, have := range currentByName {
		if _, ok := desiredByName[name]; !ok {
			changes = append(changes, EntryChange{Name: name, Action: ChangeRemove, Current: have})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Name < changes[j].Name })
	return changes
}
