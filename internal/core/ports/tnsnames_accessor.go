package ports

import "github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"

/*
TnsNamesAccessor defines the interface for reading and replacing the
tnsnames file. This is a driven port, implemented by a repository adapter
that understands the tnsnames format.
*/
type TnsNamesAccessor interface {
	/*
	   ReadCurrent parses the existing file. A missing file is not an error;
	   it yields a TnsNamesFile with Exists set to false and no entries.
	   A corrupt managed region is reported through TnsNamesFile.Corrupt.
	*/
	ReadCurrent() (netservice.TnsNamesFile, error)

	/*
	   Write renders entries after the given unmanaged prefix and atomically
	   replaces the live file. On failure the live file is left untouched.
	*/
	Write(prefix []string, entries []netservice.ResolvedEntry) error

	// Path returns the location of the live file.
	Path() string
}
