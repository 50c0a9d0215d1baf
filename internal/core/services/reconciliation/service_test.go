package reconciliation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
	"github.com/AntonioJCosta/tnssync/internal/core/testutil"
	"github.com/AntonioJCosta/tnssync/internal/repositories/aliaslist"
	"github.com/AntonioJCosta/tnssync/internal/repositories/tnsnames"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service if all dependencies are set", func(t *testing.T) {
		svc := NewService(&testutil.MockAliasListProvider{}, &testutil.MockTnsNamesAccessor{}, &testutil.MockDirectoryResolverFactory{})
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	panicCases := []struct {
		name      string
		aliases   ports.AliasListProvider
		tnsNames  ports.TnsNamesAccessor
		directory ports.DirectoryResolverFactory
	}{
		{name: "nil aliases", tnsNames: &testutil.MockTnsNamesAccessor{}, directory: &testutil.MockDirectoryResolverFactory{}},
		{name: "nil tnsNames", aliases: &testutil.MockAliasListProvider{}, directory: &testutil.MockDirectoryResolverFactory{}},
		{name: "nil directory", aliases: &testutil.MockAliasListProvider{}, tnsNames: &testutil.MockTnsNamesAccessor{}},
	}
	for _, tc := range panicCases {
		t.Run("should panic with "+tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewService did not panic with %s", tc.name)
				}
			}()
			_ = NewService(tc.aliases, tc.tnsNames, tc.directory)
		})
	}
}

func aliasesOf(entries ...netservice.AliasEntry) func() ([]netservice.AliasEntry, error) {
	return func() ([]netservice.AliasEntry, error) { return entries, nil }
}

func currentOf(file netservice.TnsNamesFile) func() (netservice.TnsNamesFile, error) {
	return func() (netservice.TnsNamesFile, error) { return file, nil }
}

func TestService_Plan(t *testing.T) {
	directory := map[string]string{"X": "descX", "Y": "descY"}
	readErr := errors.New("permission denied")

	tests := []struct {
		name           string
		aliases        func() ([]netservice.AliasEntry, error)
		current        func() (netservice.TnsNamesFile, error)
		wantErr        error
		wantMissing    bool
		wantDesired    []netservice.ResolvedEntry
		wantUnresolved []netservice.AliasEntry
		wantNeedsWrite bool
		wantReason     string
	}{
		{
			name:        "missing alias list is a no-op",
			aliases:     func() ([]netservice.AliasEntry, error) { return nil, fmt.Errorf("%w: /x", netservice.ErrAliasListMissing) },
			wantMissing: true,
		},
		{
			name:    "corrupt alias list is fatal",
			aliases: func() ([]netservice.AliasEntry, error) { return nil, &netservice.ParseError{Line: 1, Text: "="} },
			wantErr: netservice.ErrAliasListCorrupt,
		},
		{
			name:           "new file",
			aliases:        aliasesOf(netservice.NewAliasEntry("B", "Y"), netservice.NewAliasEntry("A", "X")),
			current:        currentOf(netservice.TnsNamesFile{}),
			wantDesired:    []netservice.ResolvedEntry{{Name: "A", Description: "descX"}, {Name: "B", Description: "descY"}},
			wantNeedsWrite: true,
			wantReason:     reasonNoFile,
		},
		{
			name:    "up to date in any order",
			aliases: aliasesOf(netservice.NewAliasEntry("A", "X"), netservice.NewAliasEntry("B", "Y")),
			current: currentOf(netservice.TnsNamesFile{
				Exists:  true,
				Entries: []netservice.ResolvedEntry{{Name: "B", Description: "descY"}, {Name: "A", Description: "descX"}},
			}),
			wantDesired:    []netservice.ResolvedEntry{{Name: "A", Description: "descX"}, {Name: "B", Description: "descY"}},
			wantNeedsWrite: false,
			wantReason:     reasonUpToDate,
		},
		{
			name:    "entries differ",
			aliases: aliasesOf(netservice.NewAliasEntry("A", "X")),
			current: currentOf(netservice.TnsNamesFile{
				Exists:  true,
				Entries: []netservice.ResolvedEntry{{Name: "A", Description: "stale"}},
			}),
			wantDesired:    []netservice.ResolvedEntry{{Name: "A", Description: "descX"}},
			wantNeedsWrite: true,
			wantReason:     reasonDiffer,
		},
		{
			name:    "corrupt file forces rewrite even when entries match",
			aliases: aliasesOf(netservice.NewAliasEntry("A", "X")),
			current: currentOf(netservice.TnsNamesFile{
				Exists:      true,
				Entries:     []netservice.ResolvedEntry{{Name: "A", Description: "descX"}},
				Corrupt:     true,
				CorruptLine: "garbage",
			}),
			wantDesired:    []netservice.ResolvedEntry{{Name: "A", Description: "descX"}},
			wantNeedsWrite: true,
			wantReason:     reasonCorrupt,
		},
		{
			name:           "unresolved alias is dropped",
			aliases:        aliasesOf(netservice.NewAliasEntry("A", "X"), netservice.NewAliasEntry("C", "Z")),
			current:        currentOf(netservice.TnsNamesFile{}),
			wantDesired:    []netservice.ResolvedEntry{{Name: "A", Description: "descX"}},
			wantUnresolved: []netservice.AliasEntry{{Name: "C", ServiceName: "Z"}},
			wantNeedsWrite: true,
			wantReason:     reasonNoFile,
		},
		{
			name:    "empty alias list clears a non-empty file",
			aliases: aliasesOf(),
			current: currentOf(netservice.TnsNamesFile{
				Exists:  true,
				Entries: []netservice.ResolvedEntry{{Name: "A", Description: "descX"}},
			}),
			wantDesired:    []netservice.ResolvedEntry{},
			wantNeedsWrite: true,
			wantReason:     reasonDiffer,
		},
		{
			name:           "empty alias list and no file is up to date",
			aliases:        aliasesOf(),
			current:        currentOf(netservice.TnsNamesFile{}),
			wantDesired:    []netservice.ResolvedEntry{},
			wantNeedsWrite: false,
			wantReason:     reasonUpToDate,
		},
		{
			name:    "unreadable tnsnames file is fatal",
			aliases: aliasesOf(netservice.NewAliasEntry("A", "X")),
			current: func() (netservice.TnsNamesFile, error) { return netservice.TnsNamesFile{}, readErr },
			wantErr: readErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := &testutil.MockDirectoryResolverFactory{
				Resolver: &testutil.MockDirectoryResolver{ResolveFunc: testutil.StaticRecords(directory)},
			}
			svc := NewService(
				&testutil.MockAliasListProvider{LoadAliasesFunc: tt.aliases},
				&testutil.MockTnsNamesAccessor{ReadCurrentFunc: tt.current},
				factory,
			)

			got, err := svc.Plan()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Plan() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Plan() unexpected error = %v", err)
			}

			if got.SourceMissing != tt.wantMissing {
				t.Errorf("SourceMissing = %v, want %v", got.SourceMissing, tt.wantMissing)
			}
			if tt.wantMissing {
				if factory.NewResolverCalls != 0 {
					t.Errorf("NewResolver called %d times for a missing alias list", factory.NewResolverCalls)
				}
				return
			}
			if !reflect.DeepEqual(got.Desired, tt.wantDesired) {
				t.Errorf("Desired = %+v, want %+v", got.Desired, tt.wantDesired)
			}
			if !reflect.DeepEqual(got.Unresolved, tt.wantUnresolved) {
				t.Errorf("Unresolved = %+v, want %+v", got.Unresolved, tt.wantUnresolved)
			}
			if got.NeedsWrite != tt.wantNeedsWrite {
				t.Errorf("NeedsWrite = %v, want %v", got.NeedsWrite, tt.wantNeedsWrite)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if factory.Resolver != nil && len(factory.Resolver.ResolveCalls) > 0 && factory.Resolver.CloseCalls != 1 {
				t.Errorf("resolver closed %d times, want 1", factory.Resolver.CloseCalls)
			}
		})
	}
}

func TestService_Plan_ResolvesDistinctServiceNamesOnce(t *testing.T) {
	resolver := &testutil.MockDirectoryResolver{ResolveFunc: testutil.StaticRecords(map[string]string{"X": "d"})}
	factory := &testutil.MockDirectoryResolverFactory{Resolver: resolver}
	svc := NewService(
		&testutil.MockAliasListProvider{LoadAliasesFunc: aliasesOf(
			netservice.NewAliasEntry("A", "X"),
			netservice.NewAliasEntry("B", "X"),
			netservice.NewAliasEntry("X", "X"),
		)},
		&testutil.MockTnsNamesAccessor{},
		factory,
	)

	got, err := svc.Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error = %v", err)
	}
	if factory.NewResolverCalls != 1 {
		t.Errorf("NewResolver called %d times, want 1", factory.NewResolverCalls)
	}
	if want := [][]string{{"X"}}; !reflect.DeepEqual(resolver.ResolveCalls, want) {
		t.Errorf("ResolveCalls = %v, want %v", resolver.ResolveCalls, want)
	}
	if len(got.Desired) != 3 {
		t.Errorf("Desired has %d entries, want 3", len(got.Desired))
	}
}

func TestService_Plan_EmptyAliasListSkipsDirectory(t *testing.T) {
	factory := &testutil.MockDirectoryResolverFactory{}
	svc := NewService(&testutil.MockAliasListProvider{}, &testutil.MockTnsNamesAccessor{}, factory)

	if _, err := svc.Plan(); err != nil {
		t.Fatalf("Plan() unexpected error = %v", err)
	}
	if factory.NewResolverCalls != 0 {
		t.Errorf("NewResolver called %d times, want 0", factory.NewResolverCalls)
	}
}

func TestService_Sync_DirectoryFailureNeverWrites(t *testing.T) {
	tests := []struct {
		name    string
		factory *testutil.MockDirectoryResolverFactory
		wantErr error
	}{
		{
			name: "unreachable directory",
			factory: &testutil.MockDirectoryResolverFactory{Resolver: &testutil.MockDirectoryResolver{
				ResolveFunc: func([]string) (map[string]netservice.ServiceRecord, error) {
					return nil, netservice.ErrDirectoryUnreachable
				},
			}},
			wantErr: netservice.ErrDirectoryUnreachable,
		},
		{
			name: "resolver cannot be created",
			factory: &testutil.MockDirectoryResolverFactory{NewResolverFunc: func() (ports.DirectoryResolver, error) {
				return nil, os.ErrNotExist
			}},
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tnsNames := &testutil.MockTnsNamesAccessor{}
			svc := NewService(
				&testutil.MockAliasListProvider{LoadAliasesFunc: aliasesOf(netservice.NewAliasEntry("A", "X"))},
				tnsNames,
				tt.factory,
			)

			_, err := svc.Sync()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Sync() error = %v, want %v", err, tt.wantErr)
			}
			if len(tnsNames.WriteCalls) != 0 {
				t.Errorf("Write called %d times, want 0", len(tnsNames.WriteCalls))
			}
		})
	}
}

func TestService_Sync_PassesPrefixAndSortedEntries(t *testing.T) {
	prefix := []string{"# hand written", "LOCAL = (DESCRIPTION=(ADDRESS=(HOST=localhost)))"}
	tnsNames := &testutil.MockTnsNamesAccessor{
		ReadCurrentFunc: currentOf(netservice.TnsNamesFile{Exists: true, MarkerFound: true, Prefix: prefix}),
	}
	svc := NewService(
		&testutil.MockAliasListProvider{LoadAliasesFunc: aliasesOf(netservice.NewAliasEntry("B", "Y"), netservice.NewAliasEntry("A", "X"))},
		tnsNames,
		&testutil.MockDirectoryResolverFactory{Resolver: &testutil.MockDirectoryResolver{
			ResolveFunc: testutil.StaticRecords(map[string]string{"X": "descX", "Y": "descY"}),
		}},
	)

	got, err := svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if !got.Written {
		t.Error("Written = false, want true")
	}
	if len(tnsNames.WriteCalls) != 1 {
		t.Fatalf("Write called %d times, want 1", len(tnsNames.WriteCalls))
	}
	call := tnsNames.WriteCalls[0]
	if !reflect.DeepEqual(call.Prefix, prefix) {
		t.Errorf("Write prefix = %v, want %v", call.Prefix, prefix)
	}
	want := []netservice.ResolvedEntry{{Name: "A", Description: "descX"}, {Name: "B", Description: "descY"}}
	if !reflect.DeepEqual(call.Entries, want) {
		t.Errorf("Write entries = %+v, want %+v", call.Entries, want)
	}
}

func TestService_Sync_WriteFailure(t *testing.T) {
	tnsNames := &testutil.MockTnsNamesAccessor{
		WriteFunc: func([]string, []netservice.ResolvedEntry) error { return netservice.ErrWriteFailed },
	}
	factory := &testutil.MockDirectoryResolverFactory{
		Resolver: &testutil.MockDirectoryResolver{ResolveFunc: testutil.StaticRecords(map[string]string{"X": "d"})},
	}
	svc := NewService(
		&testutil.MockAliasListProvider{LoadAliasesFunc: aliasesOf(netservice.NewAliasEntry("A", "X"))},
		tnsNames,
		factory,
	)

	got, err := svc.Sync()
	if !errors.Is(err, netservice.ErrWriteFailed) {
		t.Errorf("Sync() error = %v, want %v", err, netservice.ErrWriteFailed)
	}
	if got.Written {
		t.Error("Written = true after a failed write")
	}
}

func TestService_ListManagedEntries(t *testing.T) {
	file := netservice.TnsNamesFile{Exists: true, Entries: []netservice.ResolvedEntry{{Name: "A", Description: "d"}}}
	svc := NewService(
		&testutil.MockAliasListProvider{},
		&testutil.MockTnsNamesAccessor{ReadCurrentFunc: currentOf(file), PathValue: "/tns/tnsnames.ora"},
		&testutil.MockDirectoryResolverFactory{},
	)

	got, err := svc.ListManagedEntries()
	if err != nil {
		t.Fatalf("ListManagedEntries() unexpected error = %v", err)
	}
	if !reflect.DeepEqual(got, file) {
		t.Errorf("ListManagedEntries() = %+v, want %+v", got, file)
	}
	if svc.TnsNamesPath() != "/tns/tnsnames.ora" {
		t.Errorf("TnsNamesPath() = %q", svc.TnsNamesPath())
	}
}

// fileFixture wires the real file repositories in a temporary TNS_ADMIN.
type fileFixture struct {
	dir      string
	resolver *testutil.MockDirectoryResolver
	svc      ports.ReconciliationService
}

func newFileFixture(t *testing.T, managedSection bool, directory map[string]string) *fileFixture {
	t.Helper()
	dir := t.TempDir()

	aliases, err := aliaslist.NewAliasListLoader(filepath.Join(dir, aliaslist.AliasListFilename))
	if err != nil {
		t.Fatalf("NewAliasListLoader() error = %v", err)
	}
	tnsNames, err := tnsnames.NewTnsNamesAccessor(dir, managedSection)
	if err != nil {
		t.Fatalf("NewTnsNamesAccessor() error = %v", err)
	}
	resolver := &testutil.MockDirectoryResolver{ResolveFunc: testutil.StaticRecords(directory)}

	return &fileFixture{
		dir:      dir,
		resolver: resolver,
		svc:      NewService(aliases, tnsNames, &testutil.MockDirectoryResolverFactory{Resolver: resolver}),
	}
}

func (f *fileFixture) writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(f.dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func (f *fileFixture) readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// withoutTimestamp drops the #Modified line so files written at different times compare equal.
func withoutTimestamp(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "#Modified:") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

var scenarioDirectory = map[string]string{"SALES": "desc1", "HRPROD": "desc2"}

func TestService_Sync_EndToEnd(t *testing.T) {
	f := newFileFixture(t, false, scenarioDirectory)
	f.writeFile(t, aliaslist.AliasListFilename, "SALES\nHR = HRPROD\n")

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if !got.Written || got.Reason != reasonNoFile {
		t.Errorf("Sync() Written = %v, Reason = %q; want true, %q", got.Written, got.Reason, reasonNoFile)
	}

	content := f.readFile(t, tnsnames.TnsNamesFilename)
	wantPrefix := "#This is an automatically generated file, please do not modify it!\n" +
		"#Edit tnssync.ora file instead of this!\n#Modified: "
	if !strings.HasPrefix(content, wantPrefix) {
		t.Errorf("file does not start with the generated header:\n%s", content)
	}
	if !strings.HasSuffix(content, "\nHR = desc2\nSALES = desc1\n") {
		t.Errorf("file does not end with the sorted entries:\n%s", content)
	}
	if _, err := os.Stat(filepath.Join(f.dir, tnsnames.BuildFilename)); !os.IsNotExist(err) {
		t.Errorf("build file left behind, stat error = %v", err)
	}
}

func TestService_Sync_EmptyAliasListCreatesNoFile(t *testing.T) {
	f := newFileFixture(t, false, scenarioDirectory)
	f.writeFile(t, aliaslist.AliasListFilename, "# nothing yet\n\n")

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if got.Written || got.NeedsWrite {
		t.Errorf("Sync() Written = %v, NeedsWrite = %v; want no write", got.Written, got.NeedsWrite)
	}
	if _, err := os.Stat(filepath.Join(f.dir, tnsnames.TnsNamesFilename)); !os.IsNotExist(err) {
		t.Errorf("tnsnames file created for an empty alias list, stat error = %v", err)
	}
}

func TestService_Sync_Idempotent(t *testing.T) {
	f := newFileFixture(t, false, scenarioDirectory)
	f.writeFile(t, aliaslist.AliasListFilename, "SALES\nHR = HRPROD\n")

	if _, err := f.svc.Sync(); err != nil {
		t.Fatalf("first Sync() unexpected error = %v", err)
	}
	before := f.readFile(t, tnsnames.TnsNamesFilename)

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("second Sync() unexpected error = %v", err)
	}
	if got.Written || got.NeedsWrite {
		t.Errorf("second Sync() Written = %v, NeedsWrite = %v; want no write", got.Written, got.NeedsWrite)
	}
	if after := f.readFile(t, tnsnames.TnsNamesFilename); after != before {
		t.Errorf("file changed on second run:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestService_Sync_NoOpWhenFileMatches(t *testing.T) {
	f := newFileFixture(t, false, scenarioDirectory)
	f.writeFile(t, aliaslist.AliasListFilename, "SALES\nHR = HRPROD\n")
	existing := "# maintained elsewhere\nSALES = desc1\n\nHR = desc2\n"
	f.writeFile(t, tnsnames.TnsNamesFilename, existing)

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if got.Written {
		t.Error("Sync() wrote a file that already matched")
	}
	if content := f.readFile(t, tnsnames.TnsNamesFilename); content != existing {
		t.Errorf("file was modified:\n%s", content)
	}
}

func TestService_Sync_OrderIndependence(t *testing.T) {
	directory := map[string]string{"X": "dx", "Y": "dy", "Z": "dz"}
	a := newFileFixture(t, false, directory)
	a.writeFile(t, aliaslist.AliasListFilename, "A = X\nB = Y\nZ\n")
	b := newFileFixture(t, false, directory)
	b.writeFile(t, aliaslist.AliasListFilename, "Z\nB = Y\nA = X\n")

	for _, f := range []*fileFixture{a, b} {
		if _, err := f.svc.Sync(); err != nil {
			t.Fatalf("Sync() unexpected error = %v", err)
		}
	}

	gotA := withoutTimestamp(a.readFile(t, tnsnames.TnsNamesFilename))
	gotB := withoutTimestamp(b.readFile(t, tnsnames.TnsNamesFilename))
	if gotA != gotB {
		t.Errorf("permuted alias lists produced different files:\n%s\n---\n%s", gotA, gotB)
	}
}

func TestService_Sync_LastWriteWins(t *testing.T) {
	f := newFileFixture(t, false, map[string]string{"X": "dx", "Y": "dy"})
	f.writeFile(t, aliaslist.AliasListFilename, "A = X\nA = Y\n")

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	want := []netservice.ResolvedEntry{{Name: "A", Description: "dy"}}
	if !reflect.DeepEqual(got.Desired, want) {
		t.Errorf("Desired = %+v, want %+v", got.Desired, want)
	}
	if want := [][]string{{"Y"}}; !reflect.DeepEqual(f.resolver.ResolveCalls, want) {
		t.Errorf("ResolveCalls = %v, want %v", f.resolver.ResolveCalls, want)
	}
}

func TestService_Sync_CorruptFileIsRewritten(t *testing.T) {
	f := newFileFixture(t, false, scenarioDirectory)
	f.writeFile(t, aliaslist.AliasListFilename, "SALES\nHR = HRPROD\n")
	f.writeFile(t, tnsnames.TnsNamesFilename, "HR = desc2\nSALES = desc1\nthis line is not an entry\n")

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if !got.Written || got.Reason != reasonCorrupt {
		t.Errorf("Sync() Written = %v, Reason = %q; want true, %q", got.Written, got.Reason, reasonCorrupt)
	}

	current, err := f.svc.ListManagedEntries()
	if err != nil {
		t.Fatalf("ListManagedEntries() unexpected error = %v", err)
	}
	if current.Corrupt || len(current.Entries) != 2 {
		t.Errorf("rewritten file = %+v, want two valid entries", current)
	}
}

func TestService_Sync_MissingAliasListLeavesFile(t *testing.T) {
	f := newFileFixture(t, false, scenarioDirectory)
	existing := "HR = something else\n"
	f.writeFile(t, tnsnames.TnsNamesFilename, existing)

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if !got.SourceMissing || got.Written {
		t.Errorf("Sync() SourceMissing = %v, Written = %v; want true, false", got.SourceMissing, got.Written)
	}
	if content := f.readFile(t, tnsnames.TnsNamesFilename); content != existing {
		t.Errorf("file was modified:\n%s", content)
	}
}

func TestService_Sync_ManagedSectionKeepsPrefix(t *testing.T) {
	f := newFileFixture(t, true, scenarioDirectory)
	f.writeFile(t, aliaslist.AliasListFilename, "SALES\n")
	prefix := "# local entries\nLOCAL = (DESCRIPTION=(ADDRESS=(HOST=localhost)))\n"
	f.writeFile(t, tnsnames.TnsNamesFilename, prefix+netservice.ManagedSectionMarker+"\nOLD = gone\n")

	got, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("Sync() unexpected error = %v", err)
	}
	if !got.Written {
		t.Fatal("Sync() did not write")
	}

	content := f.readFile(t, tnsnames.TnsNamesFilename)
	if !strings.HasPrefix(content, prefix+netservice.ManagedSectionMarker) {
		t.Errorf("prefix not preserved:\n%s", content)
	}
	if strings.Contains(content, "OLD = gone") || !strings.HasSuffix(content, "\nSALES = desc1\n") {
		t.Errorf("managed region not regenerated:\n%s", content)
	}

	again, err := f.svc.Sync()
	if err != nil {
		t.Fatalf("second Sync() unexpected error = %v", err)
	}
	if again.Written {
		t.Error("second Sync() wrote again")
	}
}
