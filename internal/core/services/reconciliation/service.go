package reconciliation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

const (
	reasonCorrupt  = "current file is corrupt"
	reasonNoFile   = "file does not exist"
	reasonDiffer   = "entries differ"
	reasonUpToDate = "up to date"
)

type service struct {
	aliases   ports.AliasListProvider
	tnsNames  ports.TnsNamesAccessor
	directory ports.DirectoryResolverFactory
}

// NewService creates a new reconciliation service.
// It panics if any dependency is nil.
func NewService(
	aliases ports.AliasListProvider,
	tnsNames ports.TnsNamesAccessor,
	directory ports.DirectoryResolverFactory,
) ports.ReconciliationService {
	if aliases == nil {
		panic("aliases cannot be nil")
	}
	if tnsNames == nil {
		panic("tnsNames cannot be nil")
	}
	if directory == nil {
		panic("directory cannot be nil")
	}
	return &service{
		aliases:   aliases,
		tnsNames:  tnsNames,
		directory: directory,
	}
}

// Plan loads the aliases, resolves them and compares the result with the current file.
func (s *service) Plan() (ports.PlanResult, error) {
	aliases, err := s.aliases.LoadAliases()
	if errors.Is(err, netservice.ErrAliasListMissing) {
		slog.Warn("alias list not found, nothing to do", "path", s.aliases.Source())
		return ports.PlanResult{SourceMissing: true}, nil
	}
	if err != nil {
		return ports.PlanResult{}, fmt.Errorf("failed to load alias list: %w", err)
	}
	slog.Debug("alias list loaded", "path", s.aliases.Source(), "entries", len(aliases))

	records, err := s.resolve(netservice.DistinctServiceNames(aliases))
	if err != nil {
		return ports.PlanResult{}, err
	}

	desired, unresolved := buildDesired(aliases, records)
	for _, a := range unresolved {
		slog.Info("net service not found in directory, alias skipped", "alias", a.Name, "service", a.ServiceName)
	}

	current, err := s.tnsNames.ReadCurrent()
	if err != nil {
		return ports.PlanResult{}, fmt.Errorf("failed to read tnsnames file: %w", err)
	}
	if current.Corrupt {
		slog.Warn("tnsnames file has an unparsable line, it will be rewritten",
			"path", s.tnsNames.Path(), "line", current.CorruptLineNumber, "text", current.CorruptLine)
	}

	needsWrite, reason := decide(current, desired)

	return ports.PlanResult{
		Aliases:    aliases,
		Unresolved: unresolved,
		Desired:    desired,
		Current:    current,
		Changes:    netservice.Diff(current.Entries, desired),
		NeedsWrite: needsWrite,
		Reason:     reason,
	}, nil
}

// Sync runs Plan and rewrites the tnsnames file when it is out of date.
func (s *service) Sync() (ports.SyncResult, error) {
	plan, err := s.Plan()
	if err != nil {
		return ports.SyncResult{}, err
	}
	result := ports.SyncResult{PlanResult: plan}

	if plan.SourceMissing {
		return result, nil
	}
	if !plan.NeedsWrite {
		slog.Info("tnsnames file is up to date", "path", s.tnsNames.Path(), "entries", len(plan.Desired))
		return result, nil
	}

	if err := s.tnsNames.Write(plan.Current.Prefix, plan.Desired); err != nil {
		return result, fmt.Errorf("failed to update %s: %w", s.tnsNames.Path(), err)
	}
	result.Written = true
	slog.Info("tnsnames file updated", "path", s.tnsNames.Path(), "entries", len(plan.Desired), "reason", plan.Reason)

	return result, nil
}

// ListManagedEntries returns the current state of the tnsnames file.
func (s *service) ListManagedEntries() (netservice.TnsNamesFile, error) {
	current, err := s.tnsNames.ReadCurrent()
	if err != nil {
		return netservice.TnsNamesFile{}, fmt.Errorf("failed to read tnsnames file: %w", err)
	}
	return current, nil
}

// TnsNamesPath returns the location of the managed tnsnames file.
func (s *service) TnsNamesPath() string {
	return s.tnsNames.Path()
}

// resolve looks up the service names with a resolver that lives for this call only.
func (s *service) resolve(serviceNames []string) (map[string]netservice.ServiceRecord, error) {
	if len(serviceNames) == 0 {
		return map[string]netservice.ServiceRecord{}, nil
	}

	resolver, err := s.directory.NewResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to create directory resolver: %w", err)
	}
	defer func() {
		if err := resolver.Close(); err != nil {
			slog.Debug("failed to close directory resolver", "error", err)
		}
	}()

	records, err := resolver.Resolve(serviceNames)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve net services: %w", err)
	}
	slog.Debug("net services resolved", "requested", len(serviceNames), "found", len(records))
	return records, nil
}
