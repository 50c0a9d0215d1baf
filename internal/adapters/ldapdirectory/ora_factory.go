package ldapdirectory

import (
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/tnssync/internal/adapters/ldaporaconfig"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
)

type settingsLoader interface {
	Load() (ldaporaconfig.Settings, error)
}

/*
OraResolverFactory reads the directory servers and admin context from
ldap.ora each time a resolver is requested, so runs that never reach the
directory never read the file.
*/
type OraResolverFactory struct {
	settings settingsLoader
	base     Config
	newConn  func(url string, cfg Config) ldapConn
}

// NewOraResolverFactory creates a factory combining ldap.ora settings with the connection options in base.
func NewOraResolverFactory(settings settingsLoader, base Config) *OraResolverFactory {
	return &OraResolverFactory{settings: settings, base: base, newConn: newLdapConn}
}

// NewResolver implements the ports.DirectoryResolverFactory interface.
func (f *OraResolverFactory) NewResolver() (ports.DirectoryResolver, error) {
	s, err := f.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load directory settings: %w", err)
	}
	slog.Debug("directory settings loaded", "admin_context", s.AdminContext, "servers", s.DirectoryServers)

	cfg := f.base
	cfg.Endpoints = s.DirectoryServers
	cfg.AdminContext = s.AdminContext

	factory, err := NewResolverFactory(cfg)
	if err != nil {
		return nil, err
	}
	factory.newConn = f.newConn
	return factory.NewResolver()
}
