package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/tnssync/internal/adapters/ldapdirectory"
	"github.com/AntonioJCosta/tnssync/internal/adapters/ldaporaconfig"
	"github.com/AntonioJCosta/tnssync/internal/config"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
	"github.com/AntonioJCosta/tnssync/internal/core/services/reconciliation"
	"github.com/AntonioJCosta/tnssync/internal/handlers/cli"
	"github.com/AntonioJCosta/tnssync/internal/handlers/ui"
	"github.com/AntonioJCosta/tnssync/internal/repositories/aliaslist"
	"github.com/AntonioJCosta/tnssync/internal/repositories/tnsnames"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, newReconciliationService)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor("Error:"), err)
		os.Exit(1)
	}
}

func newReconciliationService(cfg *config.Config) (ports.ReconciliationService, error) {
	aliasList, err := aliaslist.NewAliasListLoader(cfg.AliasListPath())
	if err != nil {
		return nil, fmt.Errorf("error initializing alias list loader: %w", err)
	}

	tnsNames, err := tnsnames.NewTnsNamesAccessor(cfg.TnsAdmin, cfg.Output.ManagedSection)
	if err != nil {
		return nil, fmt.Errorf("error initializing tnsnames accessor: %w", err)
	}

	// ldap.ora is read by the factory, only when a run has services to resolve.
	ldapOra, err := ldaporaconfig.NewLdapOraProvider(cfg.LdapOraPath())
	if err != nil {
		return nil, fmt.Errorf("error initializing ldap.ora provider: %w", err)
	}
	directory := ldapdirectory.NewOraResolverFactory(ldapOra, ldapdirectory.Config{
		Timeout:      cfg.LDAP.ConnectTimeout,
		BindDN:       cfg.LDAP.BindDN,
		BindPassword: cfg.LDAP.BindPassword,
	})

	return reconciliation.NewService(aliasList, tnsNames, directory), nil
}
