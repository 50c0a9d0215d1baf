package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/tnssync/internal/config"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
	"github.com/AntonioJCosta/tnssync/internal/logger"
)

// ServiceBuilder wires the reconciliation service for a resolved configuration.
type ServiceBuilder func(cfg *config.Config) (ports.ReconciliationService, error)

type rootFlags struct {
	tnsAdmin       string
	logLevel       string
	logFormat      string
	managedSection bool
}

/*
NewRootCommand creates the tnssync command tree. Running tnssync without a
subcommand performs a sync. Configuration comes from the environment and
the persistent flags override it; the service is built once both are known.
*/
func NewRootCommand(version string, build ServiceBuilder) *cobra.Command {
	var (
		flags   rootFlags
		service ports.ReconciliationService
	)
	serviceFn := func() ports.ReconciliationService { return service }

	rootCmd := &cobra.Command{
		Use:   "tnssync",
		Short: "tnssync keeps tnsnames.ora in sync with an LDAP directory.",
		Long: `tnssync reads the aliases listed in $TNS_ADMIN/tnssync.ora, looks up their
connect descriptors in the directory configured by $TNS_ADMIN/ldap.ora and
rewrites $TNS_ADMIN/tnsnames.ora when the result differs from its content.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.Log.Format, cfg.Log.Level); err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			slog.Debug("configuration loaded",
				"tns_admin", cfg.TnsAdmin, "tnsnames", cfg.TnsNamesPath(), "managed_section", cfg.Output.ManagedSection, "timeout", cfg.LDAP.ConnectTimeout)

			service, err = build(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncCmd(cmd, serviceFn())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.tnsAdmin, "tns-admin", "t", "", "Directory holding tnssync.ora, ldap.ora and tnsnames.ora (overrides $TNS_ADMIN).")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides $TNSSYNC_LOG_LEVEL).")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: auto, terminal, text or json (overrides $TNSSYNC_LOG_FORMAT).")
	pf.BoolVar(&flags.managedSection, "managed-section", false, "Keep content above the managed section marker in tnsnames.ora (overrides $TNSSYNC_MANAGED_SECTION).")

	rootCmd.AddCommand(NewSyncCommand(serviceFn))
	rootCmd.AddCommand(NewPlanCommand(serviceFn))
	rootCmd.AddCommand(NewListCommand(serviceFn))

	return rootCmd
}

// loadConfig reads the environment, applies the flags the user set and validates the result.
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("tns-admin") {
		cfg.TnsAdmin = flags.tnsAdmin
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if f.Changed("managed-section") {
		cfg.Output.ManagedSection = flags.managedSection
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
