package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/tnssync/internal/core/ports"
	"github.com/AntonioJCosta/tnssync/internal/handlers/ui"
)

// NewSyncCommand creates the 'sync' subcommand.
func NewSyncCommand(serviceFn func() ports.ReconciliationService) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rewrite tnsnames.ora from the directory when it is out of date.",
		Long: `Resolves every alias of tnssync.ora against the directory and rewrites
tnsnames.ora when the resolved entries differ from the file. This is also
what tnssync does when run without a subcommand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncCmd(cmd, serviceFn())
		},
	}
}

func runSyncCmd(cmd *cobra.Command, service ports.ReconciliationService) error {
	if service == nil {
		return fmt.Errorf("reconciliation service not initialized")
	}

	result, err := service.Sync()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.SourceMissing {
		fmt.Fprintln(out, ui.WarningColor("Alias list not found, nothing to do. tnsnames.ora was left untouched."))
		return nil
	}

	printUnresolved(out, result.Unresolved)
	switch {
	case result.Written:
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Updated %s with %d entries (%s).", service.TnsNamesPath(), len(result.Desired), result.Reason)))
	default:
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%s is up to date (%d entries).", service.TnsNamesPath(), len(result.Desired))))
	}
	return nil
}
