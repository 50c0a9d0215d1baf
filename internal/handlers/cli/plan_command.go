package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
	"github.com/AntonioJCosta/tnssync/internal/handlers/ui"
)

type planView struct {
	TnsNames      string                   `yaml:"tnsnames"`
	SourceMissing bool                     `yaml:"source_missing"`
	NeedsWrite    bool                     `yaml:"needs_write"`
	Reason        string                   `yaml:"reason,omitempty"`
	Changes       []netservice.EntryChange `yaml:"changes"`
	Unresolved    []netservice.AliasEntry  `yaml:"unresolved,omitempty"`
}

// NewPlanCommand creates the 'plan' subcommand.
func NewPlanCommand(serviceFn func() ports.ReconciliationService) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what a sync would change without writing anything.",
		Long:  `Resolves the aliases against the directory and prints the write decision and the entry changes. tnsnames.ora is never modified.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanCmd(cmd, serviceFn(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or yaml.")

	return cmd
}

func runPlanCmd(cmd *cobra.Command, service ports.ReconciliationService, output string) error {
	if err := validateOutput(output); err != nil {
		return err
	}
	if service == nil {
		return fmt.Errorf("reconciliation service not initialized")
	}

	plan, err := service.Plan()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output == outputYAML {
		return writeYAML(out, planView{
			TnsNames:      service.TnsNamesPath(),
			SourceMissing: plan.SourceMissing,
			NeedsWrite:    plan.NeedsWrite,
			Reason:        plan.Reason,
			Changes:       plan.Changes,
			Unresolved:    plan.Unresolved,
		})
	}

	if plan.SourceMissing {
		fmt.Fprintln(out, ui.WarningColor("Alias list not found, a sync would do nothing."))
		return nil
	}

	printUnresolved(out, plan.Unresolved)
	if !plan.NeedsWrite {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%s is up to date, a sync would not write it.", service.TnsNamesPath())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("A sync would rewrite %s: %s.", service.TnsNamesPath(), plan.Reason)))
	if len(plan.Changes) == 0 {
		fmt.Fprintln(out, ui.DetailColor("No entry changes, only the file layout would be regenerated."))
		return nil
	}

	rows := make([][]string, 0, len(plan.Changes))
	for _, c := range plan.Changes {
		rows = append(rows, []string{c.Name, string(c.Action), c.Current, c.Desired})
	}
	writeTable(out, []string{"Name", "Action", "Current", "Desired"}, rows)
	return nil
}
