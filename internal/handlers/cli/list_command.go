package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/core/ports"
	"github.com/AntonioJCosta/tnssync/internal/handlers/ui"
)

type listView struct {
	TnsNames    string                     `yaml:"tnsnames"`
	Exists      bool                       `yaml:"exists"`
	Corrupt     bool                       `yaml:"corrupt"`
	CorruptLine string                     `yaml:"corrupt_line,omitempty"`
	PrefixLines int                        `yaml:"prefix_lines,omitempty"`
	Entries     []netservice.ResolvedEntry `yaml:"entries"`
}

// NewListCommand creates the 'list' subcommand.
func NewListCommand(serviceFn func() ports.ReconciliationService) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the entries currently managed in tnsnames.ora.",
		Long:  `Parses the managed region of tnsnames.ora and prints its entries. The directory is not contacted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, serviceFn(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or yaml.")

	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, service ports.ReconciliationService, output string) error {
	if err := validateOutput(output); err != nil {
		return err
	}
	if service == nil {
		return fmt.Errorf("reconciliation service not initialized")
	}

	file, err := service.ListManagedEntries()
	if err != nil {
		return fmt.Errorf("could not list entries: %w", err)
	}

	entries := make([]netservice.ResolvedEntry, len(file.Entries))
	copy(entries, file.Entries)
	netservice.SortResolved(entries)

	out := cmd.OutOrStdout()
	if output == outputYAML {
		return writeYAML(out, listView{
			TnsNames:    service.TnsNamesPath(),
			Exists:      file.Exists,
			Corrupt:     file.Corrupt,
			CorruptLine: file.CorruptLine,
			PrefixLines: len(file.Prefix),
			Entries:     entries,
		})
	}

	if !file.Exists {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%s does not exist yet.", service.TnsNamesPath())))
		return nil
	}
	if file.Corrupt {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Line %d of %s is not a valid entry, the next sync will rewrite the file: %s",
			file.CorruptLineNumber, service.TnsNamesPath(), file.CorruptLine)))
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No managed entries found in %s.", service.TnsNamesPath())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Managed entries in %s:", service.TnsNamesPath())))
	if len(file.Prefix) > 0 {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(%d unmanaged lines above the marker are not shown)", len(file.Prefix))))
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Description})
	}
	writeTable(out, []string{"Name", "Description"}, rows)
	return nil
}
