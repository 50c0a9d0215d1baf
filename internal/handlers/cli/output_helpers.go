package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/tnssync/internal/core/domain/netservice"
	"github.com/AntonioJCosta/tnssync/internal/handlers/ui"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

func validateOutput(output string) error {
	switch output {
	case outputTable, outputYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (use %s or %s)", output, outputTable, outputYAML)
}

func writeTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
	}
	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)
	table.Render()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func printUnresolved(w io.Writer, unresolved []netservice.AliasEntry) {
	if len(unresolved) == 0 {
		return
	}
	names := make([]string, 0, len(unresolved))
	for _, a := range unresolved {
		names = append(names, fmt.Sprintf("%s (%s)", ui.AliasNameColor(a.Name), a.ServiceName))
	}
	fmt.Fprintln(w, ui.WarningColor("Not found in the directory, skipped:"), strings.Join(names, ", "))
}
