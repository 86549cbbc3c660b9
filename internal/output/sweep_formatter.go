package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/roiclab/roicsim/internal/domain"
)

// RenderSweep writes the per-effectiveness ROIC sweep curves in the
// requested format: table, csv or json.
func RenderSweep(w io.Writer, scenarios []domain.SweepScenario, format string) error {
	switch format {
	case "table":
		return renderSweepTable(w, scenarios)
	case "csv":
		return renderSweepCSV(w, scenarios)
	case "json":
		return renderSweepJSON(w, scenarios)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func renderSweepTable(w io.Writer, scenarios []domain.SweepScenario) error {
	if len(scenarios) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)

	header := []string{"Waste Removed"}
	for _, sc := range scenarios {
		header = append(header, fmt.Sprintf("ROIC @ %s eff.", FormatPercent(sc.Effectiveness)))
	}
	table.Header(header)

	for i := range scenarios[0].Series.RemovalPct {
		row := []string{scenarios[0].Series.RemovalPct[i].StringFixed(1) + "%"}
		for _, sc := range scenarios {
			row = append(row, FormatPercent(sc.Series.ROIC[i]))
		}
		table.Append(row)
	}

	return table.Render()
}

func renderSweepCSV(w io.Writer, scenarios []domain.SweepScenario) error {
	cw := csv.NewWriter(w)

	header := []string{"removal_pct"}
	for _, sc := range scenarios {
		header = append(header, "roic_eff_"+sc.Effectiveness.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	if len(scenarios) > 0 {
		for i := range scenarios[0].Series.RemovalPct {
			row := []string{scenarios[0].Series.RemovalPct[i].StringFixed(4)}
			for _, sc := range scenarios {
				row = append(row, sc.Series.ROIC[i].StringFixed(6))
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderSweepJSON(w io.Writer, scenarios []domain.SweepScenario) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scenarios)
}
