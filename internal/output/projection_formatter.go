package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/roiclab/roicsim/internal/domain"
)

// RenderProjection writes the Monte Carlo projection result in the
// requested format: table, csv or json.
func RenderProjection(w io.Writer, result *domain.ProjectionResult, format string) error {
	switch format {
	case "table":
		return renderProjectionTable(w, result)
	case "csv":
		return renderProjectionCSV(w, result)
	case "json":
		return renderProjectionJSON(w, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func renderProjectionTable(w io.Writer, result *domain.ProjectionResult) error {
	fmt.Fprintf(w, "Cumulative ROIC projection (%d years, %d simulations, base effectiveness %s)\n\n",
		result.NYears, result.NSimulations, FormatPercent(result.BaseEffectiveness))

	table := tablewriter.NewWriter(w)

	header := []string{"Year"}
	for _, sc := range result.Scenarios {
		label := FormatPercent(sc.RemovalPct) + " removed"
		header = append(header, label+" (mean)", label+" (std)")
	}
	table.Header(header)

	for yearIdx := 0; yearIdx < result.NYears; yearIdx++ {
		row := []string{fmt.Sprintf("%d", yearIdx+1)}
		for _, sc := range result.Scenarios {
			row = append(row, FormatPercent(sc.MeanROIC[yearIdx]), FormatPercent(sc.StdROIC[yearIdx]))
		}
		table.Append(row)
	}

	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTerminal-year percentile bands:\n")
	for _, sc := range result.Scenarios {
		fmt.Fprintf(w, "  %s removed: p10 %s  p25 %s  p50 %s  p75 %s  p90 %s\n",
			FormatPercent(sc.RemovalPct),
			FormatPercent(sc.TerminalPercentiles["10th"]),
			FormatPercent(sc.TerminalPercentiles["25th"]),
			FormatPercent(sc.TerminalPercentiles["50th"]),
			FormatPercent(sc.TerminalPercentiles["75th"]),
			FormatPercent(sc.TerminalPercentiles["90th"]))
	}
	return nil
}

func renderProjectionCSV(w io.Writer, result *domain.ProjectionResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"removal_pct", "year", "mean_roic", "std_roic"}); err != nil {
		return err
	}

	for _, sc := range result.Scenarios {
		for i, year := range sc.Years {
			row := []string{
				sc.RemovalPct.StringFixed(2),
				fmt.Sprintf("%d", year),
				sc.MeanROIC[i].StringFixed(6),
				sc.StdROIC[i].StringFixed(6),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderProjectionJSON(w io.Writer, result *domain.ProjectionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
