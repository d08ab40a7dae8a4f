package domain

import (
	"bytes"
	"fmt"
	"math"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	m "zipup.dev/pkg/zipup/internal/model"
)

// SummaryInput carries everything the size report needs.
type SummaryInput struct {
	Code      string
	Map       string
	Assets    map[string]m.Asset
	Stem      string
	Ext       string
	OutDir    string
	BuildTime time.Duration
	Version   string
}

// SummaryRow is one line of the size report.
type SummaryRow struct {
	Name string
	KB   int
}

func kilobytes(size int) int {
	return int(math.Round(float64(size) / 1024))
}

// SummaryRows orders the report rows: assets ascending by size, with the code
// row (then the map row) placed just before the first asset that is larger.
func SummaryRows(in SummaryInput) []SummaryRow {
	assets := make([]SummaryRow, 0, len(in.Assets))
	for name, asset := range in.Assets {
		assets = append(assets, SummaryRow{Name: name, KB: kilobytes(len(asset.Content))})
	}

	sort.Slice(assets, func(i, j int) bool {
		if assets[i].KB != assets[j].KB {
			return assets[i].KB < assets[j].KB
		}

		return assets[i].Name < assets[j].Name
	})

	stem := in.Stem
	if stem == "" {
		stem = m.DefaultFilename
	}

	main := []SummaryRow{{Name: stem + in.Ext, KB: kilobytes(len(in.Code))}}
	if in.Map != "" {
		main = append(main, SummaryRow{Name: stem + in.Ext + ".map", KB: kilobytes(len(in.Map))})
	}

	sort.SliceStable(main, func(i, j int) bool { return main[i].KB < main[j].KB })

	rows := make([]SummaryRow, 0, len(assets)+len(main))

	for _, asset := range assets {
		for len(main) > 0 && asset.KB > main[0].KB {
			rows = append(rows, main[0])
			main = main[1:]
		}

		rows = append(rows, asset)
	}

	return append(rows, main...)
}

// SummaryTotal is the sum of the rounded row sizes.
func SummaryTotal(rows []SummaryRow) int {
	total := 0
	for _, row := range rows {
		total += row.KB
	}

	return total
}

// RenderSummary formats the size report.
func RenderSummary(in SummaryInput) string {
	rows := SummaryRows(in)

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		table.Append([]string{fmt.Sprintf("%dkB", row.KB), path.Join(in.OutDir, row.Name)})
	}

	table.Render()

	var out strings.Builder

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		out.WriteString(strings.TrimRight(line, " "))
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "%dkB  [%dms] - esbuild %s\n", SummaryTotal(rows), in.BuildTime.Milliseconds(), in.Version)

	return out.String()
}
