// Package report renders mined association rules as a formatted table
// for terminal or log output. It holds the table in memory and returns
// its string form; it performs no file or network I/O.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"fpgrowth/fptree"
)

// Rules renders rules as a titled table with one row per rule, sorted in
// the order given (AssociationRules already returns rules by descending
// confidence).
func Rules(rules []*fptree.Rule) string {
	t := table.NewWriter()
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Left", Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 30},
		{Name: "Right", Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 30},
		{Name: "Support", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Confidence", Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})
	t.SetTitle("ASSOCIATION RULES")
	t.AppendHeader(table.Row{"Left", "Right", "Support", "Confidence"})
	for _, r := range rules {
		t.AppendRow(table.Row{
			strings.Join(r.Left(), ", "),
			strings.Join(r.Right(), ", "),
			fmt.Sprintf("%.4f", r.Support()),
			fmt.Sprintf("%.4f", r.Confidence()),
		})
	}
	t.AppendFooter(table.Row{"", "", "Rules", len(rules)})
	return t.Render()
}
