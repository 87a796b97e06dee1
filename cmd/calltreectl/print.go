package main

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/virgo47/javasimon/pkg/treetable"
)

var (
	printCollapse []string
	printDepth    int
	printAll      bool
)

func init() {
	cmd := newPrintCmd()
	cmd.Flags().StringSliceVar(&printCollapse, "collapse", nil, "Collapse the node with this id (repeatable)")
	cmd.Flags().IntVar(&printDepth, "depth", -1, "Expand nodes above this depth and collapse the rest")
	cmd.Flags().BoolVar(&printAll, "all", false, "Include hidden rows")
	rootCmd.AddCommand(cmd)
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <calltree.json>",
		Short: "Render a call tree as a table",
		Long: `The print command renders a call-tree document as a tree-table.

Example:
  calltreectl print calltree.json
  calltreectl print calltree.json --depth 1
  calltreectl print calltree.json --collapse callTree_Node_0 --all
  calltreectl print calltree.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(args)
		},
	}
	return cmd
}

// tableJSON is the JSON form of a drawn table. Row cells follow Header order.
type tableJSON struct {
	Header []string  `json:"header"`
	Rows   []rowJSON `json:"rows"`
}

// rowJSON is the JSON form of one rendered row.
type rowJSON struct {
	ID       string   `json:"id"`
	Depth    int      `json:"depth"`
	Visible  bool     `json:"visible"`
	Expanded *bool    `json:"expanded,omitempty"`
	Cells    []string `json:"cells"`
}

func runPrint(args []string) error {
	table, doc, err := openTable(args[0])
	if err != nil {
		return err
	}

	if !table.HasData() {
		if jsonOut {
			return printJSON(map[string]string{"message": doc.Message})
		}
		printInfo("%s\n", doc.Message)
		return nil
	}

	if printDepth >= 0 {
		table.ExpandToDepth(printDepth)
	}
	for _, id := range printCollapse {
		n, err := table.Find(id)
		if err != nil {
			return err
		}
		if !n.Expanded() {
			continue
		}
		if _, err := table.ToggleNode(n); err != nil {
			return err
		}
	}

	rows := table.VisibleRows()
	if printAll {
		rows = table.Draw()
	}

	if jsonOut {
		return printJSON(rowsJSON(table, rows))
	}

	w := tablewriter.NewWriter(os.Stdout)
	w.SetAutoFormatHeaders(false)
	w.SetHeader(table.Header())
	w.SetAutoWrapText(false)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range rows {
		w.Append(rowCells(table, r))
	}
	w.Render()

	if doc.LogThreshold > 0 {
		printVerbose("Log threshold: %s\n", doc.LogThreshold)
	}
	return nil
}

// rowCells returns the cell texts of r with the tree prefix on the first one.
func rowCells(table *treetable.Table, r treetable.Row) []string {
	cells := r.Texts()
	if len(cells) == 0 {
		return cells
	}
	cells[0] = table.Prefix(r) + cells[0]
	if !r.Visible {
		cells[0] += " (hidden)"
	}
	return cells
}

func rowsJSON(table *treetable.Table, rows []treetable.Row) tableJSON {
	out := tableJSON{
		Header: table.Header(),
		Rows:   make([]rowJSON, len(rows)),
	}
	for i, r := range rows {
		row := rowJSON{
			ID:      r.ID,
			Depth:   r.Depth,
			Visible: r.Visible,
			Cells:   r.Texts(),
		}
		if r.Affordance.Present {
			expanded := r.Affordance.Expanded
			row.Expanded = &expanded
		}
		out.Rows[i] = row
	}
	return out
}
