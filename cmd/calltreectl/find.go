package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/virgo47/javasimon/pkg/treetable"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <calltree.json> <node-id>",
		Short: "Show one node of a call tree",
		Long: `The find command looks up a node by id and prints its position,
state and payload.

Example:
  calltreectl find calltree.json callTree_Node_0_1
  calltreectl find calltree.json callTree_Node --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

// nodeJSON is the JSON form of a node.
type nodeJSON struct {
	ID          string         `json:"id"`
	Depth       int            `json:"depth"`
	Ordinal     int            `json:"ordinal"`
	IsLast      bool           `json:"isLast"`
	HasChildren bool           `json:"hasChildren"`
	Children    int            `json:"children"`
	Expanded    bool           `json:"expanded"`
	Visible     bool           `json:"visible"`
	Payload     map[string]any `json:"payload"`
}

func runFind(args []string) error {
	table, _, err := openTable(args[0])
	if err != nil {
		return err
	}

	n, err := table.Find(args[1])
	if err != nil {
		return err
	}

	payload := make(map[string]any, len(n.Payload()))
	for k, v := range n.Payload() {
		if k != treetable.ChildrenKey {
			payload[k] = v
		}
	}

	if jsonOut {
		return printJSON(nodeJSON{
			ID:          n.ID(),
			Depth:       n.Depth(),
			Ordinal:     n.Ordinal(),
			IsLast:      n.IsLast(),
			HasChildren: n.HasChildren(),
			Children:    len(n.Children()),
			Expanded:    n.Expanded(),
			Visible:     n.Visible(),
			Payload:     payload,
		})
	}

	printInfo("ID:        %s\n", n.ID())
	printInfo("Depth:     %d\n", n.Depth())
	printInfo("Ordinal:   %d\n", n.Ordinal())
	printInfo("Last:      %s\n", formatBool(n.IsLast()))
	printInfo("Children:  %d\n", len(n.Children()))
	if n.HasChildren() {
		printInfo("Expanded:  %s\n", formatBool(n.Expanded()))
	}
	printInfo("Visible:   %s\n", formatBool(n.Visible()))

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	printInfo("Payload:\n")
	for _, k := range keys {
		printInfo("  %s: %s\n", k, treetable.FormatValue(payload[k]))
	}
	return nil
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
