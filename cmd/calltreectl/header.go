package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newHeaderCmd())
}

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header",
		Short: "Print the configured column titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader()
		},
	}
}

func runHeader() error {
	table, err := loadConfig().NewTable()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(table.Header())
	}
	for _, title := range table.Header() {
		printInfo("%s\n", title)
	}
	return nil
}
