package main

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Short:   "Headline figures of every collection",
	GroupID: "query",
	RunE: func(cmd *cobra.Command, args []string) error {
		ov, err := dash.Registry.Overview("cli").Build(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), ov)
		}
		printOverview(cmd.OutOrStdout(), ov)
		return nil
	},
}
