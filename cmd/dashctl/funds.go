package main

import (
	"github.com/spf13/cobra"
)

var fundsCmd = &cobra.Command{
	Use:     "funds",
	Short:   "Show fund balances against their monthly targets",
	GroupID: "query",
	RunE: func(cmd *cobra.Command, args []string) error {
		ov, err := dash.Registry.Funds("cli").Overview(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), ov)
		}
		printFunds(cmd.OutOrStdout(), ov)
		return nil
	},
}
