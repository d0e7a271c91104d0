package main

import (
	"fmt"
	"os"

	"dashboard/internal/app"
	intconfig "dashboard/internal/config"

	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	dash       app.App
)

var rootCmd = &cobra.Command{
	Use:           "dashctl",
	Short:         "Query the business dashboard collections from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		dash, err = app.Build(intconfig.LoadEnv())
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		intconfig.CloseDB()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddGroup(&cobra.Group{ID: "query", Title: "Query commands:"})
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fundsCmd)
	rootCmd.AddCommand(summaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
