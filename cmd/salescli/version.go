package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"salescli/pkg/contracts"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(contracts.FullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
