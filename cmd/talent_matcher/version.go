package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/matching"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the matching algorithm version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Fprintf(os.Stdout, "talent_matcher algorithm %s\n", matching.AlgorithmVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
