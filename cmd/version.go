package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gotab/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotab",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Timber Arch Bridge Geometry Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
