package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroomhq/dataroom-cli/internal/ux"
	"github.com/dataroomhq/dataroom-cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo()

		if outputFormat != "text" {
			f, err := ux.NewFormatter(outputFormat, nil)
			if err != nil {
				return err
			}
			return f.Format(info)
		}

		fmt.Println(info.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
