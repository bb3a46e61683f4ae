package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bsptile/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		if versionShort {
			fmt.Println(buildInfo.Version)
			return
		}
		fmt.Println(styles.NewAboutRenderer(styles.NewTheme()).Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print only the version")
}
