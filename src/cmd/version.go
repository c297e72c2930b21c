package cmd

import (
	"fmt"

	"github.com/fnmdesk/fnmdesk/src/internal/platform"
	"github.com/fnmdesk/fnmdesk/src/internal/tui"
	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the fnmdesk version",
	Long:  `Display the current version of fnmdesk.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("fnmdesk %s %s", tui.RenderVersion(Version),
			tui.RenderMuted(fmt.Sprintf("(%s/%s)", platform.Detect().Kind, platform.HostArch())))
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
