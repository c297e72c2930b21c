package cmd

import (
	"fmt"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:     "uninstall <version>",
	Aliases: []string{"remove", "rm"},
	Short:   "Uninstall a Node.js version",
	Long: `Remove an installed Node.js version with fnm.

Examples:
  fnmdesk uninstall 18.20.8
  fnmdesk uninstall v16.20.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := strings.TrimSpace(args[0])

		client, err := newClient()
		if err != nil {
			return err
		}

		err = ui.WithSpinner(fmt.Sprintf("Uninstalling Node.js %s...", version), func() error {
			_, err := client.Uninstall(version)
			return err
		})
		if err != nil {
			return err
		}

		ui.Success("Uninstalled Node.js %s", ui.HighlightVersion(version))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
