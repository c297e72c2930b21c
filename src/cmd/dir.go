package cmd

import (
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/fnm"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
)

var dirCmd = &cobra.Command{
	Use:   "dir [version]",
	Short: "Print fnm's data directory or a version's install directory",
	Long: `Print fnm's data directory, or with a version, where that version is
installed. Works without fnm installed.

Examples:
  fnmdesk dir
  fnmdesk dir v22.21.1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		dir, err := targetDir(client, args)
		if err != nil {
			return err
		}
		ui.Println("%s", dir)
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open [version]",
	Short: "Open fnm's data directory or a version's install directory",
	Long: `Show fnm's data directory, or a version's install directory, in the
system file browser.

Examples:
  fnmdesk open
  fnmdesk open v22.21.1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			err = client.OpenDataDir()
		} else {
			err = client.OpenVersionDir(strings.TrimSpace(args[0]))
		}
		if err != nil {
			return err
		}

		ui.Success("Opened in the file browser")
		return nil
	},
}

func targetDir(client *fnm.Client, args []string) (string, error) {
	if len(args) == 0 {
		return client.DataDir()
	}
	return client.VersionDir(strings.TrimSpace(args[0]))
}

func init() {
	rootCmd.AddCommand(dirCmd)
	rootCmd.AddCommand(openCmd)
}
