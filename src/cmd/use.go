package cmd

import (
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/tui"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <version>",
	Short: "Switch the active Node.js version",
	Long: `Ask fnm to switch to a Node.js version.

fnm switches versions per shell, so this only affects shells that share
the fnm session of this process. Use 'fnmdesk default' to change the
version new shells start with.

Examples:
  fnmdesk use 22
  fnmdesk use lts-latest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := strings.TrimSpace(args[0])

		client, err := newClient()
		if err != nil {
			return err
		}

		out, err := client.Use(version)
		if err != nil {
			return err
		}
		if out = strings.TrimSpace(out); out != "" {
			ui.Debug("%s", out)
		}

		ui.Success("Now using Node.js %s", ui.HighlightVersion(version))
		return nil
	},
}

var defaultCmd = &cobra.Command{
	Use:   "default <version>",
	Short: "Set the default Node.js version",
	Long: `Point fnm's default alias at a version. New shells start with it.

Examples:
  fnmdesk default 22
  fnmdesk default v20.12.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version := strings.TrimSpace(args[0])

		client, err := newClient()
		if err != nil {
			return err
		}

		if _, err := client.SetDefault(version); err != nil {
			return err
		}

		ui.Success("Default Node.js version set to %s", ui.HighlightVersion(version))
		return nil
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the Node.js version in use",
	Long: `Show the Node.js version fnm reports as active. When fnm has no
active version the default alias is shown instead; "none" means neither
is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		version, err := client.Current()
		if err != nil {
			return err
		}

		if !ui.IsTerminal() {
			ui.Println("%s", version)
			return nil
		}
		ui.Println("%s: %s", ui.Highlight("Node.js"), tui.RenderCurrentVersion(version))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(defaultCmd)
	rootCmd.AddCommand(currentCmd)
}
