package cmd

import (
	"fmt"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	installLTS        bool
	installUse        bool
	installSetDefault bool
)

var installCmd = &cobra.Command{
	Use:   "install [version]",
	Short: "Install a Node.js version",
	Long: `Install a Node.js version with fnm. The version can be anything fnm
accepts: a full version, a major line or an LTS codename.

Examples:
  fnmdesk install 22
  fnmdesk install v20.12.2 --default
  fnmdesk install --lts --use`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := installTarget(args, installLTS)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		result := ui.AwaitWithProgress(fmt.Sprintf("Installing Node.js %s", version), client.InstallAsync(version))
		if result.Err != nil {
			return result.Err
		}
		if out := strings.TrimSpace(result.Output); out != "" {
			ui.Debug("%s", out)
		}
		ui.Success("Installed Node.js %s", ui.HighlightVersion(version))

		if installSetDefault {
			ui.Progress("Setting %s as the default", version)
			if _, err := client.SetDefault(version); err != nil {
				return err
			}
			ui.Success("Default set to %s", ui.HighlightVersion(version))
		}
		if installUse {
			ui.Progress("Switching to %s", version)
			if _, err := client.Use(version); err != nil {
				return err
			}
			ui.Success("Now using %s", ui.HighlightVersion(version))
		}
		return nil
	},
}

// installTarget picks the version argument, or fnm's LTS selector
func installTarget(args []string, lts bool) (string, error) {
	switch {
	case len(args) == 1 && lts:
		return "", fmt.Errorf("give a version or --lts, not both")
	case len(args) == 1:
		v := strings.TrimSpace(args[0])
		if v == "" {
			return "", fmt.Errorf("version must not be empty")
		}
		return v, nil
	case lts:
		return "lts/*", nil
	default:
		return "", fmt.Errorf("a version is required (or use --lts)")
	}
}

func init() {
	installCmd.Flags().BoolVar(&installLTS, "lts", false, "Install the latest LTS release")
	installCmd.Flags().BoolVar(&installUse, "use", false, "Use the version after installing it")
	installCmd.Flags().BoolVar(&installSetDefault, "default", false, "Make the version the default after installing it")
	rootCmd.AddCommand(installCmd)
}
