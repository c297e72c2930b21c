// Package cmd implements the CLI commands for fnmdesk
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/fnm"
	"github.com/fnmdesk/fnmdesk/src/internal/locate"
	"github.com/fnmdesk/fnmdesk/src/internal/platform"
	"github.com/fnmdesk/fnmdesk/src/internal/tui"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	fnmPath string
)

var rootCmd = &cobra.Command{
	Use:   "fnmdesk",
	Short: "Manage Node.js versions through fnm",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		tui.SetPlain(!ui.IsTerminal())
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// newClient builds the fnm client for a command. Tests replace it.
var newClient = func() (*fnm.Client, error) {
	env := config.CurrentSnapshot()

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	override := settings.ExecutableOverride(env)
	if fnmPath != "" {
		override = fnmPath
	}
	if override != "" {
		ui.Debug("Using pinned fnm: %s", override)
	}

	return fnm.New(platform.Detect(), env, fnm.WithOverride(override)), nil
}

func Execute() {
	// Check for --version flag before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints a command failure. A missing fnm gets the install hint
// in a box instead of a one-line error.
func reportError(err error) {
	var notFound *locate.NotFoundError
	if errors.As(err, &notFound) {
		ui.Error("%s", locate.ErrNotFound)
		if len(notFound.Searched) > 0 {
			ui.Println("%s", ui.Dim("Searched:"))
			for _, p := range notFound.Searched {
				ui.Println("  %s", ui.Dim(p))
			}
		}
		if notFound.Hint != "" {
			ui.Println("%s", tui.RenderErrorBox(notFound.Hint))
		}
		return
	}
	ui.Error("%v", err)
}

func init() {
	// Hide the completion command until we implement it
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVar(&fnmPath, "fnm-path", "", "Use this fnm executable instead of searching for one")

	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd && cmd.Long != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", cmd.Long)
		}
		_ = customUsage(cmd)
	})
}

func customUsage(cmd *cobra.Command) error {
	if cmd != rootCmd {
		fmt.Fprintf(cmd.OutOrStdout(), "Usage:\n  %s\n", cmd.UseLine())
		if cmd.HasAvailableLocalFlags() {
			fmt.Fprintf(cmd.OutOrStdout(), "\nFlags:\n%s", cmd.LocalFlags().FlagUsages())
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderInfoBox(
		tui.RenderTitle("fnmdesk")+" "+cmd.Short+"\n"+
			tui.RenderMuted("Drives the fnm executable found on this machine; fnm does the actual work."),
	))

	table := tui.NewTable("Command", "Description")
	table.SetTitle("Available Commands")
	for _, c := range cmd.Commands() {
		if c.Hidden || c.Name() == "completion" || c.Name() == "help" {
			continue
		}
		table.AddRow(tui.RowNormal, c.Name(), c.Short)
	}
	table.SetFooter("Global flags: --verbose, --fnm-path <path>")
	fmt.Fprintln(cmd.OutOrStdout(), table.Render())

	return nil
}
