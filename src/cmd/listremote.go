package cmd

import (
	"github.com/fnmdesk/fnmdesk/src/internal/parser"
	"github.com/fnmdesk/fnmdesk/src/internal/runtime"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	remoteFormat string
	remoteLTS    bool
	remoteFilter string
	remoteLatest bool
	remoteOnly   bool
	remoteLimit  int
)

var listRemoteCmd = &cobra.Command{
	Use:     "list-remote",
	Aliases: []string{"ls-remote"},
	Short:   "List Node.js versions available to install",
	Long: `List Node.js versions available from the configured mirror, newest first.
Versions already installed are marked.

Examples:
  fnmdesk list-remote --lts
  fnmdesk list-remote --filter 20
  fnmdesk list-remote --latest --limit 5
  fnmdesk list-remote --lts --installed`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(remoteFormat); err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		var remoteOutput string
		var installed []runtime.NodeVersion

		g := new(errgroup.Group)
		g.Go(func() error {
			return ui.WithSpinner("Fetching available versions...", func() error {
				out, err := client.ListRemote(remoteLTS, remoteFilter)
				remoteOutput = out
				return err
			})
		})
		g.Go(func() error {
			out, err := client.ListInstalled()
			if err != nil {
				// Installed marks are cosmetic
				ui.Warning("Could not mark installed versions: %v", err)
				return nil
			}
			installed = parser.ParseInstalled(out, "")
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		versions := parser.ParseRemote(remoteOutput, runtime.Names(installed))
		versions = runtime.Filter(versions, runtime.FilterOptions{InstalledOnly: remoteOnly})
		runtime.SortDescending(versions)
		if remoteLatest {
			versions = runtime.LatestByMajor(versions)
		}
		if remoteLimit > 0 && len(versions) > remoteLimit {
			versions = versions[:remoteLimit]
		}

		if done, err := writeStructured(remoteFormat, versions); done {
			return err
		}

		if len(versions) == 0 {
			ui.Info("No matching versions found")
			return nil
		}
		ui.Println("%s", versionTable("Available Node.js versions", versions).Render())
		return nil
	},
}

func init() {
	listRemoteCmd.Flags().StringVarP(&remoteFormat, "format", "f", formatTable, "Output format: table, json or yaml")
	listRemoteCmd.Flags().BoolVar(&remoteLTS, "lts", false, "Only show LTS versions")
	listRemoteCmd.Flags().StringVar(&remoteFilter, "filter", "", "Only show versions matching this prefix")
	listRemoteCmd.Flags().BoolVar(&remoteOnly, "installed", false, "Only show versions that are already installed")
	listRemoteCmd.Flags().BoolVar(&remoteLatest, "latest", false, "Only show the newest release of each major line")
	listRemoteCmd.Flags().IntVarP(&remoteLimit, "limit", "n", 0, "Show at most this many versions (0 for all)")
	rootCmd.AddCommand(listRemoteCmd)
}
