package cmd

import (
	"fmt"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/fnm"
	"github.com/fnmdesk/fnmdesk/src/internal/parser"
	"github.com/fnmdesk/fnmdesk/src/internal/runtime"
	"github.com/fnmdesk/fnmdesk/src/internal/tui"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	listFormat string
	listLTS    bool
	listFilter string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed Node.js versions",
	Long: `List the Node.js versions fnm has installed, newest first.
The version in use is highlighted and the default alias is marked.

Examples:
  fnmdesk list
  fnmdesk list --lts
  fnmdesk list --filter iron
  fnmdesk list --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(listFormat); err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		versions, err := installedVersions(client)
		if err != nil {
			return err
		}
		versions = runtime.Filter(versions, runtime.FilterOptions{
			LTSOnly: listLTS,
			Keyword: listFilter,
		})

		if done, err := writeStructured(listFormat, versions); done {
			return err
		}

		if len(versions) == 0 && (listLTS || listFilter != "") {
			ui.Info("No installed versions match")
			return nil
		}
		if len(versions) == 0 {
			ui.Info("No Node.js versions installed")
			ui.Println("  Install one with: %s", ui.Highlight("fnmdesk install --lts"))
			return nil
		}
		ui.Println("%s", versionTable("Installed Node.js versions", versions).Render())
		return nil
	},
}

// installedVersions lists installed versions with the current one marked.
// `fnm list` and `fnm current` run concurrently.
func installedVersions(client *fnm.Client) ([]runtime.NodeVersion, error) {
	var listOutput, current string

	var g errgroup.Group
	g.Go(func() error {
		out, err := client.ListInstalled()
		listOutput = out
		return err
	})
	g.Go(func() error {
		v, err := client.Current()
		if err != nil {
			ui.Debug("Could not determine current version: %v", err)
			return nil
		}
		current = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	versions := parser.ParseInstalled(listOutput, current)
	runtime.SortDescending(versions)
	return versions, nil
}

func versionTable(title string, versions []runtime.NodeVersion) *tui.Table {
	table := tui.NewTable("Version", "LTS", "Status", "Aliases")
	table.SetTitle(title)

	for _, v := range versions {
		var status []string
		if v.Current {
			status = append(status, "current")
		}
		if v.Default {
			status = append(status, "default")
		}
		if v.Installed && !v.Current && !v.Default {
			status = append(status, "installed")
		}

		style := tui.RowNormal
		if v.Current {
			style = tui.RowCurrent
		}

		table.AddRow(style, v.Name, v.LTSName, strings.Join(status, ", "), strings.Join(v.Aliases, ", "))
	}

	table.SetFooter(fmt.Sprintf("%d version(s)", len(versions)))
	return table
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", formatTable, "Output format: table, json or yaml")
	listCmd.Flags().BoolVar(&listLTS, "lts", false, "Only show LTS versions")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only show versions whose name, LTS name or alias contains this text")
	rootCmd.AddCommand(listCmd)
}
