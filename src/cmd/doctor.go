package cmd

import (
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report how fnm is found and what it prints",
	Long: `Print a diagnostic report: the platform, the places searched for fnm,
the fnm that was found and the raw output of a few fnm commands. Include
it when reporting a problem.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ui.Header("fnmdesk diagnostics")
		ui.Raw(client.Diagnose())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
