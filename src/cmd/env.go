package cmd

import (
	"strconv"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/constants"
	"github.com/fnmdesk/fnmdesk/src/internal/parser"
	"github.com/fnmdesk/fnmdesk/src/internal/tui"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"github.com/spf13/cobra"
)

const formatShell = "shell"

var envFormat string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show fnm's effective configuration",
	Long: `Show the configuration fnm runs with. Values fnm reports win over
the environment of this process, which wins over built-in defaults.

Examples:
  fnmdesk env
  fnmdesk env --format shell
  fnmdesk env --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(envFormat, formatShell); err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		cfg, err := client.Environment()
		if err != nil {
			return err
		}

		if envFormat == formatShell {
			ui.Raw(cfg.Format())
			return nil
		}
		if done, err := writeStructured(envFormat, cfg); done {
			return err
		}

		ui.Println("%s", tui.RenderPairs("fnm configuration", envPairs(cfg)))
		return nil
	},
}

func envPairs(cfg parser.EnvConfig) []tui.Pair {
	return []tui.Pair{
		{Key: constants.EnvFnmDir, Value: cfg.Dir},
		{Key: constants.EnvFnmNodeDistMirror, Value: cfg.NodeDistMirror, Note: config.MirrorLabel(cfg.NodeDistMirror)},
		{Key: constants.EnvFnmVersionFileStrategy, Value: cfg.VersionFileStrategy},
		{Key: constants.EnvFnmCorepackEnabled, Value: strconv.FormatBool(cfg.CorepackEnabled)},
		{Key: constants.EnvFnmResolveEngines, Value: strconv.FormatBool(cfg.ResolveEngines)},
		{Key: constants.EnvFnmArch, Value: cfg.Arch},
		{Key: constants.EnvFnmLogLevel, Value: cfg.LogLevel},
	}
}

func init() {
	envCmd.Flags().StringVarP(&envFormat, "format", "f", formatTable, "Output format: table, shell, json or yaml")
	rootCmd.AddCommand(envCmd)
}
