package cmd

import (
	"os"

	"github.com/packplan/packplan/cmd/check"
	"github.com/packplan/packplan/cmd/exports"
	"github.com/packplan/packplan/cmd/lint"
	"github.com/packplan/packplan/cmd/plan"
	"github.com/packplan/packplan/cmd/upload"
	"github.com/packplan/packplan/logger"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logJSON bool
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "packplan",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, logJSON)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")

	RootCmd.AddCommand(plan.Cmd)
	RootCmd.AddCommand(exports.Cmd)
	RootCmd.AddCommand(lint.Cmd)
	RootCmd.AddCommand(check.Cmd)
	RootCmd.AddCommand(upload.Cmd)
}

var genBashCompletionCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completions file",
	Run: func(cmd *cobra.Command, args []string) {
		RootCmd.GenBashCompletion(os.Stdout)
	},
}
