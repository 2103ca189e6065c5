// Package cli wires the service's commands.
package cli

import (
	"dateplan-app/config"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dateplan",
		Short: "Date plan scoring service",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
		},
		// bare invocation starts the server, like `python run.py`
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand(), newCreateDBCommand())
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
