package cli

import (
	"fmt"

	"dateplan-app/config"
	"dateplan-app/database"

	"github.com/spf13/cobra"
)

func newCreateDBCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create-db",
		Short: "Create the application database if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = config.DB_NAME
			}
			created, err := database.EnsureDatabase(config.POSTGRES_ADMIN_URL, name)
			if err != nil {
				return fmt.Errorf("データベース作成エラー: %w", err)
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ データベース '%s' を作成しました\n", name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "ℹ️ データベース '%s' は既に存在します\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "database name (default $DB_NAME)")
	return cmd
}
