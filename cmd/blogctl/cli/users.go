package cli

import (
	"fmt"

	"blog-essentials/internal/store"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Work with users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch and print users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		if err := a.users.FetchUsers(cmd.Context()); err != nil {
			return err
		}
		for _, u := range store.SelectAllUsers(a.store.GetState()) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", u.ID, u.Name)
		}
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	rootCmd.AddCommand(usersCmd)
}
