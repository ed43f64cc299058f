package cli

import (
	"fmt"

	"blog-essentials/internal/store"

	"github.com/spf13/cobra"
)

var markRead bool

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Work with notifications",
}

var notificationsFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch new notifications and print them, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.Close()

		if err := a.notifications.FetchNotifications(cmd.Context()); err != nil {
			return err
		}
		state := a.store.GetState()
		for _, n := range store.SelectAllNotifications(state) {
			marker := " "
			if n.IsNew {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  %s\n", marker, n.Date, n.User, n.Message)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d unread\n", store.SelectUnreadNotificationCount(state))

		if markRead {
			a.notifications.MarkAllRead()
			fmt.Fprintf(cmd.OutOrStdout(), "marked all read, %d unread\n",
				store.SelectUnreadNotificationCount(a.store.GetState()))
		}
		return nil
	},
}

func init() {
	notificationsFetchCmd.Flags().BoolVar(&markRead, "mark-read", false, "mark every notification read after printing")
	notificationsCmd.AddCommand(notificationsFetchCmd)
	rootCmd.AddCommand(notificationsCmd)
}
