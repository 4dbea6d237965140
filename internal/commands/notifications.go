package commands

import (
	"fmt"
	"os"

	"poolpay/internal/app"
	"poolpay/internal/di"
	"poolpay/internal/logging"
	"poolpay/internal/ui"

	"github.com/spf13/cobra"
)

// NewNotificationsCmd creates the notification feed command
func NewNotificationsCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Show your notification feed",
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("notify")

			feed, err := clients.Notify.List(cmd.Context())
			if err != nil {
				logger.Error("Failed to fetch notifications: %v", err)
				os.Exit(1)
			}

			if len(feed) == 0 {
				fmt.Println("No notifications.")
				return
			}

			for _, n := range feed {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				when := ""
				if !n.CreatedAt.IsZero() {
					when = n.CreatedAt.Format("2006-01-02 15:04")
				}
				fmt.Printf("%s [%s] %-16s %s\n", marker, when, n.Kind, n.Title)
				if n.Body != "" {
					fmt.Printf("    %s\n", ui.TruncateText(n.Body, 100))
				}
			}
		},
	}
}
