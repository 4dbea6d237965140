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

// NewReleaseCmd creates the fund-release command
func NewReleaseCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "release <groupId>",
		Short: "Release pooled funds to the group's recipient",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("release")

			if !yes && !ui.Confirm("Release the pooled funds to the recipient") {
				fmt.Println("Release cancelled.")
				return
			}

			d, err := clients.Disburse.Release(cmd.Context(), args[0])
			if err != nil {
				logger.Error("Failed to release funds: %v", err)
				clients.Reporter.Event("release_failed", map[string]any{
					"group": args[0],
				})
				os.Exit(1)
			}

			fmt.Printf("Released %s from %s to %s (%s)\n",
				ui.FormatAmount(d.Amount), d.GroupName, d.RecipientName, d.RecipientAccount)
			fmt.Printf("Status: %s\n", d.Status)
			if d.Message != "" {
				fmt.Println(d.Message)
			}
			clients.Reporter.Event("release_completed", map[string]any{
				"group":        d.GroupID,
				"disbursement": d.ID,
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}
