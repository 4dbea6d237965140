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

// NewPayCmd creates the contribution command: initiate, complete the charge
// in the browser, then verify settlement by polling
func NewPayCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "pay [groupId]",
		Short: "Contribute to a funding group",
		Long:  `Initiate a contribution, complete the charge through the payment gateway in your browser, then wait for the payment to be confirmed.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("pay")

			groupID := ""
			if len(args) == 1 {
				groupID = args[0]
			}

			if groupID == "" {
				if !ui.IsInteractive() {
					logger.Error("group id is required (pass it as an argument)")
					os.Exit(1)
				}
				list, err := clients.Groups.List(cmd.Context())
				if err != nil {
					logger.Error("Failed to list groups: %v", err)
					os.Exit(1)
				}
				picked, err := ui.PickGroup(list)
				if err != nil {
					logger.Error("Group selection failed: %v", err)
					os.Exit(1)
				}
				if picked == nil {
					return
				}
				groupID = picked.ID
			}

			initiation, err := clients.Payments.Initiate(cmd.Context(), groupID, amount)
			if err != nil {
				logger.Error("Failed to initiate payment: %v", err)
				os.Exit(1)
			}

			fmt.Printf("Contributing %s to %s\n", ui.FormatAmount(initiation.Amount), initiation.GroupName)
			fmt.Printf("Reference: %s\n", initiation.Reference)
			ui.OpenInBrowser(initiation.AuthorizationURL)
			ui.PromptForInput("Press Enter once you have completed the payment in your browser... ")

			updates, err := clients.Verifier.Start(cmd.Context(), initiation.ContributionID)
			if err != nil {
				logger.Error("Failed to start verification: %v", err)
				os.Exit(1)
			}
			if !runVerification(cmd.Context(), clients, updates) {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to contribute (required)")

	return cmd
}
