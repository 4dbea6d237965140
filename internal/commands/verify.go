package commands

import (
	"context"
	"fmt"
	"os"

	"poolpay/internal/app"
	"poolpay/internal/di"
	"poolpay/internal/logging"
	"poolpay/internal/payments"
	"poolpay/internal/ui"

	"github.com/spf13/cobra"
)

// NewVerifyCmd creates a command to verify a contribution's settlement,
// e.g. after an interrupted pay flow
func NewVerifyCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <contributionId>",
		Short: "Poll the settlement state of a contribution",
		Long:  `Poll the backend until the contribution settles as completed or failed, or the attempt budget runs out.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("verify")

			updates, err := clients.Verifier.Start(cmd.Context(), args[0])
			if err != nil {
				logger.Error("Failed to start verification: %v", err)
				os.Exit(1)
			}

			if !runVerification(cmd.Context(), clients, updates) {
				os.Exit(1)
			}
		},
	}
}

// runVerification consumes a verification snapshot stream, rendering
// progress. On failure it offers an interactive retry (a full restart from
// attempt 1). Returns true when the contribution settled as completed.
func runVerification(ctx context.Context, clients *di.ClientSet, updates <-chan payments.Snapshot) bool {
	for {
		final := consumeRun(updates)
		if final == nil {
			// cancelled before a terminal outcome
			return false
		}

		switch final.Phase {
		case payments.PhaseSucceeded:
			fmt.Printf("Payment confirmed: %s", ui.FormatAmount(final.Amount))
			if final.PaidAt != "" {
				fmt.Printf(" (paid at %s)", final.PaidAt)
			}
			fmt.Println()
			clients.Reporter.Event("verification_succeeded", map[string]any{
				"attempts": final.Attempt,
			})
			return true
		case payments.PhaseFailed:
			fmt.Printf("Payment not confirmed: %s\n", final.Reason)
			clients.Reporter.Event("verification_failed", map[string]any{
				"attempts": final.Attempt,
				"reason":   final.Reason,
			})
			if !ui.Confirm("Try again") {
				return false
			}
			retried, err := clients.Verifier.Retry(ctx)
			if err != nil {
				fmt.Printf("Could not retry: %v\n", err)
				return false
			}
			updates = retried
		default:
			return false
		}
	}
}

// consumeRun drains one run's snapshots, printing progress, and returns the
// terminal snapshot (nil when the run was cancelled)
func consumeRun(updates <-chan payments.Snapshot) *payments.Snapshot {
	var final *payments.Snapshot
	for snap := range updates {
		if snap.Phase == payments.PhaseInProgress {
			fmt.Printf("Checking payment status (attempt %d)...\n", snap.Attempt)
			continue
		}
		final = &snap
	}
	return final
}
