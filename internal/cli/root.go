package cli

import (
	"fmt"

	"poolpay/internal/app"

	"github.com/spf13/cobra"
)

func NewRootCommand(appCtx *app.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               appCtx.BinaryName,
		Short:             "Command-line client for poolpay group funding",
		Long:              `A command-line client for the poolpay group-funding service: create funding groups, invite members, contribute through the payment gateway, and release pooled funds.`,
		DisableAutoGenTag: true,
		Version:           "1.0.0",
	}

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display the version of " + appCtx.BinaryName,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version 1.0.0 (Environment: %s)\n", appCtx.BinaryName, appCtx.Environment)
		},
	})

	return rootCmd
}
