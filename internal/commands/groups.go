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

// NewGroupsCmd creates the groups command group
func NewGroupsCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "Funding group operations",
		Long:  `List, inspect, create, and manage funding groups.`,
	}

	groupsCmd.AddCommand(newGroupsListCmd(appCtx, clients))
	groupsCmd.AddCommand(newGroupsGetCmd(appCtx, clients))
	groupsCmd.AddCommand(newGroupsCreateCmd(appCtx, clients))
	groupsCmd.AddCommand(newGroupsInviteCmd(appCtx, clients))

	return groupsCmd
}

func newGroupsListCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your funding groups",
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("groups")

			list, err := clients.Groups.List(cmd.Context())
			if err != nil {
				logger.Error("Failed to list groups: %v", err)
				os.Exit(1)
			}

			if len(list) == 0 {
				fmt.Println("You are not a member of any group yet.")
				return
			}

			for _, g := range list {
				fmt.Printf("%-12s %-30s %s  %s of %s\n",
					g.ID,
					ui.TruncateText(g.Name, 30),
					ui.ProgressBar(g.Progress(), 20),
					ui.FormatAmount(g.Contributed),
					ui.FormatAmount(g.Target))
			}
		},
	}
}

func newGroupsGetCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	return &cobra.Command{
		Use:   "get <groupId>",
		Short: "Show a group with its members",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("groups")

			g, err := clients.Groups.Get(cmd.Context(), args[0])
			if err != nil {
				logger.Error("Failed to fetch group: %v", err)
				os.Exit(1)
			}

			fmt.Printf("Name:        %s\n", g.Name)
			fmt.Printf("Description: %s\n", g.Description)
			fmt.Printf("Status:      %s\n", g.Status)
			fmt.Printf("Progress:    %s (%s of %s)\n",
				ui.ProgressBar(g.Progress(), 20),
				ui.FormatAmount(g.Contributed),
				ui.FormatAmount(g.Target))
			if !g.Deadline.IsZero() {
				fmt.Printf("Deadline:    %s\n", g.Deadline.Format("2006-01-02"))
			}
			fmt.Printf("Members:     %d\n", len(g.Members))
			for _, m := range g.Members {
				contributed := "-"
				if m.HasContributed {
					contributed = ui.FormatAmount(m.AmountContributed)
				}
				fmt.Printf("  %-24s %-10s contributed: %s\n", m.Name, m.Role, contributed)
			}
		},
	}
}

func newGroupsCreateCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	var (
		name        string
		description string
		target      float64
		deadline    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a funding group",
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("groups")

			g, err := clients.Groups.Create(cmd.Context(), name, description, target, deadline)
			if err != nil {
				logger.Error("Failed to create group: %v", err)
				os.Exit(1)
			}

			fmt.Printf("Created group %s (%s)\n", g.Name, g.ID)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "group name (required)")
	cmd.Flags().StringVar(&description, "description", "", "group description")
	cmd.Flags().Float64Var(&target, "target", 0, "target amount (required)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "funding deadline, YYYY-MM-DD (required)")

	return cmd
}

func newGroupsInviteCmd(appCtx *app.Context, clients *di.ClientSet) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "invite <groupId>",
		Short: "Invite a member to a group",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := logging.NewDefaultLogger("groups")

			m, err := clients.Groups.Invite(cmd.Context(), args[0], email)
			if err != nil {
				logger.Error("Failed to invite member: %v", err)
				os.Exit(1)
			}

			fmt.Printf("Invited %s to the group.\n", m.Email)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address to invite (required)")

	return cmd
}
