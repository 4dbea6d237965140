package commands

import (
	"poolpay/internal/app"
	"poolpay/internal/di"

	"github.com/spf13/cobra"
)

func GetCommands(appCtx *app.Context, clients *di.ClientSet) []*cobra.Command {
	return []*cobra.Command{
		NewGroupsCmd(appCtx, clients),
		NewPayCmd(appCtx, clients),
		NewVerifyCmd(appCtx, clients),
		NewReleaseCmd(appCtx, clients),
		NewNotificationsCmd(appCtx, clients),
	}
}
