package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"poolpay/internal/app"
	"poolpay/internal/cli"
	"poolpay/internal/commands"
	"poolpay/internal/di"
	"poolpay/internal/logging"
)

func main() {
	logger := logging.NewDefaultLogger("poolpay")

	appCtx, err := app.NewContext("poolpay", os.Getenv("POOLPAY_ENV"))
	if err != nil {
		logger.Error("Failed to create app context: %v", err)
		os.Exit(1)
	}

	container := di.NewContainer()
	if err := container.Initialize(appCtx.Environment); err != nil {
		logger.Error("Failed to initialize services: %v", err)
		os.Exit(1)
	}

	rootCmd := cli.NewRootCommand(appCtx)

	clientSet := container.GetClientSet()
	rootCmd.AddCommand(commands.GetCommands(appCtx, clientSet)...)

	// Ctrl-C tears down any in-flight verification poll
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
