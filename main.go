package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/t-kuni/vecho/cmd"
)

func main() {
	godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.NewRootCommand().CobraCommand.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
