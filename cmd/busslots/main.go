package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/limaJavier/busplan/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.NewCommand(cli.Slots))
	stop()
	os.Exit(code)
}
