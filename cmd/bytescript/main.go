package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/bytescript/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil && !cli.AlreadyReported(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	code := cli.GetExitCode(err)
	stop()
	os.Exit(code)
}
