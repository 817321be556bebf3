package main

import (
	"context"
	"os"
	"os/signal"

	"pkt.systems/pslog"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/root"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := pslog.NewWithOptions(os.Stderr, pslog.Options{Mode: pslog.ModeConsole})
	ctx = pslog.ContextWithLogger(ctx, logger)

	cmd := root.NewCmdRoot()
	if err := cmd.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("showcase command failed")
		return 1
	}
	return 0
}
