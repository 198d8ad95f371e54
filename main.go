package main

import (
	"context"
	"github.com/carldea/cognitive-sub001/app"
	"github.com/carldea/cognitive-sub001/logging"
	"github.com/lefinal/meh/mehlog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := app.RunCLI(ctx, nil, os.Args)
	if err != nil {
		mehlog.Log(logging.RootLogger(), err)
		_ = logging.RootLogger().Sync()
		os.Exit(1)
	}
}
