package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/imgurcache/internal/buildinfo"
	"github.com/dmitrijs2005/imgurcache/internal/client/cli"
	"github.com/dmitrijs2005/imgurcache/internal/client/config"
	"github.com/dmitrijs2005/imgurcache/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel).With("session", uuid.NewString())

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx, os.Stdin); err != nil {
		log.Fatalf("%v", err)
	}
}
