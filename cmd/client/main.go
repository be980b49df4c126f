package main

import (
	"context"
	"log"
	"os"

	"github.com/tamakara/booth/internal/buildinfo"
	"github.com/tamakara/booth/internal/client/cli"
	"github.com/tamakara/booth/internal/client/config"
	"github.com/tamakara/booth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
