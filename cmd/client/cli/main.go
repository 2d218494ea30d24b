package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/mkalinina/nutritrack/internal/client/cli"
	"github.com/mkalinina/nutritrack/internal/client/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
