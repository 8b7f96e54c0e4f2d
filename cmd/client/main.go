package main

import (
	"context"

	"github.com/Pritish2005/Event-Hub/internal/client/cli"
	"github.com/Pritish2005/Event-Hub/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
