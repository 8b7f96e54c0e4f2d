package main

import (
	"context"
	"log"

	"github.com/Pritish2005/Event-Hub/internal/server"
	"github.com/Pritish2005/Event-Hub/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
