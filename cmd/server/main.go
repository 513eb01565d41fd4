package main

import (
	"context"
	"log"

	"github.com/akarpovs/stockkeeper/internal/server"
	"github.com/akarpovs/stockkeeper/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
