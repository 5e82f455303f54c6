package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/memorizer/internal/server"
	"github.com/dmitrijs2005/memorizer/internal/server/config"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
