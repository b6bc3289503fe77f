package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/server"
	"github.com/mdrrmo4516/mobile2026/internal/server/config"
)

func main() {

	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
