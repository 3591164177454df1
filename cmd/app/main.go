package main

import (
	"errors"
	"io/fs"
	"log"

	"MotoYaCheckout/config"
	"MotoYaCheckout/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development reads .env; deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Env file error: %s", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	gin.SetMode(gin.ReleaseMode)
	if err := app.Run(cfg); err != nil {
		log.Fatalf("App error: %s", err)
	}
}
