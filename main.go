package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var jwtSecret []byte // HMAC key for access tokens, resolved at startup

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}
	if cfg.JWTSecret == "" {
		if cfg.Environment != "development" {
			log.Fatalf("JWT_SECRET must be set when ENVIRONMENT=%s", cfg.Environment)
		}
		log.Println("warning: JWT_SECRET not set, using the development fallback key")
		cfg.JWTSecret = devJWTSecret
	}
	jwtSecret = []byte(cfg.JWTSecret)

	// Support a lightweight migrate command: `./debtbook migrate`
	// It runs AutoMigrate then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB(cfg)
		fmt.Println("migration completed")
		return
	}

	initDB(cfg)

	r := gin.Default()

	setupRoutes(r)

	r.Run(":" + cfg.Port)
}
