package main

import (
	"log"

	"debtbook/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB(cfg Config) {
	if cfg.DSN == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	if cfg.AutoMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Record{}); err != nil {
			log.Printf("migration warning (records): %v", err)
		}
	}
}
