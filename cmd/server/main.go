package main

import (
	"log"
	"net/http"

	"flavors/backend/internal/config"
	"flavors/backend/internal/database"
	"flavors/backend/internal/httpapi/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Bootstrap(db, cfg); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	handler := router.New(database.NewFlavorStore(db), cfg)
	address := cfg.Address()
	log.Printf("Server is running on %s", address)
	if err := http.ListenAndServe(address, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
