package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"netcompare/adapters/airtable"
	"netcompare/adapters/surveyfile"
	"netcompare/internal/config"
	"netcompare/ports"
	"netcompare/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	// The survey dataset is the one hard requirement: without it there
	// is nothing to compare.
	dataset, err := surveyfile.LoadFromCandidates(cfg.Data.SurveyFile)
	if err != nil {
		log.Fatalf("Failed to load survey data: %v", err)
	}
	log.Printf("Loaded %d survey responses from %s", dataset.Len(), dataset.Source())

	var store ports.LeadStore
	if cfg.StoreEnabled() {
		store = airtable.NewClient(airtable.Config{
			APIKey:  cfg.Store.APIKey,
			BaseID:  cfg.Store.BaseID,
			BaseURL: cfg.Store.BaseURL,
		})
	} else {
		log.Println("Record store credentials not set; lead capture disabled")
	}

	server, err := ui.NewServer(dataset, store)
	if err != nil {
		log.Fatalf("Failed to initialize web server: %v", err)
	}
	log.Fatal(server.Start("0.0.0.0:" + cfg.Server.Port))
}
