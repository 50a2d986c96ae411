package main

import (
	"log"

	"github.com/joho/godotenv"

	"netcompare/adapters/airtable"
	"netcompare/adapters/surveyfile"
	"netcompare/api"
	"netcompare/internal/config"
	"netcompare/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dataset, err := surveyfile.LoadFromCandidates(cfg.Data.SurveyFile)
	if err != nil {
		log.Fatalf("Failed to load survey data: %v", err)
	}

	var store ports.LeadStore
	if cfg.StoreEnabled() {
		store = airtable.NewClient(airtable.Config{
			APIKey:  cfg.Store.APIKey,
			BaseID:  cfg.Store.BaseID,
			BaseURL: cfg.Store.BaseURL,
		})
	} else {
		log.Println("Record store credentials not set; dashboard summary will be empty")
	}

	app := api.NewApp(dataset, store)
	log.Printf("Starting comparison API on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start(api.Config{Port: cfg.Server.Port}))
}
