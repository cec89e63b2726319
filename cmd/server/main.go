package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"guiaflow/internal/config"
	"guiaflow/internal/extractor"
	"guiaflow/internal/extractor/pdf"
	"guiaflow/internal/extractor/spreadsheet"
	"guiaflow/internal/gateway/gemini"
	"guiaflow/internal/handler"
	"guiaflow/internal/router"
	"guiaflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize extraction adapters and model gateway
	dispatcher := extractor.New(pdf.New(), spreadsheet.New())
	gateway := gemini.NewGateway(&cfg.Gateway)

	// Initialize services
	extractionSvc := service.NewExtractionService(dispatcher, gateway, cfg.Upload.MaxFileSizeBytes())

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, extractionH, healthH)

	log.Printf("Server starting on %s (model %s)", cfg.Server.Port, cfg.Gateway.Model)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
