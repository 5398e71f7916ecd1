package main

import (
	"log"

	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis"
	"github.com/minewatch-gh/minewatch-backend-go/internal/analysis/risk"
	"github.com/minewatch-gh/minewatch-backend-go/internal/api"
	"github.com/minewatch-gh/minewatch-backend-go/internal/config"
	"github.com/minewatch-gh/minewatch-backend-go/internal/database"
	"github.com/minewatch-gh/minewatch-backend-go/internal/geocode"
	"github.com/minewatch-gh/minewatch-backend-go/internal/handler"
	"github.com/minewatch-gh/minewatch-backend-go/internal/imagery"
	"github.com/minewatch-gh/minewatch-backend-go/internal/repository"
	"github.com/minewatch-gh/minewatch-backend-go/internal/service"
	"github.com/minewatch-gh/minewatch-backend-go/internal/storage"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	store := risk.NewStore()
	if cfg.DistrictConfigPath != "" {
		loaded, err := risk.LoadStore(cfg.DistrictConfigPath)
		if err != nil {
			log.Fatal("Failed to load district config:", err)
		}
		store = loaded
		log.Printf("District tables loaded from %s", cfg.DistrictConfigPath)
	}

	uploader, err := storage.NewMinioUploader(
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	provider := imagery.NewHTTPProvider(cfg.ImageryBaseURL, cfg.ImageryAPIKey)
	geocoder := geocode.NewGeocoder(cfg.NominatimURL,
		geocode.NewCache(cfg.GeocodeCacheMax, cfg.GeocodeCacheTTL))

	engine := analysis.New(store, provider, uploader, geocoder)
	engine.SetGuaranteedDetection(cfg.GuaranteedDetection)

	reports := repository.NewReportRepository(database.GetDB())
	analysisService := service.NewAnalysisService(engine, reports)
	districtService := service.NewDistrictService(store)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.InspectorKey)

	router := api.SetupRouter(cfg, api.Handlers{
		Analysis: handler.NewAnalysisHandler(analysisService),
		District: handler.NewDistrictHandler(districtService),
		Report:   handler.NewReportHandler(analysisService),
		Auth:     handler.NewAuthHandler(authService),
	})

	log.Printf("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
