package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/config"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/database"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/generation"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/handlers"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/scheduler"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/search"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config/estateflow.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", configPath, err)
	}
	appConfig.ApplyEnv()
	log.Printf("Loaded configuration from %s (storage: %s)", configPath, appConfig.Storage.Type)

	if appConfig.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	repo, err := database.New(ctx, appConfig.Storage)
	if err != nil {
		log.Fatalf("Failed to open repository: %v", err)
	}
	defer repo.Close()

	properties, err := repo.Properties(ctx)
	if err != nil {
		log.Fatalf("Failed to load properties: %v", err)
	}
	leads, err := repo.Leads(ctx)
	if err != nil {
		log.Fatalf("Failed to load leads: %v", err)
	}
	messages, err := repo.Messages(ctx)
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}
	log.Printf("Loaded %d properties, %d leads, %d messages", len(properties), len(leads), len(messages))

	generator, rateLimiter := generation.NewClientFromConfig(ctx, appConfig)

	application := app.New(
		app.NewState(properties, leads, messages),
		generator,
		app.WithMessageStore(repo),
		app.WithDraftContext(appConfig.Generation.Context),
	)

	opts := []handlers.Option{handlers.WithRateLimiter(rateLimiter)}

	// Search index is optional
	if meili := appConfig.Search.Meilisearch; meili.Enabled {
		searchClient := search.NewSearchClient(meili.Host, meili.APIKey)
		if err := searchClient.InitIndex(); err != nil {
			log.Printf("Warning: Failed to initialize search index: %v", err)
		} else if err := searchClient.IndexProperties(properties); err != nil {
			log.Printf("Warning: Failed to index properties: %v", err)
		} else {
			log.Printf("Indexed %d properties in Meilisearch at %s", len(properties), meili.Host)
		}
		opts = append(opts, handlers.WithSearcher(searchClient))
	}

	appScheduler := scheduler.NewScheduler(application, appConfig.Report)
	if err := appScheduler.Start(); err != nil {
		log.Printf("Warning: Failed to start scheduler: %v", err)
	}
	defer appScheduler.Stop()
	opts = append(opts, handlers.WithReporter(appScheduler))

	r := handlers.NewRouter(
		handlers.New(application, opts...),
		appConfig.Server.AllowOrigins,
		appConfig.Logging.LogRequests,
	)

	port := appConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
