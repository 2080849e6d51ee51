package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"videothingy/chapter-viewer/config"
	"videothingy/chapter-viewer/handlers"
	"videothingy/chapter-viewer/internal/query"
	"videothingy/chapter-viewer/web"
)

const shutdownTimeout = 10 * time.Second

// @title Chapter Viewer API
// @version 1.0
// @description Read-only access to videos and their chapter segments.
// @BasePath /api/v1
func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.InitLogger(settings.LogLevel)

	// Initialize Supabase client
	supabaseClient, err := config.NewSupabaseClient(settings)
	if err != nil {
		logger.Fatalf("Failed to initialize Supabase: %v", err)
	}

	engine, err := web.NewEngine(web.Thumbnails{
		StorageURL: settings.StorageURL(),
		Bucket:     settings.ThumbnailBucket,
	})
	if err != nil {
		logger.Fatalf("Failed to load templates: %v", err)
	}

	h := handlers.NewApplicationHandler(query.NewClient(supabaseClient, logger), logger)
	app := handlers.NewApp(h, engine)

	go func() {
		logger.Infof("Starting chapter viewer on %s", settings.Addr())
		if err := app.Listen(settings.Addr()); err != nil {
			logger.Fatalf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down chapter viewer...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	logger.Info("Chapter viewer shut down gracefully.")
}
