package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "videothingy/chapter-viewer/docs"
	"videothingy/chapter-viewer/middleware"
)

// NewApp builds the fiber application with every route registered.
func NewApp(h *ApplicationHandler, views fiber.Views) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chapter-viewer",
		Views:                 views,
		ErrorHandler:          h.ErrorHandler,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(middleware.RequestLogger(h.Logger))
	app.Use(recover.New())

	// Health check route
	app.Get("/health", h.Health)

	// API docs
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Pages
	app.Get("/", h.ListVideosPage)
	app.Get("/video/:id?", h.VideoDetailPage)

	// API v1 routes
	apiV1 := app.Group("/api/v1", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	apiV1.Get("/videos", h.ListVideos)
	apiV1.Get("/videos/:id", h.GetVideoDetail)

	return app
}
