package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"mumbai-homes/app/controller"
	"mumbai-homes/app/router"
	"mumbai-homes/content"
	"mumbai-homes/db"
	"mumbai-homes/service"
	"mumbai-homes/storage"
)

// Initialize wires the application: database, storage adapter, content
// store, services and routes. Returns the store so main can run its
// watch loop, and the database connection so main can close it.
func Initialize(ctx context.Context, baseURL string) (*content.Store, *db.Conn, error) {
	// Open the content database (Postgres when DATABASE_URL is set,
	// embedded SQLite otherwise)
	conn, err := db.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var adapter storage.Adapter
	switch conn.Backend {
	case db.BackendPostgres:
		adapter, err = storage.NewPostgresAdapter(conn.DB, conn.ConnStr)
	default:
		adapter, err = storage.NewSQLiteAdapter(conn.DB)
	}
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Content store - loads the aggregate, falling back to the default
	// catalog for anything missing or malformed
	store := content.NewStore(ctx, adapter, time.Now().UnixMilli())

	// Brochure generation needs this server's own base URL for the
	// headless-Chrome render pass. Without a Chrome binary the controller
	// answers 503 instead of failing mid-render.
	var brochureService *service.BrochureService
	if service.ChromeAvailable() {
		brochureService = service.NewBrochureService(baseURL)
	} else {
		log.Printf("⚠️  No Chrome/Chromium binary found, brochure generation disabled")
	}

	// Drive gallery import is optional: only wired when credentials are
	// configured
	var gallerySync service.GallerySyncServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		gallerySync = service.NewGallerySyncService(driveService, store)
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, Drive gallery import disabled")
	}

	controllers := &router.Controllers{
		Content: controller.NewContentController(store),
		Project: controller.NewProjectController(store),
		Media:   controller.NewMediaController(store, brochureService, gallerySync),
	}

	router.SetupRoutes(controllers)

	return store, conn, nil
}
