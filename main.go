package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"mumbai-homes/app"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Loaded environment variables from .env")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	// Remove leading colon if present (some platforms include it)
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, conn, err := app.Initialize(ctx, baseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces
	addr := "0.0.0.0:" + port
	log.Printf("Server starting on %s", addr)
	log.Printf("Public content endpoint: GET %s/api/content", baseURL)
	log.Printf("Admin console API:      PUT %s/admin/content/{section}", baseURL)

	g, gctx := errgroup.WithContext(ctx)

	// External-change watcher: reloads the store when another process
	// writes the content database
	g.Go(func() error {
		return store.Run(gctx)
	})

	g.Go(func() error {
		return http.ListenAndServe(addr, nil)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
