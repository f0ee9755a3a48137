package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"mumbai-homes/content"
	"mumbai-homes/models"
)

// ContentController handles HTTP requests for website content sections
type ContentController struct {
	store *content.Store
}

// NewContentController creates a new ContentController
func NewContentController(store *content.Store) *ContentController {
	return &ContentController{store: store}
}

// GetContent handles GET /api/content
// Returns the full website aggregate
func (c *ContentController) GetContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, c.store.Data())
}

// GetSection handles GET /api/content/{section}
func (c *ContentController) GetSection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	section := strings.TrimPrefix(r.URL.Path, "/api/content/")
	data := c.store.Data()

	var payload any
	switch section {
	case "hero":
		payload = data.Hero
	case "newly-launched":
		payload = data.NewlyLaunched
	case "trending-projects":
		payload = data.TrendingProjects
	case "spotlight":
		payload = data.Spotlight
	case "why-choose-us":
		payload = data.WhyChooseUs
	case "virtual-tour":
		payload = data.VirtualTour
	case "banks":
		payload = data.Banks
	case "blogs":
		payload = data.Blogs
	case "zones":
		payload = data.Zones
	case "faqs":
		payload = data.FAQs
	case "neighborhoods":
		payload = data.Neighborhoods
	case "brand":
		payload = data.Brand
	default:
		http.Error(w, fmt.Sprintf("Unknown section: %s", section), http.StatusNotFound)
		return
	}

	writeJSON(w, payload)
}

// UpdateSection handles PUT /admin/content/{section}
// Replaces the whole section; there is no partial-field update, editors
// read-modify-write the full section object.
func (c *ContentController) UpdateSection(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateSection: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	section := strings.TrimPrefix(r.URL.Path, "/admin/content/")
	ctx := r.Context()

	var err error
	switch section {
	case "hero":
		var data models.HeroSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateHero(ctx, data)
		}
	case "newly-launched":
		var data models.NewlyLaunchedSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateNewlyLaunched(ctx, data)
		}
	case "trending-projects":
		var data models.TrendingProjectsSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateTrending(ctx, data)
		}
	case "spotlight":
		var data models.SpotlightProjectSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateSpotlight(ctx, data)
		}
	case "why-choose-us":
		var data models.WhyChooseUsSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateWhyChooseUs(ctx, data)
		}
	case "virtual-tour":
		var data models.VirtualTourSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateVirtualTour(ctx, data)
		}
	case "banks":
		var data models.BanksSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateBanks(ctx, data)
		}
	case "blogs":
		var data models.BlogsSection
		if err = decodeBody(r, &data); err == nil {
			if dup := duplicateBlogTitle(data.Blogs); dup != "" {
				log.Printf("❌ UpdateSection: Duplicate blog title rejected: %q", dup)
				http.Error(w, fmt.Sprintf("A blog titled %q already exists", dup), http.StatusConflict)
				return
			}
			err = c.store.UpdateBlogs(ctx, data)
		}
	case "zones":
		var data models.ZonesSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateZones(ctx, data)
		}
	case "faqs":
		var data models.FAQSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateFAQs(ctx, data)
		}
	case "neighborhoods":
		var data models.NeighborhoodsSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateNeighborhoods(ctx, data)
		}
	case "brand":
		var data models.BrandSection
		if err = decodeBody(r, &data); err == nil {
			err = c.store.UpdateBrand(ctx, data)
		}
	default:
		http.Error(w, fmt.Sprintf("Unknown section: %s", section), http.StatusNotFound)
		return
	}

	if err != nil {
		if _, ok := err.(*bodyError); ok {
			log.Printf("❌ UpdateSection: Invalid request body for %s: %v", section, err)
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		log.Printf("❌ UpdateSection: Failed to save %s: %v", section, err)
		http.Error(w, fmt.Sprintf("Failed to save section: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateSection: Saved section %s", section)
	writeJSON(w, map[string]string{"status": "ok", "section": section})
}

// Events handles GET /api/content/events
// Streams one SSE event per content change; the event data is the
// storage key of the changed section, so clients can filter.
func (c *ContentController) Events(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := c.store.Subscribe()
	defer cancel()

	log.Printf("📡 Events: Client connected")
	for {
		select {
		case <-r.Context().Done():
			log.Printf("📡 Events: Client disconnected")
			return
		case key, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: content\ndata: %s\n\n", key)
			flusher.Flush()
		}
	}
}

// duplicateBlogTitle returns the first title that appears more than once
// (case-insensitive), or "" when all titles are distinct.
func duplicateBlogTitle(blogs []models.Blog) string {
	seen := make(map[string]bool, len(blogs))
	for _, b := range blogs {
		key := strings.ToLower(strings.TrimSpace(b.Title))
		if key == "" {
			continue
		}
		if seen[key] {
			return b.Title
		}
		seen[key] = true
	}
	return ""
}

// bodyError marks JSON decode failures so handlers can answer 400
type bodyError struct{ err error }

func (e *bodyError) Error() string { return e.err.Error() }

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &bodyError{err: err}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}
