package controller

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"

	"mumbai-homes/content"
	"mumbai-homes/models"
	"mumbai-homes/service"
	"mumbai-homes/utils"
)

// MediaController handles image optimization, brochure generation and
// Drive gallery imports. The brochure and gallery services are optional:
// nil when the deployment has no Chrome or no Drive credentials.
type MediaController struct {
	store       *content.Store
	brochure    *service.BrochureService
	gallerySync service.GallerySyncServiceInterface
}

// NewMediaController creates a new MediaController
func NewMediaController(store *content.Store, brochure *service.BrochureService, gallerySync service.GallerySyncServiceInterface) *MediaController {
	return &MediaController{
		store:       store,
		brochure:    brochure,
		gallerySync: gallerySync,
	}
}

// OptimizeImage handles POST /admin/media/optimize
// Accepts a base64 image (data URI or bare), returns a bounded JPEG data
// URI the editor can store inline.
func (c *MediaController) OptimizeImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 OptimizeImage: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.OptimizeImageRequest
	if err := decodeBody(r, &req); err != nil {
		log.Printf("❌ OptimizeImage: Invalid request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Image) == "" {
		http.Error(w, "image is required", http.StatusBadRequest)
		return
	}

	raw, _, err := utils.DecodeDataURI(req.Image)
	if err != nil {
		log.Printf("❌ OptimizeImage: %v", err)
		http.Error(w, fmt.Sprintf("Invalid image payload: %v", err), http.StatusBadRequest)
		return
	}

	optimized, err := service.OptimizeImage(raw, req.Size)
	if err != nil {
		log.Printf("❌ OptimizeImage: Failed to optimize: %v", err)
		http.Error(w, fmt.Sprintf("Failed to optimize image: %v", err), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, models.OptimizeImageResponse{
		Image:         utils.EncodeDataURI("image/jpeg", optimized),
		OriginalSize:  len(raw),
		OptimizedSize: len(optimized),
	})
}

// GetBrochure handles GET /admin/projects/{id}/brochure
// Serves the uploaded brochure when the project has one; otherwise
// renders a PDF from the brochure template.
func (c *MediaController) GetBrochure(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetBrochure: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := projectIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, ok := c.store.ProjectByID(id)
	if !ok {
		http.Error(w, fmt.Sprintf("Project %d not found", id), http.StatusNotFound)
		return
	}

	if project.Brochure != "" {
		pdf, _, err := utils.DecodeDataURI(project.Brochure)
		if err != nil {
			// Tolerate blobs stored as bare base64 without a data: header
			pdf, err = base64.StdEncoding.DecodeString(project.Brochure)
		}
		if err != nil {
			log.Printf("❌ GetBrochure: Stored brochure for project %d is not decodable: %v", id, err)
			http.Error(w, "Stored brochure is corrupt", http.StatusInternalServerError)
			return
		}
		servePDF(w, project.ProjectName, pdf)
		return
	}

	if c.brochure == nil {
		http.Error(w, "Brochure generation is not configured", http.StatusServiceUnavailable)
		return
	}

	pdf, err := c.brochure.GeneratePDF(r.Context(), id)
	if err != nil {
		log.Printf("❌ GetBrochure: Failed to generate PDF for project %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to generate brochure: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ GetBrochure: Generated brochure for project %d (%d bytes)", id, len(pdf))
	servePDF(w, project.ProjectName, pdf)
}

// RenderBrochure handles GET /admin/projects/{id}/brochure/render
// The HTML page the PDF pass prints; also handy for previewing.
func (c *MediaController) RenderBrochure(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := projectIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, ok := c.store.ProjectByID(id)
	if !ok {
		http.Error(w, fmt.Sprintf("Project %d not found", id), http.StatusNotFound)
		return
	}

	if c.brochure == nil {
		http.Error(w, "Brochure generation is not configured", http.StatusServiceUnavailable)
		return
	}

	html, err := c.brochure.RenderBrochureHTML(project)
	if err != nil {
		log.Printf("❌ RenderBrochure: Failed to render project %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to render brochure: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, html)
}

// ImportGallery handles POST /admin/projects/{id}/gallery/import?folderId=...
func (c *MediaController) ImportGallery(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ImportGallery: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.gallerySync == nil {
		http.Error(w, "Drive import is not configured", http.StatusServiceUnavailable)
		return
	}

	id, err := projectIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId query parameter is required", http.StatusBadRequest)
		return
	}

	total, imported, skipped, errs, err := c.gallerySync.ImportGallery(r.Context(), id, folderID)
	if err != nil {
		log.Printf("❌ ImportGallery: Import failed for project %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Import failed: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ImportGallery: project=%d total=%d imported=%d skipped=%d failed=%d", id, total, imported, skipped, len(errs))
	writeJSON(w, models.GalleryImportResponse{
		Total:    total,
		Imported: imported,
		Skipped:  skipped,
		Errors:   errs,
	})
}

func servePDF(w http.ResponseWriter, name string, pdf []byte) {
	filename := strings.ReplaceAll(strings.ToLower(name), " ", "-") + "-brochure.pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
