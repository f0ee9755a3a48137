package service

import (
	"context"
	"fmt"
	"log"

	"mumbai-homes/content"
	"mumbai-homes/models"
	"mumbai-homes/utils"
)

// GallerySyncService bulk-imports images from a Google Drive folder into
// a project's floorplan gallery: each image is downloaded, optimized and
// inlined as a base64 data URI, then the project is saved through the
// content store. Implements GallerySyncServiceInterface.
type GallerySyncService struct {
	driveService DriveServiceInterface
	store        *content.Store
}

// NewGallerySyncService creates a new GallerySyncService
func NewGallerySyncService(driveService DriveServiceInterface, store *content.Store) *GallerySyncService {
	return &GallerySyncService{
		driveService: driveService,
		store:        store,
	}
}

// Ensure GallerySyncService implements GallerySyncServiceInterface
var _ GallerySyncServiceInterface = (*GallerySyncService)(nil)

// ImportGallery imports every image in folderID into the gallery of the
// project with the given id. Images already present (same data URI) are
// skipped. Returns total images seen, imported count, skipped count and
// per-file errors.
func (s *GallerySyncService) ImportGallery(ctx context.Context, projectID int64, folderID string) (total, imported, skipped int, errs []string, err error) {
	log.Printf("🔄 Starting gallery import for project %d from folder %s", projectID, folderID)

	project, ok := s.store.ProjectByID(projectID)
	if !ok {
		return 0, 0, 0, nil, fmt.Errorf("project %d not found", projectID)
	}

	images, err := s.driveService.ListImages(folderID)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("failed to list images from Drive: %w", err)
	}

	total = len(images)
	log.Printf("📦 Found %d images to import", total)

	existing := make(map[string]bool, len(project.ViewFloorplanImages))
	for _, img := range project.ViewFloorplanImages {
		existing[img] = true
	}

	gallery := project.ViewFloorplanImages
	for _, img := range images {
		data, err := s.driveService.DownloadImage(img.FileID)
		if err != nil {
			msg := fmt.Sprintf("failed to download %s (%s): %v", img.Name, img.FileID, err)
			log.Printf("❌ %s", msg)
			errs = append(errs, msg)
			continue
		}

		optimized, err := OptimizeImage(data, "medium")
		if err != nil {
			msg := fmt.Sprintf("failed to optimize %s (%s): %v", img.Name, img.FileID, err)
			log.Printf("❌ %s", msg)
			errs = append(errs, msg)
			continue
		}

		uri := utils.EncodeDataURI("image/jpeg", optimized)
		if existing[uri] {
			log.Printf("⏭️  Skipping %s (already in gallery)", img.Name)
			skipped++
			continue
		}
		existing[uri] = true
		gallery = append(gallery, uri)
		imported++
		log.Printf("✓ Imported %s into project %d gallery", img.Name, projectID)
	}

	if imported > 0 {
		project.ViewFloorplanImages = gallery
		if err := s.saveProject(ctx, projectID, project); err != nil {
			return total, imported, skipped, errs, err
		}
	}

	log.Printf("🎉 Gallery import completed: %d imported, %d skipped, %d failed out of %d", imported, skipped, len(errs), total)
	return total, imported, skipped, errs, nil
}

func (s *GallerySyncService) saveProject(ctx context.Context, projectID int64, project models.ProjectDetails) error {
	if err := s.store.UpdateProjectByID(ctx, projectID, project); err != nil {
		return fmt.Errorf("failed to save project %d: %w", projectID, err)
	}
	return nil
}
