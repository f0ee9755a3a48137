package service

import "context"

// GallerySyncServiceInterface defines the contract for Drive gallery imports
type GallerySyncServiceInterface interface {
	// ImportGallery imports images from a Drive folder into a project's
	// gallery. Returns totals: total images seen in Drive, imported = new
	// images added, skipped = already present, plus per-file errors.
	ImportGallery(ctx context.Context, projectID int64, folderID string) (total, imported, skipped int, errs []string, err error)
}
