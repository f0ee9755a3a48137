package models

// WebsiteData is the full content aggregate: every section plus the
// project collection. ProjectDetails is the legacy singleton kept as a
// compatibility mirror of the first collection entry; the collection is
// authoritative.
type WebsiteData struct {
	Hero             HeroSection             `json:"hero"`
	NewlyLaunched    NewlyLaunchedSection    `json:"newlyLaunched"`
	TrendingProjects TrendingProjectsSection `json:"trendingProjects"`
	Spotlight        SpotlightProjectSection `json:"spotlightProject"`
	WhyChooseUs      WhyChooseUsSection      `json:"whyChooseUs"`
	VirtualTour      VirtualTourSection      `json:"virtualTour"`
	Banks            BanksSection            `json:"banks"`
	Blogs            BlogsSection            `json:"blogsAndArticles"`
	Zones            ZonesSection            `json:"homesInEveryZone"`
	FAQs             FAQSection              `json:"frequentlyAskedQuestions"`
	Neighborhoods    NeighborhoodsSection    `json:"discoverNeighborhoods"`
	Brand            BrandSection            `json:"mumbaiHomes"`

	ProjectDetails ProjectDetails   `json:"projectDetails"`
	Projects       []ProjectDetails `json:"projects"`
}

// OptimizeImageRequest is the body of POST /admin/media/optimize
type OptimizeImageRequest struct {
	Image string `json:"image"` // base64 data URI or raw base64
	Size  string `json:"size"`  // "thumb" or "medium"
}

// OptimizeImageResponse carries the re-encoded image back to the editor
type OptimizeImageResponse struct {
	Image         string `json:"image"` // JPEG data URI
	OriginalSize  int    `json:"originalSize"`
	OptimizedSize int    `json:"optimizedSize"`
}

// GalleryImportResponse reports the result of a Drive gallery import
type GalleryImportResponse struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
