package models

// Amenity is an icon+name pair shown in the project amenities grid
type Amenity struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// ProjectOverview holds the key facts strip of a project page
type ProjectOverview struct {
	ProjectType string `json:"projectType"`
	Units       string `json:"units"`
	Area        string `json:"area"`
	RERANumber  string `json:"reraNumber"`
}

// FloorPlan is one row of the floor plans table.
// CategoryKey decides which configuration tab the plan belongs to in the
// public view; entries without one are shown under the first tab (1BHK)
// by the consumer, not rewritten by the store.
type FloorPlan struct {
	Type        string `json:"type"`
	Area        string `json:"area"`
	Price       string `json:"price"`
	CategoryKey string `json:"categoryKey,omitempty"`
}

// FloorPlanCategoryImages holds one optional layout image per
// configuration tab.
type FloorPlanCategoryImages struct {
	OneBHK    string `json:"1BHK"`
	TwoBHK    string `json:"2BHK"`
	ThreeBHK  string `json:"3BHK"`
	FourBHK   string `json:"4BHK"`
	Penthouse string `json:"penthouse"`
}

// VirtualTourEntry is one gallery slot on the project page; Image may be
// a still or an embedded video payload.
type VirtualTourEntry struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// LocationInfo holds the project location block
type LocationInfo struct {
	Location    string `json:"location"`
	Zone        string `json:"zone"`
	Pincode     string `json:"pincode"`
	MapEmbedURL string `json:"mapEmbedUrl"`
	CTAText     string `json:"ctaText"`
}

// SimilarProject is one card in the "similar projects" strip
type SimilarProject struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Price    string `json:"price"`
	Image    string `json:"image"`
}

// ProjectDetails is the full record backing a project page. Image fields
// and the brochure hold literal data (base64 data URIs or URLs); the
// store does not validate their contents.
type ProjectDetails struct {
	ID           int64    `json:"id"`
	ProjectName  string   `json:"projectName"`
	StatusBadges []string `json:"statusBadges"`
	PriceRange   string   `json:"priceRange"`

	HeroImage   string   `json:"heroImage"`
	MainImage   string   `json:"mainImage"`
	AerialImage string   `json:"aerialImage"`
	HeroImages  []string `json:"heroImages"`
	Brochure    string   `json:"brochure"` // base64-encoded PDF

	Description string `json:"description"`
	AboutText   string `json:"aboutText"`

	Amenities               []Amenity               `json:"amenities"`
	Overview                ProjectOverview         `json:"overview"`
	FloorPlans              []FloorPlan             `json:"floorPlans"`
	FloorPlanCategoryImages FloorPlanCategoryImages `json:"floorPlanCategoryImages"`
	ViewFloorplanImages     []string                `json:"viewFloorplanImages"`
	VirtualTours            []VirtualTourEntry      `json:"virtualTours"`
	LocationInfo            LocationInfo            `json:"locationInfo"`
	SimilarProjects         []SimilarProject        `json:"similarProjects"`
}
