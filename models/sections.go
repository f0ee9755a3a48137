package models

// HeroSection is the landing hero block
type HeroSection struct {
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	Description       string `json:"description"`
	SearchPlaceholder string `json:"searchPlaceholder"`
	CTAText           string `json:"ctaText"`
	BackgroundImage   string `json:"backgroundImage"` // base64 data URI or URL
}

// ProjectCard is a compact project reference shown in listing carousels
// (newly launched, trending). It is independent from the full ProjectDetails
// record: cards are edited inline in their section.
type ProjectCard struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	PriceRange string `json:"priceRange"`
	Status     string `json:"status"`
	Image      string `json:"image"`
}

// NewlyLaunchedSection lists recently launched projects
type NewlyLaunchedSection struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Projects    []ProjectCard `json:"projects"`
}

// TrendingProjectsSection lists currently trending projects
type TrendingProjectsSection struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Projects    []ProjectCard `json:"projects"`
}

// SpotlightProjectSection features a single highlighted project
type SpotlightProjectSection struct {
	Title       string   `json:"title"`
	ProjectName string   `json:"projectName"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"priceRange"`
	CTAText     string   `json:"ctaText"`
	Image       string   `json:"image"`
	Highlights  []string `json:"highlights"`
}

// Feature is one selling point in the "why choose us" section
type Feature struct {
	ID          int64  `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WhyChooseUsSection explains the brand's selling points
type WhyChooseUsSection struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Features    []Feature `json:"features"`
}

// VirtualTourSection promotes the virtual tour experience
type VirtualTourSection struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	VideoURL       string `json:"videoUrl"`
	ThumbnailImage string `json:"thumbnailImage"`
	CTAText        string `json:"ctaText"`
}

// Bank is a partner bank entry
type Bank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// BanksSection lists home-loan partner banks
type BanksSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ContactText string `json:"contactText"`
	CTAText     string `json:"ctaText"`
	Banks       []Bank `json:"banks"`
}

// Blog is a single blog post entry
type Blog struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Image   string `json:"image"`
	Content string `json:"content"`
}

// BlogsSection is the blogs and articles carousel
type BlogsSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTAText     string `json:"ctaText"`
	Blogs       []Blog `json:"blogs"`
}

// Zone is one city zone entry (e.g. South Mumbai, Thane)
type Zone struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProjectCount int    `json:"projectCount"`
}

// ZonesSection is the "homes in every zone" block
type ZonesSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Zones       []Zone `json:"zones"`
}

// FAQ is a single question/answer pair
type FAQ struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQSection is the frequently asked questions accordion
type FAQSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FAQs        []FAQ  `json:"faqs"`
}

// Neighborhood is one locality entry in the discover section
type Neighborhood struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	AvgPrice string `json:"avgPrice"`
	Image    string `json:"image"`
}

// NeighborhoodsSection is the "discover neighborhoods" block
type NeighborhoodsSection struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	CTAText       string         `json:"ctaText"`
	Neighborhoods []Neighborhood `json:"neighborhoods"`
}

// SocialLink is one footer social media link
type SocialLink struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// BrandSection holds the Mumbai Homes brand/footer content
type BrandSection struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Address     string       `json:"address"`
	FooterText  string       `json:"footerText"`
	SocialLinks []SocialLink `json:"socialLinks"`
}
