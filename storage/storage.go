package storage

import "context"

// Storage keys, one per content section. These mirror the keys the admin
// console has always written, so existing persisted blobs keep loading.
const (
	KeyHero           = "heroData"
	KeyNewlyLaunched  = "newlyLaunchedData"
	KeyTrending       = "trendingProjectsData"
	KeySpotlight      = "spotlightProjectData"
	KeyWhyChooseUs    = "whyChooseUsData"
	KeyVirtualTour    = "virtualTourData"
	KeyBanks          = "banksData"
	KeyBlogs          = "blogsData"
	KeyZones          = "zonesData"
	KeyFAQs           = "faqData"
	KeyNeighborhoods  = "neighborhoodsData"
	KeyBrand          = "mumbaiHomesData"
	KeyProjectDetails = "projectDetailsData" // legacy singleton
	KeyProjects       = "projectsData"
)

// AllKeys lists every storage key the store loads at startup.
var AllKeys = []string{
	KeyHero, KeyNewlyLaunched, KeyTrending, KeySpotlight,
	KeyWhyChooseUs, KeyVirtualTour, KeyBanks, KeyBlogs,
	KeyZones, KeyFAQs, KeyNeighborhoods, KeyBrand,
	KeyProjectDetails, KeyProjects,
}

// Adapter is the persistence contract the content store is built on.
// One JSON blob per key; Load returns nil for an absent key. Watch
// delivers keys changed by other writers (other processes or, with the
// memory adapter, a simulated second tab); same-process writes are
// broadcast by the store itself and do not travel through Watch.
type Adapter interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Watch(ctx context.Context) (<-chan string, error)
	Close() error
}
