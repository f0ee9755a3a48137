package content

import (
	"encoding/json"
	"errors"

	"mumbai-homes/models"
)

// decodeOver decodes raw JSON over a copy of def. Fields absent from the
// blob keep their default; fields with mismatched types are skipped by
// the decoder (encoding/json keeps going past UnmarshalTypeError) and so
// also keep their default; a syntax error or non-object top level yields
// the untouched default. Nested objects merge key-by-key for free because
// decoding starts from the default value.
//
// Callers must nil out def's slice fields first: Unmarshal decodes array
// elements into the existing backing elements, which would fuse default
// catalog entries into stored records. A stored array replaces the
// default wholesale; the per-section nil repairs restore the default for
// absent or non-array values.
func decodeOver[T any](raw []byte, def T) T {
	out := def
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return def
		}
	}
	return out
}

// NormalizeHero reconciles a persisted hero blob against the default
func NormalizeHero(raw []byte) models.HeroSection {
	return decodeOver(raw, DefaultHero())
}

// NormalizeNewlyLaunched reconciles a persisted newly-launched blob
func NormalizeNewlyLaunched(raw []byte) models.NewlyLaunchedSection {
	def := DefaultNewlyLaunched()
	work := def
	work.Projects = nil
	out := decodeOver(raw, work)
	if out.Projects == nil {
		out.Projects = def.Projects
	}
	return out
}

// NormalizeTrending reconciles a persisted trending-projects blob
func NormalizeTrending(raw []byte) models.TrendingProjectsSection {
	def := DefaultTrending()
	work := def
	work.Projects = nil
	out := decodeOver(raw, work)
	if out.Projects == nil {
		out.Projects = def.Projects
	}
	return out
}

// NormalizeSpotlight reconciles a persisted spotlight blob
func NormalizeSpotlight(raw []byte) models.SpotlightProjectSection {
	def := DefaultSpotlight()
	work := def
	work.Highlights = nil
	out := decodeOver(raw, work)
	if out.Highlights == nil {
		out.Highlights = def.Highlights
	}
	return out
}

// NormalizeWhyChooseUs reconciles a persisted why-choose-us blob
func NormalizeWhyChooseUs(raw []byte) models.WhyChooseUsSection {
	def := DefaultWhyChooseUs()
	work := def
	work.Features = nil
	out := decodeOver(raw, work)
	if out.Features == nil {
		out.Features = def.Features
	}
	return out
}

// NormalizeVirtualTour reconciles a persisted virtual-tour blob
func NormalizeVirtualTour(raw []byte) models.VirtualTourSection {
	return decodeOver(raw, DefaultVirtualTour())
}

// NormalizeBanks reconciles a persisted banks blob
func NormalizeBanks(raw []byte) models.BanksSection {
	def := DefaultBanks()
	work := def
	work.Banks = nil
	out := decodeOver(raw, work)
	if out.Banks == nil {
		out.Banks = def.Banks
	}
	return out
}

// NormalizeBlogs reconciles a persisted blogs blob
func NormalizeBlogs(raw []byte) models.BlogsSection {
	def := DefaultBlogs()
	work := def
	work.Blogs = nil
	out := decodeOver(raw, work)
	if out.Blogs == nil {
		out.Blogs = def.Blogs
	}
	return out
}

// NormalizeZones reconciles a persisted zones blob
func NormalizeZones(raw []byte) models.ZonesSection {
	def := DefaultZones()
	work := def
	work.Zones = nil
	out := decodeOver(raw, work)
	if out.Zones == nil {
		out.Zones = def.Zones
	}
	return out
}

// NormalizeFAQs reconciles a persisted FAQ blob
func NormalizeFAQs(raw []byte) models.FAQSection {
	def := DefaultFAQs()
	work := def
	work.FAQs = nil
	out := decodeOver(raw, work)
	if out.FAQs == nil {
		out.FAQs = def.FAQs
	}
	return out
}

// NormalizeNeighborhoods reconciles a persisted neighborhoods blob
func NormalizeNeighborhoods(raw []byte) models.NeighborhoodsSection {
	def := DefaultNeighborhoods()
	work := def
	work.Neighborhoods = nil
	out := decodeOver(raw, work)
	if out.Neighborhoods == nil {
		out.Neighborhoods = def.Neighborhoods
	}
	return out
}

// NormalizeBrand reconciles a persisted brand blob
func NormalizeBrand(raw []byte) models.BrandSection {
	def := DefaultBrand()
	work := def
	work.SocialLinks = nil
	out := decodeOver(raw, work)
	if out.SocialLinks == nil {
		out.SocialLinks = def.SocialLinks
	}
	return out
}

// NormalizeProject reconciles a persisted project blob. fallbackID is
// assigned when the blob has no numeric id; callers pass a fresh clock
// value per record so a batch never collides.
func NormalizeProject(raw []byte, fallbackID int64) models.ProjectDetails {
	def := DefaultProject()
	def.ID = fallbackID
	work := def
	work.StatusBadges = nil
	work.HeroImages = nil
	work.Amenities = nil
	work.FloorPlans = nil
	work.ViewFloorplanImages = nil
	work.VirtualTours = nil
	work.SimilarProjects = nil
	out := decodeOver(raw, work)
	if out.StatusBadges == nil {
		out.StatusBadges = def.StatusBadges
	}
	if out.HeroImages == nil {
		out.HeroImages = def.HeroImages
	}
	if out.Amenities == nil {
		out.Amenities = def.Amenities
	}
	if out.FloorPlans == nil {
		out.FloorPlans = def.FloorPlans
	}
	if out.ViewFloorplanImages == nil {
		out.ViewFloorplanImages = def.ViewFloorplanImages
	}
	if out.VirtualTours == nil {
		out.VirtualTours = def.VirtualTours
	}
	if out.SimilarProjects == nil {
		out.SimilarProjects = def.SimilarProjects
	}
	migrateProject(&out)
	return out
}

// NormalizeProjects reconciles the persisted project collection. Anything
// that is not a JSON array is discarded wholesale in favor of the default
// seed collection; elements are then normalized one by one with
// collision-free fallback ids derived from idBase.
func NormalizeProjects(raw []byte, idBase int64) []models.ProjectDetails {
	if len(raw) == 0 {
		return DefaultProjects()
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return DefaultProjects()
	}
	projects := make([]models.ProjectDetails, 0, len(elems))
	for i, elem := range elems {
		projects = append(projects, NormalizeProject(elem, idBase+int64(i)))
	}
	return projects
}

// migrateProject runs the load-time migrations for a project record.
// Older blobs predate the floor-plan price column; backfill it once here
// instead of patching wherever plans are read.
func migrateProject(p *models.ProjectDetails) {
	for i := range p.FloorPlans {
		if p.FloorPlans[i].Price == "" {
			p.FloorPlans[i].Price = "Price on Request"
		}
	}
}
