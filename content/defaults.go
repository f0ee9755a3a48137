// Package content implements the website content store: the default
// catalog every section falls back to, the normalization layer that
// reconciles persisted blobs against it, and the store consumed by the
// admin console and the public site.
package content

import "mumbai-homes/models"

// Every Default* constructor returns a fresh value so callers never
// share slices with the catalog. The shape of these defaults IS the
// schema contract: a field added to a section type must get a default
// here, otherwise stale persisted blobs normalize with a zero hole.

// DefaultHero returns the seed hero section
func DefaultHero() models.HeroSection {
	return models.HeroSection{
		Title:             "Find Your Dream Home in Mumbai",
		Subtitle:          "Premium Residences Across the City",
		Description:       "From sea-facing apartments in South Mumbai to sprawling townships in Thane, discover homes curated for every lifestyle and budget.",
		SearchPlaceholder: "Search by locality, project or builder",
		CTAText:           "Explore Projects",
		BackgroundImage:   "/images/hero/mumbai-skyline.jpg",
	}
}

// DefaultNewlyLaunched returns the seed newly launched section
func DefaultNewlyLaunched() models.NewlyLaunchedSection {
	return models.NewlyLaunchedSection{
		Title:       "Newly Launched",
		Description: "Be the first to book in Mumbai's freshest launches.",
		Projects: []models.ProjectCard{
			{ID: 1, Name: "Lodha Riviera", Location: "Worli", PriceRange: "₹3.2 Cr - ₹7.5 Cr", Status: "New Launch", Image: "/images/projects/lodha-riviera.jpg"},
			{ID: 2, Name: "Godrej Horizon", Location: "Wadala", PriceRange: "₹1.8 Cr - ₹4.2 Cr", Status: "New Launch", Image: "/images/projects/godrej-horizon.jpg"},
			{ID: 3, Name: "Runwal Lagoon", Location: "Mulund", PriceRange: "₹95 L - ₹2.1 Cr", Status: "Pre-Launch", Image: "/images/projects/runwal-lagoon.jpg"},
		},
	}
}

// DefaultTrending returns the seed trending projects section
func DefaultTrending() models.TrendingProjectsSection {
	return models.TrendingProjectsSection{
		Title:       "Trending Projects",
		Description: "The most viewed homes on Mumbai Homes this month.",
		Projects: []models.ProjectCard{
			{ID: 1, Name: "Oberoi Sky City", Location: "Borivali East", PriceRange: "₹2.4 Cr - ₹5.8 Cr", Status: "Under Construction", Image: "/images/projects/oberoi-sky-city.jpg"},
			{ID: 2, Name: "Rustomjee Seasons", Location: "Bandra Kurla Complex", PriceRange: "₹4.5 Cr - ₹9.0 Cr", Status: "Ready to Move", Image: "/images/projects/rustomjee-seasons.jpg"},
			{ID: 3, Name: "Piramal Vaikunth", Location: "Thane West", PriceRange: "₹1.2 Cr - ₹3.4 Cr", Status: "Under Construction", Image: "/images/projects/piramal-vaikunth.jpg"},
		},
	}
}

// DefaultSpotlight returns the seed spotlight project section
func DefaultSpotlight() models.SpotlightProjectSection {
	return models.SpotlightProjectSection{
		Title:       "Project Spotlight",
		ProjectName: "Oberoi Sky City",
		Description: "An iconic 60-storey landmark in Borivali East with panoramic views of Sanjay Gandhi National Park, a 7-acre podium garden and a private clubhouse.",
		Location:    "Borivali East, Mumbai",
		PriceRange:  "₹2.4 Cr onwards",
		CTAText:     "View Project",
		Image:       "/images/spotlight/oberoi-sky-city.jpg",
		Highlights: []string{
			"60-storey towers with national park views",
			"7-acre landscaped podium",
			"3-tier security with smart access",
			"OC received for Phase 1",
		},
	}
}

// DefaultWhyChooseUs returns the seed why-choose-us section
func DefaultWhyChooseUs() models.WhyChooseUsSection {
	return models.WhyChooseUsSection{
		Title:       "Why Choose Mumbai Homes",
		Description: "We make home buying transparent, guided and zero-brokerage.",
		Features: []models.Feature{
			{ID: 1, Icon: "shield-check", Title: "RERA Verified Listings", Description: "Every project is cross-checked against MahaRERA records before it goes live."},
			{ID: 2, Icon: "wallet", Title: "Zero Brokerage", Description: "Buy directly from developers. Our service is free for home buyers."},
			{ID: 3, Icon: "users", Title: "Dedicated Relationship Manager", Description: "One expert guides you from site visit to registration."},
			{ID: 4, Icon: "bank", Title: "Loan Assistance", Description: "Pre-approved offers from 15+ partner banks at preferential rates."},
		},
	}
}

// DefaultVirtualTour returns the seed virtual tour section
func DefaultVirtualTour() models.VirtualTourSection {
	return models.VirtualTourSection{
		Title:          "Tour Homes From Your Couch",
		Description:    "Walk through show flats in immersive 360° before you shortlist a single site visit.",
		VideoURL:       "https://www.youtube.com/embed/mumbai-homes-tour",
		ThumbnailImage: "/images/virtual-tour/thumbnail.jpg",
		CTAText:        "Start Virtual Tour",
	}
}

// DefaultBanks returns the seed partner banks section
func DefaultBanks() models.BanksSection {
	return models.BanksSection{
		Title:       "Home Loan Partners",
		Description: "Compare pre-approved offers from India's leading banks.",
		ContactText: "Talk to our loan desk for rates from 8.35% p.a.",
		CTAText:     "Check Eligibility",
		Banks: []models.Bank{
			{ID: 1, Name: "HDFC Bank", Logo: "/images/banks/hdfc.png"},
			{ID: 2, Name: "State Bank of India", Logo: "/images/banks/sbi.png"},
			{ID: 3, Name: "ICICI Bank", Logo: "/images/banks/icici.png"},
			{ID: 4, Name: "Axis Bank", Logo: "/images/banks/axis.png"},
			{ID: 5, Name: "Kotak Mahindra Bank", Logo: "/images/banks/kotak.png"},
		},
	}
}

// DefaultBlogs returns the seed blogs section
func DefaultBlogs() models.BlogsSection {
	return models.BlogsSection{
		Title:       "Blogs & Articles",
		Description: "Market insights, locality guides and buying advice from our research desk.",
		CTAText:     "Read All Articles",
		Blogs: []models.Blog{
			{ID: 1, Title: "Mumbai Metro Line 3: What It Means for Property Prices", Excerpt: "The Colaba-SEEPZ corridor is reshaping micro-markets along its 33 stations.", Author: "Priya Nair", Date: "2025-07-14", Image: "/images/blogs/metro-line-3.jpg", Content: "The underground Metro Line 3 has changed the commute math for localities from Worli to Marol..."},
			{ID: 2, Title: "Ready Reckoner Rates 2025: A Borough-by-Borough Guide", Excerpt: "How the revised rates affect stamp duty across Mumbai's 19 zones.", Author: "Arjun Mehta", Date: "2025-06-02", Image: "/images/blogs/ready-reckoner.jpg", Content: "Maharashtra's 2025 ready reckoner revision raised rates by an average of 3.9% in Mumbai..."},
			{ID: 3, Title: "2BHK vs 3BHK: The Real Cost of the Extra Room", Excerpt: "Beyond the sticker price — maintenance, taxes and resale liquidity compared.", Author: "Priya Nair", Date: "2025-05-20", Image: "/images/blogs/2bhk-vs-3bhk.jpg", Content: "In suburbs like Chembur and Mulund the jump from a 2BHK to a 3BHK averages ₹62 lakh..."},
		},
	}
}

// DefaultZones returns the seed homes-in-every-zone section
func DefaultZones() models.ZonesSection {
	return models.ZonesSection{
		Title:       "Homes in Every Zone",
		Description: "Explore projects across Mumbai's five zones.",
		Zones: []models.Zone{
			{ID: 1, Name: "South Mumbai", Description: "Heritage precincts and sea-facing towers from Colaba to Mahalaxmi.", Image: "/images/zones/south-mumbai.jpg", ProjectCount: 42},
			{ID: 2, Name: "Western Suburbs", Description: "Bandra to Borivali — the city's most liquid residential belt.", Image: "/images/zones/western-suburbs.jpg", ProjectCount: 118},
			{ID: 3, Name: "Central Suburbs", Description: "Emerging corridors from Sion to Mulund along the Eastern Express Highway.", Image: "/images/zones/central-suburbs.jpg", ProjectCount: 96},
			{ID: 4, Name: "Harbour Line", Description: "Value buys from Wadala to Panvel anchored by the trans-harbour link.", Image: "/images/zones/harbour-line.jpg", ProjectCount: 73},
			{ID: 5, Name: "Thane & Beyond", Description: "Township living with lakes, greens and new-age infrastructure.", Image: "/images/zones/thane.jpg", ProjectCount: 85},
		},
	}
}

// DefaultFAQs returns the seed FAQ section
func DefaultFAQs() models.FAQSection {
	return models.FAQSection{
		Title:       "Frequently Asked Questions",
		Description: "Everything buyers ask us, answered.",
		FAQs: []models.FAQ{
			{ID: 1, Question: "Is there any brokerage or hidden fee?", Answer: "No. Mumbai Homes is free for buyers; we are compensated by developer partners."},
			{ID: 2, Question: "Are all listed projects RERA registered?", Answer: "Yes. We verify every project's MahaRERA registration before listing and display the number on its page."},
			{ID: 3, Question: "Can you arrange site visits?", Answer: "Yes, including pick-up and drop for shortlisted projects. Weekend slots fill fast."},
			{ID: 4, Question: "Do you help with home loans?", Answer: "Our loan desk works with 15+ partner banks and negotiates preferential rates for our buyers."},
		},
	}
}

// DefaultNeighborhoods returns the seed discover-neighborhoods section
func DefaultNeighborhoods() models.NeighborhoodsSection {
	return models.NeighborhoodsSection{
		Title:       "Discover Neighborhoods",
		Description: "Locality deep-dives with price trends, schools and commute scores.",
		CTAText:     "All Neighborhoods",
		Neighborhoods: []models.Neighborhood{
			{ID: 1, Name: "Bandra West", Tagline: "The queen of the suburbs", AvgPrice: "₹52,000/sq.ft", Image: "/images/neighborhoods/bandra-west.jpg"},
			{ID: 2, Name: "Powai", Tagline: "Lakeside living, tech-hub energy", AvgPrice: "₹28,500/sq.ft", Image: "/images/neighborhoods/powai.jpg"},
			{ID: 3, Name: "Chembur", Tagline: "Connected to everywhere", AvgPrice: "₹24,000/sq.ft", Image: "/images/neighborhoods/chembur.jpg"},
			{ID: 4, Name: "Thane West", Tagline: "Townships and lake city charm", AvgPrice: "₹17,500/sq.ft", Image: "/images/neighborhoods/thane-west.jpg"},
		},
	}
}

// DefaultBrand returns the seed brand/footer section
func DefaultBrand() models.BrandSection {
	return models.BrandSection{
		Title:       "Mumbai Homes",
		Description: "Mumbai's curated marketplace for new homes — RERA-verified projects, zero brokerage, end-to-end buying support.",
		Phone:       "+91 98200 12345",
		Email:       "hello@mumbaihomes.in",
		Address:     "1204, One BKC, Bandra Kurla Complex, Mumbai 400051",
		FooterText:  "© Mumbai Homes. All rights reserved.",
		SocialLinks: []models.SocialLink{
			{ID: 1, Platform: "instagram", URL: "https://instagram.com/mumbaihomes"},
			{ID: 2, Platform: "youtube", URL: "https://youtube.com/@mumbaihomes"},
			{ID: 3, Platform: "linkedin", URL: "https://linkedin.com/company/mumbaihomes"},
		},
	}
}

// DefaultProject returns the canonical default project record. It doubles
// as the merge base for AddProject and as the normalization fallback for
// the legacy singleton.
func DefaultProject() models.ProjectDetails {
	return models.ProjectDetails{
		ID:           1,
		ProjectName:  "Oberoi Sky City",
		StatusBadges: []string{"RERA Registered", "Under Construction"},
		PriceRange:   "₹2.4 Cr - ₹5.8 Cr",
		HeroImage:    "/images/projects/oberoi-sky-city/hero.jpg",
		MainImage:    "/images/projects/oberoi-sky-city/main.jpg",
		AerialImage:  "/images/projects/oberoi-sky-city/aerial.jpg",
		HeroImages: []string{
			"/images/projects/oberoi-sky-city/hero-1.jpg",
			"/images/projects/oberoi-sky-city/hero-2.jpg",
		},
		Brochure:    "",
		Description: "A 60-storey landmark in Borivali East overlooking Sanjay Gandhi National Park.",
		AboutText:   "Oberoi Sky City spreads across 25 acres with five residential towers, a 7-acre podium garden and an international school within the gated campus.",
		Amenities: []models.Amenity{
			{Icon: "pool", Name: "Infinity Pool"},
			{Icon: "gym", Name: "Sky Gymnasium"},
			{Icon: "garden", Name: "Podium Garden"},
			{Icon: "clubhouse", Name: "Private Clubhouse"},
			{Icon: "security", Name: "3-Tier Security"},
			{Icon: "play", Name: "Children's Play Area"},
		},
		Overview: models.ProjectOverview{
			ProjectType: "Residential Apartments",
			Units:       "2, 3 & 4 BHK",
			Area:        "25 Acres",
			RERANumber:  "P51800004321",
		},
		FloorPlans: []models.FloorPlan{
			{Type: "2 BHK Premier", Area: "731 sq.ft", Price: "₹2.4 Cr", CategoryKey: "2BHK"},
			{Type: "3 BHK Grande", Area: "1,096 sq.ft", Price: "₹3.6 Cr", CategoryKey: "3BHK"},
			{Type: "4 BHK Sky Villa", Area: "1,824 sq.ft", Price: "₹5.8 Cr", CategoryKey: "4BHK"},
		},
		FloorPlanCategoryImages: models.FloorPlanCategoryImages{
			TwoBHK:   "/images/projects/oberoi-sky-city/plans/2bhk.jpg",
			ThreeBHK: "/images/projects/oberoi-sky-city/plans/3bhk.jpg",
			FourBHK:  "/images/projects/oberoi-sky-city/plans/4bhk.jpg",
		},
		ViewFloorplanImages: []string{
			"/images/projects/oberoi-sky-city/plans/tower-a.jpg",
			"/images/projects/oberoi-sky-city/plans/tower-b.jpg",
		},
		VirtualTours: []models.VirtualTourEntry{
			{ID: 1, Image: "/images/projects/oberoi-sky-city/tours/lobby.jpg", Alt: "Grand lobby"},
			{ID: 2, Image: "/images/projects/oberoi-sky-city/tours/show-flat.jpg", Alt: "3 BHK show flat"},
		},
		LocationInfo: models.LocationInfo{
			Location:    "Off Western Express Highway, Borivali East",
			Zone:        "Western Suburbs",
			Pincode:     "400066",
			MapEmbedURL: "https://www.google.com/maps/embed?pb=oberoi-sky-city",
			CTAText:     "Get Directions",
		},
		SimilarProjects: []models.SimilarProject{
			{ID: 1, Name: "Kalpataru Elara", Type: "2 & 3 BHK", Location: "Kandivali West", Price: "₹1.9 Cr onwards", Image: "/images/projects/kalpataru-elara.jpg"},
			{ID: 2, Name: "Godrej Reserve", Type: "2, 3 & 4 BHK", Location: "Kandivali East", Price: "₹2.1 Cr onwards", Image: "/images/projects/godrej-reserve.jpg"},
		},
	}
}

// DefaultProjects returns the seed project collection. Three entries, so
// the public listing pages have content before the first admin edit.
func DefaultProjects() []models.ProjectDetails {
	first := DefaultProject()

	second := DefaultProject()
	second.ID = 2
	second.ProjectName = "Rustomjee Seasons"
	second.StatusBadges = []string{"RERA Registered", "Ready to Move"}
	second.PriceRange = "₹4.5 Cr - ₹9.0 Cr"
	second.HeroImage = "/images/projects/rustomjee-seasons/hero.jpg"
	second.MainImage = "/images/projects/rustomjee-seasons/main.jpg"
	second.AerialImage = "/images/projects/rustomjee-seasons/aerial.jpg"
	second.HeroImages = []string{"/images/projects/rustomjee-seasons/hero-1.jpg"}
	second.Description = "Low-density luxury residences beside the BKC business district."
	second.AboutText = "Rustomjee Seasons offers 3 and 4 BHK homes across four boutique towers with a 2-acre central green."
	second.Overview = models.ProjectOverview{
		ProjectType: "Residential Apartments",
		Units:       "3 & 4 BHK",
		Area:        "5.5 Acres",
		RERANumber:  "P51800001278",
	}
	second.FloorPlans = []models.FloorPlan{
		{Type: "3 BHK Classic", Area: "1,350 sq.ft", Price: "₹4.5 Cr", CategoryKey: "3BHK"},
		{Type: "4 BHK Estate", Area: "2,100 sq.ft", Price: "₹7.2 Cr", CategoryKey: "4BHK"},
	}
	second.FloorPlanCategoryImages = models.FloorPlanCategoryImages{
		ThreeBHK: "/images/projects/rustomjee-seasons/plans/3bhk.jpg",
		FourBHK:  "/images/projects/rustomjee-seasons/plans/4bhk.jpg",
	}
	second.ViewFloorplanImages = []string{"/images/projects/rustomjee-seasons/plans/master.jpg"}
	second.VirtualTours = []models.VirtualTourEntry{
		{ID: 1, Image: "/images/projects/rustomjee-seasons/tours/garden.jpg", Alt: "Central green"},
	}
	second.LocationInfo = models.LocationInfo{
		Location:    "Hill Road Extension, Bandra Kurla Complex Annexe",
		Zone:        "Western Suburbs",
		Pincode:     "400051",
		MapEmbedURL: "https://www.google.com/maps/embed?pb=rustomjee-seasons",
		CTAText:     "Get Directions",
	}
	second.SimilarProjects = []models.SimilarProject{
		{ID: 1, Name: "Oberoi Sky City", Type: "2, 3 & 4 BHK", Location: "Borivali East", Price: "₹2.4 Cr onwards", Image: "/images/projects/oberoi-sky-city.jpg"},
	}

	third := DefaultProject()
	third.ID = 3
	third.ProjectName = "Piramal Vaikunth"
	third.StatusBadges = []string{"RERA Registered", "Under Construction"}
	third.PriceRange = "₹1.2 Cr - ₹3.4 Cr"
	third.HeroImage = "/images/projects/piramal-vaikunth/hero.jpg"
	third.MainImage = "/images/projects/piramal-vaikunth/main.jpg"
	third.AerialImage = "/images/projects/piramal-vaikunth/aerial.jpg"
	third.HeroImages = []string{"/images/projects/piramal-vaikunth/hero-1.jpg"}
	third.Description = "A 32-acre forest township in Thane with a kilometre-long central avenue."
	third.AboutText = "Piramal Vaikunth is built around a preserved green spine, with Vedic-themed landscaping and homes from compact 1 BHKs to duplex residences."
	third.Overview = models.ProjectOverview{
		ProjectType: "Township",
		Units:       "1, 2 & 3 BHK",
		Area:        "32 Acres",
		RERANumber:  "P51700009876",
	}
	third.FloorPlans = []models.FloorPlan{
		{Type: "1 BHK Urban", Area: "450 sq.ft", Price: "₹1.2 Cr", CategoryKey: "1BHK"},
		{Type: "2 BHK Nest", Area: "690 sq.ft", Price: "₹1.8 Cr", CategoryKey: "2BHK"},
		{Type: "3 BHK Haven", Area: "1,020 sq.ft", Price: "₹2.9 Cr", CategoryKey: "3BHK"},
	}
	third.FloorPlanCategoryImages = models.FloorPlanCategoryImages{
		OneBHK:   "/images/projects/piramal-vaikunth/plans/1bhk.jpg",
		TwoBHK:   "/images/projects/piramal-vaikunth/plans/2bhk.jpg",
		ThreeBHK: "/images/projects/piramal-vaikunth/plans/3bhk.jpg",
	}
	third.ViewFloorplanImages = []string{"/images/projects/piramal-vaikunth/plans/township.jpg"}
	third.VirtualTours = []models.VirtualTourEntry{
		{ID: 1, Image: "/images/projects/piramal-vaikunth/tours/avenue.jpg", Alt: "Central avenue"},
	}
	third.LocationInfo = models.LocationInfo{
		Location:    "Balkum, Thane West",
		Zone:        "Thane & Beyond",
		Pincode:     "400608",
		MapEmbedURL: "https://www.google.com/maps/embed?pb=piramal-vaikunth",
		CTAText:     "Get Directions",
	}
	third.SimilarProjects = []models.SimilarProject{
		{ID: 1, Name: "Runwal Lagoon", Type: "1 & 2 BHK", Location: "Mulund", Price: "₹95 L onwards", Image: "/images/projects/runwal-lagoon.jpg"},
	}

	return []models.ProjectDetails{first, second, third}
}

// DefaultWebsiteData assembles the complete default aggregate
func DefaultWebsiteData() models.WebsiteData {
	return models.WebsiteData{
		Hero:             DefaultHero(),
		NewlyLaunched:    DefaultNewlyLaunched(),
		TrendingProjects: DefaultTrending(),
		Spotlight:        DefaultSpotlight(),
		WhyChooseUs:      DefaultWhyChooseUs(),
		VirtualTour:      DefaultVirtualTour(),
		Banks:            DefaultBanks(),
		Blogs:            DefaultBlogs(),
		Zones:            DefaultZones(),
		FAQs:             DefaultFAQs(),
		Neighborhoods:    DefaultNeighborhoods(),
		Brand:            DefaultBrand(),
		ProjectDetails:   DefaultProject(),
		Projects:         DefaultProjects(),
	}
}
