package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeBanksPartialBlob(t *testing.T) {
	got := NormalizeBanks([]byte(`{"title":"Our Partners"}`))
	def := DefaultBanks()

	if got.Title != "Our Partners" {
		t.Errorf("Title = %q, want %q", got.Title, "Our Partners")
	}
	if got.Description != def.Description {
		t.Errorf("Description = %q, want default %q", got.Description, def.Description)
	}
	if got.ContactText != def.ContactText {
		t.Errorf("ContactText = %q, want default %q", got.ContactText, def.ContactText)
	}
	if got.CTAText != def.CTAText {
		t.Errorf("CTAText = %q, want default %q", got.CTAText, def.CTAText)
	}
	if !reflect.DeepEqual(got.Banks, def.Banks) {
		t.Errorf("Banks = %+v, want default %+v", got.Banks, def.Banks)
	}
}

func TestNormalizeDefaultFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"absent", nil},
		{"empty", []byte("")},
		{"malformed", []byte(`{"title": "unterminated`)},
		{"wrong top-level type", []byte(`[1, 2, 3]`)},
		{"null", []byte(`null`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := NormalizeBanks(tt.raw), DefaultBanks(); !reflect.DeepEqual(got, want) {
				t.Errorf("NormalizeBanks(%s) = %+v, want default", tt.name, got)
			}
			if got, want := NormalizeHero(tt.raw), DefaultHero(); !reflect.DeepEqual(got, want) {
				t.Errorf("NormalizeHero(%s) = %+v, want default", tt.name, got)
			}
			if got, want := NormalizeFAQs(tt.raw), DefaultFAQs(); !reflect.DeepEqual(got, want) {
				t.Errorf("NormalizeFAQs(%s) = %+v, want default", tt.name, got)
			}
		})
	}
}

func TestNormalizeArrayFieldCoercion(t *testing.T) {
	def := DefaultBanks()

	tests := []struct {
		name string
		raw  string
	}{
		{"string instead of array", `{"title":"t","banks":"oops"}`},
		{"object instead of array", `{"title":"t","banks":{"id":1}}`},
		{"number instead of array", `{"title":"t","banks":7}`},
		{"null array", `{"title":"t","banks":null}`},
		{"missing array", `{"title":"t"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBanks([]byte(tt.raw))
			if got.Title != "t" {
				t.Errorf("Title = %q, want %q (valid scalar must survive)", got.Title, "t")
			}
			if !reflect.DeepEqual(got.Banks, def.Banks) {
				t.Errorf("Banks = %+v, want default array", got.Banks)
			}
		})
	}

	// A real array, even empty, replaces the default
	got := NormalizeBanks([]byte(`{"banks":[]}`))
	if len(got.Banks) != 0 {
		t.Errorf("empty persisted array must stay empty, got %d entries", len(got.Banks))
	}
}

func TestNormalizeArrayElementsPassThrough(t *testing.T) {
	// Stored array elements replace the default array wholesale; default
	// catalog entries must never bleed into them.
	got := NormalizeBanks([]byte(`{"banks":[{"id":5}]}`))
	if len(got.Banks) != 1 {
		t.Fatalf("Banks length = %d, want 1", len(got.Banks))
	}
	if b := got.Banks[0]; b.ID != 5 || b.Name != "" || b.Logo != "" {
		t.Errorf("element 0 = %+v, want only the stored id set", b)
	}

	blogs := NormalizeBlogs([]byte(`{"blogs":[{"id":7,"title":"Solo"}]}`))
	if len(blogs.Blogs) != 1 {
		t.Fatalf("Blogs length = %d, want 1", len(blogs.Blogs))
	}
	if b := blogs.Blogs[0]; b.Title != "Solo" || b.Author != "" || b.Excerpt != "" {
		t.Errorf("element 0 = %+v, want only stored fields set", b)
	}
}

func TestNormalizeProjectArrayElementsPassThrough(t *testing.T) {
	raw := []byte(`{"amenities":[{"name":"Helipad"}],"similarProjects":[{"id":1}],"statusBadges":["Sold Out"]}`)
	got := NormalizeProject(raw, 1)

	if len(got.Amenities) != 1 {
		t.Fatalf("Amenities length = %d, want 1", len(got.Amenities))
	}
	if a := got.Amenities[0]; a.Name != "Helipad" || a.Icon != "" {
		t.Errorf("amenity = %+v, want only the stored name set", a)
	}
	if len(got.SimilarProjects) != 1 {
		t.Fatalf("SimilarProjects length = %d, want 1", len(got.SimilarProjects))
	}
	if s := got.SimilarProjects[0]; s.ID != 1 || s.Name != "" || s.Image != "" {
		t.Errorf("similar project = %+v, want only the stored id set", s)
	}
	if len(got.StatusBadges) != 1 || got.StatusBadges[0] != "Sold Out" {
		t.Errorf("StatusBadges = %v, want the stored single badge", got.StatusBadges)
	}
}

func TestNormalizeCompleteness(t *testing.T) {
	// Arbitrary partial objects never leave a default-backed field empty
	got := NormalizeZones([]byte(`{"zones":[{"id":9,"name":"Navi Mumbai"}]}`))
	def := DefaultZones()

	if got.Title != def.Title {
		t.Errorf("Title = %q, want default %q", got.Title, def.Title)
	}
	if got.Description != def.Description {
		t.Errorf("Description = %q, want default %q", got.Description, def.Description)
	}
	if len(got.Zones) != 1 || got.Zones[0].Name != "Navi Mumbai" {
		t.Errorf("Zones = %+v, want the single persisted zone", got.Zones)
	}
}

func TestNormalizeRoundTripIdempotence(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte(`{"title":"Loan Partners","banks":[{"id":5,"name":"Yes Bank","logo":"x.png"}]}`),
		[]byte(`{"banks":"garbage","ctaText":"Apply"}`),
	}

	for _, raw := range inputs {
		once := NormalizeBanks(raw)
		serialized, err := json.Marshal(once)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		twice := NormalizeBanks(serialized)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalize not idempotent:\nonce  = %+v\ntwice = %+v", once, twice)
		}
	}
}

func TestNormalizeProjectID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantID int64
	}{
		{"numeric id kept", `{"id":42,"projectName":"X"}`, 42},
		{"string id replaced", `{"id":"abc","projectName":"X"}`, 777},
		{"missing id replaced", `{"projectName":"X"}`, 777},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProject([]byte(tt.raw), 777)
			if got.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", got.ID, tt.wantID)
			}
			if got.ProjectName != "X" {
				t.Errorf("ProjectName = %q, want %q", got.ProjectName, "X")
			}
		})
	}
}

func TestNormalizeProjectNestedObjects(t *testing.T) {
	raw := []byte(`{"overview":{"units":"5 BHK"},"locationInfo":{"pincode":"400001"}}`)
	got := NormalizeProject(raw, 1)
	def := DefaultProject()

	if got.Overview.Units != "5 BHK" {
		t.Errorf("Overview.Units = %q, want %q", got.Overview.Units, "5 BHK")
	}
	if got.Overview.ProjectType != def.Overview.ProjectType {
		t.Errorf("Overview.ProjectType = %q, want default %q", got.Overview.ProjectType, def.Overview.ProjectType)
	}
	if got.LocationInfo.Pincode != "400001" {
		t.Errorf("LocationInfo.Pincode = %q, want %q", got.LocationInfo.Pincode, "400001")
	}
	if got.LocationInfo.Zone != def.LocationInfo.Zone {
		t.Errorf("LocationInfo.Zone = %q, want default %q", got.LocationInfo.Zone, def.LocationInfo.Zone)
	}
	if got.FloorPlanCategoryImages.TwoBHK != def.FloorPlanCategoryImages.TwoBHK {
		t.Errorf("FloorPlanCategoryImages.TwoBHK = %q, want default", got.FloorPlanCategoryImages.TwoBHK)
	}
}

func TestNormalizeProjectFloorPlanPriceBackfill(t *testing.T) {
	raw := []byte(`{"floorPlans":[{"type":"2 BHK","area":"700 sq.ft"},{"type":"3 BHK","area":"1000 sq.ft","price":"₹3 Cr"}]}`)
	got := NormalizeProject(raw, 1)

	if len(got.FloorPlans) != 2 {
		t.Fatalf("FloorPlans length = %d, want 2", len(got.FloorPlans))
	}
	if got.FloorPlans[0].Price != "Price on Request" {
		t.Errorf("backfilled price = %q, want %q", got.FloorPlans[0].Price, "Price on Request")
	}
	if got.FloorPlans[1].Price != "₹3 Cr" {
		t.Errorf("existing price = %q, want untouched", got.FloorPlans[1].Price)
	}
}

func TestNormalizeProjectsNotAnArray(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"json string", []byte(`"not an array"`)},
		{"object", []byte(`{"projects":[]}`)},
		{"malformed", []byte(`[{`)},
		{"null", []byte(`null`)},
		{"absent", nil},
	}

	want := DefaultProjects()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProjects(tt.raw, 5000)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("NormalizeProjects(%s) did not fall back to the %d-project seed", tt.name, len(want))
			}
		})
	}
}

func TestNormalizeProjectsElementFallbackIDs(t *testing.T) {
	raw := []byte(`[{"projectName":"A"},{"projectName":"B"},{"id":9,"projectName":"C"}]`)
	got := NormalizeProjects(raw, 5000)

	if len(got) != 3 {
		t.Fatalf("length = %d, want 3", len(got))
	}
	if got[0].ID == got[1].ID {
		t.Errorf("fallback ids collide within a batch: %d", got[0].ID)
	}
	if got[2].ID != 9 {
		t.Errorf("explicit id = %d, want 9", got[2].ID)
	}
}

func TestDefaultWebsiteDataMatchesSectionDefaults(t *testing.T) {
	data := DefaultWebsiteData()

	if !reflect.DeepEqual(data.Banks, DefaultBanks()) {
		t.Errorf("aggregate Banks differs from DefaultBanks")
	}
	if !reflect.DeepEqual(data.Hero, DefaultHero()) {
		t.Errorf("aggregate Hero differs from DefaultHero")
	}
	if !reflect.DeepEqual(data.Projects, DefaultProjects()) {
		t.Errorf("aggregate Projects differs from DefaultProjects")
	}
	if !reflect.DeepEqual(data.ProjectDetails, DefaultProject()) {
		t.Errorf("aggregate ProjectDetails differs from DefaultProject")
	}
}

func TestDefaultsReturnFreshCopies(t *testing.T) {
	a := DefaultBanks()
	a.Banks[0].Name = "mutated"
	b := DefaultBanks()
	if b.Banks[0].Name == "mutated" {
		t.Fatal("DefaultBanks shares slice backing between calls")
	}
}
