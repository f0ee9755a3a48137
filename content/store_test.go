package content

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"mumbai-homes/models"
	"mumbai-homes/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryAdapter) {
	t.Helper()
	adapter := storage.NewMemoryAdapter()
	store := NewStore(context.Background(), adapter, 1_000_000)
	return store, adapter
}

func TestInitialLoadUsesDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	data := store.Data()

	if !reflect.DeepEqual(data.Banks, DefaultBanks()) {
		t.Errorf("Banks = %+v, want default", data.Banks)
	}
	if len(data.Projects) != 3 {
		t.Errorf("Projects length = %d, want the 3-project seed", len(data.Projects))
	}
}

func TestUpdateSectionPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	store, adapter := newTestStore(t)

	hero := DefaultHero()
	hero.Title = "Own a Piece of Mumbai"
	if err := store.UpdateHero(ctx, hero); err != nil {
		t.Fatalf("UpdateHero: %v", err)
	}

	// A second store over the same adapter sees the persisted value
	second := NewStore(ctx, adapter, 2_000_000)
	if got := second.Data().Hero.Title; got != "Own a Piece of Mumbai" {
		t.Errorf("reloaded hero title = %q, want the saved one", got)
	}
}

func TestAddProject(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	before := store.Data().Projects
	if len(before) != 3 {
		t.Fatalf("seed projects = %d, want 3", len(before))
	}

	created, err := store.AddProject(ctx, json.RawMessage(`{"projectName":"Test Tower"}`))
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}

	if created.ProjectName != "Test Tower" {
		t.Errorf("ProjectName = %q, want %q", created.ProjectName, "Test Tower")
	}
	def := DefaultProject()
	if created.PriceRange != def.PriceRange {
		t.Errorf("PriceRange = %q, want default %q", created.PriceRange, def.PriceRange)
	}
	if !reflect.DeepEqual(created.Amenities, def.Amenities) {
		t.Errorf("Amenities = %+v, want default", created.Amenities)
	}

	after := store.Data().Projects
	if len(after) != 4 {
		t.Fatalf("Projects length = %d, want 4", len(after))
	}

	seen := 0
	for _, p := range after {
		if p.ID == created.ID {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("created id %d appears %d times, want exactly once", created.ID, seen)
	}
	for _, p := range before {
		if p.ID == created.ID {
			t.Errorf("created id %d collides with existing project", created.ID)
		}
	}
}

func TestAddProjectIgnoresPartialID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	created, err := store.AddProject(ctx, json.RawMessage(`{"id":1,"projectName":"Clone"}`))
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if created.ID == 1 {
		t.Errorf("AddProject must assign a fresh id, got the partial's id 1")
	}
}

func TestFreshIDsSkipLoadedFallbackIDs(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()

	// Persisted projects without ids get fallback ids minted from the
	// clock at load time; AddProject must never reuse one of them.
	raw := []byte(`[{"projectName":"A"},{"projectName":"B"},{"projectName":"C"}]`)
	if err := adapter.Save(ctx, storage.KeyProjects, raw); err != nil {
		t.Fatalf("Save: %v", err)
	}
	store := NewStore(ctx, adapter, 1_000_000)

	created, err := store.AddProject(ctx, json.RawMessage(`{"projectName":"D"}`))
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}

	counts := make(map[int64]int)
	for _, p := range store.Data().Projects {
		counts[p.ID]++
	}
	if counts[created.ID] != 1 {
		t.Errorf("created id %d appears %d times in the collection, want exactly once", created.ID, counts[created.ID])
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("id %d appears %d times, want every id unique", id, n)
		}
	}
}

func TestUpdateProjectDetailsWritesSingleton(t *testing.T) {
	ctx := context.Background()
	store, adapter := newTestStore(t)

	payload := DefaultProject()
	payload.ID = 999 // matches nothing in the collection
	payload.ProjectName = "Standalone Record"

	if err := store.UpdateProjectDetails(ctx, payload); err != nil {
		t.Fatalf("UpdateProjectDetails: %v", err)
	}

	if got := store.Data().ProjectDetails.ProjectName; got != "Standalone Record" {
		t.Errorf("singleton name = %q, want the saved one", got)
	}

	raw, err := adapter.Load(ctx, storage.KeyProjectDetails)
	if err != nil {
		t.Fatalf("Load singleton: %v", err)
	}
	var persisted models.ProjectDetails
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("unmarshal singleton: %v", err)
	}
	if persisted.ProjectName != "Standalone Record" {
		t.Errorf("persisted singleton name = %q, want the saved one", persisted.ProjectName)
	}

	// No collection entry shares id 999, so the collection is untouched
	for _, p := range store.Data().Projects {
		if p.ProjectName == "Standalone Record" {
			t.Errorf("collection gained the singleton record without a matching id")
		}
	}
}

func TestUpdateProjectDetailsPatchesMatchingEntry(t *testing.T) {
	ctx := context.Background()
	store, adapter := newTestStore(t)

	payload := store.Data().Projects[1]
	payload.ProjectName = "Patched Via Singleton"

	if err := store.UpdateProjectDetails(ctx, payload); err != nil {
		t.Fatalf("UpdateProjectDetails: %v", err)
	}

	if got := store.Data().Projects[1].ProjectName; got != "Patched Via Singleton" {
		t.Errorf("collection entry name = %q, want the patched one", got)
	}

	raw, err := adapter.Load(ctx, storage.KeyProjects)
	if err != nil {
		t.Fatalf("Load collection: %v", err)
	}
	var persisted []models.ProjectDetails
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("unmarshal collection: %v", err)
	}
	if persisted[1].ProjectName != "Patched Via Singleton" {
		t.Errorf("persisted entry name = %q, want the patched one", persisted[1].ProjectName)
	}
}

func TestUpdateProjectByIDAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	before := append([]models.ProjectDetails(nil), store.Data().Projects...)
	payload := DefaultProject()
	payload.ProjectName = "Ghost Tower"

	if err := store.UpdateProjectByID(ctx, 999, payload); err != nil {
		t.Fatalf("UpdateProjectByID: %v", err)
	}

	after := store.Data().Projects
	if !reflect.DeepEqual(before, after) {
		t.Errorf("collection changed on absent-id update")
	}
}

func TestUpdateProjectByID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	before := append([]models.ProjectDetails(nil), store.Data().Projects...)
	target := before[1].ID

	payload := DefaultProject()
	payload.ProjectName = "Renamed Towers"
	payload.PriceRange = "₹9.9 Cr onwards"

	if err := store.UpdateProjectByID(ctx, target, payload); err != nil {
		t.Fatalf("UpdateProjectByID: %v", err)
	}

	after := store.Data().Projects
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}

	payload.ID = target
	if !reflect.DeepEqual(after[1], payload) {
		t.Errorf("updated record = %+v, want %+v", after[1], payload)
	}
	if !reflect.DeepEqual(after[0], before[0]) || !reflect.DeepEqual(after[2], before[2]) {
		t.Errorf("untargeted records were modified")
	}
}

func TestDeleteProjectByID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	before := store.Data().Projects
	target := before[0].ID

	if err := store.DeleteProjectByID(ctx, target); err != nil {
		t.Fatalf("DeleteProjectByID: %v", err)
	}

	after := store.Data().Projects
	if len(after) != len(before)-1 {
		t.Fatalf("length = %d, want %d", len(after), len(before)-1)
	}
	for _, p := range after {
		if p.ID == target {
			t.Errorf("deleted id %d still present", target)
		}
	}

	// Absent id: length unchanged
	if err := store.DeleteProjectByID(ctx, 424242); err != nil {
		t.Fatalf("DeleteProjectByID(absent): %v", err)
	}
	if got := len(store.Data().Projects); got != len(after) {
		t.Errorf("length changed on absent-id delete: %d", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()

	// Two "tabs" over the same backing storage
	tabA := NewStore(ctx, adapter, 1_000_000)
	tabB := NewStore(ctx, adapter, 1_000_000)

	x := DefaultBanks()
	x.Title = "X"
	if err := tabA.UpdateBanks(ctx, x); err != nil {
		t.Fatalf("tab A UpdateBanks: %v", err)
	}

	// Tab B saves afterwards without reloading; its write prevails
	y := DefaultBanks()
	y.Title = "Y"
	if err := tabB.UpdateBanks(ctx, y); err != nil {
		t.Fatalf("tab B UpdateBanks: %v", err)
	}

	raw, err := adapter.Load(ctx, storage.KeyBanks)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var persisted models.BanksSection
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("unmarshal persisted banks: %v", err)
	}
	if persisted.Title != "Y" {
		t.Errorf("persisted title = %q, want %q (last write wins, no merge)", persisted.Title, "Y")
	}
}

func TestSubscribeReceivesChangedKey(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	events, cancel := store.Subscribe()
	defer cancel()

	if err := store.UpdateBanks(ctx, DefaultBanks()); err != nil {
		t.Fatalf("UpdateBanks: %v", err)
	}

	select {
	case key := <-events:
		if key != storage.KeyBanks {
			t.Errorf("event key = %q, want %q", key, storage.KeyBanks)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestExternalChangeTriggersRefresh(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, adapter := newTestStore(t)
	go store.Run(ctx)

	events, cancel := store.Subscribe()
	defer cancel()

	// Give Run a moment to register its watch channel
	time.Sleep(50 * time.Millisecond)

	// Another process rewrites the banks blob behind the store's back
	changed := DefaultBanks()
	changed.Title = "Rewritten Elsewhere"
	raw, _ := json.Marshal(changed)
	if err := adapter.Save(ctx, storage.KeyBanks, raw); err != nil {
		t.Fatalf("Save: %v", err)
	}
	adapter.NotifyExternal(storage.KeyBanks)

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("no rebroadcast of the external change")
	}

	if got := store.Data().Banks.Title; got != "Rewritten Elsewhere" {
		t.Errorf("store banks title = %q, want the externally written value", got)
	}
}

func TestProjectsMirrorLegacySingleton(t *testing.T) {
	ctx := context.Background()
	store, adapter := newTestStore(t)

	first := store.Data().Projects[0]
	first.ProjectName = "Authoritative"
	if err := store.UpdateProjectByID(ctx, first.ID, first); err != nil {
		t.Fatalf("UpdateProjectByID: %v", err)
	}

	raw, err := adapter.Load(ctx, storage.KeyProjectDetails)
	if err != nil {
		t.Fatalf("Load singleton: %v", err)
	}
	var singleton models.ProjectDetails
	if err := json.Unmarshal(raw, &singleton); err != nil {
		t.Fatalf("unmarshal singleton: %v", err)
	}
	if singleton.ProjectName != "Authoritative" {
		t.Errorf("legacy singleton name = %q, want mirror of first project", singleton.ProjectName)
	}
}

func TestProjectByIDFallsBackToSingleton(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	// Empty the collection. Copy first: deletes shift the live slice.
	seeded := append([]models.ProjectDetails(nil), store.Data().Projects...)
	for _, p := range seeded {
		if err := store.DeleteProjectByID(ctx, p.ID); err != nil {
			t.Fatalf("DeleteProjectByID: %v", err)
		}
	}
	if got := len(store.Data().Projects); got != 0 {
		t.Fatalf("collection not empty: %d", got)
	}

	legacy := store.Data().ProjectDetails
	if _, ok := store.ProjectByID(legacy.ID); !ok {
		t.Errorf("empty collection must fall back to the legacy singleton")
	}
}
