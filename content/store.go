package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"mumbai-homes/models"
	"mumbai-homes/storage"
)

// Store holds the in-memory WebsiteData aggregate and is the only write
// path to persisted content. Every update replaces a whole section,
// persists it through the injected adapter and broadcasts the changed
// storage key to subscribers. Writes from other processes arrive through
// the adapter's Watch channel (see Run) and trigger a full reload —
// last writer wins, no merge.
type Store struct {
	mu      sync.RWMutex
	data    models.WebsiteData
	adapter storage.Adapter

	subMu sync.Mutex
	subs  map[chan string]struct{}

	// idClock hands out unique numeric ids: seeded from wall-clock
	// millis so ids keep sorting like the historical timestamp ids,
	// incremented atomically so a burst never collides.
	idClock atomic.Int64
}

// NewStore builds a store over the given adapter and loads the aggregate.
// Load never fails: every section that is missing or malformed falls back
// to its default.
func NewStore(ctx context.Context, adapter storage.Adapter, nowMillis int64) *Store {
	s := &Store{
		adapter: adapter,
		subs:    make(map[chan string]struct{}),
	}
	s.idClock.Store(nowMillis)
	s.data = s.loadAll(ctx)
	s.advanceClock(s.data)
	return s
}

// NextID returns a fresh unique numeric id for a child entity
func (s *Store) NextID() int64 {
	return s.idClock.Add(1)
}

// Data returns a snapshot of the aggregate. The snapshot shares slice
// backing with the store; treat it as read-only and go through the
// update functions to change anything.
func (s *Store) Data() models.WebsiteData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Refresh reloads the whole aggregate from the adapter, discarding any
// in-memory state another writer has overwritten.
func (s *Store) Refresh(ctx context.Context) {
	fresh := s.loadAll(ctx)
	s.advanceClock(fresh)
	s.mu.Lock()
	s.data = fresh
	s.mu.Unlock()
}

// advanceClock moves the id clock past every id already present in the
// aggregate. Loaded records may carry fallback ids minted from the clock's
// current value, so without this NextID would hand out a duplicate.
func (s *Store) advanceClock(data models.WebsiteData) {
	max := data.ProjectDetails.ID
	for _, p := range data.Projects {
		if p.ID > max {
			max = p.ID
		}
	}
	for {
		cur := s.idClock.Load()
		if cur >= max {
			return
		}
		if s.idClock.CompareAndSwap(cur, max) {
			return
		}
	}
}

func (s *Store) loadAll(ctx context.Context) models.WebsiteData {
	return models.WebsiteData{
		Hero:             NormalizeHero(s.loadRaw(ctx, storage.KeyHero)),
		NewlyLaunched:    NormalizeNewlyLaunched(s.loadRaw(ctx, storage.KeyNewlyLaunched)),
		TrendingProjects: NormalizeTrending(s.loadRaw(ctx, storage.KeyTrending)),
		Spotlight:        NormalizeSpotlight(s.loadRaw(ctx, storage.KeySpotlight)),
		WhyChooseUs:      NormalizeWhyChooseUs(s.loadRaw(ctx, storage.KeyWhyChooseUs)),
		VirtualTour:      NormalizeVirtualTour(s.loadRaw(ctx, storage.KeyVirtualTour)),
		Banks:            NormalizeBanks(s.loadRaw(ctx, storage.KeyBanks)),
		Blogs:            NormalizeBlogs(s.loadRaw(ctx, storage.KeyBlogs)),
		Zones:            NormalizeZones(s.loadRaw(ctx, storage.KeyZones)),
		FAQs:             NormalizeFAQs(s.loadRaw(ctx, storage.KeyFAQs)),
		Neighborhoods:    NormalizeNeighborhoods(s.loadRaw(ctx, storage.KeyNeighborhoods)),
		Brand:            NormalizeBrand(s.loadRaw(ctx, storage.KeyBrand)),
		ProjectDetails:   NormalizeProject(s.loadRaw(ctx, storage.KeyProjectDetails), 1),
		Projects:         NormalizeProjects(s.loadRaw(ctx, storage.KeyProjects), s.idClock.Load()),
	}
}

func (s *Store) loadRaw(ctx context.Context, key string) []byte {
	raw, err := s.adapter.Load(ctx, key)
	if err != nil {
		log.Printf("⚠️  Failed to load %s, falling back to defaults: %v", key, err)
		return nil
	}
	return raw
}

// persist serializes value under key and broadcasts the change
func (s *Store) persist(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.adapter.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	s.broadcast(key)
	return nil
}

// UpdateHero replaces the hero section
func (s *Store) UpdateHero(ctx context.Context, data models.HeroSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Hero = data
	return s.persist(ctx, storage.KeyHero, data)
}

// UpdateNewlyLaunched replaces the newly launched section
func (s *Store) UpdateNewlyLaunched(ctx context.Context, data models.NewlyLaunchedSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.NewlyLaunched = data
	return s.persist(ctx, storage.KeyNewlyLaunched, data)
}

// UpdateTrending replaces the trending projects section
func (s *Store) UpdateTrending(ctx context.Context, data models.TrendingProjectsSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.TrendingProjects = data
	return s.persist(ctx, storage.KeyTrending, data)
}

// UpdateSpotlight replaces the spotlight project section
func (s *Store) UpdateSpotlight(ctx context.Context, data models.SpotlightProjectSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Spotlight = data
	return s.persist(ctx, storage.KeySpotlight, data)
}

// UpdateWhyChooseUs replaces the why-choose-us section
func (s *Store) UpdateWhyChooseUs(ctx context.Context, data models.WhyChooseUsSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.WhyChooseUs = data
	return s.persist(ctx, storage.KeyWhyChooseUs, data)
}

// UpdateVirtualTour replaces the virtual tour section
func (s *Store) UpdateVirtualTour(ctx context.Context, data models.VirtualTourSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.VirtualTour = data
	return s.persist(ctx, storage.KeyVirtualTour, data)
}

// UpdateBanks replaces the partner banks section
func (s *Store) UpdateBanks(ctx context.Context, data models.BanksSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Banks = data
	return s.persist(ctx, storage.KeyBanks, data)
}

// UpdateBlogs replaces the blogs section
func (s *Store) UpdateBlogs(ctx context.Context, data models.BlogsSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Blogs = data
	return s.persist(ctx, storage.KeyBlogs, data)
}

// UpdateZones replaces the homes-in-every-zone section
func (s *Store) UpdateZones(ctx context.Context, data models.ZonesSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Zones = data
	return s.persist(ctx, storage.KeyZones, data)
}

// UpdateFAQs replaces the FAQ section
func (s *Store) UpdateFAQs(ctx context.Context, data models.FAQSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.FAQs = data
	return s.persist(ctx, storage.KeyFAQs, data)
}

// UpdateNeighborhoods replaces the discover neighborhoods section
func (s *Store) UpdateNeighborhoods(ctx context.Context, data models.NeighborhoodsSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Neighborhoods = data
	return s.persist(ctx, storage.KeyNeighborhoods, data)
}

// UpdateBrand replaces the brand/footer section
func (s *Store) UpdateBrand(ctx context.Context, data models.BrandSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Brand = data
	return s.persist(ctx, storage.KeyBrand, data)
}

// UpdateProjectDetails writes the legacy singleton. The collection stays
// authoritative: when a collection entry shares the singleton's id it is
// updated too, so the two views cannot drift apart.
func (s *Store) UpdateProjectDetails(ctx context.Context, data models.ProjectDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ProjectDetails = data
	if err := s.persist(ctx, storage.KeyProjectDetails, data); err != nil {
		return err
	}

	for i := range s.data.Projects {
		if s.data.Projects[i].ID == data.ID {
			s.data.Projects[i] = data
			return s.persist(ctx, storage.KeyProjects, s.data.Projects)
		}
	}
	return nil
}

// AddProject creates a project by merging the partial JSON body over the
// default record, assigns a fresh id, appends it to the collection and
// persists. The created record is returned so the caller can open it for
// editing immediately.
func (s *Store) AddProject(ctx context.Context, partial json.RawMessage) (models.ProjectDetails, error) {
	id := s.NextID()
	project := NormalizeProject(partial, id)
	project.ID = id // a partial carrying its own id does not evade the fresh one

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Projects = append(s.data.Projects, project)
	if err := s.persistProjects(ctx); err != nil {
		return models.ProjectDetails{}, err
	}
	return project, nil
}

// UpdateProjectByID replaces the project with the matching id. A missing
// id is a silent no-op: the collection is left untouched.
func (s *Store) UpdateProjectByID(ctx context.Context, id int64, data models.ProjectDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Projects {
		if s.data.Projects[i].ID == id {
			data.ID = id
			s.data.Projects[i] = data
			return s.persistProjects(ctx)
		}
	}
	return nil
}

// DeleteProjectByID removes the project with the matching id. There is no
// guard against deleting the last project; consumers fall back to the
// legacy singleton when the collection is empty.
func (s *Store) DeleteProjectByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Projects {
		if s.data.Projects[i].ID == id {
			s.data.Projects = append(s.data.Projects[:i], s.data.Projects[i+1:]...)
			return s.persistProjects(ctx)
		}
	}
	return nil
}

// ProjectByID returns the project with the matching id from the
// collection, falling back to the legacy singleton when the collection
// is empty.
func (s *Store) ProjectByID(id int64) (models.ProjectDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.data.Projects {
		if s.data.Projects[i].ID == id {
			return s.data.Projects[i], true
		}
	}
	if len(s.data.Projects) == 0 && s.data.ProjectDetails.ID == id {
		return s.data.ProjectDetails, true
	}
	return models.ProjectDetails{}, false
}

// persistProjects writes the collection and mirrors its first entry into
// the legacy singleton key. Callers must hold s.mu.
func (s *Store) persistProjects(ctx context.Context) error {
	if err := s.persist(ctx, storage.KeyProjects, s.data.Projects); err != nil {
		return err
	}
	if len(s.data.Projects) > 0 {
		s.data.ProjectDetails = s.data.Projects[0]
		if err := s.persist(ctx, storage.KeyProjectDetails, s.data.ProjectDetails); err != nil {
			return err
		}
	}
	return nil
}

// Subscribe registers a change listener. The channel receives the storage
// key of each changed section; slow consumers miss notifications rather
// than blocking writers. The returned cancel func must be called when the
// consumer goes away.
func (s *Store) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 16)

	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Store) broadcast(key string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- key:
		default:
		}
	}
}

// Run consumes the adapter's external-change channel until ctx ends.
// Each notification refreshes the aggregate from storage and is
// rebroadcast to in-process subscribers, mirroring how another tab's
// storage event triggers a reload.
func (s *Store) Run(ctx context.Context) error {
	watch, err := s.adapter.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start content watch: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key, ok := <-watch:
			if !ok {
				return nil
			}
			log.Printf("🔄 External change on %s, reloading content", key)
			s.Refresh(ctx)
			s.broadcast(key)
		}
	}
}
