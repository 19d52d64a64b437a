package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"devconnector-backend/internal/profile/domain"

	"github.com/google/uuid"
)

// memoryProfileRepository keeps profiles in process memory, for DB_DRIVER=memory and tests.
type memoryProfileRepository struct {
	mu       sync.RWMutex
	byUserID map[string]*domain.Profile
	owners   OwnerFinder
}

// NewMemoryProfileRepository creates an empty in-memory store that populates owners through owners.
func NewMemoryProfileRepository(owners OwnerFinder) ProfileRepository {
	return &memoryProfileRepository{
		byUserID: make(map[string]*domain.Profile),
		owners:   owners,
	}
}

func (r *memoryProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	stored, ok := r.byUserID[userID]
	var profile *domain.Profile
	if ok {
		profile = stored.Clone()
	}
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if err := r.populate(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *memoryProfileRepository) FindAll(ctx context.Context) ([]*domain.Profile, error) {
	r.mu.RLock()
	profiles := make([]*domain.Profile, 0, len(r.byUserID))
	for _, p := range r.byUserID {
		profiles = append(profiles, p.Clone())
	}
	r.mu.RUnlock()

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Date.Before(profiles[j].Date)
	})
	for _, p := range profiles {
		if err := r.populate(ctx, p); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (r *memoryProfileRepository) Create(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.Date = time.Now()
	r.store(profile)
	return nil
}

func (r *memoryProfileRepository) Update(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store(profile)
	return nil
}

func (r *memoryProfileRepository) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUserID, userID)
	return nil
}

func (r *memoryProfileRepository) store(profile *domain.Profile) {
	stored := profile.Clone()
	stored.User = nil
	r.byUserID[profile.UserID] = stored
}

func (r *memoryProfileRepository) populate(ctx context.Context, profile *domain.Profile) error {
	if r.owners == nil {
		return nil
	}
	owner, err := r.owners.FindOwner(ctx, profile.UserID)
	if err != nil {
		return err
	}
	profile.User = owner
	return nil
}
