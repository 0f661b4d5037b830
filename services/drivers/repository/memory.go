package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/piresc/dispatch/internal/pkg/apperrors"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// MemoryDriverRepo is a driver directory held in process, seeded from configuration
type MemoryDriverRepo struct {
	mu        sync.RWMutex
	byAccount map[string]*models.DriverProfile
	byProfile map[string]*models.DriverProfile
}

// NewMemoryDriverRepository creates a directory containing profiles
func NewMemoryDriverRepository(profiles []models.DriverProfile) *MemoryDriverRepo {
	r := &MemoryDriverRepo{
		byAccount: make(map[string]*models.DriverProfile),
		byProfile: make(map[string]*models.DriverProfile),
	}
	for _, p := range profiles {
		r.Put(p)
	}
	return r
}

// Put adds or replaces a profile
func (r *MemoryDriverRepo) Put(p models.DriverProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byAccount[p.AccountID]; ok {
		delete(r.byProfile, old.ProfileID)
	}
	stored := p
	r.byAccount[p.AccountID] = &stored
	r.byProfile[p.ProfileID] = &stored
}

func (r *MemoryDriverRepo) GetByAccountID(_ context.Context, accountID string) (*models.DriverProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byAccount[accountID]
	if !ok {
		return nil, apperrors.NotFound("driver", accountID)
	}
	out := *p
	return &out, nil
}

func (r *MemoryDriverRepo) GetByProfileID(_ context.Context, profileID string) (*models.DriverProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byProfile[profileID]
	if !ok {
		return nil, apperrors.NotFound("driver", profileID)
	}
	out := *p
	return &out, nil
}

func (r *MemoryDriverRepo) ListByAccountIDs(_ context.Context, accountIDs []string) ([]*models.DriverProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.DriverProfile, 0, len(accountIDs))
	for _, id := range accountIDs {
		if p, ok := r.byAccount[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemoryDriverRepo) ListEligible(_ context.Context) ([]*models.DriverProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.DriverProfile
	for _, p := range r.byAccount {
		if p.Eligible() {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}
