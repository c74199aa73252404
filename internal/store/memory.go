package store

import (
	"sync"
	"time"

	"github.com/AngelCh415/DASH_GO/internal/models"
)

// MemoryStore holds the current campaign snapshot. Ingest swaps the whole
// slice at once; readers aggregate from whatever snapshot is current, so a
// render pass never sees a half-ingested dataset.
type MemoryStore struct {
	mu        sync.RWMutex
	campaigns []models.Campaign
	fetchedAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace installs a fresh snapshot wholesale.
func (s *MemoryStore) Replace(campaigns []models.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = campaigns
	s.fetchedAt = time.Now().UTC()
}

// Snapshot returns the current campaign set and when it was fetched.
// Callers must treat the slice as read-only.
func (s *MemoryStore) Snapshot() ([]models.Campaign, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.campaigns, s.fetchedAt
}

// Len reports the number of campaigns in the current snapshot.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.campaigns)
}
