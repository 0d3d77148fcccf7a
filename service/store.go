package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/greeshma-prabhu/marketing-tool/config"
	"github.com/greeshma-prabhu/marketing-tool/model"
)

// OnepagerStore is an in-memory store for generated onepagers
// In production, this should be replaced with a database
type OnepagerStore struct {
	onepagers    map[string]*model.Onepager
	mu           sync.RWMutex
	maxOnepagers int // Maximum onepagers to keep, 0 = unlimited
}

var (
	globalStore *OnepagerStore
	storeOnce   sync.Once
)

// InitOnepagerStore initializes the global onepager store with configuration
func InitOnepagerStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxOnepagers := cfg.MaxOnepagers
		if maxOnepagers < 0 {
			maxOnepagers = 0
		}
		globalStore = &OnepagerStore{
			onepagers:    make(map[string]*model.Onepager),
			maxOnepagers: maxOnepagers,
		}
		slog.Info("onepager store initialized", "max_onepagers", maxOnepagers)
	})
}

// GetOnepagerStore returns the global onepager store, initializing it with
// default settings if InitOnepagerStore was never called.
func GetOnepagerStore() *OnepagerStore {
	storeOnce.Do(func() {
		globalStore = &OnepagerStore{
			onepagers:    make(map[string]*model.Onepager),
			maxOnepagers: 100,
		}
		slog.Info("onepager store initialized with defaults")
	})
	return globalStore
}

// Save stores a snapshot of the record. The caller's pointer stays detached
// from later store updates.
func (s *OnepagerStore) Save(op *model.Onepager) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *op
	stored.UpdatedAt = time.Now()
	s.onepagers[stored.ID] = &stored

	s.cleanupIfNeeded()
}

// Get returns a snapshot of the record, or nil. Callers read the copy
// without racing the processing goroutine's status updates.
func (s *OnepagerStore) Get(id string) *model.Onepager {
	s.mu.RLock()
	defer s.mu.RUnlock()

	op, ok := s.onepagers[id]
	if !ok {
		return nil
	}
	snapshot := *op
	return &snapshot
}

// GetByOwner returns snapshots of the owner's records, newest first.
func (s *OnepagerStore) GetByOwner(owner string) []*model.Onepager {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Onepager
	for _, op := range s.onepagers {
		if op.Owner == owner {
			snapshot := *op
			result = append(result, &snapshot)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *OnepagerStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.onepagers, id)
}

func (s *OnepagerStore) UpdateStatus(id, status string, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if op, ok := s.onepagers[id]; ok {
		op.Status = status
		op.ErrorMsg = errMsg
		op.UpdatedAt = time.Now()
	}
}

// UpdateResult stores the generation output and marks the record completed.
func (s *OnepagerStore) UpdateResult(id string, slots *model.CopySlots, qc *model.QCResult, document, objectKey, documentURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if op, ok := s.onepagers[id]; ok {
		op.Copy = slots
		op.QC = qc
		op.Document = document
		op.ObjectKey = objectKey
		op.DocumentURL = documentURL
		op.Status = model.StatusCompleted
		op.UpdatedAt = time.Now()
	}
}

// cleanupIfNeeded removes oldest onepagers if store exceeds maxOnepagers
// Must be called with lock held
func (s *OnepagerStore) cleanupIfNeeded() {
	if s.maxOnepagers <= 0 {
		return // Unlimited
	}

	if len(s.onepagers) <= s.maxOnepagers {
		return
	}

	// Sort onepagers by creation time
	onepagers := make([]*model.Onepager, 0, len(s.onepagers))
	for _, op := range s.onepagers {
		onepagers = append(onepagers, op)
	}
	sort.Slice(onepagers, func(i, j int) bool {
		return onepagers[i].CreatedAt.Before(onepagers[j].CreatedAt)
	})

	// Remove oldest onepagers
	removeCount := len(onepagers) - s.maxOnepagers
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old onepager",
			"onepager_id", onepagers[i].ID,
			"created_at", onepagers[i].CreatedAt,
		)
		delete(s.onepagers, onepagers[i].ID)
	}
}

// Count returns the number of onepagers in the store
func (s *OnepagerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.onepagers)
}
