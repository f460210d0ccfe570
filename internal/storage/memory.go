package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"attendance_backend/internal/logsync"
	"attendance_backend/internal/models"
)

// MemoryStore holds attendance logs in memory behind a mutex. It implements
// the same surface as Store so tests can inject an isolated store per case.
type MemoryStore struct {
	mu       sync.Mutex
	logs     map[string]models.AttendanceLog // client id -> record
	lastSync map[uint]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		logs:     make(map[string]models.AttendanceLog),
		lastSync: make(map[uint]time.Time),
	}
}

func (m *MemoryStore) Lookup(_ context.Context, clientID string) (*models.AttendanceLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.logs[clientID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *MemoryStore) Upsert(_ context.Context, rec *models.AttendanceLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.logs[rec.ClientID]; ok {
		if existing.UserID != rec.UserID {
			return logsync.ErrOwnerMismatch
		}
		if !rec.ClientTimestamp.After(existing.ClientTimestamp) {
			*rec = existing
			return nil
		}
		rec.ID = existing.ID
	}
	m.logs[rec.ClientID] = *rec
	return nil
}

func (m *MemoryStore) ListByOwner(_ context.Context, userID uint, from, to *time.Time, limit int) ([]models.AttendanceLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rows []models.AttendanceLog
	for _, rec := range m.logs {
		if rec.UserID != userID {
			continue
		}
		if from != nil && rec.ClientTimestamp.Before(*from) {
			continue
		}
		if to != nil && rec.ClientTimestamp.After(*to) {
			continue
		}
		rows = append(rows, rec)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ClientTimestamp.After(rows[j].ClientTimestamp)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *MemoryStore) TouchLastSync(_ context.Context, userID uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSync[userID] = at
	return nil
}

// Len reports the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.logs)
}
