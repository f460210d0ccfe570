// internal/storage/store.go
package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"attendance_backend/internal/logsync"
	"attendance_backend/internal/models"
)

// Store is the gorm-backed persistence layer for attendance logs. It
// implements logsync.Index plus the read path.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{DB: db} }

func (s *Store) Lookup(ctx context.Context, clientID string) (*models.AttendanceLog, error) {
	var rec models.AttendanceLog
	err := s.DB.WithContext(ctx).Where("client_id = ?", clientID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert serializes writers on one client ID with a row lock; the unique
// index on client_id backstops the insert race. Losing that race means the
// row exists now, so a single retry lands on the replace path, where the
// last-write-wins re-check keeps the already-committed record authoritative.
func (s *Store) Upsert(ctx context.Context, rec *models.AttendanceLog) error {
	err := s.upsertTx(ctx, rec)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = s.upsertTx(ctx, rec)
	}
	return err
}

func (s *Store) upsertTx(ctx context.Context, rec *models.AttendanceLog) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.AttendanceLog
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("client_id = ?", rec.ClientID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(rec).Error
		}
		if err != nil {
			return err
		}
		if existing.UserID != rec.UserID {
			return logsync.ErrOwnerMismatch
		}
		// Re-check last-write-wins under the lock: a concurrent batch may
		// have committed a newer record after the caller's lookup. The
		// stored record wins and is handed back to the caller.
		if !rec.ClientTimestamp.After(existing.ClientTimestamp) {
			*rec = existing
			return nil
		}
		rec.ID = existing.ID
		return tx.Save(rec).Error
	})
}

// ListByOwner returns one user's logs with ClientTimestamp inside the
// inclusive [from, to] window (either bound optional), newest first, capped
// at limit.
func (s *Store) ListByOwner(ctx context.Context, userID uint, from, to *time.Time, limit int) ([]models.AttendanceLog, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("client_timestamp >= ?", *from)
	}
	if to != nil {
		q = q.Where("client_timestamp <= ?", *to)
	}
	var rows []models.AttendanceLog
	err := q.Order("client_timestamp desc").Limit(limit).Find(&rows).Error
	return rows, err
}

func (s *Store) TouchLastSync(ctx context.Context, userID uint, at time.Time) error {
	return s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Update("last_sync_at", at).Error
}
