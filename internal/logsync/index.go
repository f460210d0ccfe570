// internal/logsync/index.go
package logsync

import (
	"context"
	"errors"

	"attendance_backend/internal/models"
)

// ErrOwnerMismatch means the record stored under a client ID belongs to a
// different user than the submission. Surfaced per record, never auto-resolved.
var ErrOwnerMismatch = errors.New("client id already stored for a different user")

// Index maps a client-generated ID to at most one stored attendance log.
// The index, not its callers, owns that invariant: Upsert must be atomic so
// that concurrent batches racing on one client ID end with a single record.
type Index interface {
	// Lookup returns the stored record for clientID, or nil when none exists.
	Lookup(ctx context.Context, clientID string) (*models.AttendanceLog, error)

	// Upsert inserts rec, or replaces the record stored under rec.ClientID in
	// place when rec.ClientTimestamp is strictly newer. The comparison happens
	// inside the atomic operation, so a caller holding a stale lookup cannot
	// clobber a record a concurrent batch committed in between; when the
	// stored record wins it is copied back into rec. On replace the stored
	// primary key survives and is written back into rec. Returns
	// ErrOwnerMismatch when the stored record has a different UserID.
	Upsert(ctx context.Context, rec *models.AttendanceLog) error
}
