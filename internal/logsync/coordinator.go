// internal/logsync/coordinator.go
package logsync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"attendance_backend/internal/models"
)

// LogInput is one candidate record as submitted by a device. Required scalar
// fields are pointers so shape validation can tell absent from zero.
type LogInput struct {
	ClientID             string     `json:"clientId"`
	ActionType           string     `json:"actionType"`
	ClientTimestamp      *time.Time `json:"clientTimestamp"`
	Latitude             *float64   `json:"latitude"`
	Longitude            *float64   `json:"longitude"`
	Accuracy             *float64   `json:"accuracy"`
	WithinGeofence       *bool      `json:"withinGeofence"`
	DistanceFromGeofence *float64   `json:"distanceFromGeofence"`
	Notes                string     `json:"notes"`
	DeviceID             string     `json:"deviceId"`
	NetworkType          string     `json:"networkType"`
}

func (in LogInput) validate() error {
	if in.ClientID == "" {
		return errors.New("clientId required")
	}
	if !models.ActionType(in.ActionType).Valid() {
		return fmt.Errorf("invalid actionType %q", in.ActionType)
	}
	if in.ClientTimestamp == nil {
		return errors.New("clientTimestamp required")
	}
	if in.Latitude == nil || in.Longitude == nil || in.Accuracy == nil {
		return errors.New("latitude, longitude and accuracy required")
	}
	if in.WithinGeofence == nil {
		return errors.New("withinGeofence required")
	}
	return nil
}

// SyncedRecord tells the client one log is now represented server-side,
// whether it was just created, overwritten or already current.
type SyncedRecord struct {
	ClientID        string    `json:"clientId"`
	ServerID        string    `json:"serverId"`
	ServerTimestamp time.Time `json:"serverTimestamp"`
}

// Outcome aggregates per-record results for one batch.
type Outcome struct {
	Synced []SyncedRecord
	Failed []string
}

// Coordinator applies a batch of candidate logs for one user against the
// index, one record at a time in submission order. Records are independent:
// one record's failure never aborts its siblings, and applied records stay
// applied if the request is cancelled midway.
type Coordinator struct {
	Index Index
}

func NewCoordinator(idx Index) *Coordinator { return &Coordinator{Index: idx} }

func (co *Coordinator) SyncBatch(ctx context.Context, userID uint, logs []LogInput) Outcome {
	out := Outcome{
		Synced: make([]SyncedRecord, 0, len(logs)),
		Failed: []string{},
	}

	for _, in := range logs {
		rec, err := co.syncOne(ctx, userID, in)
		if err != nil {
			log.Printf("sync: record %q failed: %v", in.ClientID, err)
			out.Failed = append(out.Failed, in.ClientID)
			continue
		}
		out.Synced = append(out.Synced, SyncedRecord{
			ClientID:        rec.ClientID,
			ServerID:        rec.ID,
			ServerTimestamp: rec.ServerTimestamp,
		})
	}
	return out
}

func (co *Coordinator) syncOne(ctx context.Context, userID uint, in LogInput) (*models.AttendanceLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := co.Index.Lookup(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	if Resolve(*in.ClientTimestamp, existing) == KeepExisting {
		// Ownership is checked even on the no-op branch: a foreign token is
		// rejected, not reported as synced with someone else's record.
		if existing.UserID != userID {
			return nil, ErrOwnerMismatch
		}
		return existing, nil
	}

	rec := &models.AttendanceLog{
		ID:                   uuid.NewString(),
		UserID:               userID,
		ClientID:             in.ClientID,
		ActionType:           models.ActionType(in.ActionType),
		ClientTimestamp:      *in.ClientTimestamp,
		ServerTimestamp:      time.Now().UTC(),
		Latitude:             *in.Latitude,
		Longitude:            *in.Longitude,
		Accuracy:             *in.Accuracy,
		WithinGeofence:       *in.WithinGeofence,
		DistanceFromGeofence: in.DistanceFromGeofence,
		Notes:                in.Notes,
		DeviceID:             in.DeviceID,
		NetworkType:          in.NetworkType,
	}
	if err := co.Index.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
