package logsync

import (
	"time"

	"attendance_backend/internal/models"
)

// Decision is the outcome of comparing an incoming log against the record
// already stored under the same client ID.
type Decision int

const (
	Create Decision = iota
	Overwrite
	KeepExisting
)

// Resolve is whole-record last-write-wins on the device timestamp. Only a
// strictly newer incoming timestamp overwrites; a tie keeps the stored record.
// Known limitation: two distinct events sharing a client ID and an identical
// timestamp at the device's clock resolution cannot both survive.
func Resolve(incoming time.Time, existing *models.AttendanceLog) Decision {
	if existing == nil {
		return Create
	}
	if incoming.After(existing.ClientTimestamp) {
		return Overwrite
	}
	return KeepExisting
}
