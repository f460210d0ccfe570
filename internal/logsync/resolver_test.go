package logsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"attendance_backend/internal/models"
)

func TestResolve(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	existing := &models.AttendanceLog{ClientTimestamp: base}

	require.Equal(t, Create, Resolve(base, nil))
	require.Equal(t, Overwrite, Resolve(base.Add(time.Second), existing))
	require.Equal(t, KeepExisting, Resolve(base, existing), "tie keeps the stored record")
	require.Equal(t, KeepExisting, Resolve(base.Add(-time.Second), existing))
}
