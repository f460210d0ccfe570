// internal/handlers/sync_handler.go
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"attendance_backend/internal/logsync"
	"attendance_backend/internal/models"
)

// maxQueryLogs caps a single read to bound response size.
const maxQueryLogs = 1000

// LogStore is what the sync endpoints need from persistence: the idempotency
// index for writes, the owner-scoped read path, and the last-sync marker.
type LogStore interface {
	logsync.Index
	ListByOwner(ctx context.Context, userID uint, from, to *time.Time, limit int) ([]models.AttendanceLog, error)
	TouchLastSync(ctx context.Context, userID uint, at time.Time) error
}

type SyncHandler struct {
	Store       LogStore
	Coordinator *logsync.Coordinator
}

func NewSyncHandler(store LogStore) *SyncHandler {
	return &SyncHandler{Store: store, Coordinator: logsync.NewCoordinator(store)}
}

type SyncReq struct {
	Logs            []logsync.LogInput `json:"logs"`
	ClientTimestamp *time.Time         `json:"clientTimestamp"`
}

// SyncLogs applies one batch for the authenticated user. A structurally
// invalid payload fails the whole request; anything after that is per-record
// and reported in syncedRecords / failedRecordIds.
func (h *SyncHandler) SyncLogs(c *gin.Context) {
	var req SyncReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Logs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Logs array is required"})
		return
	}

	userID := c.GetUint("user_id")
	out := h.Coordinator.SyncBatch(c.Request.Context(), userID, req.Logs)

	now := time.Now().UTC()
	if err := h.Store.TouchLastSync(c.Request.Context(), userID, now); err != nil {
		log.Printf("sync: touch last sync for user %d: %v", userID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"syncedRecords":   out.Synced,
		"failedRecordIds": out.Failed,
		"serverTimestamp": now,
		"message":         fmt.Sprintf("Synced %d/%d records", len(out.Synced), len(req.Logs)),
	})
}

// ListLogs returns the caller's logs in an optional [from, to] window on
// ClientTimestamp, newest first, capped at maxQueryLogs.
func (h *SyncHandler) ListLogs(c *gin.Context) {
	userID := c.GetUint("user_id")

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid from"})
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid to"})
		return
	}

	rows, err := h.Store.ListByOwner(c.Request.Context(), userID, from, to, maxQueryLogs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logs": rows, "count": len(rows)})
}

// parseTimeParam accepts RFC3339 bounds and bare dates like 2025-06-01,
// which mobile clients commonly send for day-range queries.
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
