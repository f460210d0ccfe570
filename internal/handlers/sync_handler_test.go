package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance_backend/internal/handlers"
	"attendance_backend/internal/storage"
)

func newTestRouter(store handlers.LogStore, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })

	h := handlers.NewSyncHandler(store)
	r.POST("/api/sync-logs", h.SyncLogs)
	r.GET("/api/attendance-logs", h.ListLogs)
	return r
}

type syncResp struct {
	Success       bool `json:"success"`
	SyncedRecords []struct {
		ClientID        string    `json:"clientId"`
		ServerID        string    `json:"serverId"`
		ServerTimestamp time.Time `json:"serverTimestamp"`
	} `json:"syncedRecords"`
	FailedRecordIDs []string `json:"failedRecordIds"`
	Message         string   `json:"message"`
}

func postSync(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, syncResp) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sync-logs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp syncResp
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func logJSON(clientID string, ts time.Time) string {
	return fmt.Sprintf(`{
		"clientId": %q,
		"actionType": "clockIn",
		"clientTimestamp": %q,
		"latitude": 37.7749,
		"longitude": -122.4194,
		"accuracy": 10,
		"withinGeofence": true
	}`, clientID, ts.Format(time.RFC3339))
}

func TestSyncLogsRejectsMalformedBatch(t *testing.T) {
	r := newTestRouter(storage.NewMemoryStore(), 7)

	for _, body := range []string{`{}`, `{"logs": 5}`, `{"logs": "x"}`, `not json`} {
		w, _ := postSync(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Logs array is required")
	}
}

func TestSyncLogsIdempotentResubmission(t *testing.T) {
	store := storage.NewMemoryStore()
	r := newTestRouter(store, 7)
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	body := fmt.Sprintf(`{"logs": [%s]}`, logJSON("x1", ts))

	w, first := postSync(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, first.Success)
	require.Len(t, first.SyncedRecords, 1)
	require.Empty(t, first.FailedRecordIDs)
	assert.Equal(t, "Synced 1/1 records", first.Message)

	w, second := postSync(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, second.SyncedRecords, 1)
	assert.Equal(t, first.SyncedRecords[0].ServerID, second.SyncedRecords[0].ServerID)
	assert.Equal(t, 1, store.Len())
}

func TestSyncLogsReportsPerRecordFailures(t *testing.T) {
	r := newTestRouter(storage.NewMemoryStore(), 7)
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	body := fmt.Sprintf(`{"logs": [%s, {"clientId": "bad", "actionType": "clockIn"}]}`,
		logJSON("x1", ts))

	w, resp := postSync(t, r, body)
	require.Equal(t, http.StatusOK, w.Code, "per-record failure is not a transport failure")
	assert.True(t, resp.Success)
	require.Len(t, resp.SyncedRecords, 1)
	assert.Equal(t, []string{"bad"}, resp.FailedRecordIDs)
	assert.Equal(t, "Synced 1/2 records", resp.Message)
}

func TestListLogsWindowAndOrder(t *testing.T) {
	store := storage.NewMemoryStore()
	r := newTestRouter(store, 7)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var entries []string
	for i := 0; i < 4; i++ {
		entries = append(entries, logJSON(fmt.Sprintf("x%d", i), base.AddDate(0, 0, i)))
	}
	w, _ := postSync(t, r, fmt.Sprintf(`{"logs": [%s]}`, strings.Join(entries, ",")))
	require.Equal(t, http.StatusOK, w.Code)

	url := fmt.Sprintf("/api/attendance-logs?from=%s&to=%s",
		base.AddDate(0, 0, 1).Format(time.RFC3339),
		base.AddDate(0, 0, 2).Format(time.RFC3339))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Logs    []struct {
			ClientID        string    `json:"clientId"`
			ClientTimestamp time.Time `json:"clientTimestamp"`
		} `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "x2", resp.Logs[0].ClientID)
	assert.Equal(t, "x1", resp.Logs[1].ClientID)
}

func TestListLogsDateOnlyBounds(t *testing.T) {
	store := storage.NewMemoryStore()
	r := newTestRouter(store, 7)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var entries []string
	for i := 0; i < 4; i++ {
		entries = append(entries, logJSON(fmt.Sprintf("x%d", i), base.AddDate(0, 0, i)))
	}
	w, _ := postSync(t, r, fmt.Sprintf(`{"logs": [%s]}`, strings.Join(entries, ",")))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/attendance-logs?from=2025-06-02&to=2025-06-03", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
		Logs  []struct {
			ClientID string `json:"clientId"`
		} `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "x2", resp.Logs[0].ClientID)
	assert.Equal(t, "x1", resp.Logs[1].ClientID)
}

func TestListLogsRejectsBadBounds(t *testing.T) {
	r := newTestRouter(storage.NewMemoryStore(), 7)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attendance-logs?from=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncLogsScopedToSessionUser(t *testing.T) {
	store := storage.NewMemoryStore()
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	rA := newTestRouter(store, 1)
	w, _ := postSync(t, rA, fmt.Sprintf(`{"logs": [%s]}`, logJSON("x1", ts)))
	require.Equal(t, http.StatusOK, w.Code)

	// Same token resubmitted by another session owner is a failure entry.
	rB := newTestRouter(store, 2)
	w, resp := postSync(t, rB, fmt.Sprintf(`{"logs": [%s]}`, logJSON("x1", ts.Add(time.Hour))))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.SyncedRecords)
	assert.Equal(t, []string{"x1"}, resp.FailedRecordIDs)
}
