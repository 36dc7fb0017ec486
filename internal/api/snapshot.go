package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SnapshotInfoResponse 自動存檔資訊
type SnapshotInfoResponse struct {
	Exists    bool  `json:"exists"`
	Timestamp int64 `json:"timestamp"` // Unix 毫秒
}

// GetSnapshotInfo 查詢是否有自動存檔
// GET /api/snapshot
func (h *Handler) GetSnapshotInfo(c *gin.Context) {
	ts, ok, err := h.store.SnapshotTimestamp()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, SnapshotInfoResponse{
		Exists:    ok,
		Timestamp: ts,
	})
}

// SaveSnapshot 立即存檔
// POST /api/snapshot/save
func (h *Handler) SaveSnapshot(c *gin.Context) {
	state := h.session.Snapshot()
	if err := h.store.SaveSnapshot(state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "存檔失敗: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timestamp": state.Timestamp})
}

// RestoreSnapshot 還原自動存檔，整體取代目前狀態
// POST /api/snapshot/restore
func (h *Handler) RestoreSnapshot(c *gin.Context) {
	state, err := h.store.LoadSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取存檔失敗: " + err.Error()})
		return
	}
	if state == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "沒有可還原的存檔"})
		return
	}

	h.session.Restore(state)
	c.JSON(http.StatusOK, gin.H{"timestamp": state.Timestamp})
}
