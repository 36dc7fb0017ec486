package api

import (
	"github.com/gin-gonic/gin"

	"bonuscalc/internal/session"
	"bonuscalc/internal/store"
)

// Handler API 處理器
type Handler struct {
	session   *session.Session
	store     *store.Store
	exportDir string
	prefix    string
	downloads *exportDownloadStore
}

// NewHandler 建立 API 處理器
func NewHandler(sess *session.Session, st *store.Store, exportDir, filenamePrefix string) *Handler {
	return &Handler{
		session:   sess,
		store:     st,
		exportDir: exportDir,
		prefix:    filenamePrefix,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 註冊 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系統狀態
	router.GET("/status", h.GetStatus)

	// 設定清單匯入
	router.POST("/config/exclusions", h.ImportExclusions)
	router.POST("/config/rewards", h.ImportRewards)

	// 銷售報表匯入 (SSE)
	router.POST("/import", h.Import)

	// 銷售人員
	router.GET("/persons", h.ListPersons)
	router.POST("/persons/select", h.SelectPersons)
	router.POST("/persons/active", h.SetActivePerson)
	router.GET("/persons/:name", h.GetPersonData)
	router.GET("/persons/:name/totals", h.GetPersonTotals)

	// 單列編輯
	router.PATCH("/persons/:name/stage1/:id/status", h.UpdateStage1Status)
	router.POST("/persons/:name/stage2/:id/toggle-delete", h.ToggleStage2Deleted)
	router.PATCH("/persons/:name/stage2/:id/reward", h.SetStage2CustomReward)

	// 報表匯出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)

	// 自動存檔
	router.GET("/snapshot", h.GetSnapshotInfo)
	router.POST("/snapshot/save", h.SaveSnapshot)
	router.POST("/snapshot/restore", h.RestoreSnapshot)
}
