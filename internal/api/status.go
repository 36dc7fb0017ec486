package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bonuscalc/internal/model"
)

// Version 應用版本
const Version = "1.0.0"

// stage1StatusLabels 狀態碼到顯示文字的對照，只在邊界層使用
var stage1StatusLabels = map[model.Stage1Status]string{
	model.StatusDevelop:    "開發",
	model.StatusHalfYear:   "隔半年",
	model.StatusRepurchase: "回購",
	model.StatusDelete:     "刪除",
}

// StatusResponse 系統狀態回應
type StatusResponse struct {
	Version      string                        `json:"version"`
	ConfigReady  bool                          `json:"configReady"`  // 兩份設定清單是否已匯入
	HasData      bool                          `json:"hasData"`      // 是否已匯入銷售報表
	Persons      int                           `json:"persons"`      // 銷售人員數
	ActivePerson string                        `json:"activePerson"` // 當前檢視人員
	StatusLabels map[model.Stage1Status]string `json:"statusLabels"` // 點數表狀態顯示文字
}

// GetStatus 取得系統狀態
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Version:      Version,
		ConfigReady:  h.session.ConfigReady(),
		HasData:      h.session.HasData(),
		Persons:      len(h.session.Persons()),
		ActivePerson: h.session.ActivePerson(),
		StatusLabels: stage1StatusLabels,
	})
}
