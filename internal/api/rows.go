package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bonuscalc/internal/model"
)

// UpdateStage1StatusRequest 狀態變更請求
type UpdateStage1StatusRequest struct {
	Status model.Stage1Status `json:"status"`
}

// UpdateStage1Status 變更點數表單列狀態並重算點數
// PATCH /api/persons/:name/stage1/:id/status
func (h *Handler) UpdateStage1Status(c *gin.Context) {
	var req UpdateStage1StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的請求內容"})
		return
	}

	row, err := h.session.UpdateStage1Status(c.Param("name"), c.Param("id"), req.Status)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// ToggleStage2Deleted 切換獎勵表單列的軟刪除旗標
// POST /api/persons/:name/stage2/:id/toggle-delete
func (h *Handler) ToggleStage2Deleted(c *gin.Context) {
	row, err := h.session.ToggleStage2Deleted(c.Param("name"), c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// SetStage2CustomRewardRequest 獎勵覆寫請求，value 為自由輸入文字
type SetStage2CustomRewardRequest struct {
	Value string `json:"value"`
}

// SetStage2CustomReward 設定或清除獎勵覆寫金額
// PATCH /api/persons/:name/stage2/:id/reward
func (h *Handler) SetStage2CustomReward(c *gin.Context) {
	var req SetStage2CustomRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的請求內容"})
		return
	}

	row, err := h.session.SetStage2CustomReward(c.Param("name"), c.Param("id"), req.Value)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
