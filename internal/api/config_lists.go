package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bonuscalc/internal/importer"
	"bonuscalc/internal/model"
)

// ImportExclusions 匯入藥師點數排除清單
// POST /api/config/exclusions
func (h *Handler) ImportExclusions(c *gin.Context) {
	headers, rows, ok := h.readUploadedWorkbook(c)
	if !ok {
		return
	}

	list := importer.ParseExclusionList(headers, rows)
	h.session.SetExclusionList(list)

	c.JSON(http.StatusOK, gin.H{"count": len(list)})
}

// ImportRewards 匯入現金獎勵清單
// POST /api/config/rewards
func (h *Handler) ImportRewards(c *gin.Context) {
	_, rows, ok := h.readUploadedWorkbook(c)
	if !ok {
		return
	}

	rules := importer.ParseRewardRules(rows)
	h.session.SetRewardRules(rules)

	c.JSON(http.StatusOK, gin.H{"count": len(rules)})
}

// readUploadedWorkbook 讀取 multipart 上傳的活頁簿
func (h *Handler) readUploadedWorkbook(c *gin.Context) ([]string, []model.RawRow, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上傳檔案"})
		return nil, nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "開啟上傳檔案失敗"})
		return nil, nil, false
	}
	defer file.Close()

	headers, rows, err := importer.ReadWorkbook(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "讀取活頁簿失敗: " + err.Error()})
		return nil, nil, false
	}
	return headers, rows, true
}
