package api

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"bonuscalc/internal/exporter"
)

const downloadTTL = 10 * time.Minute

// ExportRequest 匯出請求，persons 為空時使用勾選名單
type ExportRequest struct {
	Persons []string `json:"persons"`
}

// ExportResponse 匯出回應
type ExportResponse struct {
	Token    string `json:"token"`
	Filename string `json:"filename"`
}

// Export 產生報表檔並回傳下載憑證
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	if !h.session.HasData() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "尚未匯入銷售報表"})
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的請求內容"})
		return
	}

	if len(req.Persons) > 0 {
		h.session.SelectPersons(req.Persons)
	}

	data, selected := h.session.ExportView()
	if len(selected) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "請至少選擇一位銷售人員進行匯出"})
		return
	}

	file, err := exporter.NewExporter().Export(data, selected)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "產生報表失敗: " + err.Error()})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("%s_%s.xlsx", h.prefix, time.Now().Format("2006-01-02"))
	filePath := filepath.Join(h.exportDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), filename))

	if err := file.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "寫入報表檔失敗: " + err.Error()})
		return
	}

	token := h.downloads.put(filePath, filename, downloadTTL)
	c.JSON(http.StatusOK, ExportResponse{
		Token:    token,
		Filename: filename,
	})
}

// DownloadExport 下載已產生的報表檔
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	item, ok := h.downloads.get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下載連結不存在或已過期"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(item.filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(item.filePath)
}
