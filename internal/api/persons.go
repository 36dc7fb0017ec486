package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bonuscalc/internal/session"
)

// PersonsResponse 銷售人員清單回應
type PersonsResponse struct {
	Persons      []string `json:"persons"`
	Selected     []string `json:"selected"`
	ActivePerson string   `json:"activePerson"`
}

// ListPersons 取得銷售人員清單與勾選狀態
// GET /api/persons
func (h *Handler) ListPersons(c *gin.Context) {
	c.JSON(http.StatusOK, PersonsResponse{
		Persons:      h.session.Persons(),
		Selected:     h.session.SelectedPersons(),
		ActivePerson: h.session.ActivePerson(),
	})
}

// SelectPersonsRequest 勾選名單請求
type SelectPersonsRequest struct {
	Persons []string `json:"persons"`
}

// SelectPersons 重設匯出勾選名單
// POST /api/persons/select
func (h *Handler) SelectPersons(c *gin.Context) {
	var req SelectPersonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的請求內容"})
		return
	}

	h.session.SelectPersons(req.Persons)
	c.JSON(http.StatusOK, gin.H{"selected": h.session.SelectedPersons()})
}

// SetActivePersonRequest 切換檢視人員請求
type SetActivePersonRequest struct {
	Person string `json:"person"`
}

// SetActivePerson 切換當前檢視的銷售人員
// POST /api/persons/active
func (h *Handler) SetActivePerson(c *gin.Context) {
	var req SetActivePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的請求內容"})
		return
	}

	if err := h.session.SetActivePerson(req.Person); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activePerson": req.Person})
}

// GetPersonData 取得單人三階段結果
// GET /api/persons/:name
func (h *Handler) GetPersonData(c *gin.Context) {
	data, err := h.session.PersonData(c.Param("name"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// PersonTotalsResponse 單人統計回應
type PersonTotalsResponse struct {
	Stage1Points float64 `json:"stage1Points"` // 未刪除列點數總和
	CashTotal    float64 `json:"cashTotal"`    // 現金總額
	VoucherCount float64 `json:"voucherCount"` // 禮券張數
}

// GetPersonTotals 取得單人點數與獎勵統計
// GET /api/persons/:name/totals
func (h *Handler) GetPersonTotals(c *gin.Context) {
	name := c.Param("name")

	points, err := h.session.Stage1TotalPoints(name)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	cash, vouchers, err := h.session.Stage2Totals(name)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, PersonTotalsResponse{
		Stage1Points: points,
		CashTotal:    cash,
		VoucherCount: vouchers,
	})
}

// respondSessionError 把 session 錯誤轉為對應的 HTTP 狀態
func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrPersonNotFound), errors.Is(err, session.ErrRowNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrInvalidStatus), errors.Is(err, session.ErrConfigMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
