package model

import (
	"strconv"
	"strings"
)

// RawRow 銷售報表原始列
// 欄位名到儲存格值的開放映射，任何欄位都可能缺失
type RawRow map[string]any

// 邏輯欄位的標頭別名
// 同一邏輯欄位在不同報表版本中可能使用不同標頭，依序嘗試
var (
	ColSalesPerson  = []string{"銷售人員"}
	ColCustomerID   = []string{"客戶編號"}
	ColCustomerName = []string{"客戶名稱"}
	ColDebt         = []string{"本次欠款"}
	ColPoints       = []string{"員工點數", "點數"}
	ColUnitPrice    = []string{"單價"}
	ColCat1         = []string{"品類一"}
	ColUnit         = []string{"單位"}
	ColItemID       = []string{"品項編號"}
	ColItemName     = []string{"品項名稱", "品名"}
	ColQuantity     = []string{"數量"}
	ColTicketNo     = []string{"單號"}
	ColSalesDate    = []string{"銷售日期"}
	ColCat2         = []string{"品類二"}
	ColSubtotal     = []string{"小計"}
)

// Str 依序嘗試別名，回傳第一個非空字串值
func (r RawRow) Str(aliases ...string) string {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		s := toString(v)
		if s != "" {
			return s
		}
	}
	return ""
}

// Num 依序嘗試別名，回傳第一個非零數值
// 缺失或無法解析的值視為 0
func (r RawRow) Num(aliases ...string) float64 {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		n := toNumber(v)
		if n != 0 {
			return n
		}
	}
	return 0
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
