package processor

import (
	"strings"

	"bonuscalc/internal/model"
)

// eligibleForReward 第一、二階段共用的資格判定
// 客戶編號缺失或為字面 "undefined"、有欠款、單價為零、
// 以及奶水罐瓶裝的列，一律不具資格
func eligibleForReward(row model.RawRow) bool {
	cid := row.Str(model.ColCustomerID...)
	if cid == "" || cid == "undefined" {
		return false
	}

	if row.Num(model.ColDebt...) > 0 {
		return false
	}

	if row.Num(model.ColUnitPrice...) == 0 {
		return false
	}

	cat1 := strings.TrimSpace(row.Str(model.ColCat1...))
	unit := strings.TrimSpace(row.Str(model.ColUnit...))
	if cat1 == milkLiquidCat1 && (unit == "罐" || unit == "瓶") {
		return false
	}

	return true
}

// ticketDateCode 從單號第 5-6 位擷取兩碼日期，長度不足補 "??"
func ticketDateCode(ticketNo string) string {
	runes := []rune(ticketNo)
	if len(runes) < 7 {
		return "??"
	}
	return string(runes[5:7])
}

// salesPersonOf 取銷售人員名稱，缺失時歸入 Unknown
func salesPersonOf(row model.RawRow) string {
	if name := row.Str(model.ColSalesPerson...); name != "" {
		return name
	}
	return "Unknown"
}
