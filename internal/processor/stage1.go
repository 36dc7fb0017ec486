package processor

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"bonuscalc/internal/model"
)

// Stage1 第一階段：點數表分類
// 從原始列中篩出計點資格列，重新分類並計算點數，
// 依分類優先度與日期排序，初始狀態一律為「開發」
func Stage1(rawData []model.RawRow, exclusionList []model.ExclusionItem) []*model.Stage1Row {
	excluded := make(map[string]struct{}, len(exclusionList))
	for _, item := range exclusionList {
		excluded[strings.TrimSpace(item.ItemID)] = struct{}{}
	}

	rows := make([]*model.Stage1Row, 0)

	for _, raw := range rawData {
		if !eligibleForReward(raw) {
			continue
		}

		points := raw.Num(model.ColPoints...)
		if points == 0 {
			continue
		}

		itemID := strings.TrimSpace(raw.Str(model.ColItemID...))
		if _, ok := excluded[itemID]; ok {
			continue
		}

		cat1 := strings.TrimSpace(raw.Str(model.ColCat1...))
		category, ok := CategoryMapping[cat1]
		if !ok {
			category = CategoryOther
		}

		qty := raw.Num(model.ColQuantity...)

		calculated := points
		if category == CategoryAdultMilkPowder || category == CategoryAdultMilkLiquid {
			calculated = math.Floor(points / nonZeroQty(qty))
		}

		rows = append(rows, &model.Stage1Row{
			ID:               uuid.New().String(),
			SalesPerson:      salesPersonOf(raw),
			Date:             ticketDateCode(raw.Str(model.ColTicketNo...)),
			CustomerID:       raw.Str(model.ColCustomerID...),
			CustomerName:     raw.Str(model.ColCustomerName...),
			ItemID:           raw.Str(model.ColItemID...),
			ItemName:         raw.Str(model.ColItemName...),
			Quantity:         qty,
			OriginalPoints:   points,
			CalculatedPoints: calculated,
			Category:         category,
			Status:           model.StatusDevelop,
			Raw:              raw,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		oi := stage1Order(rows[i].Category)
		oj := stage1Order(rows[j].Category)
		if oi != oj {
			return oi < oj
		}
		return rows[i].Date < rows[j].Date
	})

	return rows
}

// RecalculateStage1Points 依當前狀態重算單列點數
// 刪除歸零，回購折半，其餘維持基準點數；不觸及其他列
func RecalculateStage1Points(row *model.Stage1Row) float64 {
	if row.Status == model.StatusDelete {
		return 0
	}

	base := row.OriginalPoints
	if row.Category == CategoryAdultMilkPowder || row.Category == CategoryAdultMilkLiquid {
		base = math.Floor(row.OriginalPoints / nonZeroQty(row.Quantity))
	}

	if row.Status == model.StatusRepurchase {
		return math.Floor(base / 2)
	}
	return base
}

func stage1Order(category string) int {
	if order, ok := Stage1SortOrder[category]; ok {
		return order
	}
	return stage1SortFallback
}

// nonZeroQty 數量為零時以 1 計，避免除以零
func nonZeroQty(qty float64) float64 {
	if qty == 0 {
		return 1
	}
	return qty
}
