package processor

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"bonuscalc/internal/model"
)

// Stage2 第二階段：現金獎勵表分類
// 只保留品項命中獎勵規則且具資格的列，規則欄位原樣帶入，
// 依類別、日期排序
func Stage2(rawData []model.RawRow, rewardRules []model.RewardRule) []*model.Stage2Row {
	ruleMap := make(map[string]model.RewardRule, len(rewardRules))
	for _, rule := range rewardRules {
		ruleMap[strings.TrimSpace(rule.ItemID)] = rule
	}

	rows := make([]*model.Stage2Row, 0)

	for _, raw := range rawData {
		itemID := strings.TrimSpace(raw.Str(model.ColItemID...))
		rule, ok := ruleMap[itemID]
		if !ok {
			continue
		}

		if !eligibleForReward(raw) {
			continue
		}

		rows = append(rows, &model.Stage2Row{
			ID:           uuid.New().String(),
			SalesPerson:  salesPersonOf(raw),
			DisplayDate:  ticketDateCode(raw.Str(model.ColTicketNo...)),
			SortDate:     raw.Str(model.ColSalesDate...),
			CustomerID:   raw.Str(model.ColCustomerID...),
			CustomerName: raw.Str(model.ColCustomerName...),
			ItemID:       itemID,
			ItemName:     raw.Str(model.ColItemName...),
			Quantity:     raw.Num(model.ColQuantity...),
			Category:     rule.Category,
			Note:         rule.Note,
			Reward:       rule.Reward,
			RewardLabel:  rule.RewardLabel,
			Format:       rule.Format,
			IsDeleted:    false,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].DisplayDate < rows[j].DisplayDate
	})

	return rows
}

// Stage2Totals 統計未刪除列的現金總額與禮券張數
// 即時重算，不落地儲存
func Stage2Totals(rows []*model.Stage2Row) (cashTotal, voucherCount float64) {
	for _, row := range rows {
		if row.IsDeleted {
			continue
		}
		switch row.Format {
		case model.FormatVoucher:
			voucherCount += row.Quantity
		default:
			cashTotal += row.EffectiveReward()
		}
	}
	return cashTotal, voucherCount
}
