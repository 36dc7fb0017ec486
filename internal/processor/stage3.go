package processor

import (
	"strings"

	"bonuscalc/internal/model"
)

// Stage3 第三階段：美妝品牌金額彙總
// 只取品類二命中品牌對照表的列，按銷售人員、品牌加總小計，
// 輸出固定品牌順序，無銷售的品牌補 0
func Stage3(rawData []model.RawRow) []*model.Stage3Summary {
	byPerson := make(map[string]map[string]float64)
	personOrder := make([]string, 0)

	for _, raw := range rawData {
		cat2 := strings.TrimSpace(raw.Str(model.ColCat2...))
		brand, ok := CosmeticCodes[cat2]
		if !ok {
			continue
		}

		person := salesPersonOf(raw)
		if _, ok := byPerson[person]; !ok {
			byPerson[person] = make(map[string]float64)
			personOrder = append(personOrder, person)
		}
		byPerson[person][brand] += raw.Num(model.ColSubtotal...)
	}

	summaries := make([]*model.Stage3Summary, 0, len(byPerson))
	for _, person := range personOrder {
		summaries = append(summaries, buildStage3Summary(person, byPerson[person]))
	}
	return summaries
}

// EmptyStage3 無美妝銷售者的全零彙總
func EmptyStage3(person string) *model.Stage3Summary {
	return buildStage3Summary(person, nil)
}

func buildStage3Summary(person string, brandTotals map[string]float64) *model.Stage3Summary {
	rows := make([]model.Stage3Row, 0, len(CosmeticDisplayOrder))
	total := 0.0
	for _, brand := range CosmeticDisplayOrder {
		subTotal := brandTotals[brand]
		rows = append(rows, model.Stage3Row{
			CategoryName: brand,
			SubTotal:     subTotal,
		})
		total += subTotal
	}
	return &model.Stage3Summary{
		SalesPerson: person,
		Rows:        rows,
		Total:       total,
	}
}
