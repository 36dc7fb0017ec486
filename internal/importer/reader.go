package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"bonuscalc/internal/model"
)

// ReadWorkbook 讀取上傳的活頁簿第一張工作表
// 第一列為標頭，其餘列轉為標頭到儲存格值的映射，全空列略過
func ReadWorkbook(reader io.Reader) (headers []string, rows []model.RawRow, err error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("活頁簿沒有任何工作表")
	}

	allRows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(allRows) == 0 {
		return nil, nil, errors.New("工作表沒有標頭列")
	}

	headers = make([]string, len(allRows[0]))
	for i, h := range allRows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows = make([]model.RawRow, 0, len(allRows)-1)
	for _, cells := range allRows[1:] {
		row := make(model.RawRow, len(headers))
		empty := true
		for i, cell := range cells {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			if cell == "" {
				continue
			}
			row[headers[i]] = cell
			empty = false
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

// ParseExclusionList 解析排除清單
// 品項編號欄優先，其次 Item ID，再退回第一個非空欄
func ParseExclusionList(headers []string, rows []model.RawRow) []model.ExclusionItem {
	list := make([]model.ExclusionItem, 0, len(rows))
	for _, row := range rows {
		itemID := row.Str("品項編號", "Item ID")
		if itemID == "" {
			itemID = firstValue(headers, row)
		}
		if itemID == "" {
			continue
		}
		list = append(list, model.ExclusionItem{ItemID: itemID})
	}
	return list
}

// ParseRewardRules 解析現金獎勵清單
// 獎勵金額依序嘗試 獎勵金額/獎勵/金額；形式預設為現金
func ParseRewardRules(rows []model.RawRow) []model.RewardRule {
	rules := make([]model.RewardRule, 0, len(rows))
	for _, row := range rows {
		itemID := row.Str("品項編號")
		if itemID == "" {
			continue
		}

		format := row.Str("形式")
		if format == "" {
			format = model.FormatCash
		}

		rules = append(rules, model.RewardRule{
			ItemID:      itemID,
			Note:        row.Str("備註"),
			Category:    row.Str("類別"),
			Reward:      row.Num("獎勵金額", "獎勵", "金額"),
			RewardLabel: row.Str("獎勵金額", "獎勵", "金額"),
			Format:      format,
		})
	}
	return rules
}

// firstValue 依工作表欄位順序取第一個非空值
func firstValue(headers []string, row model.RawRow) string {
	for _, header := range headers {
		if header == "" {
			continue
		}
		if v := row.Str(header); v != "" {
			return v
		}
	}
	return ""
}
