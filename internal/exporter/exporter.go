package exporter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"bonuscalc/internal/model"
)

// Exporter 獎金報表匯出器
// 每位勾選的銷售人員一張工作表，三個段落依序排列；
// 回購列抽出彙整到跨人員的「回購總表」
type Exporter struct{}

// NewExporter 建立匯出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// repurchaseEntry 回購總表單列
type repurchaseEntry struct {
	salesPerson string
	category    string
	date        string
	customerID  string
	itemID      string
	itemName    string
	quantity    float64
	points      float64
}

// Export 產生報表活頁簿，未勾選者完全略過
func (e *Exporter) Export(data model.ProcessedData, selected map[string]bool) (*excelize.File, error) {
	f := excelize.NewFile()

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F81BD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create section style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	persons := make([]string, 0, len(data))
	for person := range data {
		persons = append(persons, person)
	}
	sort.Strings(persons)

	usedNames := make(map[string]struct{})
	repurchase := make([]repurchaseEntry, 0)
	wroteAny := false

	for _, person := range persons {
		if !selected[person] {
			continue
		}

		sheetName := uniqueSheetName(sanitizeSheetName(person), usedNames)
		if !wroteAny {
			// 重用預設工作表
			if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
			wroteAny = true
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return nil, fmt.Errorf("failed to create sheet: %w", err)
			}
		}

		if err := e.fillPersonSheet(f, sheetName, person, data[person], &repurchase, sectionStyle, headerStyle); err != nil {
			return nil, fmt.Errorf("寫入 %s 失敗: %w", person, err)
		}
	}

	if len(repurchase) > 0 {
		if err := e.fillRepurchaseSheet(f, repurchase, wroteAny); err != nil {
			return nil, fmt.Errorf("寫入 回購總表 失敗: %w", err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func (e *Exporter) fillPersonSheet(f *excelize.File, sheet, person string, data *model.PersonData, repurchase *[]repurchaseEntry, sectionStyle, headerStyle int) error {
	rows := make([][]any, 0)
	sectionRows := make([]int, 0, 3)
	headerRows := make([]int, 0, 3)

	// 第一階段：排除刪除列，回購列抽到回購總表
	rows = append(rows, []any{"【第一階段：點數表】"})
	sectionRows = append(sectionRows, len(rows)-1)
	rows = append(rows, []any{"分類", "日期", "客戶編號", "品項編號", "品名", "數量", "計算點數"})
	headerRows = append(headerRows, len(rows)-1)

	for _, row := range data.Stage1 {
		if row.Status == model.StatusDelete {
			continue
		}
		if row.Status == model.StatusRepurchase {
			*repurchase = append(*repurchase, repurchaseEntry{
				salesPerson: person,
				category:    row.Category,
				date:        row.Date,
				customerID:  row.CustomerID,
				itemID:      row.ItemID,
				itemName:    row.ItemName,
				quantity:    row.Quantity,
				points:      row.CalculatedPoints,
			})
			continue
		}
		rows = append(rows, []any{row.Category, row.Date, row.CustomerID, row.ItemID, row.ItemName, row.Quantity, row.CalculatedPoints})
	}

	rows = append(rows, []any{}, []any{})

	// 第二階段：排除軟刪除列
	rows = append(rows, []any{"【第二階段：現金獎勵表】"})
	sectionRows = append(sectionRows, len(rows)-1)
	rows = append(rows, []any{"類別", "日期", "客戶編號", "品項編號", "品名", "數量", "備註", "獎勵"})
	headerRows = append(headerRows, len(rows)-1)

	for _, row := range data.Stage2 {
		if row.IsDeleted {
			continue
		}
		rows = append(rows, []any{row.Category, row.DisplayDate, row.CustomerID, row.ItemID, row.ItemName, row.Quantity, row.Note, RewardDisplay(row)})
	}

	rows = append(rows, []any{}, []any{})

	// 第三階段：固定品牌順序加總金額列
	rows = append(rows, []any{"【第三階段：美妝金額】"})
	sectionRows = append(sectionRows, len(rows)-1)
	rows = append(rows, []any{"品牌分類", "金額"})
	headerRows = append(headerRows, len(rows)-1)

	if data.Stage3 != nil {
		for _, row := range data.Stage3.Rows {
			rows = append(rows, []any{row.CategoryName, row.SubTotal})
		}
		rows = append(rows, []any{"總金額", data.Stage3.Total})
	}

	for i, cells := range rows {
		if len(cells) == 0 {
			continue
		}
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, start, &cells); err != nil {
			return err
		}
	}

	for _, rowIdx := range sectionRows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, sectionStyle); err != nil {
			return err
		}
	}
	for _, rowIdx := range headerRows {
		start, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(len(rows[rowIdx]), rowIdx+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, start, end, headerStyle); err != nil {
			return err
		}
	}

	widths := []float64{15, 8, 12, 12, 25, 8, 20, 15}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) fillRepurchaseSheet(f *excelize.File, entries []repurchaseEntry, hasPersonSheets bool) error {
	const sheetName = "回購總表"

	if hasPersonSheets {
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
	} else {
		if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
			return err
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].salesPerson < entries[j].salesPerson
	})

	header := []any{"銷售人員", "分類", "日期", "客戶編號", "品項編號", "品名", "數量", "計算點數"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, entry := range entries {
		cells := []any{entry.salesPerson, entry.category, entry.date, entry.customerID, entry.itemID, entry.itemName, entry.quantity, entry.points}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, start, &cells); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
	})
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", end, headerStyle); err != nil {
		return err
	}

	widths := []float64{10, 12, 8, 12, 12, 25, 8, 10}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	return nil
}

// RewardDisplay 獎勵欄顯示文字
// 禮券顯示「<數量>張<標籤>」，現金顯示「<金額>元」，金額含覆寫
func RewardDisplay(row *model.Stage2Row) string {
	if row.Format == model.FormatVoucher {
		return formatNumber(row.Quantity) + "張" + row.RewardLabel
	}
	return formatNumber(row.EffectiveReward()) + "元"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sanitizeSheetName 移除 Excel 不允許的字元並截斷到 31 字
func sanitizeSheetName(name string) string {
	if name == "" {
		return "Unknown"
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, name)

	runes := []rune(clean)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}

// uniqueSheetName 工作表名稱重複時附加序號
func uniqueSheetName(name string, used map[string]struct{}) string {
	final := name
	counter := 1
	for {
		if _, ok := used[final]; !ok {
			break
		}
		base := []rune(name)
		if len(base) > 28 {
			base = base[:28]
		}
		final = fmt.Sprintf("%s(%d)", string(base), counter)
		counter++
	}
	used[final] = struct{}{}
	return final
}
