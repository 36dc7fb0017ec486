package exporter

import (
	"testing"

	"bonuscalc/internal/model"
	"bonuscalc/internal/processor"
)

func testData() model.ProcessedData {
	override := 50.0
	return model.ProcessedData{
		"Alice": {
			Stage1: []*model.Stage1Row{
				{ID: "1", SalesPerson: "Alice", Category: "小兒營養素", Date: "12", CustomerID: "C1", ItemID: "X1", ItemName: "Foo", Quantity: 2, CalculatedPoints: 10, Status: model.StatusDevelop},
				{ID: "2", SalesPerson: "Alice", Category: "成人奶粉", Date: "13", CustomerID: "C2", ItemID: "X2", ItemName: "Bar", Quantity: 1, CalculatedPoints: 3, Status: model.StatusRepurchase},
				{ID: "3", SalesPerson: "Alice", Category: "其他", Date: "14", CustomerID: "C3", ItemID: "X3", ItemName: "Baz", Quantity: 1, CalculatedPoints: 0, Status: model.StatusDelete},
			},
			Stage2: []*model.Stage2Row{
				{ID: "4", SalesPerson: "Alice", Category: "A類", DisplayDate: "12", Quantity: 3, Reward: 100, Format: model.FormatCash, CustomReward: &override},
				{ID: "5", SalesPerson: "Alice", Category: "B類", DisplayDate: "13", Quantity: 2, RewardLabel: "百元禮券", Format: model.FormatVoucher},
				{ID: "6", SalesPerson: "Alice", Category: "C類", DisplayDate: "14", Quantity: 1, Reward: 10, Format: model.FormatCash, IsDeleted: true},
			},
			Stage3: processor.EmptyStage3("Alice"),
		},
		"Bob": {
			Stage1: []*model.Stage1Row{},
			Stage2: []*model.Stage2Row{},
			Stage3: processor.EmptyStage3("Bob"),
		},
	}
}

func TestExport_SkipsUnselectedPersons(t *testing.T) {
	t.Parallel()

	f, err := NewExporter().Export(testData(), map[string]bool{"Alice": true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, name := range sheets {
		if name == "Bob" {
			t.Fatalf("unselected person must not have a sheet: %v", sheets)
		}
	}
	if sheets[0] != "Alice" {
		t.Fatalf("first sheet want=Alice got=%v", sheets)
	}
}

func TestExport_SectionsAndRowFiltering(t *testing.T) {
	t.Parallel()

	f, err := NewExporter().Export(testData(), map[string]bool{"Alice": true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Alice")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}

	flat := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			flat = append(flat, row[0])
		} else {
			flat = append(flat, "")
		}
	}

	// 段落標題依序出現
	wantSections := []string{"【第一階段：點數表】", "【第二階段：現金獎勵表】", "【第三階段：美妝金額】"}
	idx := 0
	for _, cell := range flat {
		if idx < len(wantSections) && cell == wantSections[idx] {
			idx++
		}
	}
	if idx != len(wantSections) {
		t.Fatalf("missing section headers, got rows: %v", flat)
	}

	// 刪除列與回購列不在個人表；軟刪除獎勵列也不在
	for _, row := range rows {
		for _, cell := range row {
			if cell == "Baz" {
				t.Fatalf("deleted stage1 row must not be exported")
			}
			if cell == "Bar" {
				t.Fatalf("repurchase row must move to the summary sheet")
			}
			if cell == "C類" {
				t.Fatalf("soft-deleted stage2 row must not be exported")
			}
		}
	}
}

func TestExport_RepurchaseSummarySheet(t *testing.T) {
	t.Parallel()

	f, err := NewExporter().Export(testData(), map[string]bool{"Alice": true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("回購總表")
	if err != nil {
		t.Fatalf("repurchase sheet missing: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 entry, got %d rows", len(rows))
	}
	if rows[1][0] != "Alice" || rows[1][5] != "Bar" {
		t.Fatalf("unexpected repurchase entry: %v", rows[1])
	}
}

func TestRewardDisplay(t *testing.T) {
	t.Parallel()

	cash := &model.Stage2Row{Quantity: 3, Reward: 100, Format: model.FormatCash}
	if got := RewardDisplay(cash); got != "300元" {
		t.Fatalf("cash display want=300元 got=%s", got)
	}

	override := 50.0
	cash.CustomReward = &override
	if got := RewardDisplay(cash); got != "50元" {
		t.Fatalf("override display want=50元 got=%s", got)
	}

	voucher := &model.Stage2Row{Quantity: 2, RewardLabel: "百元禮券", Format: model.FormatVoucher}
	if got := RewardDisplay(voucher); got != "2張百元禮券" {
		t.Fatalf("voucher display want=2張百元禮券 got=%s", got)
	}
}

func TestSanitizeSheetName(t *testing.T) {
	t.Parallel()

	if got := sanitizeSheetName("A/B:C*D"); got != "A_B_C_D" {
		t.Fatalf("sanitize want=A_B_C_D got=%s", got)
	}
	if got := sanitizeSheetName(""); got != "Unknown" {
		t.Fatalf("empty name want=Unknown got=%s", got)
	}

	long := make([]rune, 40)
	for i := range long {
		long[i] = '王'
	}
	if got := sanitizeSheetName(string(long)); len([]rune(got)) != 31 {
		t.Fatalf("long name must truncate to 31 runes, got %d", len([]rune(got)))
	}
}
