package importer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"bonuscalc/internal/model"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestReadWorkbook_HeaderAndRows(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"品項編號", "數量", "單價"},
		{"X1", 2, 5},
		{"", "", ""}, // 全空列略過
		{"X2", 1, 10},
	})

	headers, rows, err := ReadWorkbook(buf)
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	if len(headers) != 3 || headers[0] != "品項編號" {
		t.Fatalf("unexpected headers: %v", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Str("品項編號") != "X1" || rows[0].Num("數量") != 2 {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
}

func TestParseExclusionList_Fallbacks(t *testing.T) {
	t.Parallel()

	headers := []string{"代碼", "名稱"}
	rows := []model.RawRow{
		{"品項編號": "A1"},
		{"Item ID": "B2"},
		{"代碼": "C3", "名稱": "ignored"}, // 退回第一個非空欄
		{"名稱": ""},                    // 無可用值，略過
	}

	list := ParseExclusionList(headers, rows)
	if len(list) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list))
	}
	if list[0].ItemID != "A1" || list[1].ItemID != "B2" || list[2].ItemID != "C3" {
		t.Fatalf("unexpected items: %+v", list)
	}
}

func TestParseRewardRules(t *testing.T) {
	t.Parallel()

	rows := []model.RawRow{
		{"品項編號": "R1", "備註": "滿件", "類別": "A類", "獎勵金額": "100", "形式": "現金"},
		{"品項編號": "R2", "類別": "B類", "獎勵": "百元禮券", "形式": "禮券"},
		{"品項編號": "R3", "金額": "30"}, // 形式預設現金
		{"備註": "缺品項編號，略過"},
	}

	rules := ParseRewardRules(rows)
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}

	if rules[0].Reward != 100 || rules[0].RewardLabel != "100" || rules[0].Format != model.FormatCash {
		t.Fatalf("unexpected rule 0: %+v", rules[0])
	}
	// 非數字獎勵文字：金額為 0，標籤保留原文
	if rules[1].Reward != 0 || rules[1].RewardLabel != "百元禮券" || rules[1].Format != model.FormatVoucher {
		t.Fatalf("unexpected rule 1: %+v", rules[1])
	}
	if rules[2].Reward != 30 || rules[2].Format != model.FormatCash {
		t.Fatalf("unexpected rule 2: %+v", rules[2])
	}
}
