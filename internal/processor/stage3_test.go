package processor

import (
	"testing"

	"bonuscalc/internal/model"
)

func cosmeticRaw(person, cat2, subtotal string) model.RawRow {
	return model.RawRow{
		"銷售人員": person,
		"品類二":  cat2,
		"小計":   subtotal,
	}
}

func TestStage3_GroupsByPersonAndBrand(t *testing.T) {
	t.Parallel()

	summaries := Stage3([]model.RawRow{
		cosmeticRaw("Alice", "6292", "300"),
		cosmeticRaw("Alice", "6292", "200"),
		cosmeticRaw("Alice", "2089", "100"),
		cosmeticRaw("Bob", "467", "50"),
		cosmeticRaw("Alice", "1234", "999"), // 非美妝代碼，不納入
	})

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	var alice *model.Stage3Summary
	for _, s := range summaries {
		if s.SalesPerson == "Alice" {
			alice = s
		}
	}
	if alice == nil {
		t.Fatalf("missing summary for Alice")
	}

	if len(alice.Rows) != len(CosmeticDisplayOrder) {
		t.Fatalf("expected %d brand rows, got %d", len(CosmeticDisplayOrder), len(alice.Rows))
	}
	for i, brand := range CosmeticDisplayOrder {
		if alice.Rows[i].CategoryName != brand {
			t.Fatalf("row %d brand want=%s got=%s", i, brand, alice.Rows[i].CategoryName)
		}
	}

	if alice.Rows[0].SubTotal != 500 { // 理膚
		t.Fatalf("理膚 subtotal want=500 got=%v", alice.Rows[0].SubTotal)
	}
	if alice.Rows[1].SubTotal != 0 { // 芙樂思無銷售
		t.Fatalf("芙樂思 subtotal want=0 got=%v", alice.Rows[1].SubTotal)
	}
	if alice.Total != 600 {
		t.Fatalf("total want=600 got=%v", alice.Total)
	}
}

func TestEmptyStage3_AllZero(t *testing.T) {
	t.Parallel()

	summary := EmptyStage3("Carol")
	if summary.SalesPerson != "Carol" {
		t.Fatalf("salesPerson want=Carol got=%s", summary.SalesPerson)
	}
	if summary.Total != 0 {
		t.Fatalf("total want=0 got=%v", summary.Total)
	}
	if len(summary.Rows) != len(CosmeticDisplayOrder) {
		t.Fatalf("expected %d rows, got %d", len(CosmeticDisplayOrder), len(summary.Rows))
	}
	for _, row := range summary.Rows {
		if row.SubTotal != 0 {
			t.Fatalf("brand %s subtotal want=0 got=%v", row.CategoryName, row.SubTotal)
		}
	}
}
