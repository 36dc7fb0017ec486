package processor

import (
	"encoding/json"
	"testing"

	"bonuscalc/internal/model"
)

func TestBuildProcessedData_UnionOfPersons(t *testing.T) {
	t.Parallel()

	// Alice 只有點數表資格列，Bob 只有美妝列
	aliceRaw := baseRawRow()
	bobRaw := cosmeticRaw("Bob", "6292", "500")

	data, err := BuildProcessedData([]model.RawRow{aliceRaw, bobRaw}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(data))
	}

	alice, ok := data["Alice"]
	if !ok {
		t.Fatalf("missing Alice")
	}
	if len(alice.Stage1) != 1 || len(alice.Stage2) != 0 {
		t.Fatalf("alice stage sizes: s1=%d s2=%d", len(alice.Stage1), len(alice.Stage2))
	}
	// 無美妝銷售者必須補全零彙總
	if alice.Stage3 == nil || alice.Stage3.Total != 0 {
		t.Fatalf("alice must have an all-zero stage 3 summary")
	}
	if len(alice.Stage3.Rows) != len(CosmeticDisplayOrder) {
		t.Fatalf("alice stage 3 rows want=%d got=%d", len(CosmeticDisplayOrder), len(alice.Stage3.Rows))
	}

	bob, ok := data["Bob"]
	if !ok {
		t.Fatalf("missing Bob")
	}
	if len(bob.Stage1) != 0 {
		t.Fatalf("bob stage1 want=0 got=%d", len(bob.Stage1))
	}
	if bob.Stage3 == nil || bob.Stage3.Total != 500 {
		t.Fatalf("bob stage 3 total want=500 got=%+v", bob.Stage3)
	}
	if bob.Stage3.Rows[0].CategoryName != "理膚" || bob.Stage3.Rows[0].SubTotal != 500 {
		t.Fatalf("bob 理膚 subtotal want=500 got=%+v", bob.Stage3.Rows[0])
	}
}

func TestBuildProcessedData_Idempotent(t *testing.T) {
	t.Parallel()

	raws := []model.RawRow{
		baseRawRow(),
		cosmeticRaw("Bob", "6293", "120"),
	}
	rules := testRewardRules()

	first, err := BuildProcessedData(raws, nil, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildProcessedData(raws, nil, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 忽略不透明列 ID 後，兩次結果必須完全一致
	stripIDs := func(d model.ProcessedData) model.ProcessedData {
		clone := d.Clone()
		for _, pd := range clone {
			for _, r := range pd.Stage1 {
				r.ID = ""
			}
			for _, r := range pd.Stage2 {
				r.ID = ""
			}
		}
		return clone
	}

	a, err := json.Marshal(stripIDs(first))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(stripIDs(second))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("classification is not idempotent:\n%s\n%s", a, b)
	}
}

func TestBuildProcessedData_EmptyInput(t *testing.T) {
	t.Parallel()

	data, err := BuildProcessedData(nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty result, got %d persons", len(data))
	}
}
