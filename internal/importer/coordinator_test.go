package importer

import (
	"path/filepath"
	"testing"

	"bonuscalc/internal/model"
	"bonuscalc/internal/session"
	"bonuscalc/internal/store"
)

func collectEvents(t *testing.T, ch <-chan ProgressEvent) []ProgressEvent {
	t.Helper()

	events := make([]ProgressEvent, 0)
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func testCoordinator(t *testing.T, ready bool) *Coordinator {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "bonuscalc.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	sess := session.New()
	if ready {
		sess.SetExclusionList([]model.ExclusionItem{{ItemID: "E1"}})
		sess.SetRewardRules([]model.RewardRule{{ItemID: "R1", Reward: 100, Format: model.FormatCash}})
	}
	return NewCoordinator(sess, st)
}

func TestImport_ConfigMissing(t *testing.T) {
	t.Parallel()

	c := testCoordinator(t, false)
	buf := buildWorkbook(t, [][]any{{"品項編號"}, {"X1"}})

	events := collectEvents(t, c.Import(ImportOptions{Reader: buf, Filename: "sales.xlsx"}))
	last := events[len(events)-1]
	if last.Type != "error" {
		t.Fatalf("import without config lists must fail, got %+v", last)
	}
}

func TestImport_Success(t *testing.T) {
	t.Parallel()

	c := testCoordinator(t, true)
	buf := buildWorkbook(t, [][]any{
		{"銷售人員", "客戶編號", "本次欠款", "員工點數", "單價", "品類一", "品項編號", "品項名稱", "數量", "單號"},
		{"Alice", "C1", 0, 10, 5, "04-6", "X1", "Foo", 2, "A000012"},
	})

	events := collectEvents(t, c.Import(ImportOptions{Reader: buf, Filename: "sales.xlsx"}))
	if len(events) == 0 {
		t.Fatalf("expected progress events")
	}
	if events[0].Type != "start" {
		t.Fatalf("first event want=start got=%s", events[0].Type)
	}
	last := events[len(events)-1]
	if last.Type != "done" {
		t.Fatalf("last event want=done got=%+v", last)
	}

	stats, ok := last.Data.(session.ImportStats)
	if !ok {
		t.Fatalf("done event must carry import stats, got %T", last.Data)
	}
	if stats.Persons != 1 || stats.Stage1Rows != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
