package store

import (
	"path/filepath"
	"testing"

	"bonuscalc/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "bonuscalc.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshot_SaveLoadOverwrite(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	if state, err := s.LoadSnapshot(); err != nil || state != nil {
		t.Fatalf("empty store: state=%v err=%v", state, err)
	}
	if _, ok, err := s.SnapshotTimestamp(); err != nil || ok {
		t.Fatalf("empty store must have no timestamp")
	}

	first := &model.AppState{
		ExclusionList: []model.ExclusionItem{{ItemID: "X1"}},
		ActivePerson:  "Alice",
		Timestamp:     1000,
	}
	if err := s.SaveSnapshot(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := &model.AppState{
		ActivePerson: "Bob",
		Timestamp:    2000,
	}
	if err := s.SaveSnapshot(second); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	loaded, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ActivePerson != "Bob" || loaded.Timestamp != 2000 {
		t.Fatalf("snapshot must keep only the latest save: %+v", loaded)
	}

	ts, ok, err := s.SnapshotTimestamp()
	if err != nil || !ok || ts != 2000 {
		t.Fatalf("timestamp want=2000 got=%d ok=%v err=%v", ts, ok, err)
	}
}

func TestImportLog_CreateUpdate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	id, err := s.CreateImportLog("sales.xlsx")
	if err != nil {
		t.Fatalf("create import log: %v", err)
	}
	if err := s.UpdateImportLog(id, 100, 3, 40, 10, "done", ""); err != nil {
		t.Fatalf("update import log: %v", err)
	}
}
