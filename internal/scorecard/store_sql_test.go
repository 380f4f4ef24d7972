package scorecard_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/score-sight/scoresight/internal/db"
	"github.com/score-sight/scoresight/internal/scorecard"
)

func openTestStore(t *testing.T) *scorecard.SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return scorecard.NewSQLStore(conn, "sqlite")
}

func testData() *scorecard.Data {
	return &scorecard.Data{
		CandidateInfo: &scorecard.Candidate{RollNumber: "991100", CandidateName: "R Kumar"},
		TotalScore:    142.5,
		TotalMaxMarks: 200,
	}
}

func TestSQLStore_PutGet(t *testing.T) {
	store := openTestStore(t)
	rec := scorecard.NewRecord("abc-123", "SSC_CGL_PRE", testData(), 1700000000)
	if err := store.Put(rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get("abc-123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RollNumber != "991100" || got.CandidateName != "R Kumar" {
		t.Errorf("candidate columns not populated: %+v", got)
	}
	if got.TotalScore != 142.5 || got.MaxMarks != 200 {
		t.Errorf("score columns: got %v / %v", got.TotalScore, got.MaxMarks)
	}
	if got.Data == nil || got.Data.CandidateInfo.RollNumber != "991100" {
		t.Error("full document not round-tripped")
	}
}

func TestSQLStore_PutOverwrites(t *testing.T) {
	store := openTestStore(t)
	rec := scorecard.NewRecord("abc-123", "SSC_CGL_PRE", testData(), 1700000000)
	if err := store.Put(rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	d := testData()
	d.TotalScore = 150
	if err := store.Put(scorecard.NewRecord("abc-123", "SSC_CGL_MAINS", d, 1700000500)); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, err := store.Get("abc-123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ExamType != "SSC_CGL_MAINS" || got.TotalScore != 150 {
		t.Errorf("upsert did not replace columns: %+v", got)
	}
}

func TestSQLStore_GetMissing(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Get("nope"); !errors.Is(err, scorecard.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSQLStore_ListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	for i, id := range []string{"first", "second", "third"} {
		rec := scorecard.NewRecord(id, "SSC_CGL_PRE", testData(), int64(1700000000+i))
		if err := store.Put(rec); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	list, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("want 3 records, got %d", len(list))
	}
	if list[0].ID != "third" || list[2].ID != "first" {
		t.Errorf("list order: %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
	}
	if list[0].Data != nil {
		t.Error("list summaries should not hydrate the full document")
	}
}
