package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/robosketch/engine/internal/model"
)

func TestSaveProgram_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	b, err := New(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Close()

	rec := &model.ProgramRecord{
		SessionName: "demo",
		Dialect:     "fanuc",
		FileName:    "demo.ls",
		PointCount:  7,
		Text:        "/PROG  DEMO\n/END\n",
	}
	if err := b.SaveProgram(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := b.ListPrograms()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got.Dialect != "fanuc" || got.PointCount != 7 || got.Text != rec.Text {
		t.Errorf("unexpected record: %+v", got)
	}
}
