package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"main/config"
	"main/repository"
)

func newTestService(t *testing.T) *NotesService {
	t.Helper()

	cfg := config.DatabaseConfig{
		Path:            filepath.Join(t.TempDir(), "notes_test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}

	db, err := repository.OpenDatabase(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &NotesService{NotesRepo: repository.GetNotesRepo(db)}
}

func TestCreateNoteValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"Valid", "belanja mingguan", false},
		{"Empty", "", true},
		{"WhitespaceOnly", "   \t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNote(ctx, tt.content)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateNotePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	note, err := svc.CreateNote(ctx, "original")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.UpdateNote(ctx, note.ID, "changed"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	notes, err := svc.ListNotes(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].ID != note.ID {
		t.Errorf("id changed: %d != %d", notes[0].ID, note.ID)
	}
	if notes[0].Content != "changed" {
		t.Errorf("expected updated content, got %q", notes[0].Content)
	}
	if !notes[0].CreatedAt.Equal(note.CreatedAt) {
		t.Errorf("created_at changed: %v != %v", notes[0].CreatedAt, note.CreatedAt)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	var buf bytes.Buffer
	err := svc.ExportCSV(ctx, &buf)
	if err != ErrNoNotes {
		t.Fatalf("expected ErrNoNotes, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty export, got %q", buf.String())
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.CreateNote(ctx, "a")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.CreateNote(ctx, "b, with \"quotes\"")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var buf bytes.Buffer
	if err := svc.ExportCSV(ctx, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\ufeff") {
		t.Fatal("expected output to start with a UTF-8 BOM")
	}

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\ufeff")))
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}

	header := records[0]
	if header[0] != "id" || header[1] != "content" || header[2] != "created_at" {
		t.Errorf("unexpected header row: %v", header)
	}

	wantRows := []struct {
		id      int64
		content string
	}{
		{first.ID, "a"},
		{second.ID, "b, with \"quotes\""},
	}
	for i, want := range wantRows {
		row := records[i+1]
		if row[0] != strconv.FormatInt(want.id, 10) {
			t.Errorf("row %d: expected id %d, got %q", i, want.id, row[0])
		}
		if row[1] != want.content {
			t.Errorf("row %d: expected content %q, got %q", i, want.content, row[1])
		}
		if row[2] == "" {
			t.Errorf("row %d: expected a created_at value", i)
		}
	}
}
