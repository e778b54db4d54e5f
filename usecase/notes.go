package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/utils"
)

// ErrNoNotes is returned by ExportCSV when there is nothing to export.
// The message is user-facing and rendered verbatim in the response.
var ErrNoNotes = errors.New("Belum ada catatan untuk diunduh.")

var errEmptyContent = errors.New("note content is required")

// utf8BOM is written before the CSV payload so spreadsheet tools
// detect the encoding correctly.
const utf8BOM = "\ufeff"

type NotesService struct {
	NotesRepo *repository.NotesRepo
}

func (svc *NotesService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		middleware.TrackError("validation")
		return errEmptyContent
	}
	return nil
}

// ListNotes returns every note ordered ascending by id.
func (svc *NotesService) ListNotes(ctx context.Context) ([]*model.Note, error) {
	return svc.NotesRepo.GetAllNotes(ctx)
}

// CreateNote stores a new note and returns it with its assigned id.
func (svc *NotesService) CreateNote(ctx context.Context, content string) (*model.Note, error) {
	if err := svc.validateContent(content); err != nil {
		return nil, err
	}

	note, err := svc.NotesRepo.CreateNote(ctx, content)
	if err != nil {
		middleware.TrackError("db")
		return nil, err
	}

	middleware.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote replaces the content of an existing note. A nonexistent
// id is silently ignored and reported as success.
func (svc *NotesService) UpdateNote(ctx context.Context, id int64, content string) error {
	if err := svc.validateContent(content); err != nil {
		return err
	}

	if err := svc.NotesRepo.UpdateNote(ctx, id, content); err != nil {
		middleware.TrackError("db")
		return err
	}

	middleware.TrackNoteOperation("update")
	return nil
}

// DeleteNote removes a note. A nonexistent id is silently ignored.
func (svc *NotesService) DeleteNote(ctx context.Context, id int64) error {
	if err := svc.NotesRepo.DeleteNote(ctx, id); err != nil {
		middleware.TrackError("db")
		return err
	}

	middleware.TrackNoteOperation("delete")
	return nil
}

// CountNotes returns the number of stored notes.
func (svc *NotesService) CountNotes(ctx context.Context) (int, error) {
	return svc.NotesRepo.CountNotes(ctx)
}

// ExportCSV writes all notes to w as a BOM-prefixed UTF-8 CSV document:
// a header row followed by one row per note, ascending by id, with
// created_at converted to the display timezone. Returns ErrNoNotes
// when no notes exist; nothing is written in that case.
func (svc *NotesService) ExportCSV(ctx context.Context, w io.Writer) error {
	notes, err := svc.NotesRepo.GetAllNotes(ctx)
	if err != nil {
		middleware.TrackError("db")
		return err
	}
	if len(notes) == 0 {
		return ErrNoNotes
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write([]string{"id", "content", "created_at"}); err != nil {
		return err
	}

	for _, note := range notes {
		record := []string{
			strconv.FormatInt(note.ID, 10),
			note.Content,
			utils.CSVTime(note.CreatedAt),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	middleware.TrackNoteOperation("export")
	return nil
}
