package repository

import (
	"context"
	"database/sql"
	"time"

	"main/config"
	"main/middleware"
	"main/model"

	_ "github.com/mattn/go-sqlite3"
)

type NotesRepo struct {
	DB *sql.DB
}

// OpenDatabase opens the SQLite file, verifies the connection, applies
// pool settings and makes sure the note table exists.
func OpenDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	createNoteTable := `
	CREATE TABLE IF NOT EXISTS note (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`

	if _, err := db.Exec(createNoteTable); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func GetNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{DB: db}
}

// CreateNote inserts a new note with created_at set to the current UTC
// instant and returns it with the id assigned by the store.
func (r *NotesRepo) CreateNote(ctx context.Context, content string) (*model.Note, error) {
	note := &model.Note{
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	timer := middleware.TrackDBOperation("insert", "note")
	result, err := r.DB.ExecContext(ctx,
		"INSERT INTO note (content, created_at) VALUES (?, ?)",
		note.Content, note.CreatedAt)
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}

	note.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return note, nil
}

// GetAllNotes returns every note ordered ascending by id.
func (r *NotesRepo) GetAllNotes(ctx context.Context) ([]*model.Note, error) {
	timer := middleware.TrackDBOperation("select", "note")
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, content, created_at FROM note ORDER BY id ASC")
	timer.ObserveDuration()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*model.Note
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(&note.ID, &note.Content, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}
	return notes, rows.Err()
}

// UpdateNote replaces the content of the note with the given id,
// leaving created_at untouched. Updating a nonexistent id is a no-op.
func (r *NotesRepo) UpdateNote(ctx context.Context, id int64, content string) error {
	timer := middleware.TrackDBOperation("update", "note")
	_, err := r.DB.ExecContext(ctx,
		"UPDATE note SET content = ? WHERE id = ?", content, id)
	timer.ObserveDuration()
	return err
}

// DeleteNote removes the note with the given id. Deleting a
// nonexistent id is a no-op.
func (r *NotesRepo) DeleteNote(ctx context.Context, id int64) error {
	timer := middleware.TrackDBOperation("delete", "note")
	_, err := r.DB.ExecContext(ctx, "DELETE FROM note WHERE id = ?", id)
	timer.ObserveDuration()
	return err
}

// CountNotes returns the number of stored notes.
func (r *NotesRepo) CountNotes(ctx context.Context) (int, error) {
	var count int
	timer := middleware.TrackDBOperation("count", "note")
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM note").Scan(&count)
	timer.ObserveDuration()
	return count, err
}
