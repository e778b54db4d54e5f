package dto

import (
	"main/model"
	"main/utils"
)

// NoteForm binds the content field submitted by the add and edit forms.
type NoteForm struct {
	Content string `form:"content" binding:"required,notecontent"`
}

// NoteView is a note prepared for template rendering: the stored UTC
// timestamp is already converted to the display timezone and formatted.
type NoteView struct {
	ID           int64
	Content      string
	CreatedLocal string
}

// Convert a single note to NoteView
func ToNoteView(note *model.Note) NoteView {
	return NoteView{
		ID:           note.ID,
		Content:      note.Content,
		CreatedLocal: utils.DisplayTime(note.CreatedAt),
	}
}

// Convert slice of notes to slice of NoteView
func ToNoteViews(notes []*model.Note) []NoteView {
	views := make([]NoteView, len(notes))
	for i, note := range notes {
		views[i] = ToNoteView(note)
	}
	return views
}
