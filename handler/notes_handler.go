package handler

import (
	"log"
	"net/http"
	"strconv"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// HomeHandler renders the index page with all notes.
func HomeHandler(c *gin.Context, notesService *usecase.NotesService) {
	renderNotesPage(c, notesService, "index.html")
}

// ListHandler renders the same notes into the standalone list page.
func ListHandler(c *gin.Context, notesService *usecase.NotesService) {
	renderNotesPage(c, notesService, "list.html")
}

func renderNotesPage(c *gin.Context, notesService *usecase.NotesService, template string) {
	notes, err := notesService.ListNotes(c.Request.Context())
	if err != nil {
		log.Printf("Error listing notes: %v", err)
		utils.InternalError(c, "Failed to load notes")
		return
	}

	c.HTML(http.StatusOK, template, gin.H{
		"notes": dto.ToNoteViews(notes),
	})
}

// DashboardHandler renders the static dashboard page.
func DashboardHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{})
}

// AddNoteHandler creates a note from the submitted content field and
// redirects back to the index page.
func AddNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var form dto.NoteForm
	if err := c.ShouldBind(&form); err != nil {
		utils.UnprocessableEntity(c, "content is required")
		return
	}

	if _, err := notesService.CreateNote(c.Request.Context(), form.Content); err != nil {
		log.Printf("Error creating note: %v", err)
		utils.InternalError(c, "Failed to create note")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// EditNoteHandler updates the content of note :id and redirects back
// to the index page. A nonexistent id still redirects as if it had
// been updated.
func EditNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.UnprocessableEntity(c, "note id must be an integer")
		return
	}

	var form dto.NoteForm
	if err := c.ShouldBind(&form); err != nil {
		utils.UnprocessableEntity(c, "content is required")
		return
	}

	if err := notesService.UpdateNote(c.Request.Context(), id, form.Content); err != nil {
		log.Printf("Error updating note %d: %v", id, err)
		utils.InternalError(c, "Failed to update note")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// DeleteNoteHandler removes note :id and redirects back to the index
// page. A nonexistent id still redirects as if it had been deleted.
func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.UnprocessableEntity(c, "note id must be an integer")
		return
	}

	if err := notesService.DeleteNote(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting note %d: %v", id, err)
		utils.InternalError(c, "Failed to delete note")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
