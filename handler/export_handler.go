package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const csvContentType = "text/csv; charset=utf-8"

// DownloadCSVHandler streams all notes as a timestamped CSV attachment.
// When no notes exist it answers with a plain error body and default
// success status, matching the established client contract.
func DownloadCSVHandler(c *gin.Context, notesService *usecase.NotesService) {
	var buf bytes.Buffer
	err := notesService.ExportCSV(c.Request.Context(), &buf)
	if errors.Is(err, usecase.ErrNoNotes) {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error exporting notes: %v", err)
		utils.InternalError(c, "Failed to export notes")
		return
	}

	filename := fmt.Sprintf("catatan_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}
