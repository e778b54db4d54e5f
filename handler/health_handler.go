package handler

import (
	"log"
	"time"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	notesService *usecase.NotesService
	startedAt    time.Time
}

func NewHealthHandler(notesService *usecase.NotesService) *HealthHandler {
	return &HealthHandler{
		notesService: notesService,
		startedAt:    time.Now(),
	}
}

// GetHealth reports process health: uptime, note count, CPU usage and
// the calling client as parsed by the client info middleware.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	total, err := h.notesService.CountNotes(c.Request.Context())
	if err != nil {
		log.Printf("Error counting notes: %v", err)
		utils.InternalError(c, "Failed to count notes")
		return
	}

	browser, os, device := utils.ParseUserAgent(c.Request.UserAgent())

	utils.Success(c, gin.H{
		"status":      "ok",
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
		"notes_total": total,
		"cpu_percent": utils.GetCPUUsage(),
		"client": gin.H{
			"browser": browser,
			"os":      os,
			"device":  device,
		},
	})
}
