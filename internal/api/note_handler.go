package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// NoteHandler handles family-note endpoints.
type NoteHandler struct {
	noteService core.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(ns core.NoteService) *NoteHandler {
	return &NoteHandler{noteService: ns}
}

// CreateNote handles POST /api/v1/notes.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	noteID, err := h.noteService.CreateNote(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse("noteId", noteID))
}

// ListNotes handles GET /api/v1/notes/:familyId.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	notes, err := h.noteService.ListNotes(c.Request.Context(), uid, c.Param("familyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DismissNote handles POST /api/v1/notes/:familyId/:noteId/dismiss.
func (h *NoteHandler) DismissNote(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	note, err := h.noteService.DismissNote(c.Request.Context(), uid, c.Param("familyId"), c.Param("noteId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
