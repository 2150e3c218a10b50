package handlers

import (
	"net/http"

	"github.com/pixperk/pocketmind-server/internal/middleware"
	"github.com/pixperk/pocketmind-server/internal/models"
	"github.com/pixperk/pocketmind-server/internal/services"
	"github.com/pixperk/pocketmind-server/internal/utils"
	"github.com/pixperk/pocketmind-server/pkg/validator"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	noteService *services.NoteService
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID := middleware.UserID(c)

	var req models.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	note, err := h.noteService.CreateNote(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "note created", note)
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID := middleware.UserID(c)

	var req models.NoteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	notes, pagination, err := h.noteService.GetNotes(userID, req.Page, req.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"notes":      notes,
		"pagination": pagination,
	})
}

func (h *NoteHandler) SeedNotes(c *gin.Context) {
	userID := middleware.UserID(c)

	count, err := h.noteService.SeedNotes(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "notes seeded", gin.H{"count": count})
}

func (h *NoteHandler) LinkNote(c *gin.Context) {
	toNoteID := c.Param("noteId")
	if toNoteID == "" {
		utils.Error(c, http.StatusBadRequest, "note id is required")
		return
	}

	var req models.NoteLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	note, err := h.noteService.LinkNote(toNoteID, req.FromNoteID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "note linked", note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID := c.Param("noteId")
	if noteID == "" {
		utils.Error(c, http.StatusBadRequest, "note id is required")
		return
	}

	if err := h.noteService.DeleteNote(noteID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "note deleted", nil)
}
