package handlers

import (
	"strconv"

	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/services"
	"github.com/Dittner/DerTutor/internal/utils"
	pkgvalidator "github.com/Dittner/DerTutor/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type NoteHandler struct {
	noteService *services.NoteService
	validator   *validator.Validate
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		validator:   pkgvalidator.GetValidator(),
	}
}

// GetNote returns a single note with its media, or null when absent.
func (h *NoteHandler) GetNote(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Query("note_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid note_id")
		return
	}

	note, err := h.noteService.FindWithMedia(uint(noteID))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) SearchNotes(c *gin.Context) {
	var req models.NoteSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequest(c, "Invalid search params")
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Size <= 0 {
		req.Size = 50
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	page, err := h.noteService.Search(&req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, page)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req models.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	note, err := h.noteService.Create(&req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req models.NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	note, err := h.noteService.Update(&req)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) RenameNote(c *gin.Context) {
	var req models.NoteRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	note, err := h.noteService.Rename(req.ID, req.Name)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	var req models.NoteDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	note, err := h.noteService.Delete(req.ID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, note)
}
