package handlers

import (
	"strconv"

	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/services"
	"github.com/Dittner/DerTutor/internal/utils"
	pkgvalidator "github.com/Dittner/DerTutor/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type MediaHandler struct {
	mediaService  *services.MediaService
	maxUploadSize int64
	validator     *validator.Validate
}

func NewMediaHandler(mediaService *services.MediaService, maxUploadSize int64) *MediaHandler {
	return &MediaHandler{
		mediaService:  mediaService,
		maxUploadSize: maxUploadSize,
		validator:     pkgvalidator.GetValidator(),
	}
}

func (h *MediaHandler) GetMediaFiles(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Query("note_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid note_id")
		return
	}

	media, err := h.mediaService.FindAllByNote(uint(noteID))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, media)
}

// UploadFile binds a multipart file to the note given by the note_id
// query param.
func (h *MediaHandler) UploadFile(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Query("note_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid note_id")
		return
	}
	logrus.WithField("note_id", noteID).Info("uploading media file")

	if err := c.Request.ParseMultipartForm(h.maxUploadSize); err != nil {
		utils.BadRequest(c, "File too large or malformed form")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Upload file not found in form")
		return
	}
	defer file.Close()

	record, err := h.mediaService.Attach(uint(noteID), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, record)
}

// ServeFile streams the raw blob of a stored media file.
func (h *MediaHandler) ServeFile(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("note_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid note_id")
		return
	}

	path, err := h.mediaService.BlobPath(uint(noteID), c.Param("file"))
	if err != nil {
		utils.NotFound(c, "Media file not found")
		return
	}
	c.File(path)
}

func (h *MediaHandler) DeleteMediaFile(c *gin.Context) {
	var req models.MediaDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	removed, err := h.mediaService.Detach(req.UID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "Deleting media file not found, uid: "+req.UID)
		return
	}
	utils.Success(c, "deleted")
}
