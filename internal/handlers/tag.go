package handlers

import (
	"strconv"

	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/store"
	"github.com/Dittner/DerTutor/internal/utils"
	pkgvalidator "github.com/Dittner/DerTutor/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type TagHandler struct {
	tags      *store.Store[models.Tag]
	validator *validator.Validate
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{
		tags:      store.New[models.Tag](db),
		validator: pkgvalidator.GetValidator(),
	}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	langID, err := strconv.ParseUint(c.Query("lang_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid lang_id")
		return
	}

	tags, err := h.tags.FindAll(store.Filter{"lang_id": uint(langID)}, "name")
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, tags)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	tag, err := h.tags.Create(&models.Tag{LangID: req.LangID, Name: req.Name})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, tag)
}

func (h *TagHandler) RenameTag(c *gin.Context) {
	var req models.TagRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	tag, err := h.tags.UpdateOne(req.ID, store.Fields{"name": req.Name})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	var req models.TagDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	tag, err := h.tags.DeleteOne(store.Filter{"id": req.ID})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, tag)
}
