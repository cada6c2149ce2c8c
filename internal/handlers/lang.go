package handlers

import (
	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/store"
	"github.com/Dittner/DerTutor/internal/utils"
	pkgvalidator "github.com/Dittner/DerTutor/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type LangHandler struct {
	db        *gorm.DB
	langs     *store.Store[models.Lang]
	validator *validator.Validate
}

func NewLangHandler(db *gorm.DB) *LangHandler {
	return &LangHandler{
		db:        db,
		langs:     store.New[models.Lang](db),
		validator: pkgvalidator.GetValidator(),
	}
}

func (h *LangHandler) GetLangs(c *gin.Context) {
	langs, err := h.langs.FindAll(store.Filter{}, "id")
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, langs)
}

// GetLangsFull returns every language with its vocs and tags preloaded.
func (h *LangHandler) GetLangsFull(c *gin.Context) {
	var langs []models.Lang
	if err := h.db.Preload("Vocs").Preload("Tags").Order("id").Find(&langs).Error; err != nil {
		utils.InternalError(c)
		return
	}
	utils.Success(c, langs)
}

func (h *LangHandler) CreateLang(c *gin.Context) {
	var req models.LangCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	lang, err := h.langs.Create(&models.Lang{Code: req.Code, Name: req.Name})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, lang)
}

func (h *LangHandler) UpdateLang(c *gin.Context) {
	var req models.LangUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	lang, err := h.langs.UpdateOne(req.ID, store.Fields{"code": req.Code, "name": req.Name})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, lang)
}

func (h *LangHandler) DeleteLang(c *gin.Context) {
	var req models.LangDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	lang, err := h.langs.DeleteOne(store.Filter{"id": req.ID})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, lang)
}
