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

type VocHandler struct {
	vocs      *store.Store[models.Voc]
	validator *validator.Validate
}

func NewVocHandler(db *gorm.DB) *VocHandler {
	return &VocHandler{
		vocs:      store.New[models.Voc](db),
		validator: pkgvalidator.GetValidator(),
	}
}

func (h *VocHandler) GetVocs(c *gin.Context) {
	langID, err := strconv.ParseUint(c.Query("lang_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid lang_id")
		return
	}

	vocs, err := h.vocs.FindAll(store.Filter{"lang_id": uint(langID)}, `"order"`, "id")
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, vocs)
}

func (h *VocHandler) CreateVoc(c *gin.Context) {
	var req models.VocCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	voc, err := h.vocs.Create(&models.Voc{
		LangID:    req.LangID,
		Name:      req.Name,
		SortNotes: "id:desc",
	})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, voc)
}

func (h *VocHandler) UpdateVoc(c *gin.Context) {
	var req models.VocUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	voc, err := h.vocs.UpdateOne(req.ID, store.Fields{
		"name":        req.Name,
		"description": req.Description,
		"sort_notes":  req.SortNotes,
	})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, voc)
}

func (h *VocHandler) RenameVoc(c *gin.Context) {
	var req models.VocRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	voc, err := h.vocs.UpdateOne(req.ID, store.Fields{"name": req.Name})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, voc)
}

func (h *VocHandler) ReorderVoc(c *gin.Context) {
	var req models.VocReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	voc, err := h.vocs.UpdateOne(req.ID, store.Fields{"order": req.Order})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, voc)
}

func (h *VocHandler) DeleteVoc(c *gin.Context) {
	var req models.VocDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	voc, err := h.vocs.DeleteOne(store.Filter{"id": req.ID})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, voc)
}
