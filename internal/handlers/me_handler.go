package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/middleware"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profileJSON(&profile)})
}

type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	Phone          *string `json:"phone"`
	WhatsappNumber *string `json:"whatsapp_number"`
	Location       *string `json:"location"`
}

// UpdateProfile patches only the fields present in the body. Email and
// role are not editable here.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
		return
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.WhatsappNumber != nil {
		updates["whatsapp_number"] = *req.WhatsappNumber
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) > 0 {
		if err := h.db.Model(&profile).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_profile", "Erro ao atualizar perfil.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": profileJSON(&profile)})
}
