package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/httpresp"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	httpresp.List(c, categories)
}

// Get returns one category together with its active services.
func (h *CategoryHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Preload("Provider").
		Where("category_id = ? AND active = ?", category.ID, true).
		Order("created_at DESC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(200, gin.H{
		"category": category,
		"services": services,
	})
}
