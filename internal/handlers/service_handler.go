package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/httpresp"
	"github.com/BruksfildServices01/marketplace-api/internal/media"
	"github.com/BruksfildServices01/marketplace-api/internal/middleware"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db      *gorm.DB
	storage *media.Storage
}

func NewServiceHandler(db *gorm.DB, storage *media.Storage) *ServiceHandler {
	return &ServiceHandler{db: db, storage: storage}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	CategoryID  *uint    `json:"category_id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

// ======================================================
// PUBLIC
// ======================================================

// List returns active services, filterable by category, provider and a
// free-text title match.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.
		Preload("Provider").
		Preload("Category").
		Where("active = ?", true)

	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	if providerID := c.Query("provider_id"); providerID != "" {
		q = q.Where("provider_id = ?", providerID)
	}

	if search := c.Query("q"); search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}

	var services []models.Service
	if err := q.Order("created_at DESC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Preload("Provider").
		Preload("Category").
		Where("active = ?", true).
		First(&service, "id = ?", id).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, service)
}

// ======================================================
// PROVIDER
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	providerID := middleware.UserID(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	h.db.Model(&models.Category{}).Where("id = ?", req.CategoryID).Count(&count)
	if count == 0 {
		httperr.BadRequest(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	service := models.Service{
		ID:          uuid.New(),
		ProviderID:  providerID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	providerID := middleware.UserID(c)

	var services []models.Service
	if err := h.db.
		Preload("Category").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	providerID := middleware.UserID(c)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND provider_id = ?", id, providerID).
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updates := map[string]any{}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		updates["price"] = *req.Price
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := h.db.Model(&service).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
			return
		}
	}

	httpresp.OK(c, service)
}

// UploadImage replaces the service image. The file is re-encoded before
// storage, so the original upload format never reaches the bucket.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	providerID := middleware.UserID(c)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND provider_id = ?", id, providerID).
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo image.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return
	}
	defer file.Close()

	url, err := h.storage.UploadServiceImage(c.Request.Context(), service.ID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida ou envio falhou.")
		return
	}

	if err := h.db.Model(&service).Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
