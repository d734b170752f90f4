package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glamora/salon-scheduler/internal/audit"
	"github.com/glamora/salon-scheduler/internal/httperr"
	"github.com/glamora/salon-scheduler/internal/httpresp"
	"github.com/glamora/salon-scheduler/internal/media"
	"github.com/glamora/salon-scheduler/internal/models"
)

// Catalog CRUD is a passthrough layer; the scheduling engine only ever
// reads services through the repository.
type ServiceHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader *media.Uploader
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher, uploader *media.Uploader) *ServiceHandler {
	return &ServiceHandler{
		db:       db,
		audit:    audit,
		uploader: uploader,
	}
}

type CreateServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min" binding:"required"`
	ImageURL    string  `json:"image_url"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, httperr.CodeStoreUnavailable, "Storage failure, please retry.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid service data.")
		return
	}

	if req.Price < 0 || req.DurationMin <= 0 {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Price must be non-negative and duration positive.")
		return
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		ImageURL:    req.ImageURL,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, httperr.CodeStoreUnavailable, "Storage failure, please retry.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   staffIDFrom(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	httpresp.Created(c, service)
}

// Delete refuses while bookings reference the service; history is never
// cascaded away.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Service id must be numeric.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Booking{}).
		Where("service_id = ?", id).
		Count(&count).Error; err != nil {
		httperr.Internal(c, httperr.CodeStoreUnavailable, "Storage failure, please retry.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, httperr.CodeServiceHasBookings, "Service has bookings and cannot be deleted.")
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, httperr.CodeStoreUnavailable, "Storage failure, please retry.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	sid := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   staffIDFrom(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &sid,
	})

	httpresp.OK(c, gin.H{"message": "Service deleted"})
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Service id must be numeric.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Multipart field image is required.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadServiceImage(c.Request.Context(), service.ID, file)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidRequest) {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, "Unsupported image format.")
			return
		}
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, httperr.CodeStoreUnavailable, "Storage failure, please retry.")
		return
	}

	httpresp.OK(c, service)
}
