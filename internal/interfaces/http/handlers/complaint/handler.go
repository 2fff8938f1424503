// Package complaint serves complaint records and their products.
package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/complaint/usecases"
	"github.com/shjfcs/foodwatch/internal/interfaces/http/handlers/common"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
	"github.com/shjfcs/foodwatch/internal/shared/utils"
)

type Handler struct {
	service Service
	logger  logger.Interface
}

func NewHandler(service Service, log logger.Interface) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Lookups handles GET /lookups/complaints
func (h *Handler) Lookups(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.service.Lookups())
}

// CreateComplaint handles POST /complaints
func (h *Handler) CreateComplaint(c *gin.Context) {
	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for create complaint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateComplaint(c.Request.Context(), usecases.CreateComplaintCommand{
		Fields:             payload.Fields,
		PendingAttachments: payload.PendingAttachments,
		Actor:              common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint created successfully")
}

// ListComplaints handles GET /complaints
func (h *Handler) ListComplaints(c *gin.Context) {
	req, err := parseListComplaintsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.service.ListComplaints(c.Request.Context(), req.ToFilter())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items)
}

// GetComplaint handles GET /complaints/:id
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.service.GetComplaint(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", item)
}

// UpdateComplaint handles PUT /complaints/:id
func (h *Handler) UpdateComplaint(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for update complaint", "complaint_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateComplaint(c.Request.Context(), usecases.UpdateComplaintCommand{
		ID:                 id,
		Fields:             payload.Fields,
		PendingAttachments: payload.PendingAttachments,
		Actor:              common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint updated successfully", result)
}

// DeleteComplaint handles DELETE /complaints/:id
func (h *Handler) DeleteComplaint(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.DeleteComplaint(c.Request.Context(), usecases.DeleteComplaintCommand{
		ID:    id,
		Actor: common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint deleted successfully", gin.H{"id": id})
}

// ListProducts handles GET /complaints/:id/products
func (h *Handler) ListProducts(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.service.ListProducts(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items)
}

// CreateProduct handles POST /complaints/:id/products
func (h *Handler) CreateProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for create product", "complaint_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateProduct(c.Request.Context(), childuc.CreateChildCommand{
		ParentID: id,
		Fields:   payload.Fields,
		Actor:    common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Product created successfully")
}

// BulkCreateProducts handles POST /complaints/:id/products/bulk
func (h *Handler) BulkCreateProducts(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rows, err := common.BindRows(c, "products")
	if err != nil {
		h.logger.Warnw("invalid request body for bulk create products", "complaint_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.BulkCreateProducts(c.Request.Context(), childuc.BulkCreateChildrenCommand{
		ParentID: id,
		Rows:     rows,
		Actor:    common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Products created successfully")
}

// UpdateProduct handles PUT /products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for update product", "product_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.UpdateProduct(c.Request.Context(), childuc.UpdateChildCommand{
		ID:     id,
		Fields: payload.Fields,
		Actor:  common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", gin.H{"id": id})
}

// DeleteProduct handles DELETE /products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "product")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.DeleteProduct(c.Request.Context(), childuc.DeleteChildCommand{
		ID:    id,
		Actor: common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", gin.H{"id": id})
}
