// Package poisonreport serves poison reports with their contacts and meals.
package poisonreport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	childuc "github.com/shjfcs/foodwatch/internal/application/child/usecases"
	"github.com/shjfcs/foodwatch/internal/application/poisonreport/usecases"
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

// SaveReport handles POST /poison-reports. A payload carrying an id updates
// that report; otherwise a new report is created.
func (h *Handler) SaveReport(c *gin.Context) {
	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for save poison report", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if payload.ID > 0 {
		h.update(c, payload.ID, payload)
		return
	}

	result, err := h.service.CreateReport(c.Request.Context(), usecases.CreatePoisonReportCommand{
		Fields:             payload.Fields,
		PendingAttachments: payload.PendingAttachments,
		Actor:              common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Poison report created successfully")
}

// SearchReports handles GET /poison-reports
func (h *Handler) SearchReports(c *gin.Context) {
	filter, err := parseSearchReportsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.service.SearchReports(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items)
}

// GetReport handles GET /poison-reports/:id
func (h *Handler) GetReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	item, err := h.service.GetReport(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", item)
}

// UpdateReport handles PUT /poison-reports/:id
func (h *Handler) UpdateReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for update poison report", "report_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.update(c, id, payload)
}

func (h *Handler) update(c *gin.Context, id int64, payload *common.Payload) {
	result, err := h.service.UpdateReport(c.Request.Context(), usecases.UpdatePoisonReportCommand{
		ID:                 id,
		Fields:             payload.Fields,
		PendingAttachments: payload.PendingAttachments,
		Actor:              common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Poison report updated successfully", result)
}

// DeleteReport handles DELETE /poison-reports/:id
func (h *Handler) DeleteReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.DeleteReport(c.Request.Context(), usecases.DeletePoisonReportCommand{
		ID:    id,
		Actor: common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Poison report deleted successfully", gin.H{"id": id})
}

// ListContacts handles GET /poison-reports/:id/contacts
func (h *Handler) ListContacts(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.service.ListContacts(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items)
}

// CreateContact handles POST /poison-reports/:id/contacts
func (h *Handler) CreateContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for create contact", "report_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateContact(c.Request.Context(), childuc.CreateChildCommand{
		ParentID: id,
		Fields:   payload.Fields,
		Actor:    common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contact created successfully")
}

// BulkCreateContacts handles POST /poison-reports/:id/contacts/bulk
func (h *Handler) BulkCreateContacts(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rows, err := common.BindRows(c, "contacts")
	if err != nil {
		h.logger.Warnw("invalid request body for bulk create contacts", "report_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.BulkCreateContacts(c.Request.Context(), childuc.BulkCreateChildrenCommand{
		ParentID: id,
		Rows:     rows,
		Actor:    common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Contacts created successfully")
}

// UpdateContact handles PUT /contacts/:id
func (h *Handler) UpdateContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for update contact", "contact_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.UpdateContact(c.Request.Context(), childuc.UpdateChildCommand{
		ID:     id,
		Fields: payload.Fields,
		Actor:  common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contact updated successfully", gin.H{"id": id})
}

// DeleteContact handles DELETE /contacts/:id
func (h *Handler) DeleteContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.DeleteContact(c.Request.Context(), childuc.DeleteChildCommand{
		ID:    id,
		Actor: common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contact deleted successfully", gin.H{"id": id})
}

// ListMeals handles GET /poison-reports/:id/meals
func (h *Handler) ListMeals(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.service.ListMeals(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items)
}

// CreateMeal handles POST /poison-reports/:id/meals
func (h *Handler) CreateMeal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "poison report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for create meal", "report_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateMeal(c.Request.Context(), childuc.CreateChildCommand{
		ParentID: id,
		Fields:   payload.Fields,
		Actor:    common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Meal created successfully")
}

// UpdateMeal handles PUT /meals/:id
func (h *Handler) UpdateMeal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "meal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload, err := common.BindPayload(c)
	if err != nil {
		h.logger.Warnw("invalid request body for update meal", "meal_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.UpdateMeal(c.Request.Context(), childuc.UpdateChildCommand{
		ID:     id,
		Fields: payload.Fields,
		Actor:  common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Meal updated successfully", gin.H{"id": id})
}

// DeleteMeal handles DELETE /meals/:id
func (h *Handler) DeleteMeal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "meal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.service.DeleteMeal(c.Request.Context(), childuc.DeleteChildCommand{
		ID:    id,
		Actor: common.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Meal deleted successfully", gin.H{"id": id})
}
