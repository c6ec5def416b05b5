package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/application/catalog/dto"
	"github.com/vendra-inc/vendra/internal/application/catalog/usecases"
	"github.com/vendra-inc/vendra/internal/shared/id"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

type ServiceHandler struct {
	createServiceUC       *usecases.CreateServiceUseCase
	updateServiceUC       *usecases.UpdateServiceUseCase
	toggleServiceStatusUC *usecases.ToggleServiceStatusUseCase
	deleteServiceUC       *usecases.DeleteServiceUseCase
	listServicesUC        *usecases.ListServicesUseCase
	logger                logger.Interface
}

func NewServiceHandler(
	createServiceUC *usecases.CreateServiceUseCase,
	updateServiceUC *usecases.UpdateServiceUseCase,
	toggleServiceStatusUC *usecases.ToggleServiceStatusUseCase,
	deleteServiceUC *usecases.DeleteServiceUseCase,
	listServicesUC *usecases.ListServicesUseCase,
) *ServiceHandler {
	return &ServiceHandler{
		createServiceUC:       createServiceUC,
		updateServiceUC:       updateServiceUC,
		toggleServiceStatusUC: toggleServiceStatusUC,
		deleteServiceUC:       deleteServiceUC,
		listServicesUC:        listServicesUC,
		logger:                logger.NewLogger(),
	}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createServiceUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service created successfully")
}

func (h *ServiceHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixService, "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update service", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateServiceUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service updated successfully", result)
}

func (h *ServiceHandler) ToggleStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixService, "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleServiceStatusUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service status updated", result)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixService, "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteServiceUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service deleted successfully", nil)
}

func (h *ServiceHandler) List(c *gin.Context) {
	result, err := h.listServicesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
