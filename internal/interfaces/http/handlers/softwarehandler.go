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

type SoftwareHandler struct {
	createSoftwareUC *usecases.CreateSoftwareUseCase
	updateSoftwareUC *usecases.UpdateSoftwareUseCase
	deleteSoftwareUC *usecases.DeleteSoftwareUseCase
	listSoftwareUC   *usecases.ListSoftwareUseCase
	logger           logger.Interface
}

func NewSoftwareHandler(
	createSoftwareUC *usecases.CreateSoftwareUseCase,
	updateSoftwareUC *usecases.UpdateSoftwareUseCase,
	deleteSoftwareUC *usecases.DeleteSoftwareUseCase,
	listSoftwareUC *usecases.ListSoftwareUseCase,
) *SoftwareHandler {
	return &SoftwareHandler{
		createSoftwareUC: createSoftwareUC,
		updateSoftwareUC: updateSoftwareUC,
		deleteSoftwareUC: deleteSoftwareUC,
		listSoftwareUC:   listSoftwareUC,
		logger:           logger.NewLogger(),
	}
}

func (h *SoftwareHandler) Create(c *gin.Context) {
	var req dto.CreateSoftwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create software", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createSoftwareUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Software created successfully")
}

func (h *SoftwareHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixSoftware, "software")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSoftwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update software", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateSoftwareUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Software updated successfully", result)
}

func (h *SoftwareHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixSoftware, "software")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteSoftwareUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Software deleted successfully", nil)
}

func (h *SoftwareHandler) List(c *gin.Context) {
	result, err := h.listSoftwareUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
