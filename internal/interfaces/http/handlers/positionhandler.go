package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/application/hr/dto"
	"github.com/vendra-inc/vendra/internal/application/hr/usecases"
	"github.com/vendra-inc/vendra/internal/shared/id"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

type PositionHandler struct {
	createPositionUC       *usecases.CreatePositionUseCase
	updatePositionUC       *usecases.UpdatePositionUseCase
	togglePositionStatusUC *usecases.TogglePositionStatusUseCase
	deletePositionUC       *usecases.DeletePositionUseCase
	listPositionsUC        *usecases.ListPositionsUseCase
	logger                 logger.Interface
}

func NewPositionHandler(
	createPositionUC *usecases.CreatePositionUseCase,
	updatePositionUC *usecases.UpdatePositionUseCase,
	togglePositionStatusUC *usecases.TogglePositionStatusUseCase,
	deletePositionUC *usecases.DeletePositionUseCase,
	listPositionsUC *usecases.ListPositionsUseCase,
) *PositionHandler {
	return &PositionHandler{
		createPositionUC:       createPositionUC,
		updatePositionUC:       updatePositionUC,
		togglePositionStatusUC: togglePositionStatusUC,
		deletePositionUC:       deletePositionUC,
		listPositionsUC:        listPositionsUC,
		logger:                 logger.NewLogger(),
	}
}

func (h *PositionHandler) Create(c *gin.Context) {
	var req dto.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create position", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createPositionUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Position created successfully")
}

func (h *PositionHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPosition, "position")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update position", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updatePositionUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Position updated successfully", result)
}

func (h *PositionHandler) ToggleStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPosition, "position")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.togglePositionStatusUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Position status updated", result)
}

func (h *PositionHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPosition, "position")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePositionUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Position deleted successfully", nil)
}

// List returns all positions, optionally scoped to a department via
// the "department" query parameter.
func (h *PositionHandler) List(c *gin.Context) {
	departmentSID := c.Query("department")

	result, err := h.listPositionsUC.Execute(c.Request.Context(), departmentSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
