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

type StaffHandler struct {
	createStaffUC       *usecases.CreateStaffUseCase
	updateStaffUC       *usecases.UpdateStaffUseCase
	toggleStaffStatusUC *usecases.ToggleStaffStatusUseCase
	resetPasswordUC     *usecases.ResetStaffPasswordUseCase
	deleteStaffUC       *usecases.DeleteStaffUseCase
	listStaffUC         *usecases.ListStaffUseCase
	logger              logger.Interface
}

func NewStaffHandler(
	createStaffUC *usecases.CreateStaffUseCase,
	updateStaffUC *usecases.UpdateStaffUseCase,
	toggleStaffStatusUC *usecases.ToggleStaffStatusUseCase,
	resetPasswordUC *usecases.ResetStaffPasswordUseCase,
	deleteStaffUC *usecases.DeleteStaffUseCase,
	listStaffUC *usecases.ListStaffUseCase,
) *StaffHandler {
	return &StaffHandler{
		createStaffUC:       createStaffUC,
		updateStaffUC:       updateStaffUC,
		toggleStaffStatusUC: toggleStaffStatusUC,
		resetPasswordUC:     resetPasswordUC,
		deleteStaffUC:       deleteStaffUC,
		listStaffUC:         listStaffUC,
		logger:              logger.NewLogger(),
	}
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createStaffUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff member created successfully")
}

func (h *StaffHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixStaff, "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update staff", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateStaffUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff member updated successfully", result)
}

func (h *StaffHandler) ToggleStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixStaff, "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleStaffStatusUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff status updated", result)
}

func (h *StaffHandler) ResetPassword(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixStaff, "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ResetStaffPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reset staff password", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), sid, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixStaff, "staff member")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteStaffUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff member deleted successfully", nil)
}

func (h *StaffHandler) List(c *gin.Context) {
	result, err := h.listStaffUC.Execute(c.Request.Context(), utils.ParsePagination(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
