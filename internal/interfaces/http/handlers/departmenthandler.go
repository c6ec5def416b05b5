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

type DepartmentHandler struct {
	createDepartmentUC       *usecases.CreateDepartmentUseCase
	updateDepartmentUC       *usecases.UpdateDepartmentUseCase
	toggleDepartmentStatusUC *usecases.ToggleDepartmentStatusUseCase
	deleteDepartmentUC       *usecases.DeleteDepartmentUseCase
	listDepartmentsUC        *usecases.ListDepartmentsUseCase
	logger                   logger.Interface
}

func NewDepartmentHandler(
	createDepartmentUC *usecases.CreateDepartmentUseCase,
	updateDepartmentUC *usecases.UpdateDepartmentUseCase,
	toggleDepartmentStatusUC *usecases.ToggleDepartmentStatusUseCase,
	deleteDepartmentUC *usecases.DeleteDepartmentUseCase,
	listDepartmentsUC *usecases.ListDepartmentsUseCase,
) *DepartmentHandler {
	return &DepartmentHandler{
		createDepartmentUC:       createDepartmentUC,
		updateDepartmentUC:       updateDepartmentUC,
		toggleDepartmentStatusUC: toggleDepartmentStatusUC,
		deleteDepartmentUC:       deleteDepartmentUC,
		listDepartmentsUC:        listDepartmentsUC,
		logger:                   logger.NewLogger(),
	}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create department", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createDepartmentUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Department created successfully")
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDepartment, "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update department", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateDepartmentUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Department updated successfully", result)
}

func (h *DepartmentHandler) ToggleStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDepartment, "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleDepartmentStatusUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Department status updated", result)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDepartment, "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDepartmentUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Department deleted successfully", nil)
}

func (h *DepartmentHandler) List(c *gin.Context) {
	result, err := h.listDepartmentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
