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

type PackageHandler struct {
	createPackageUC       *usecases.CreatePackageUseCase
	updatePackageUC       *usecases.UpdatePackageUseCase
	togglePackageStatusUC *usecases.TogglePackageStatusUseCase
	deletePackageUC       *usecases.DeletePackageUseCase
	listPackagesUC        *usecases.ListPackagesUseCase
	logger                logger.Interface
}

func NewPackageHandler(
	createPackageUC *usecases.CreatePackageUseCase,
	updatePackageUC *usecases.UpdatePackageUseCase,
	togglePackageStatusUC *usecases.TogglePackageStatusUseCase,
	deletePackageUC *usecases.DeletePackageUseCase,
	listPackagesUC *usecases.ListPackagesUseCase,
) *PackageHandler {
	return &PackageHandler{
		createPackageUC:       createPackageUC,
		updatePackageUC:       updatePackageUC,
		togglePackageStatusUC: togglePackageStatusUC,
		deletePackageUC:       deletePackageUC,
		listPackagesUC:        listPackagesUC,
		logger:                logger.NewLogger(),
	}
}

func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create package", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createPackageUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Package created successfully")
}

func (h *PackageHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPackage, "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update package", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updatePackageUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package updated successfully", result)
}

func (h *PackageHandler) ToggleStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPackage, "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.togglePackageStatusUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package status updated", result)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPackage, "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePackageUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Package deleted successfully", nil)
}

func (h *PackageHandler) List(c *gin.Context) {
	var req dto.ListPackagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	result, err := h.listPackagesUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
