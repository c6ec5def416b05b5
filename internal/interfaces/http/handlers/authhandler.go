package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/application/auth/usecases"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

type AuthHandler struct {
	adminLoginUC *usecases.AdminLoginUseCase
	staffLoginUC *usecases.StaffLoginUseCase
	verifyUC     *usecases.VerifyStaffSessionUseCase
	logger       logger.Interface
}

func NewAuthHandler(adminLoginUC *usecases.AdminLoginUseCase, staffLoginUC *usecases.StaffLoginUseCase, verifyUC *usecases.VerifyStaffSessionUseCase) *AuthHandler {
	return &AuthHandler{
		adminLoginUC: adminLoginUC,
		staffLoginUC: staffLoginUC,
		verifyUC:     verifyUC,
		logger:       logger.NewLogger(),
	}
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req usecases.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid admin login request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.adminLoginUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Verify confirms that the authenticated subject is still allowed in. The
// token itself was already validated by the auth middleware; this re-checks
// the staff row so deactivated accounts are kicked out on next page load.
func (h *AuthHandler) Verify(c *gin.Context) {
	subjectSID := c.GetString(constants.ContextKeySubjectSID)
	role := c.GetString(constants.ContextKeyRole)

	result, err := h.verifyUC.Execute(c.Request.Context(), subjectSID, role)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Session valid", result)
}

func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req usecases.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid staff login request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.staffLoginUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
