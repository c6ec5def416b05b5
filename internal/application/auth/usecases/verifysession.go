package usecases

import (
	"context"

	"github.com/vendra-inc/vendra/internal/domain/hr"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

type VerifySessionResponse struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// VerifyStaffSessionUseCase re-checks a bearer token's subject against the
// staff table. Tokens outlive deactivation, so the dashboard polls this on
// load and logs the user out on 401 or 403.
type VerifyStaffSessionUseCase struct {
	staffRepo hr.StaffRepository
	logger    logger.Interface
}

func NewVerifyStaffSessionUseCase(staffRepo hr.StaffRepository, logger logger.Interface) *VerifyStaffSessionUseCase {
	return &VerifyStaffSessionUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *VerifyStaffSessionUseCase) Execute(ctx context.Context, subjectSID, role string) (*VerifySessionResponse, error) {
	// The admin account lives in config, not in a table: a valid admin
	// token has nothing further to check.
	if role == constants.RoleAdmin {
		return &VerifySessionResponse{Role: constants.RoleAdmin, Name: "Administrator"}, nil
	}

	staff, err := uc.staffRepo.GetBySID(ctx, subjectSID)
	if err != nil {
		uc.logger.Warnw("session check for missing staff row", "staff_sid", subjectSID)
		return nil, apperrors.NewUnauthorizedError("session is no longer valid")
	}
	if !staff.IsActive() {
		uc.logger.Infow("session check for deactivated staff", "staff_sid", staff.SID())
		return nil, apperrors.NewForbiddenError("account is disabled")
	}

	return &VerifySessionResponse{
		Role:  constants.RoleStaff,
		Name:  staff.Name(),
		Email: staff.Email(),
	}, nil
}
