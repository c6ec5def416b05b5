package usecases

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/vendra-inc/vendra/internal/domain/hr"
	"github.com/vendra-inc/vendra/internal/shared/config"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// TokenIssuer mints access tokens for authenticated subjects.
type TokenIssuer interface {
	IssueAccessToken(subjectSID, role string) (token string, expiresAt time.Time, err error)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// AdminLoginUseCase authenticates the single configured admin account.
type AdminLoginUseCase struct {
	admin  config.AdminConfig
	issuer TokenIssuer
	logger logger.Interface
}

func NewAdminLoginUseCase(admin config.AdminConfig, issuer TokenIssuer, logger logger.Interface) *AdminLoginUseCase {
	return &AdminLoginUseCase{admin: admin, issuer: issuer, logger: logger}
}

func (uc *AdminLoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(uc.admin.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(uc.admin.Password)) == 1
	if !emailOK || !passwordOK {
		uc.logger.Warnw("admin login rejected", "email", req.Email)
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.issuer.IssueAccessToken("admin", constants.RoleAdmin)
	if err != nil {
		uc.logger.Errorw("failed to issue admin token", "error", err)
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("admin logged in", "email", req.Email)

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      constants.RoleAdmin,
		Name:      "Administrator",
		Email:     uc.admin.Email,
	}, nil
}

// StaffLoginUseCase authenticates staff rows against their stored hash.
type StaffLoginUseCase struct {
	staffRepo hr.StaffRepository
	hasher    hr.PasswordHasher
	issuer    TokenIssuer
	logger    logger.Interface
}

func NewStaffLoginUseCase(staffRepo hr.StaffRepository, hasher hr.PasswordHasher, issuer TokenIssuer, logger logger.Interface) *StaffLoginUseCase {
	return &StaffLoginUseCase{
		staffRepo: staffRepo,
		hasher:    hasher,
		issuer:    issuer,
		logger:    logger,
	}
}

func (uc *StaffLoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	staff, err := uc.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Warnw("staff login for unknown email", "email", req.Email)
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}
	if !staff.IsActive() {
		uc.logger.Warnw("inactive staff login rejected", "staff_sid", staff.SID())
		return nil, apperrors.NewUnauthorizedError("account is disabled")
	}

	if err := uc.hasher.Verify(req.Password, staff.PasswordHash()); err != nil {
		uc.logger.Warnw("staff login with wrong password", "staff_sid", staff.SID())
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.issuer.IssueAccessToken(staff.SID(), constants.RoleStaff)
	if err != nil {
		uc.logger.Errorw("failed to issue staff token", "error", err, "staff_sid", staff.SID())
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("staff logged in", "staff_sid", staff.SID())

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      constants.RoleStaff,
		Name:      staff.Name(),
		Email:     staff.Email(),
	}, nil
}
