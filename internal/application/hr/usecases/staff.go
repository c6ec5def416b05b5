package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/hr/dto"
	"github.com/vendra-inc/vendra/internal/domain/hr"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
	"github.com/vendra-inc/vendra/internal/shared/utils"
)

// CreateStaffUseCase registers a staff member with a hashed password.
type CreateStaffUseCase struct {
	staffRepo      hr.StaffRepository
	departmentRepo hr.DepartmentRepository
	positionRepo   hr.PositionRepository
	hasher         hr.PasswordHasher
	logger         logger.Interface
}

func NewCreateStaffUseCase(
	staffRepo hr.StaffRepository,
	departmentRepo hr.DepartmentRepository,
	positionRepo hr.PositionRepository,
	hasher hr.PasswordHasher,
	logger logger.Interface,
) *CreateStaffUseCase {
	return &CreateStaffUseCase{
		staffRepo:      staffRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		hasher:         hasher,
		logger:         logger,
	}
}

func (uc *CreateStaffUseCase) Execute(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	exists, err := uc.staffRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check staff email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("staff with this email already exists")
	}

	departmentID, departmentName, err := uc.resolveDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	positionID, positionName, err := uc.resolvePosition(ctx, req.PositionID)
	if err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash staff password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff, err := hr.NewStaff(req.Name, req.Email, hash, departmentID, positionID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.staffRepo.Create(ctx, staff); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("staff with this email already exists")
		}
		uc.logger.Errorw("failed to save staff", "error", err, "email", req.Email)
		return nil, fmt.Errorf("failed to save staff: %w", err)
	}

	uc.logger.Infow("staff created", "sid", staff.SID(), "email", staff.Email())

	resp := toStaffResponse(staff, req.DepartmentID, departmentName, req.PositionID, positionName)
	return &resp, nil
}

func (uc *CreateStaffUseCase) resolveDepartment(ctx context.Context, sid string) (*uint, string, error) {
	if sid == "" {
		return nil, "", nil
	}
	dep, err := uc.departmentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, "", apperrors.NewNotFoundError("department not found")
	}
	id := dep.ID()
	return &id, dep.Name(), nil
}

func (uc *CreateStaffUseCase) resolvePosition(ctx context.Context, sid string) (*uint, string, error) {
	if sid == "" {
		return nil, "", nil
	}
	pos, err := uc.positionRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, "", apperrors.NewNotFoundError("position not found")
	}
	id := pos.ID()
	return &id, pos.Name(), nil
}

// UpdateStaffUseCase replaces name, email and assignment.
type UpdateStaffUseCase struct {
	staffRepo      hr.StaffRepository
	departmentRepo hr.DepartmentRepository
	positionRepo   hr.PositionRepository
	logger         logger.Interface
}

func NewUpdateStaffUseCase(
	staffRepo hr.StaffRepository,
	departmentRepo hr.DepartmentRepository,
	positionRepo hr.PositionRepository,
	logger logger.Interface,
) *UpdateStaffUseCase {
	return &UpdateStaffUseCase{
		staffRepo:      staffRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		logger:         logger,
	}
}

func (uc *UpdateStaffUseCase) Execute(ctx context.Context, sid string, req dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := uc.staffRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("staff not found")
	}

	if req.Email != staff.Email() {
		exists, err := uc.staffRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check staff email: %w", err)
		}
		if exists {
			return nil, apperrors.NewConflictError("staff with this email already exists")
		}
	}

	var departmentID, positionID *uint
	var departmentName, positionName string
	if req.DepartmentID != "" {
		dep, err := uc.departmentRepo.GetBySID(ctx, req.DepartmentID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("department not found")
		}
		id := dep.ID()
		departmentID, departmentName = &id, dep.Name()
	}
	if req.PositionID != "" {
		pos, err := uc.positionRepo.GetBySID(ctx, req.PositionID)
		if err != nil {
			return nil, apperrors.NewNotFoundError("position not found")
		}
		id := pos.ID()
		positionID, positionName = &id, pos.Name()
	}

	if err := staff.UpdateProfile(req.Name, req.Email, departmentID, positionID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.staffRepo.Update(ctx, staff); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("staff with this email already exists")
		}
		uc.logger.Errorw("failed to update staff", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	resp := toStaffResponse(staff, req.DepartmentID, departmentName, req.PositionID, positionName)
	return &resp, nil
}

// ToggleStaffStatusUseCase flips a staff member's active flag. Inactive
// staff cannot log in.
type ToggleStaffStatusUseCase struct {
	staffRepo hr.StaffRepository
	logger    logger.Interface
}

func NewToggleStaffStatusUseCase(staffRepo hr.StaffRepository, logger logger.Interface) *ToggleStaffStatusUseCase {
	return &ToggleStaffStatusUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *ToggleStaffStatusUseCase) Execute(ctx context.Context, sid string) (*dto.StaffResponse, error) {
	staff, err := uc.staffRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("staff not found")
	}

	staff.ToggleActive()

	if err := uc.staffRepo.Update(ctx, staff); err != nil {
		uc.logger.Errorw("failed to toggle staff status", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to toggle staff status: %w", err)
	}

	uc.logger.Infow("staff status toggled", "sid", sid, "is_active", staff.IsActive())

	resp := toStaffResponse(staff, "", "", "", "")
	return &resp, nil
}

// ResetStaffPasswordUseCase replaces a staff member's password.
type ResetStaffPasswordUseCase struct {
	staffRepo hr.StaffRepository
	hasher    hr.PasswordHasher
	logger    logger.Interface
}

func NewResetStaffPasswordUseCase(staffRepo hr.StaffRepository, hasher hr.PasswordHasher, logger logger.Interface) *ResetStaffPasswordUseCase {
	return &ResetStaffPasswordUseCase{staffRepo: staffRepo, hasher: hasher, logger: logger}
}

func (uc *ResetStaffPasswordUseCase) Execute(ctx context.Context, sid string, req dto.ResetStaffPasswordRequest) error {
	staff, err := uc.staffRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("staff not found")
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash staff password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := staff.ResetPassword(hash); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.staffRepo.Update(ctx, staff); err != nil {
		uc.logger.Errorw("failed to reset staff password", "error", err, "sid", sid)
		return fmt.Errorf("failed to reset password: %w", err)
	}

	uc.logger.Infow("staff password reset", "sid", sid)
	return nil
}

// DeleteStaffUseCase removes a staff member.
type DeleteStaffUseCase struct {
	staffRepo hr.StaffRepository
	logger    logger.Interface
}

func NewDeleteStaffUseCase(staffRepo hr.StaffRepository, logger logger.Interface) *DeleteStaffUseCase {
	return &DeleteStaffUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *DeleteStaffUseCase) Execute(ctx context.Context, sid string) error {
	staff, err := uc.staffRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("staff not found")
	}

	if err := uc.staffRepo.Delete(ctx, staff.ID()); err != nil {
		uc.logger.Errorw("failed to delete staff", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	uc.logger.Infow("staff deleted", "sid", sid, "email", staff.Email())
	return nil
}

// ListStaffUseCase pages through staff members with their department and
// position names resolved.
type ListStaffUseCase struct {
	staffRepo      hr.StaffRepository
	departmentRepo hr.DepartmentRepository
	positionRepo   hr.PositionRepository
	logger         logger.Interface
}

func NewListStaffUseCase(
	staffRepo hr.StaffRepository,
	departmentRepo hr.DepartmentRepository,
	positionRepo hr.PositionRepository,
	logger logger.Interface,
) *ListStaffUseCase {
	return &ListStaffUseCase{
		staffRepo:      staffRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		logger:         logger,
	}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, pagination utils.Pagination) (*dto.ListStaffResponse, error) {
	staff, total, err := uc.staffRepo.List(ctx, pagination.Offset(), pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	depSIDs := make(map[uint]string)
	depNames := make(map[uint]string)
	posSIDs := make(map[uint]string)
	posNames := make(map[uint]string)

	items := make([]dto.StaffResponse, 0, len(staff))
	for _, s := range staff {
		var depSID, depName, posSID, posName string
		if s.DepartmentID() != nil {
			id := *s.DepartmentID()
			if _, ok := depSIDs[id]; !ok {
				if dep, err := uc.departmentRepo.GetByID(ctx, id); err == nil {
					depSIDs[id], depNames[id] = dep.SID(), dep.Name()
				}
			}
			depSID, depName = depSIDs[id], depNames[id]
		}
		if s.PositionID() != nil {
			id := *s.PositionID()
			if _, ok := posSIDs[id]; !ok {
				if pos, err := uc.positionRepo.GetByID(ctx, id); err == nil {
					posSIDs[id], posNames[id] = pos.SID(), pos.Name()
				}
			}
			posSID, posName = posSIDs[id], posNames[id]
		}
		items = append(items, toStaffResponse(s, depSID, depName, posSID, posName))
	}

	return &dto.ListStaffResponse{
		Items:    items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func toStaffResponse(staff *hr.Staff, depSID, depName, posSID, posName string) dto.StaffResponse {
	return dto.StaffResponse{
		ID:             staff.SID(),
		Name:           staff.Name(),
		Email:          staff.Email(),
		DepartmentID:   depSID,
		DepartmentName: depName,
		PositionID:     posSID,
		PositionName:   posName,
		IsActive:       staff.IsActive(),
		CreatedAt:      staff.CreatedAt(),
		UpdatedAt:      staff.UpdatedAt(),
	}
}
