package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/hr/dto"
	"github.com/vendra-inc/vendra/internal/domain/hr"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

type CreateDepartmentUseCase struct {
	departmentRepo hr.DepartmentRepository
	logger         logger.Interface
}

func NewCreateDepartmentUseCase(departmentRepo hr.DepartmentRepository, logger logger.Interface) *CreateDepartmentUseCase {
	return &CreateDepartmentUseCase{departmentRepo: departmentRepo, logger: logger}
}

func (uc *CreateDepartmentUseCase) Execute(ctx context.Context, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	exists, err := uc.departmentRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("department with this name already exists")
	}

	dep, err := hr.NewDepartment(req.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.departmentRepo.Create(ctx, dep); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("department with this name already exists")
		}
		uc.logger.Errorw("failed to save department", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save department: %w", err)
	}

	uc.logger.Infow("department created", "sid", dep.SID(), "name", dep.Name())

	resp := toDepartmentResponse(dep)
	return &resp, nil
}

type UpdateDepartmentUseCase struct {
	departmentRepo hr.DepartmentRepository
	logger         logger.Interface
}

func NewUpdateDepartmentUseCase(departmentRepo hr.DepartmentRepository, logger logger.Interface) *UpdateDepartmentUseCase {
	return &UpdateDepartmentUseCase{departmentRepo: departmentRepo, logger: logger}
}

func (uc *UpdateDepartmentUseCase) Execute(ctx context.Context, sid string, req dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dep, err := uc.departmentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("department not found")
	}

	if err := dep.Rename(req.Name); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.departmentRepo.Update(ctx, dep); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("department with this name already exists")
		}
		uc.logger.Errorw("failed to update department", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	resp := toDepartmentResponse(dep)
	return &resp, nil
}

type ToggleDepartmentStatusUseCase struct {
	departmentRepo hr.DepartmentRepository
	logger         logger.Interface
}

func NewToggleDepartmentStatusUseCase(departmentRepo hr.DepartmentRepository, logger logger.Interface) *ToggleDepartmentStatusUseCase {
	return &ToggleDepartmentStatusUseCase{departmentRepo: departmentRepo, logger: logger}
}

func (uc *ToggleDepartmentStatusUseCase) Execute(ctx context.Context, sid string) (*dto.DepartmentResponse, error) {
	dep, err := uc.departmentRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("department not found")
	}

	dep.ToggleActive()

	if err := uc.departmentRepo.Update(ctx, dep); err != nil {
		uc.logger.Errorw("failed to toggle department status", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to toggle department status: %w", err)
	}

	resp := toDepartmentResponse(dep)
	return &resp, nil
}

// DeleteDepartmentUseCase removes a department. Removal is refused while
// positions or staff still reference it.
type DeleteDepartmentUseCase struct {
	departmentRepo hr.DepartmentRepository
	positionRepo   hr.PositionRepository
	staffRepo      hr.StaffRepository
	logger         logger.Interface
}

func NewDeleteDepartmentUseCase(
	departmentRepo hr.DepartmentRepository,
	positionRepo hr.PositionRepository,
	staffRepo hr.StaffRepository,
	logger logger.Interface,
) *DeleteDepartmentUseCase {
	return &DeleteDepartmentUseCase{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		staffRepo:      staffRepo,
		logger:         logger,
	}
}

func (uc *DeleteDepartmentUseCase) Execute(ctx context.Context, sid string) error {
	dep, err := uc.departmentRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("department not found")
	}

	positions, err := uc.positionRepo.CountByDepartmentID(ctx, dep.ID())
	if err != nil {
		return fmt.Errorf("failed to count department positions: %w", err)
	}
	if positions > 0 {
		return apperrors.NewConflictError("department has positions and cannot be deleted")
	}

	staff, err := uc.staffRepo.CountByDepartmentID(ctx, dep.ID())
	if err != nil {
		return fmt.Errorf("failed to count department staff: %w", err)
	}
	if staff > 0 {
		return apperrors.NewConflictError("department has staff and cannot be deleted")
	}

	if err := uc.departmentRepo.Delete(ctx, dep.ID()); err != nil {
		uc.logger.Errorw("failed to delete department", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete department: %w", err)
	}

	uc.logger.Infow("department deleted", "sid", sid, "name", dep.Name())
	return nil
}

type ListDepartmentsUseCase struct {
	departmentRepo hr.DepartmentRepository
	logger         logger.Interface
}

func NewListDepartmentsUseCase(departmentRepo hr.DepartmentRepository, logger logger.Interface) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{departmentRepo: departmentRepo, logger: logger}
}

func (uc *ListDepartmentsUseCase) Execute(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := uc.departmentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]dto.DepartmentResponse, 0, len(departments))
	for _, dep := range departments {
		responses = append(responses, toDepartmentResponse(dep))
	}
	return responses, nil
}

func toDepartmentResponse(dep *hr.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dep.SID(),
		Name:      dep.Name(),
		IsActive:  dep.IsActive(),
		CreatedAt: dep.CreatedAt(),
		UpdatedAt: dep.UpdatedAt(),
	}
}
