package usecases

import (
	"context"
	"fmt"

	"github.com/vendra-inc/vendra/internal/application/hr/dto"
	"github.com/vendra-inc/vendra/internal/domain/hr"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

type CreatePositionUseCase struct {
	positionRepo   hr.PositionRepository
	departmentRepo hr.DepartmentRepository
	logger         logger.Interface
}

func NewCreatePositionUseCase(positionRepo hr.PositionRepository, departmentRepo hr.DepartmentRepository, logger logger.Interface) *CreatePositionUseCase {
	return &CreatePositionUseCase{positionRepo: positionRepo, departmentRepo: departmentRepo, logger: logger}
}

func (uc *CreatePositionUseCase) Execute(ctx context.Context, req dto.CreatePositionRequest) (*dto.PositionResponse, error) {
	dep, err := uc.departmentRepo.GetBySID(ctx, req.DepartmentID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("department not found")
	}

	pos, err := hr.NewPosition(req.Name, dep.ID())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.positionRepo.Create(ctx, pos); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("position with this name already exists in the department")
		}
		uc.logger.Errorw("failed to save position", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save position: %w", err)
	}

	uc.logger.Infow("position created", "sid", pos.SID(), "name", pos.Name(), "department", dep.Name())

	resp := toPositionResponse(pos, dep.SID(), dep.Name())
	return &resp, nil
}

type UpdatePositionUseCase struct {
	positionRepo   hr.PositionRepository
	departmentRepo hr.DepartmentRepository
	logger         logger.Interface
}

func NewUpdatePositionUseCase(positionRepo hr.PositionRepository, departmentRepo hr.DepartmentRepository, logger logger.Interface) *UpdatePositionUseCase {
	return &UpdatePositionUseCase{positionRepo: positionRepo, departmentRepo: departmentRepo, logger: logger}
}

func (uc *UpdatePositionUseCase) Execute(ctx context.Context, sid string, req dto.UpdatePositionRequest) (*dto.PositionResponse, error) {
	pos, err := uc.positionRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("position not found")
	}

	dep, err := uc.departmentRepo.GetBySID(ctx, req.DepartmentID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("department not found")
	}

	if err := pos.Update(req.Name, dep.ID()); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.positionRepo.Update(ctx, pos); err != nil {
		uc.logger.Errorw("failed to update position", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to update position: %w", err)
	}

	resp := toPositionResponse(pos, dep.SID(), dep.Name())
	return &resp, nil
}

type TogglePositionStatusUseCase struct {
	positionRepo hr.PositionRepository
	logger       logger.Interface
}

func NewTogglePositionStatusUseCase(positionRepo hr.PositionRepository, logger logger.Interface) *TogglePositionStatusUseCase {
	return &TogglePositionStatusUseCase{positionRepo: positionRepo, logger: logger}
}

func (uc *TogglePositionStatusUseCase) Execute(ctx context.Context, sid string) (*dto.PositionResponse, error) {
	pos, err := uc.positionRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, apperrors.NewNotFoundError("position not found")
	}

	pos.ToggleActive()

	if err := uc.positionRepo.Update(ctx, pos); err != nil {
		uc.logger.Errorw("failed to toggle position status", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to toggle position status: %w", err)
	}

	resp := toPositionResponse(pos, "", "")
	return &resp, nil
}

// DeletePositionUseCase removes a position. Removal is refused while staff
// still hold it.
type DeletePositionUseCase struct {
	positionRepo hr.PositionRepository
	staffRepo    hr.StaffRepository
	logger       logger.Interface
}

func NewDeletePositionUseCase(positionRepo hr.PositionRepository, staffRepo hr.StaffRepository, logger logger.Interface) *DeletePositionUseCase {
	return &DeletePositionUseCase{positionRepo: positionRepo, staffRepo: staffRepo, logger: logger}
}

func (uc *DeletePositionUseCase) Execute(ctx context.Context, sid string) error {
	pos, err := uc.positionRepo.GetBySID(ctx, sid)
	if err != nil {
		return apperrors.NewNotFoundError("position not found")
	}

	staff, err := uc.staffRepo.CountByPositionID(ctx, pos.ID())
	if err != nil {
		return fmt.Errorf("failed to count position staff: %w", err)
	}
	if staff > 0 {
		return apperrors.NewConflictError("position has staff and cannot be deleted")
	}

	if err := uc.positionRepo.Delete(ctx, pos.ID()); err != nil {
		uc.logger.Errorw("failed to delete position", "error", err, "sid", sid)
		return fmt.Errorf("failed to delete position: %w", err)
	}

	uc.logger.Infow("position deleted", "sid", sid, "name", pos.Name())
	return nil
}

// ListPositionsUseCase lists positions, optionally narrowed to a department.
type ListPositionsUseCase struct {
	positionRepo   hr.PositionRepository
	departmentRepo hr.DepartmentRepository
	logger         logger.Interface
}

func NewListPositionsUseCase(positionRepo hr.PositionRepository, departmentRepo hr.DepartmentRepository, logger logger.Interface) *ListPositionsUseCase {
	return &ListPositionsUseCase{positionRepo: positionRepo, departmentRepo: departmentRepo, logger: logger}
}

func (uc *ListPositionsUseCase) Execute(ctx context.Context, departmentSID string) ([]dto.PositionResponse, error) {
	var positions []*hr.Position
	var err error

	if departmentSID != "" {
		dep, depErr := uc.departmentRepo.GetBySID(ctx, departmentSID)
		if depErr != nil {
			return nil, apperrors.NewNotFoundError("department not found")
		}
		positions, err = uc.positionRepo.ListByDepartmentID(ctx, dep.ID())
	} else {
		positions, err = uc.positionRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list positions", "error", err)
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	depSIDs := make(map[uint]string)
	depNames := make(map[uint]string)

	responses := make([]dto.PositionResponse, 0, len(positions))
	for _, pos := range positions {
		if _, ok := depSIDs[pos.DepartmentID()]; !ok {
			if dep, err := uc.departmentRepo.GetByID(ctx, pos.DepartmentID()); err == nil {
				depSIDs[pos.DepartmentID()], depNames[pos.DepartmentID()] = dep.SID(), dep.Name()
			}
		}
		responses = append(responses, toPositionResponse(pos, depSIDs[pos.DepartmentID()], depNames[pos.DepartmentID()]))
	}
	return responses, nil
}

func toPositionResponse(pos *hr.Position, depSID, depName string) dto.PositionResponse {
	return dto.PositionResponse{
		ID:             pos.SID(),
		Name:           pos.Name(),
		DepartmentID:   depSID,
		DepartmentName: depName,
		IsActive:       pos.IsActive(),
		CreatedAt:      pos.CreatedAt(),
		UpdatedAt:      pos.UpdatedAt(),
	}
}
