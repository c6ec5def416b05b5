package mappers

import (
	"github.com/vendra-inc/vendra/internal/domain/hr"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

func StaffToModel(s *hr.Staff) *models.StaffModel {
	return &models.StaffModel{
		ID:           s.ID(),
		SID:          s.SID(),
		Name:         s.Name(),
		Email:        s.Email(),
		PasswordHash: s.PasswordHash(),
		DepartmentID: s.DepartmentID(),
		PositionID:   s.PositionID(),
		IsActive:     s.IsActive(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func StaffToDomain(model *models.StaffModel) *hr.Staff {
	return hr.ReconstructStaff(
		model.ID,
		model.SID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.DepartmentID,
		model.PositionID,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func DepartmentToModel(d *hr.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:        d.ID(),
		SID:       d.SID(),
		Name:      d.Name(),
		IsActive:  d.IsActive(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func DepartmentToDomain(model *models.DepartmentModel) *hr.Department {
	return hr.ReconstructDepartment(
		model.ID,
		model.SID,
		model.Name,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func PositionToModel(p *hr.Position) *models.PositionModel {
	return &models.PositionModel{
		ID:           p.ID(),
		SID:          p.SID(),
		Name:         p.Name(),
		DepartmentID: p.DepartmentID(),
		IsActive:     p.IsActive(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func PositionToDomain(model *models.PositionModel) *hr.Position {
	return hr.ReconstructPosition(
		model.ID,
		model.SID,
		model.Name,
		model.DepartmentID,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
