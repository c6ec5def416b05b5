package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra-inc/vendra/internal/domain/hr"
	"github.com/vendra-inc/vendra/internal/shared/constants"
	apperrors "github.com/vendra-inc/vendra/internal/shared/errors"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

type fakeStaffRepo struct {
	bySID map[string]*hr.Staff
}

func newFakeStaffRepo(staff ...*hr.Staff) *fakeStaffRepo {
	r := &fakeStaffRepo{bySID: map[string]*hr.Staff{}}
	for _, s := range staff {
		r.bySID[s.SID()] = s
	}
	return r
}

func (r *fakeStaffRepo) Create(ctx context.Context, s *hr.Staff) error { return nil }
func (r *fakeStaffRepo) Update(ctx context.Context, s *hr.Staff) error { return nil }
func (r *fakeStaffRepo) Delete(ctx context.Context, id uint) error     { return nil }
func (r *fakeStaffRepo) GetByID(ctx context.Context, id uint) (*hr.Staff, error) {
	return nil, fmt.Errorf("staff not found")
}
func (r *fakeStaffRepo) GetBySID(ctx context.Context, sid string) (*hr.Staff, error) {
	if s, ok := r.bySID[sid]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("staff not found")
}
func (r *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*hr.Staff, error) {
	for _, s := range r.bySID {
		if s.Email() == email {
			return s, nil
		}
	}
	return nil, fmt.Errorf("staff not found")
}
func (r *fakeStaffRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (r *fakeStaffRepo) List(ctx context.Context, offset, limit int) ([]*hr.Staff, int64, error) {
	return nil, 0, nil
}
func (r *fakeStaffRepo) CountByDepartmentID(ctx context.Context, departmentID uint) (int64, error) {
	return 0, nil
}
func (r *fakeStaffRepo) CountByPositionID(ctx context.Context, positionID uint) (int64, error) {
	return 0, nil
}

func newVerifyStaff(t *testing.T, active bool) *hr.Staff {
	t.Helper()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return hr.ReconstructStaff(1, "st_verify01", "Meera Pillai", "meera@example.com", "hash", nil, nil, active, now, now)
}

func TestVerifyStaffSessionUseCase_Execute_ActiveStaff(t *testing.T) {
	staff := newVerifyStaff(t, true)
	uc := NewVerifyStaffSessionUseCase(newFakeStaffRepo(staff), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), staff.SID(), constants.RoleStaff)

	require.NoError(t, err)
	assert.Equal(t, constants.RoleStaff, resp.Role)
	assert.Equal(t, "Meera Pillai", resp.Name)
	assert.Equal(t, "meera@example.com", resp.Email)
}

func TestVerifyStaffSessionUseCase_Execute_DeactivatedStaffIsForbidden(t *testing.T) {
	staff := newVerifyStaff(t, false)
	uc := NewVerifyStaffSessionUseCase(newFakeStaffRepo(staff), logger.NewLogger())

	_, err := uc.Execute(context.Background(), staff.SID(), constants.RoleStaff)

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestVerifyStaffSessionUseCase_Execute_DeletedStaffIsUnauthorized(t *testing.T) {
	uc := NewVerifyStaffSessionUseCase(newFakeStaffRepo(), logger.NewLogger())

	_, err := uc.Execute(context.Background(), "st_gone", constants.RoleStaff)

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestVerifyStaffSessionUseCase_Execute_AdminPassesThrough(t *testing.T) {
	uc := NewVerifyStaffSessionUseCase(newFakeStaffRepo(), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), "admin", constants.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, resp.Role)
}
