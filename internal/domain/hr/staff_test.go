package hr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	deptID, posID := uint(1), uint(2)

	s, err := NewStaff("Ravi Kumar", "ravi@example.com", "hashed", &deptID, &posID)
	require.NoError(t, err)

	assert.Contains(t, s.SID(), "stf_")
	assert.Equal(t, "ravi@example.com", s.Email())
	assert.True(t, s.IsActive())
}

func TestNewStaff_Validation(t *testing.T) {
	_, err := NewStaff("", "ravi@example.com", "hashed", nil, nil)
	assert.Error(t, err)

	_, err = NewStaff("Ravi", "not-an-email", "hashed", nil, nil)
	assert.Error(t, err)

	_, err = NewStaff("Ravi", "ravi@example.com", "", nil, nil)
	assert.Error(t, err)
}

func TestStaff_ResetPassword(t *testing.T) {
	s, err := NewStaff("Ravi", "ravi@example.com", "old-hash", nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.ResetPassword("new-hash"))
	assert.Equal(t, "new-hash", s.PasswordHash())

	assert.Error(t, s.ResetPassword(""))
}

func TestStaff_UpdateProfile(t *testing.T) {
	s, err := NewStaff("Ravi", "ravi@example.com", "hashed", nil, nil)
	require.NoError(t, err)

	deptID := uint(3)
	require.NoError(t, s.UpdateProfile("Ravi K", "ravi.k@example.com", &deptID, nil))
	assert.Equal(t, "Ravi K", s.Name())
	assert.Equal(t, "ravi.k@example.com", s.Email())
	require.NotNil(t, s.DepartmentID())
	assert.Equal(t, uint(3), *s.DepartmentID())
	assert.Nil(t, s.PositionID())
}

func TestDepartment(t *testing.T) {
	d, err := NewDepartment("Engineering")
	require.NoError(t, err)

	assert.Contains(t, d.SID(), "dep_")
	assert.True(t, d.IsActive())

	require.NoError(t, d.Rename("Platform Engineering"))
	assert.Equal(t, "Platform Engineering", d.Name())
	assert.Error(t, d.Rename("  "))

	d.ToggleActive()
	assert.False(t, d.IsActive())
}

func TestPosition(t *testing.T) {
	p, err := NewPosition("Backend Engineer", 1)
	require.NoError(t, err)

	assert.Contains(t, p.SID(), "pos_")
	assert.Equal(t, uint(1), p.DepartmentID())

	require.NoError(t, p.Update("Senior Backend Engineer", 2))
	assert.Equal(t, uint(2), p.DepartmentID())

	_, err = NewPosition("Orphan", 0)
	assert.Error(t, err)
}
