// Package hr holds the administrative staff, department and position records.
package hr

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

type Staff struct {
	id           uint
	sid          string
	name         string
	email        string
	passwordHash string
	departmentID *uint
	positionID   *uint
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStaff(name, email, passwordHash string, departmentID, positionID *uint) (*Staff, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("staff name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %q", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &Staff{
		sid:          id.MustGenerateWithPrefix(id.PrefixStaff, id.DefaultLength),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		departmentID: departmentID,
		positionID:   positionID,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructStaff(
	idVal uint,
	sid, name, email, passwordHash string,
	departmentID, positionID *uint,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Staff {
	return &Staff{
		id:           idVal,
		sid:          sid,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		departmentID: departmentID,
		positionID:   positionID,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Staff) ID() uint             { return s.id }
func (s *Staff) SID() string          { return s.sid }
func (s *Staff) Name() string         { return s.name }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) PasswordHash() string { return s.passwordHash }
func (s *Staff) DepartmentID() *uint  { return s.departmentID }
func (s *Staff) PositionID() *uint    { return s.positionID }
func (s *Staff) IsActive() bool       { return s.isActive }
func (s *Staff) CreatedAt() time.Time { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time { return s.updatedAt }

func (s *Staff) SetID(idVal uint) { s.id = idVal }

func (s *Staff) ToggleActive() {
	s.isActive = !s.isActive
	s.updatedAt = biztime.NowUTC()
}

// ResetPassword replaces the stored hash.
func (s *Staff) ResetPassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	s.passwordHash = passwordHash
	s.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateProfile changes name, email and assignment. The password is untouched.
func (s *Staff) UpdateProfile(name, email string, departmentID, positionID *uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("staff name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %q", email)
	}
	s.name = name
	s.email = email
	s.departmentID = departmentID
	s.positionID = positionID
	s.updatedAt = biztime.NowUTC()
	return nil
}
