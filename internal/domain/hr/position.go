package hr

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

// Position belongs to exactly one department.
type Position struct {
	id           uint
	sid          string
	name         string
	departmentID uint
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPosition(name string, departmentID uint) (*Position, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("position name is required")
	}
	if departmentID == 0 {
		return nil, fmt.Errorf("department ID is required")
	}

	now := biztime.NowUTC()
	return &Position{
		sid:          id.MustGenerateWithPrefix(id.PrefixPosition, id.DefaultLength),
		name:         name,
		departmentID: departmentID,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPosition(idVal uint, sid, name string, departmentID uint, isActive bool, createdAt, updatedAt time.Time) *Position {
	return &Position{
		id:           idVal,
		sid:          sid,
		name:         name,
		departmentID: departmentID,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Position) ID() uint             { return p.id }
func (p *Position) SID() string          { return p.sid }
func (p *Position) Name() string         { return p.name }
func (p *Position) DepartmentID() uint   { return p.departmentID }
func (p *Position) IsActive() bool       { return p.isActive }
func (p *Position) CreatedAt() time.Time { return p.createdAt }
func (p *Position) UpdatedAt() time.Time { return p.updatedAt }

func (p *Position) SetID(idVal uint) { p.id = idVal }

func (p *Position) Update(name string, departmentID uint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("position name is required")
	}
	if departmentID == 0 {
		return fmt.Errorf("department ID is required")
	}
	p.name = name
	p.departmentID = departmentID
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Position) ToggleActive() {
	p.isActive = !p.isActive
	p.updatedAt = biztime.NowUTC()
}
