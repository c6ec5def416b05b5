package hr

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

type Department struct {
	id        uint
	sid       string
	name      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewDepartment(name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("department name is required")
	}

	now := biztime.NowUTC()
	return &Department{
		sid:       id.MustGenerateWithPrefix(id.PrefixDepartment, id.DefaultLength),
		name:      name,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructDepartment(idVal uint, sid, name string, isActive bool, createdAt, updatedAt time.Time) *Department {
	return &Department{
		id:        idVal,
		sid:       sid,
		name:      name,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) SID() string          { return d.sid }
func (d *Department) Name() string         { return d.name }
func (d *Department) IsActive() bool       { return d.isActive }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) SetID(idVal uint) { d.id = idVal }

func (d *Department) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("department name is required")
	}
	d.name = name
	d.updatedAt = biztime.NowUTC()
	return nil
}

func (d *Department) ToggleActive() {
	d.isActive = !d.isActive
	d.updatedAt = biztime.NowUTC()
}
