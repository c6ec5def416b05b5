package catalog

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

// Service is a billable offering not tied to an external software.
type Service struct {
	id          uint
	sid         string
	name        string
	price       vo.Money
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(name string, price vo.Money, description string) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("service price must be positive")
	}

	now := biztime.NowUTC()
	return &Service{
		sid:         id.MustGenerateWithPrefix(id.PrefixService, id.DefaultLength),
		name:        name,
		price:       price,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructService(
	idVal uint,
	sid, name string,
	price vo.Money,
	description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          idVal,
		sid:         sid,
		name:        name,
		price:       price,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) ID() uint            { return s.id }
func (s *Service) SID() string         { return s.sid }
func (s *Service) Name() string        { return s.name }
func (s *Service) Price() vo.Money     { return s.price }
func (s *Service) Description() string { return s.description }
func (s *Service) IsActive() bool      { return s.isActive }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the service ID after persistence.
func (s *Service) SetID(idVal uint) { s.id = idVal }

func (s *Service) UpdateDetails(name string, price vo.Money, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("service name is required")
	}
	if !price.IsPositive() {
		return fmt.Errorf("service price must be positive")
	}
	s.name = name
	s.price = price
	s.description = description
	s.updatedAt = biztime.NowUTC()
	return nil
}

// ToggleActive flips the active flag.
func (s *Service) ToggleActive() {
	s.isActive = !s.isActive
	s.updatedAt = biztime.NowUTC()
}
