package catalog

import (
	"context"

	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
)

type SoftwareRepository interface {
	Create(ctx context.Context, software *Software) error
	Update(ctx context.Context, software *Software) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Software, error)
	GetBySID(ctx context.Context, sid string) (*Software, error)
	List(ctx context.Context) ([]*Software, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Service, error)
	GetBySID(ctx context.Context, sid string) (*Service, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Service, error)
	List(ctx context.Context) ([]*Service, error)
}

// PackageFilter narrows package listings.
type PackageFilter struct {
	Type       *vo.PackageType
	SoftwareID *uint
	ActiveOnly bool
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *Package) error
	Update(ctx context.Context, pkg *Package) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Package, error)
	GetBySID(ctx context.Context, sid string) (*Package, error)
	List(ctx context.Context, filter PackageFilter) ([]*Package, error)
	CountBySoftwareID(ctx context.Context, softwareID uint) (int64, error)
}
