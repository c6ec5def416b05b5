package catalog

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

// Package defines a purchasable subscription term. A software package grants
// access to exactly one software; a service package grants access to one or
// more services.
type Package struct {
	id          uint
	sid         string
	name        string
	packageType vo.PackageType
	softwareID  *uint
	serviceIDs  []uint
	duration    vo.Duration
	price       vo.Money
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSoftwarePackage creates a package scoped to a single software.
func NewSoftwarePackage(name string, softwareID uint, duration vo.Duration, price vo.Money, description string) (*Package, error) {
	if softwareID == 0 {
		return nil, fmt.Errorf("software ID is required for a software package")
	}
	return newPackage(name, vo.PackageTypeSoftware, &softwareID, nil, duration, price, description)
}

// NewServicePackage creates a package scoped to one or more services.
func NewServicePackage(name string, serviceIDs []uint, duration vo.Duration, price vo.Money, description string) (*Package, error) {
	if len(serviceIDs) == 0 {
		return nil, fmt.Errorf("at least one service is required for a service package")
	}
	return newPackage(name, vo.PackageTypeService, nil, serviceIDs, duration, price, description)
}

func newPackage(
	name string,
	packageType vo.PackageType,
	softwareID *uint,
	serviceIDs []uint,
	duration vo.Duration,
	price vo.Money,
	description string,
) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("package price must be positive")
	}

	now := biztime.NowUTC()
	return &Package{
		sid:         id.MustGenerateWithPrefix(id.PrefixPackage, id.DefaultLength),
		name:        name,
		packageType: packageType,
		softwareID:  softwareID,
		serviceIDs:  serviceIDs,
		duration:    duration,
		price:       price,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPackage(
	idVal uint,
	sid, name string,
	packageType vo.PackageType,
	softwareID *uint,
	serviceIDs []uint,
	duration vo.Duration,
	price vo.Money,
	description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Package, error) {
	if !packageType.IsValid() {
		return nil, fmt.Errorf("invalid package type: %s", packageType)
	}
	if packageType.IsSoftware() && (softwareID == nil || *softwareID == 0) {
		return nil, fmt.Errorf("software package %s has no software ID", sid)
	}
	if packageType.IsService() && len(serviceIDs) == 0 {
		return nil, fmt.Errorf("service package %s has no service IDs", sid)
	}

	return &Package{
		id:          idVal,
		sid:         sid,
		name:        name,
		packageType: packageType,
		softwareID:  softwareID,
		serviceIDs:  serviceIDs,
		duration:    duration,
		price:       price,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Package) ID() uint                    { return p.id }
func (p *Package) SID() string                 { return p.sid }
func (p *Package) Name() string                { return p.name }
func (p *Package) Type() vo.PackageType        { return p.packageType }
func (p *Package) SoftwareID() *uint           { return p.softwareID }
func (p *Package) ServiceIDs() []uint          { return p.serviceIDs }
func (p *Package) Duration() vo.Duration       { return p.duration }
func (p *Package) Price() vo.Money             { return p.price }
func (p *Package) Description() string         { return p.description }
func (p *Package) IsActive() bool              { return p.isActive }
func (p *Package) CreatedAt() time.Time        { return p.createdAt }
func (p *Package) UpdatedAt() time.Time        { return p.updatedAt }

// SetID sets the package ID after persistence.
func (p *Package) SetID(idVal uint) { p.id = idVal }

func (p *Package) UpdateDetails(name string, duration vo.Duration, price vo.Money, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("package name is required")
	}
	if !price.IsPositive() {
		return fmt.Errorf("package price must be positive")
	}
	p.name = name
	p.duration = duration
	p.price = price
	p.description = description
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Rescope reassigns the package's software or service scope, preserving the
// type invariant.
func (p *Package) Rescope(softwareID *uint, serviceIDs []uint) error {
	if p.packageType.IsSoftware() {
		if softwareID == nil || *softwareID == 0 {
			return fmt.Errorf("software package requires a software ID")
		}
		p.softwareID = softwareID
		p.serviceIDs = nil
	} else {
		if len(serviceIDs) == 0 {
			return fmt.Errorf("service package requires at least one service")
		}
		p.softwareID = nil
		p.serviceIDs = serviceIDs
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

// ToggleActive flips the active flag.
func (p *Package) ToggleActive() {
	p.isActive = !p.isActive
	p.updatedAt = biztime.NowUTC()
}

// IncludesService reports whether the package grants access to the service.
func (p *Package) IncludesService(serviceID uint) bool {
	for _, sid := range p.serviceIDs {
		if sid == serviceID {
			return true
		}
	}
	return false
}
