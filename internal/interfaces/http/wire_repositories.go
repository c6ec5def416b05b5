package http

import (
	"github.com/vendra-inc/vendra/internal/domain/catalog"
	"github.com/vendra-inc/vendra/internal/domain/client"
	"github.com/vendra-inc/vendra/internal/domain/hr"
	"github.com/vendra-inc/vendra/internal/domain/payment"
	"github.com/vendra-inc/vendra/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the domain interfaces the use cases consume.
type repositories struct {
	softwareRepo   catalog.SoftwareRepository
	serviceRepo    catalog.ServiceRepository
	packageRepo    catalog.PackageRepository
	clientRepo     client.Repository
	paymentRepo    payment.Repository
	staffRepo      hr.StaffRepository
	departmentRepo hr.DepartmentRepository
	positionRepo   hr.PositionRepository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		softwareRepo:   repository.NewSoftwareRepository(c.db),
		serviceRepo:    repository.NewServiceRepository(c.db),
		packageRepo:    repository.NewPackageRepository(c.db),
		clientRepo:     repository.NewClientRepository(c.db),
		paymentRepo:    repository.NewPaymentRepository(c.db),
		staffRepo:      repository.NewStaffRepository(c.db),
		departmentRepo: repository.NewDepartmentRepository(c.db),
		positionRepo:   repository.NewPositionRepository(c.db),
	}
}
