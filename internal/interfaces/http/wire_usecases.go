package http

import (
	authUsecases "github.com/vendra-inc/vendra/internal/application/auth/usecases"
	catalogUsecases "github.com/vendra-inc/vendra/internal/application/catalog/usecases"
	clientUsecases "github.com/vendra-inc/vendra/internal/application/client/usecases"
	hrUsecases "github.com/vendra-inc/vendra/internal/application/hr/usecases"
	renewalUsecases "github.com/vendra-inc/vendra/internal/application/renewal/usecases"
)

// allUseCases groups every use case instance by bounded context.
type allUseCases struct {
	// Catalog
	createSoftware *catalogUsecases.CreateSoftwareUseCase
	updateSoftware *catalogUsecases.UpdateSoftwareUseCase
	deleteSoftware *catalogUsecases.DeleteSoftwareUseCase
	listSoftware   *catalogUsecases.ListSoftwareUseCase

	createService       *catalogUsecases.CreateServiceUseCase
	updateService       *catalogUsecases.UpdateServiceUseCase
	toggleServiceStatus *catalogUsecases.ToggleServiceStatusUseCase
	deleteService       *catalogUsecases.DeleteServiceUseCase
	listServices        *catalogUsecases.ListServicesUseCase

	createPackage       *catalogUsecases.CreatePackageUseCase
	updatePackage       *catalogUsecases.UpdatePackageUseCase
	togglePackageStatus *catalogUsecases.TogglePackageStatusUseCase
	deletePackage       *catalogUsecases.DeletePackageUseCase
	listPackages        *catalogUsecases.ListPackagesUseCase

	// Client
	createClient            *clientUsecases.CreateClientUseCase
	updateClient            *clientUsecases.UpdateClientUseCase
	toggleClientStatus      *clientUsecases.ToggleClientStatusUseCase
	deleteClient            *clientUsecases.DeleteClientUseCase
	deleteExternalClient    *clientUsecases.DeleteExternalClientUseCase
	listClients             *clientUsecases.ListClientsUseCase
	listExternalAccounts    *clientUsecases.ListExternalAccountsUseCase
	clientHistory           *clientUsecases.GetClientHistoryUseCase
	publicClientInfo        *clientUsecases.GetPublicClientInfoUseCase
	publicServiceClientInfo *clientUsecases.GetPublicServiceClientInfoUseCase

	// Renewal
	createOrder    *renewalUsecases.CreateOrderUseCase
	processRenewal *renewalUsecases.ProcessRenewalUseCase

	// HR
	createStaff       *hrUsecases.CreateStaffUseCase
	updateStaff       *hrUsecases.UpdateStaffUseCase
	toggleStaffStatus *hrUsecases.ToggleStaffStatusUseCase
	resetPassword     *hrUsecases.ResetStaffPasswordUseCase
	deleteStaff       *hrUsecases.DeleteStaffUseCase
	listStaff         *hrUsecases.ListStaffUseCase

	createDepartment       *hrUsecases.CreateDepartmentUseCase
	updateDepartment       *hrUsecases.UpdateDepartmentUseCase
	toggleDepartmentStatus *hrUsecases.ToggleDepartmentStatusUseCase
	deleteDepartment       *hrUsecases.DeleteDepartmentUseCase
	listDepartments        *hrUsecases.ListDepartmentsUseCase

	createPosition       *hrUsecases.CreatePositionUseCase
	updatePosition       *hrUsecases.UpdatePositionUseCase
	togglePositionStatus *hrUsecases.TogglePositionStatusUseCase
	deletePosition       *hrUsecases.DeletePositionUseCase
	listPositions        *hrUsecases.ListPositionsUseCase

	// Auth
	adminLogin    *authUsecases.AdminLoginUseCase
	staffLogin    *authUsecases.StaffLoginUseCase
	verifySession *authUsecases.VerifyStaffSessionUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	ucs := &allUseCases{}

	// Catalog
	ucs.createSoftware = catalogUsecases.NewCreateSoftwareUseCase(r.softwareRepo, log)
	ucs.updateSoftware = catalogUsecases.NewUpdateSoftwareUseCase(r.softwareRepo, log)
	ucs.deleteSoftware = catalogUsecases.NewDeleteSoftwareUseCase(r.softwareRepo, r.packageRepo, r.clientRepo, log)
	ucs.listSoftware = catalogUsecases.NewListSoftwareUseCase(r.softwareRepo, log)

	ucs.createService = catalogUsecases.NewCreateServiceUseCase(r.serviceRepo, log)
	ucs.updateService = catalogUsecases.NewUpdateServiceUseCase(r.serviceRepo, log)
	ucs.toggleServiceStatus = catalogUsecases.NewToggleServiceStatusUseCase(r.serviceRepo, log)
	ucs.deleteService = catalogUsecases.NewDeleteServiceUseCase(r.serviceRepo, r.packageRepo, log)
	ucs.listServices = catalogUsecases.NewListServicesUseCase(r.serviceRepo, log)

	ucs.createPackage = catalogUsecases.NewCreatePackageUseCase(r.packageRepo, r.softwareRepo, r.serviceRepo, log)
	ucs.updatePackage = catalogUsecases.NewUpdatePackageUseCase(r.packageRepo, r.softwareRepo, r.serviceRepo, log)
	ucs.togglePackageStatus = catalogUsecases.NewTogglePackageStatusUseCase(r.packageRepo, log)
	ucs.deletePackage = catalogUsecases.NewDeletePackageUseCase(r.packageRepo, r.paymentRepo, log)
	ucs.listPackages = catalogUsecases.NewListPackagesUseCase(r.packageRepo, r.softwareRepo, r.serviceRepo, log)

	// Client
	ucs.createClient = clientUsecases.NewCreateClientUseCase(r.clientRepo, r.softwareRepo, r.serviceRepo, r.packageRepo, c.provisioner, log)
	ucs.updateClient = clientUsecases.NewUpdateClientUseCase(r.clientRepo, r.softwareRepo, r.serviceRepo, r.packageRepo, log)
	ucs.toggleClientStatus = clientUsecases.NewToggleClientStatusUseCase(r.clientRepo, r.softwareRepo, r.serviceRepo, r.packageRepo, c.provisioner, log)
	ucs.deleteClient = clientUsecases.NewDeleteClientUseCase(r.clientRepo, r.softwareRepo, c.provisioner, log)
	ucs.deleteExternalClient = clientUsecases.NewDeleteExternalClientUseCase(r.clientRepo, r.softwareRepo, c.provisioner, log)
	ucs.listClients = clientUsecases.NewListClientsUseCase(r.clientRepo, r.softwareRepo, r.serviceRepo, r.packageRepo, log)
	ucs.listExternalAccounts = clientUsecases.NewListExternalAccountsUseCase(r.clientRepo, r.softwareRepo, c.provisioner, log)
	ucs.clientHistory = clientUsecases.NewGetClientHistoryUseCase(r.clientRepo, r.paymentRepo, r.packageRepo, log)
	ucs.publicClientInfo = clientUsecases.NewGetPublicClientInfoUseCase(r.clientRepo, r.softwareRepo, r.packageRepo, c.renderer, log)
	ucs.publicServiceClientInfo = clientUsecases.NewGetPublicServiceClientInfoUseCase(r.clientRepo, r.packageRepo, log)

	// Renewal
	ucs.createOrder = renewalUsecases.NewCreateOrderUseCase(c.gateway, log)
	ucs.processRenewal = renewalUsecases.NewProcessRenewalUseCase(r.clientRepo, r.packageRepo, r.paymentRepo, c.gateway, c.txManager, log)
	ucs.processRenewal.SetReceiptNotifier(c.receiptSvc)

	// HR
	ucs.createStaff = hrUsecases.NewCreateStaffUseCase(r.staffRepo, r.departmentRepo, r.positionRepo, c.hasher, log)
	ucs.updateStaff = hrUsecases.NewUpdateStaffUseCase(r.staffRepo, r.departmentRepo, r.positionRepo, log)
	ucs.toggleStaffStatus = hrUsecases.NewToggleStaffStatusUseCase(r.staffRepo, log)
	ucs.resetPassword = hrUsecases.NewResetStaffPasswordUseCase(r.staffRepo, c.hasher, log)
	ucs.deleteStaff = hrUsecases.NewDeleteStaffUseCase(r.staffRepo, log)
	ucs.listStaff = hrUsecases.NewListStaffUseCase(r.staffRepo, r.departmentRepo, r.positionRepo, log)

	ucs.createDepartment = hrUsecases.NewCreateDepartmentUseCase(r.departmentRepo, log)
	ucs.updateDepartment = hrUsecases.NewUpdateDepartmentUseCase(r.departmentRepo, log)
	ucs.toggleDepartmentStatus = hrUsecases.NewToggleDepartmentStatusUseCase(r.departmentRepo, log)
	ucs.deleteDepartment = hrUsecases.NewDeleteDepartmentUseCase(r.departmentRepo, r.positionRepo, r.staffRepo, log)
	ucs.listDepartments = hrUsecases.NewListDepartmentsUseCase(r.departmentRepo, log)

	ucs.createPosition = hrUsecases.NewCreatePositionUseCase(r.positionRepo, r.departmentRepo, log)
	ucs.updatePosition = hrUsecases.NewUpdatePositionUseCase(r.positionRepo, r.departmentRepo, log)
	ucs.togglePositionStatus = hrUsecases.NewTogglePositionStatusUseCase(r.positionRepo, log)
	ucs.deletePosition = hrUsecases.NewDeletePositionUseCase(r.positionRepo, r.staffRepo, log)
	ucs.listPositions = hrUsecases.NewListPositionsUseCase(r.positionRepo, r.departmentRepo, log)

	// Auth
	ucs.adminLogin = authUsecases.NewAdminLoginUseCase(c.cfg.Admin, c.jwtSvc, log)
	ucs.staffLogin = authUsecases.NewStaffLoginUseCase(r.staffRepo, c.hasher, c.jwtSvc, log)
	ucs.verifySession = authUsecases.NewVerifyStaffSessionUseCase(r.staffRepo, log)

	c.ucs = ucs
}
