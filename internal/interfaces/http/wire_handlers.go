package http

import (
	"github.com/vendra-inc/vendra/internal/interfaces/http/handlers"
)

// allHandlers groups every HTTP handler instance.
type allHandlers struct {
	software   *handlers.SoftwareHandler
	service    *handlers.ServiceHandler
	pkg        *handlers.PackageHandler
	client     *handlers.ClientHandler
	staff      *handlers.StaffHandler
	department *handlers.DepartmentHandler
	position   *handlers.PositionHandler
	auth       *handlers.AuthHandler
	renewal    *handlers.RenewalHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		software: handlers.NewSoftwareHandler(
			u.createSoftware,
			u.updateSoftware,
			u.deleteSoftware,
			u.listSoftware,
		),
		service: handlers.NewServiceHandler(
			u.createService,
			u.updateService,
			u.toggleServiceStatus,
			u.deleteService,
			u.listServices,
		),
		pkg: handlers.NewPackageHandler(
			u.createPackage,
			u.updatePackage,
			u.togglePackageStatus,
			u.deletePackage,
			u.listPackages,
		),
		client: handlers.NewClientHandler(
			u.createClient,
			u.updateClient,
			u.toggleClientStatus,
			u.deleteClient,
			u.deleteExternalClient,
			u.listClients,
			u.listExternalAccounts,
			u.clientHistory,
		),
		staff: handlers.NewStaffHandler(
			u.createStaff,
			u.updateStaff,
			u.toggleStaffStatus,
			u.resetPassword,
			u.deleteStaff,
			u.listStaff,
		),
		department: handlers.NewDepartmentHandler(
			u.createDepartment,
			u.updateDepartment,
			u.toggleDepartmentStatus,
			u.deleteDepartment,
			u.listDepartments,
		),
		position: handlers.NewPositionHandler(
			u.createPosition,
			u.updatePosition,
			u.togglePositionStatus,
			u.deletePosition,
			u.listPositions,
		),
		auth: handlers.NewAuthHandler(u.adminLogin, u.staffLogin, u.verifySession),
		renewal: handlers.NewRenewalHandler(
			u.createOrder,
			u.processRenewal,
			u.publicClientInfo,
			u.publicServiceClientInfo,
		),
	}
}
