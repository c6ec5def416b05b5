package migration

import (
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SoftwareModel{},
		&models.ServiceModel{},
		&models.PackageModel{},
		&models.ClientModel{},
		&models.PaymentRecordModel{},
		&models.DepartmentModel{},
		&models.PositionModel{},
		&models.StaffModel{},
	}
}
