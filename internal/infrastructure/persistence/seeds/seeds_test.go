package seeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/infrastructure/migration"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(migration.AutoMigrateModels()...)
	require.NoError(t, err)

	return db
}

func testFixture() *Fixture {
	return &Fixture{
		Softwares: []SoftwareSeed{
			{Name: "Billing Suite", Description: "demo", RegisterAPILink: "https://billing.example.com/api/users"},
		},
		Services: []ServiceSeed{
			{Name: "Priority Support", PriceRupees: 1500},
		},
		Packages: []PackageSeed{
			{Name: "Billing Annual", Type: "software", Software: "Billing Suite", DurationValue: 1, DurationUnit: "years", PriceRupees: 12000},
			{Name: "Support Quarter", Type: "service", Services: []string{"Priority Support"}, DurationValue: 3, DurationUnit: "months", PriceRupees: 4000},
		},
		Departments: []DepartmentSeed{
			{Name: "Engineering", Positions: []string{"Support Engineer"}},
		},
		Staff: []StaffSeed{
			{Name: "Demo Staff", Email: "staff@example.com", Password: "secret", Department: "Engineering", Position: "Support Engineer"},
		},
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
softwares:
  - name: Billing Suite
    register_api_link: https://billing.example.com/api/users
services:
  - name: Priority Support
    price_rupees: 1500
packages:
  - name: Billing Annual
    type: software
    software: Billing Suite
    duration_value: 1
    duration_unit: years
    price_rupees: 12000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	fixture, err := Load(path)
	require.NoError(t, err)

	require.Len(t, fixture.Softwares, 1)
	assert.Equal(t, "Billing Suite", fixture.Softwares[0].Name)
	require.Len(t, fixture.Services, 1)
	assert.Equal(t, int64(1500), fixture.Services[0].PriceRupees)
	require.Len(t, fixture.Packages, 1)
	assert.Equal(t, "years", fixture.Packages[0].DurationUnit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Apply(db, testFixture(), plainHasher{}))

	var software models.SoftwareModel
	require.NoError(t, db.Where("name = ?", "Billing Suite").First(&software).Error)
	assert.Contains(t, software.SID, "sw_")

	var pkg models.PackageModel
	require.NoError(t, db.Where("name = ?", "Billing Annual").First(&pkg).Error)
	require.NotNil(t, pkg.SoftwareID)
	assert.Equal(t, software.ID, *pkg.SoftwareID)
	assert.Equal(t, int64(1200000), pkg.Amount)

	var servicePkg models.PackageModel
	require.NoError(t, db.Where("name = ?", "Support Quarter").First(&servicePkg).Error)
	assert.Nil(t, servicePkg.SoftwareID)
	assert.JSONEq(t, `[1]`, string(servicePkg.ServiceIDs))

	var staff models.StaffModel
	require.NoError(t, db.Where("email = ?", "staff@example.com").First(&staff).Error)
	assert.Equal(t, "hashed:secret", staff.PasswordHash)
	require.NotNil(t, staff.DepartmentID)
	require.NotNil(t, staff.PositionID)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Apply(db, testFixture(), plainHasher{}))

	var firstSID string
	require.NoError(t, db.Model(&models.SoftwareModel{}).
		Where("name = ?", "Billing Suite").
		Pluck("sid", &firstSID).Error)

	require.NoError(t, Apply(db, testFixture(), plainHasher{}))

	var count int64
	require.NoError(t, db.Model(&models.SoftwareModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var secondSID string
	require.NoError(t, db.Model(&models.SoftwareModel{}).
		Where("name = ?", "Billing Suite").
		Pluck("sid", &secondSID).Error)
	assert.Equal(t, firstSID, secondSID)
}

func TestApplyRejectsUnknownReferences(t *testing.T) {
	db := setupTestDB(t)

	fixture := testFixture()
	fixture.Packages[0].Software = "Nope"
	err := Apply(db, fixture, plainHasher{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown software")
}

func TestApplyRejectsInvalidDuration(t *testing.T) {
	db := setupTestDB(t)

	fixture := testFixture()
	fixture.Packages[0].DurationUnit = "weeks"
	err := Apply(db, fixture, plainHasher{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration unit")
}
