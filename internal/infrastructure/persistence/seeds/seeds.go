package seeds

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	"github.com/vendra-inc/vendra/internal/infrastructure/persistence/models"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

// Fixture is the YAML shape of a seed file. Packages reference softwares
// and services by name, departments own their position names, and staff
// reference department and position by name.
type Fixture struct {
	Softwares   []SoftwareSeed   `yaml:"softwares"`
	Services    []ServiceSeed    `yaml:"services"`
	Packages    []PackageSeed    `yaml:"packages"`
	Departments []DepartmentSeed `yaml:"departments"`
	Staff       []StaffSeed      `yaml:"staff"`
}

type SoftwareSeed struct {
	Name                string `yaml:"name"`
	Description         string `yaml:"description"`
	Notes               string `yaml:"notes"`
	FrontendURL         string `yaml:"frontend_url"`
	RegisterAPILink     string `yaml:"register_api_link"`
	GetAllAPILink       string `yaml:"get_all_api_link"`
	DeleteAPILink       string `yaml:"delete_api_link"`
	UpdateStatusAPILink string `yaml:"update_status_api_link"`
}

type ServiceSeed struct {
	Name        string `yaml:"name"`
	PriceRupees int64  `yaml:"price_rupees"`
	Description string `yaml:"description"`
}

type PackageSeed struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	Software      string   `yaml:"software"`
	Services      []string `yaml:"services"`
	DurationValue int      `yaml:"duration_value"`
	DurationUnit  string   `yaml:"duration_unit"`
	PriceRupees   int64    `yaml:"price_rupees"`
	Description   string   `yaml:"description"`
}

type DepartmentSeed struct {
	Name      string   `yaml:"name"`
	Positions []string `yaml:"positions"`
}

type StaffSeed struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	Department string `yaml:"department"`
	Position   string `yaml:"position"`
}

// Load reads and parses a seed fixture from disk.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &fixture, nil
}

// PasswordHasher hashes seed staff passwords before they are stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Apply inserts the fixture into the database. Rows are matched by their
// unique name (email for staff), so running it twice leaves existing rows
// untouched.
func Apply(db *gorm.DB, fixture *Fixture, hasher PasswordHasher) error {
	softwareIDs := make(map[string]uint, len(fixture.Softwares))
	serviceIDs := make(map[string]uint, len(fixture.Services))

	for _, seed := range fixture.Softwares {
		model := models.SoftwareModel{
			SID:                 id.MustGenerateWithPrefix(id.PrefixSoftware, id.DefaultLength),
			Name:                seed.Name,
			Description:         seed.Description,
			Notes:               seed.Notes,
			FrontendURL:         seed.FrontendURL,
			RegisterAPILink:     seed.RegisterAPILink,
			GetAllAPILink:       seed.GetAllAPILink,
			DeleteAPILink:       seed.DeleteAPILink,
			UpdateStatusAPILink: seed.UpdateStatusAPILink,
		}
		if err := db.FirstOrCreate(&model, models.SoftwareModel{Name: seed.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed software %q: %w", seed.Name, err)
		}
		softwareIDs[seed.Name] = model.ID
	}

	for _, seed := range fixture.Services {
		if seed.PriceRupees <= 0 {
			return fmt.Errorf("service %q: price must be positive", seed.Name)
		}
		model := models.ServiceModel{
			SID:         id.MustGenerateWithPrefix(id.PrefixService, id.DefaultLength),
			Name:        seed.Name,
			Amount:      vo.NewMoneyFromRupees(seed.PriceRupees, "INR").AmountInPaise(),
			Currency:    "INR",
			Description: seed.Description,
			IsActive:    true,
		}
		if err := db.FirstOrCreate(&model, models.ServiceModel{Name: seed.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed service %q: %w", seed.Name, err)
		}
		serviceIDs[seed.Name] = model.ID
	}

	for _, seed := range fixture.Packages {
		model, err := packageModel(seed, softwareIDs, serviceIDs)
		if err != nil {
			return err
		}
		if err := db.FirstOrCreate(model, models.PackageModel{Name: seed.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed package %q: %w", seed.Name, err)
		}
	}

	departmentIDs := make(map[string]uint, len(fixture.Departments))
	positionIDs := make(map[string]uint)

	for _, seed := range fixture.Departments {
		model := models.DepartmentModel{
			SID:      id.MustGenerateWithPrefix(id.PrefixDepartment, id.DefaultLength),
			Name:     seed.Name,
			IsActive: true,
		}
		if err := db.FirstOrCreate(&model, models.DepartmentModel{Name: seed.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed department %q: %w", seed.Name, err)
		}
		departmentIDs[seed.Name] = model.ID

		for _, positionName := range seed.Positions {
			position := models.PositionModel{
				SID:          id.MustGenerateWithPrefix(id.PrefixPosition, id.DefaultLength),
				Name:         positionName,
				DepartmentID: model.ID,
				IsActive:     true,
			}
			if err := db.FirstOrCreate(&position, models.PositionModel{Name: positionName, DepartmentID: model.ID}).Error; err != nil {
				return fmt.Errorf("failed to seed position %q: %w", positionName, err)
			}
			positionIDs[positionName] = position.ID
		}
	}

	for _, seed := range fixture.Staff {
		hash, err := hasher.Hash(seed.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for staff %q: %w", seed.Email, err)
		}
		model := models.StaffModel{
			SID:          id.MustGenerateWithPrefix(id.PrefixStaff, id.DefaultLength),
			Name:         seed.Name,
			Email:        seed.Email,
			PasswordHash: hash,
			IsActive:     true,
		}
		if deptID, ok := departmentIDs[seed.Department]; seed.Department != "" && ok {
			model.DepartmentID = &deptID
		} else if seed.Department != "" {
			return fmt.Errorf("staff %q references unknown department %q", seed.Email, seed.Department)
		}
		if posID, ok := positionIDs[seed.Position]; seed.Position != "" && ok {
			model.PositionID = &posID
		} else if seed.Position != "" {
			return fmt.Errorf("staff %q references unknown position %q", seed.Email, seed.Position)
		}
		if err := db.FirstOrCreate(&model, models.StaffModel{Email: seed.Email}).Error; err != nil {
			return fmt.Errorf("failed to seed staff %q: %w", seed.Email, err)
		}
	}

	return nil
}

func packageModel(seed PackageSeed, softwareIDs, serviceIDs map[string]uint) (*models.PackageModel, error) {
	packageType, err := vo.NewPackageType(seed.Type)
	if err != nil {
		return nil, fmt.Errorf("package %q: %w", seed.Name, err)
	}
	unit, err := vo.NewDurationUnit(seed.DurationUnit)
	if err != nil {
		return nil, fmt.Errorf("package %q: %w", seed.Name, err)
	}
	if _, err := vo.NewDuration(seed.DurationValue, unit); err != nil {
		return nil, fmt.Errorf("package %q: %w", seed.Name, err)
	}
	if seed.PriceRupees <= 0 {
		return nil, fmt.Errorf("package %q: price must be positive", seed.Name)
	}

	model := &models.PackageModel{
		SID:           id.MustGenerateWithPrefix(id.PrefixPackage, id.DefaultLength),
		Name:          seed.Name,
		PackageType:   string(packageType),
		DurationValue: seed.DurationValue,
		DurationUnit:  seed.DurationUnit,
		Amount:        vo.NewMoneyFromRupees(seed.PriceRupees, "INR").AmountInPaise(),
		Currency:      "INR",
		Description:   seed.Description,
		IsActive:      true,
	}

	switch packageType {
	case vo.PackageTypeSoftware:
		softwareID, ok := softwareIDs[seed.Software]
		if !ok {
			return nil, fmt.Errorf("package %q references unknown software %q", seed.Name, seed.Software)
		}
		model.SoftwareID = &softwareID
	case vo.PackageTypeService:
		if len(seed.Services) == 0 {
			return nil, fmt.Errorf("package %q: at least one service is required", seed.Name)
		}
		ids := make([]uint, 0, len(seed.Services))
		for _, serviceName := range seed.Services {
			serviceID, ok := serviceIDs[serviceName]
			if !ok {
				return nil, fmt.Errorf("package %q references unknown service %q", seed.Name, serviceName)
			}
			ids = append(ids, serviceID)
		}
		data, err := json.Marshal(ids)
		if err != nil {
			return nil, fmt.Errorf("package %q: failed to encode service ids: %w", seed.Name, err)
		}
		model.ServiceIDs = datatypes.JSON(data)
	}

	return model, nil
}
