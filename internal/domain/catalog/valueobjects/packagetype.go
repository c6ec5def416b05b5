package valueobjects

import "fmt"

// PackageType scopes a package to software clients or service clients.
type PackageType string

const (
	PackageTypeSoftware PackageType = "software"
	PackageTypeService  PackageType = "service"
)

func NewPackageType(s string) (PackageType, error) {
	t := PackageType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid package type: %s", s)
	}
	return t, nil
}

func (t PackageType) IsValid() bool {
	switch t {
	case PackageTypeSoftware, PackageTypeService:
		return true
	default:
		return false
	}
}

func (t PackageType) IsSoftware() bool {
	return t == PackageTypeSoftware
}

func (t PackageType) IsService() bool {
	return t == PackageTypeService
}

func (t PackageType) String() string {
	return string(t)
}
