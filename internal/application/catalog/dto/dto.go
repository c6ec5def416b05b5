package dto

import "time"

// CreateSoftwareRequest carries a new software product. Amounts elsewhere in
// the catalog are rupees on the wire and paise internally.
type CreateSoftwareRequest struct {
	Name                string `json:"name" binding:"required,min=1,max=100"`
	Description         string `json:"description,omitempty" binding:"max=500"`
	Notes               string `json:"notes,omitempty"`
	FrontendURL         string `json:"frontendUrl,omitempty" binding:"omitempty,url"`
	RegisterAPILink     string `json:"registerAPILink,omitempty" binding:"omitempty,url"`
	GetAllAPILink       string `json:"getAllAPILink,omitempty" binding:"omitempty,url"`
	DeleteAPILink       string `json:"deleteAPILink,omitempty"`
	UpdateStatusAPILink string `json:"updateStatusAPILink,omitempty"`
}

type UpdateSoftwareRequest struct {
	Name                string `json:"name" binding:"required,min=1,max=100"`
	Description         string `json:"description,omitempty" binding:"max=500"`
	Notes               string `json:"notes,omitempty"`
	FrontendURL         string `json:"frontendUrl,omitempty" binding:"omitempty,url"`
	RegisterAPILink     string `json:"registerAPILink,omitempty" binding:"omitempty,url"`
	GetAllAPILink       string `json:"getAllAPILink,omitempty" binding:"omitempty,url"`
	DeleteAPILink       string `json:"deleteAPILink,omitempty"`
	UpdateStatusAPILink string `json:"updateStatusAPILink,omitempty"`
}

type SoftwareResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	FrontendURL         string    `json:"frontendUrl,omitempty"`
	RegisterAPILink     string    `json:"registerAPILink,omitempty"`
	GetAllAPILink       string    `json:"getAllAPILink,omitempty"`
	DeleteAPILink       string    `json:"deleteAPILink,omitempty"`
	UpdateStatusAPILink string    `json:"updateStatusAPILink,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Description string `json:"description,omitempty" binding:"max=500"`
}

type UpdateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Description string `json:"description,omitempty" binding:"max=500"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreatePackageRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=100"`
	Type          string   `json:"type" binding:"required,oneof=software service"`
	SoftwareID    string   `json:"softwareId,omitempty"`
	ServiceIDs    []string `json:"serviceIds,omitempty"`
	DurationValue int      `json:"durationValue" binding:"required,min=1"`
	DurationUnit  string   `json:"durationUnit" binding:"required,oneof=minutes days months years"`
	Price         int64    `json:"price" binding:"required,min=1"`
	Description   string   `json:"description,omitempty" binding:"max=500"`
}

type UpdatePackageRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=100"`
	SoftwareID    string   `json:"softwareId,omitempty"`
	ServiceIDs    []string `json:"serviceIds,omitempty"`
	DurationValue int      `json:"durationValue" binding:"required,min=1"`
	DurationUnit  string   `json:"durationUnit" binding:"required,oneof=minutes days months years"`
	Price         int64    `json:"price" binding:"required,min=1"`
	Description   string   `json:"description,omitempty" binding:"max=500"`
}

type PackageResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	SoftwareID    string    `json:"softwareId,omitempty"`
	SoftwareName  string    `json:"softwareName,omitempty"`
	ServiceIDs    []string  `json:"serviceIds,omitempty"`
	DurationValue int       `json:"durationValue"`
	DurationUnit  string    `json:"durationUnit"`
	Price         float64   `json:"price"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListPackagesRequest narrows the package listing.
type ListPackagesRequest struct {
	Type       string `form:"type" binding:"omitempty,oneof=software service"`
	SoftwareID string `form:"softwareId"`
	ActiveOnly bool   `form:"activeOnly"`
}
