package dto

import "time"

type CreateClientRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=100"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone" binding:"required"`
	Type       string   `json:"type" binding:"required,oneof=software service"`
	SoftwareID string   `json:"softwareId,omitempty"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
	PackageID  string   `json:"packageId,omitempty"`
}

type UpdateClientRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=100"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone" binding:"required"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
}

// DeleteExternalRequest mirrors the remote-first deletion form: the admin
// removes an account that exists on the software's own backend, possibly
// without a local row.
type DeleteExternalRequest struct {
	ClientEmail string `json:"clientEmail" binding:"required,email"`
	SoftwareID  string `json:"softwareId" binding:"required,software_sid"`
	ExternalID  string `json:"externalId" binding:"required"`
	IsExternal  bool   `json:"isExternal"`
}

// ExternalAccountResponse is one row of a software backend's account list,
// annotated with the local client it maps to when one exists.
type ExternalAccountResponse struct {
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Active     bool   `json:"active"`
	Linked     bool   `json:"linked"`
	ClientID   string `json:"clientId,omitempty"`
}

type ClientResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Type               string     `json:"type"`
	SoftwareID         string     `json:"softwareId,omitempty"`
	SoftwareName       string     `json:"softwareName,omitempty"`
	ServiceIDs         []string   `json:"serviceIds,omitempty"`
	PackageID          string     `json:"packageId,omitempty"`
	ExpiryDate         *time.Time `json:"expiryDate,omitempty"`
	IsActive           bool       `json:"isActive"`
	AdminSuspended     bool       `json:"adminSuspended"`
	ExternalID         string     `json:"externalId,omitempty"`
	RegistrationStatus string     `json:"registrationStatus"`
	Source             string     `json:"source"`
	CreatedBy          string     `json:"createdBy,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type ListClientsRequest struct {
	Type       string `form:"type" binding:"omitempty,oneof=software service"`
	SoftwareID string `form:"softwareId"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	PageSize   int    `form:"pageSize,default=20" binding:"min=1,max=100"`
}

type ListClientsResponse struct {
	Items      []ClientResponse `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// PaymentHistoryEntry is one ledger row shown on the client detail page.
type PaymentHistoryEntry struct {
	ID               string    `json:"id"`
	PackageID        string    `json:"packageId,omitempty"`
	PackageName      string    `json:"packageName,omitempty"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	GatewayOrderID   string    `json:"gatewayOrderId"`
	GatewayPaymentID string    `json:"gatewayPaymentId,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PublicClientInfo is the unauthenticated renewal-page projection. It only
// exposes what the renewal page needs; internal IDs and the suspension flag
// stay private.
type PublicClientInfo struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	SoftwareName string     `json:"softwareName,omitempty"`
	FrontendURL  string     `json:"frontendUrl,omitempty"`
	NotesHTML    string     `json:"notesHtml,omitempty"`
	IsActive     bool       `json:"isActive"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
}

// PublicPackageOption is a renewable package offered on the renewal page.
type PublicPackageOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DurationValue int     `json:"durationValue"`
	DurationUnit  string  `json:"durationUnit"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
}

type PublicClientInfoResponse struct {
	Client   PublicClientInfo      `json:"client"`
	Packages []PublicPackageOption `json:"packages"`
}
