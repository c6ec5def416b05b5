// Package client holds the client registry aggregate: the authoritative state
// of each customer's subscription. The expiry timestamp is the single source
// of truth for subscription validity; the admin suspension flag is an
// orthogonal manual override and the two never share a write path.
package client

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	cvo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
	vo "github.com/vendra-inc/vendra/internal/domain/client/valueobjects"
	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

// Client represents an end customer holding a subscription to a software or
// a set of services.
type Client struct {
	id                 uint
	sid                string
	name               string
	email              string
	phone              vo.Phone
	clientType         vo.ClientType
	softwareID         *uint
	serviceIDs         []uint
	packageID          *uint
	expiresAt          *time.Time
	adminSuspended     bool
	externalID         *string
	registrationStatus vo.RegistrationStatus
	source             vo.ClientSource
	createdBy          string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewClientParams carries the validated inputs for client creation.
type NewClientParams struct {
	Name       string
	Email      string
	Phone      vo.Phone
	Type       vo.ClientType
	SoftwareID *uint
	ServiceIDs []uint
	Source     vo.ClientSource
	CreatedBy  string
}

func NewClient(p NewClientParams) (*Client, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("client name is required")
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %q", p.Email)
	}

	if p.Phone.IsZero() {
		return nil, fmt.Errorf("phone number is required")
	}

	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid client type: %s", p.Type)
	}

	switch {
	case p.Type.IsSoftware():
		if p.SoftwareID == nil || *p.SoftwareID == 0 {
			return nil, fmt.Errorf("software client requires a software")
		}
		if len(p.ServiceIDs) > 0 {
			return nil, fmt.Errorf("software client cannot hold services")
		}
	case p.Type.IsService():
		if p.SoftwareID != nil {
			return nil, fmt.Errorf("service client cannot hold a software")
		}
	}

	source := p.Source
	if source == "" {
		source = vo.SourceInternal
	}

	now := biztime.NowUTC()
	return &Client{
		sid:                id.MustGenerateWithPrefix(id.PrefixClient, id.DefaultLength),
		name:               name,
		email:              email,
		phone:              p.Phone,
		clientType:         p.Type,
		softwareID:         p.SoftwareID,
		serviceIDs:         p.ServiceIDs,
		registrationStatus: vo.RegistrationPending,
		source:             source,
		createdBy:          p.CreatedBy,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructClientParams mirrors the persisted row.
type ReconstructClientParams struct {
	ID                 uint
	SID                string
	Name               string
	Email              string
	Phone              vo.Phone
	Type               vo.ClientType
	SoftwareID         *uint
	ServiceIDs         []uint
	PackageID          *uint
	ExpiresAt          *time.Time
	AdminSuspended     bool
	ExternalID         *string
	RegistrationStatus vo.RegistrationStatus
	Source             vo.ClientSource
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ReconstructClient(p ReconstructClientParams) (*Client, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid client type: %s", p.Type)
	}
	if !p.Source.IsValid() {
		return nil, fmt.Errorf("invalid client source: %s", p.Source)
	}

	return &Client{
		id:                 p.ID,
		sid:                p.SID,
		name:               p.Name,
		email:              p.Email,
		phone:              p.Phone,
		clientType:         p.Type,
		softwareID:         p.SoftwareID,
		serviceIDs:         p.ServiceIDs,
		packageID:          p.PackageID,
		expiresAt:          p.ExpiresAt,
		adminSuspended:     p.AdminSuspended,
		externalID:         p.ExternalID,
		registrationStatus: p.RegistrationStatus,
		source:             p.Source,
		createdBy:          p.CreatedBy,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}, nil
}

func (c *Client) ID() uint                                   { return c.id }
func (c *Client) SID() string                                { return c.sid }
func (c *Client) Name() string                               { return c.name }
func (c *Client) Email() string                              { return c.email }
func (c *Client) Phone() vo.Phone                            { return c.phone }
func (c *Client) Type() vo.ClientType                        { return c.clientType }
func (c *Client) SoftwareID() *uint                          { return c.softwareID }
func (c *Client) ServiceIDs() []uint                         { return c.serviceIDs }
func (c *Client) PackageID() *uint                           { return c.packageID }
func (c *Client) ExpiresAt() *time.Time                      { return c.expiresAt }
func (c *Client) AdminSuspended() bool                       { return c.adminSuspended }
func (c *Client) ExternalID() *string                        { return c.externalID }
func (c *Client) RegistrationStatus() vo.RegistrationStatus  { return c.registrationStatus }
func (c *Client) Source() vo.ClientSource                    { return c.source }
func (c *Client) CreatedBy() string                          { return c.createdBy }
func (c *Client) CreatedAt() time.Time                       { return c.createdAt }
func (c *Client) UpdatedAt() time.Time                       { return c.updatedAt }

// SetID sets the client ID after persistence.
func (c *Client) SetID(idVal uint) { c.id = idVal }

// IsActive reports effective access at the given instant: not suspended and
// holding an unexpired subscription.
func (c *Client) IsActive(now time.Time) bool {
	if c.adminSuspended {
		return false
	}
	return c.expiresAt != nil && now.Before(*c.expiresAt)
}

// HasExpired reports whether the client once held a subscription that has lapsed.
func (c *Client) HasExpired(now time.Time) bool {
	return c.expiresAt != nil && !now.Before(*c.expiresAt)
}

// StartInitialTerm assigns the first package at creation time. It is a
// programming error to call it on a client that already has an expiry.
func (c *Client) StartInitialTerm(packageID uint, duration cvo.Duration, now time.Time) error {
	if c.expiresAt != nil {
		return fmt.Errorf("client %s already has a subscription term", c.sid)
	}
	expiry := duration.AddTo(now)
	c.packageID = &packageID
	c.expiresAt = &expiry
	c.updatedAt = now
	return nil
}

// ExtendSubscription applies a verified renewal: the new expiry is the package
// duration added to the later of now and the current expiry, so renewing
// early preserves the unused remainder instead of discarding it. Renewal also
// lifts any manual suspension. Returns the new expiry.
func (c *Client) ExtendSubscription(packageID uint, duration cvo.Duration, now time.Time) time.Time {
	base := now
	if c.expiresAt != nil {
		base = biztime.MaxTime(now, *c.expiresAt)
	}
	expiry := duration.AddTo(base)

	c.packageID = &packageID
	c.expiresAt = &expiry
	c.adminSuspended = false
	c.updatedAt = now

	return expiry
}

// ToggleSuspended flips the manual suspension flag. It never touches the
// expiry: suspension and subscription validity are separate axes.
func (c *Client) ToggleSuspended() {
	c.adminSuspended = !c.adminSuspended
	c.updatedAt = biztime.NowUTC()
}

// UpdateContact replaces the admin-editable contact fields.
func (c *Client) UpdateContact(name, email string, phone vo.Phone) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("client name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %q", email)
	}
	if phone.IsZero() {
		return fmt.Errorf("phone number is required")
	}
	c.name = name
	c.email = email
	c.phone = phone
	c.updatedAt = biztime.NowUTC()
	return nil
}

// AssignServices replaces a service client's service set.
func (c *Client) AssignServices(serviceIDs []uint) error {
	if !c.clientType.IsService() {
		return fmt.Errorf("cannot assign services to a %s client", c.clientType)
	}
	if len(serviceIDs) == 0 {
		return fmt.Errorf("service client requires at least one service")
	}
	c.serviceIDs = serviceIDs
	c.updatedAt = biztime.NowUTC()
	return nil
}

// MarkRegistration records the outcome of the external registration attempt.
func (c *Client) MarkRegistration(status vo.RegistrationStatus, externalID *string) {
	c.registrationStatus = status
	if externalID != nil && *externalID != "" {
		c.externalID = externalID
		c.source = vo.SourceExternal
	}
	c.updatedAt = biztime.NowUTC()
}
