package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendra-inc/vendra/internal/shared/biztime"
	"github.com/vendra-inc/vendra/internal/shared/id"
)

// BridgeEndpoints holds the external software's admin API links used by the
// registration bridge. Delete and update-status links accept a ":id"
// placeholder substituted with the client's external ID.
type BridgeEndpoints struct {
	RegisterAPILink     string
	GetAllAPILink       string
	DeleteAPILink       string
	UpdateStatusAPILink string
}

// IsConfigured reports whether the software has any bridge endpoint set.
func (e BridgeEndpoints) IsConfigured() bool {
	return e.RegisterAPILink != "" || e.GetAllAPILink != "" ||
		e.DeleteAPILink != "" || e.UpdateStatusAPILink != ""
}

// Software represents a third-party product whose clients this system provisions.
type Software struct {
	id          uint
	sid         string
	name        string
	description string
	notes       string // markdown shown on the public renewal page
	frontendURL string
	endpoints   BridgeEndpoints
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSoftware(name, description string, endpoints BridgeEndpoints) (*Software, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("software name is required")
	}

	now := biztime.NowUTC()
	return &Software{
		sid:         id.MustGenerateWithPrefix(id.PrefixSoftware, id.DefaultLength),
		name:        name,
		description: description,
		endpoints:   endpoints,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSoftware(
	idVal uint,
	sid, name, description, notes, frontendURL string,
	endpoints BridgeEndpoints,
	createdAt, updatedAt time.Time,
) *Software {
	return &Software{
		id:          idVal,
		sid:         sid,
		name:        name,
		description: description,
		notes:       notes,
		frontendURL: frontendURL,
		endpoints:   endpoints,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Software) ID() uint                    { return s.id }
func (s *Software) SID() string                 { return s.sid }
func (s *Software) Name() string                { return s.name }
func (s *Software) Description() string         { return s.description }
func (s *Software) Notes() string               { return s.notes }
func (s *Software) FrontendURL() string         { return s.frontendURL }
func (s *Software) Endpoints() BridgeEndpoints  { return s.endpoints }
func (s *Software) CreatedAt() time.Time        { return s.createdAt }
func (s *Software) UpdatedAt() time.Time        { return s.updatedAt }

// SetID sets the software ID after persistence.
func (s *Software) SetID(idVal uint) { s.id = idVal }

// UpdateDetails replaces the admin-editable fields. Identity is immutable.
func (s *Software) UpdateDetails(name, description, notes, frontendURL string, endpoints BridgeEndpoints) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("software name is required")
	}
	s.name = name
	s.description = description
	s.notes = notes
	s.frontendURL = frontendURL
	s.endpoints = endpoints
	s.updatedAt = biztime.NowUTC()
	return nil
}

// SetFrontendURL sets the URL clients are redirected to after renewal.
func (s *Software) SetFrontendURL(url string) {
	s.frontendURL = url
	s.updatedAt = biztime.NowUTC()
}

// SetNotes sets the renewal-page markdown notes.
func (s *Software) SetNotes(notes string) {
	s.notes = notes
	s.updatedAt = biztime.NowUTC()
}
