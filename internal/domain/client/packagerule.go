package client

import (
	"errors"

	"github.com/vendra-inc/vendra/internal/domain/catalog"
)

// Package selection failures, distinguished so callers can map availability
// and scoping onto different response codes.
var (
	ErrPackageInactive    = errors.New("package is not active")
	ErrPackageWrongType   = errors.New("package does not apply to this client type")
	ErrPackageOtherScope  = errors.New("package belongs to a different software")
	ErrPackageNotCovering = errors.New("package does not cover the client's services")
)

// CheckPackageApplies enforces the catalog scoping rule shared by client
// creation and renewal: the package must be active, match the client's type,
// and either be scoped to the client's software or cover at least one of its
// services.
func CheckPackageApplies(c *Client, pkg *catalog.Package) error {
	if !pkg.IsActive() {
		return ErrPackageInactive
	}

	switch {
	case c.Type().IsSoftware():
		if !pkg.Type().IsSoftware() {
			return ErrPackageWrongType
		}
		if pkg.SoftwareID() == nil || c.SoftwareID() == nil || *pkg.SoftwareID() != *c.SoftwareID() {
			return ErrPackageOtherScope
		}
	case c.Type().IsService():
		if !pkg.Type().IsService() {
			return ErrPackageWrongType
		}
		covered := false
		for _, sid := range c.ServiceIDs() {
			if pkg.IncludesService(sid) {
				covered = true
				break
			}
		}
		if !covered {
			return ErrPackageNotCovering
		}
	default:
		return ErrPackageWrongType
	}

	return nil
}
