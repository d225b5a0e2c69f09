package access

import (
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
)

// Identity is the authorization view of an authenticated admin. A full admin
// bypasses every check; a sub-admin is scoped by one department plus an
// explicit capability set.
type Identity struct {
	ID          string
	IsAdmin     bool
	Department  enum.Department
	Permissions []string
}

// Section is one admin panel area gated by exactly one (capability,
// department) pair. The set below is closed: capabilities imply nothing about
// each other and unknown section ids always deny.
type Section struct {
	ID         string
	Capability string
	Department enum.Department
}

// Sections enumerates every admin area. Order matches the navigation list.
var Sections = []Section{
	{ID: "dashboard", Capability: "Dashboard", Department: enum.DepartmentAll},
	{ID: "products", Capability: "Products", Department: enum.DepartmentCatalog},
	{ID: "categories", Capability: "Categories", Department: enum.DepartmentCatalog},
	{ID: "orders", Capability: "Orders", Department: enum.DepartmentOrders},
	{ID: "returns", Capability: "Returns", Department: enum.DepartmentOrders},
	{ID: "shipping", Capability: "Shipping", Department: enum.DepartmentOrders},
	{ID: "customers", Capability: "Customers", Department: enum.DepartmentUserCommunication},
	{ID: "contact", Capability: "Contact Messages", Department: enum.DepartmentUserCommunication},
	{ID: "notifications", Capability: "Notifications", Department: enum.DepartmentUserCommunication},
	{ID: "reviews", Capability: "Reviews", Department: enum.DepartmentContent},
	{ID: "banners", Capability: "Banners", Department: enum.DepartmentContent},
	{ID: "sub-admins", Capability: "Sub Admins", Department: enum.DepartmentAll},
	{ID: "gst", Capability: "GST Reports", Department: enum.DepartmentFinance},
	{ID: "sales", Capability: "Sales Analytics", Department: enum.DepartmentFinance},
	{ID: "cities", Capability: "City Insights", Department: enum.DepartmentFinance},
	{ID: "settings", Capability: "Settings", Department: enum.DepartmentAll},
	{ID: "profile", Capability: "Profile", Department: enum.DepartmentAll},
}

var (
	sectionsByID      = map[string]Section{}
	knownCapabilities = map[string]struct{}{}
)

func init() {
	for _, s := range Sections {
		sectionsByID[s.ID] = s
		knownCapabilities[s.Capability] = struct{}{}
	}
}

// SectionByID looks up a section by its navigation id.
func SectionByID(id string) (Section, bool) {
	s, ok := sectionsByID[id]
	return s, ok
}

// ValidCapability reports whether the tag belongs to the closed capability set.
func ValidCapability(tag string) bool {
	_, ok := knownCapabilities[tag]
	return ok
}

// CanAccess is the pure permission predicate. A full admin passes
// unconditionally. A sub-admin passes iff the capability is granted and the
// required department is either "all" or the identity's own. Unknown
// capability tags deny.
func CanAccess(id Identity, capability string, dept enum.Department) bool {
	if id.IsAdmin {
		return true
	}
	if !ValidCapability(capability) {
		return false
	}
	if dept != enum.DepartmentAll && dept != id.Department {
		return false
	}
	for _, p := range id.Permissions {
		if p == capability {
			return true
		}
	}
	return false
}

// CanAccessSection gates one admin area by its navigation id. Unknown ids
// deny, so a hand-crafted tab id can never bypass the matrix.
func CanAccessSection(id Identity, sectionID string) bool {
	s, ok := sectionsByID[sectionID]
	if !ok {
		return false
	}
	return CanAccess(id, s.Capability, s.Department)
}

// VisibleSections returns the navigation entries the identity may see, in
// display order. Handlers re-check CanAccessSection per request; this list is
// never the sole gate.
func VisibleSections(id Identity) []Section {
	visible := make([]Section, 0, len(Sections))
	for _, s := range Sections {
		if CanAccess(id, s.Capability, s.Department) {
			visible = append(visible, s)
		}
	}
	return visible
}
