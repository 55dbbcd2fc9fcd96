package user

import "github.com/google/uuid"

// Access rules. Pure functions so they can be checked in usecases and
// asserted in tests without any infrastructure.

// CanManageUsers gates the admin user management surface.
func CanManageUsers(r Role) bool {
	return r == RoleAdmin
}

// CanWorkIncidents gates incident status updates and the full incident list.
func CanWorkIncidents(r Role) bool {
	return r.IsStaff()
}

// CanManageCatalog gates offering create/update/deactivate/delete.
func CanManageCatalog(r Role) bool {
	return r.IsStaff()
}

// CanViewIncident allows staff to see any incident and reporters their own.
func CanViewIncident(r Role, actorID, reporterID uuid.UUID) bool {
	return r.IsStaff() || actorID == reporterID
}

// CanCheckout restricts cart and checkout to end users; staff place no orders.
func CanCheckout(r Role) bool {
	return r == RoleUser
}
