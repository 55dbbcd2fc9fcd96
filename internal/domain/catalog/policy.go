package catalog

import "servicedesk/internal/domain/user"

// EffectiveCategory clamps an offering write to what the actor may publish.
// Employees only manage business offerings; whatever category they submit is
// coerced to business. Admins keep the requested category.
func EffectiveCategory(role user.Role, requested Category) Category {
	if role == user.RoleEmployee {
		return CategoryBusiness
	}
	return requested
}

// CanEditOffering reports whether the actor may modify an existing offering.
// Admins edit anything; employees are limited to the business catalog.
func CanEditOffering(role user.Role, category Category) bool {
	switch role {
	case user.RoleAdmin:
		return true
	case user.RoleEmployee:
		return category == CategoryBusiness
	default:
		return false
	}
}

// VisibleTo reports whether a category is listable by the given role.
// The technical catalog is internal to staff.
func VisibleTo(role user.Role, category Category) bool {
	if category == CategoryTechnical {
		return role.IsStaff()
	}
	return true
}
