package user

// Access decisions for user records. Pure functions of the acting role and
// the classification of the record being acted upon; unknown combinations
// deny rather than fail.

// CanViewUserList reports whether role may view the list of records
// classified as managed. Each tier sees only the tiers strictly below it;
// only super_admin sees admin lists.
func CanViewUserList(role, managed Role) bool {
	if role == RoleSuperAdmin {
		return true
	}

	switch managed {
	case RoleAdmin:
		return false
	case RoleStaff:
		return role == RoleAdmin
	case RoleTeacher, RoleStudent:
		return role == RoleAdmin || role == RoleStaff
	}
	return false
}

// CanViewOwnProfile reports whether role may view a profile classified as
// managed. Self-service visibility: exact tier match, independent of the
// seniority ladder.
func CanViewOwnProfile(role, managed Role) bool {
	return role == managed
}

// CanManageUsers reports whether role may create, edit or deactivate
// records classified as managed. super_admin manages everyone; admin
// manages everything below the admin tier.
func CanManageUsers(role, managed Role) bool {
	if role == RoleSuperAdmin {
		return true
	}
	if role != RoleAdmin {
		return false
	}

	switch managed {
	case RoleStaff, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
