package rbac

import "coordinator-console/internal/session"

// Permission constants
const (
	PermManageBrands    = "manage_brands"
	PermViewAdminBrands = "view_admin_brands"
	PermManageCampaigns = "manage_campaigns"
	PermViewAssigned    = "view_assigned_campaigns"
	PermManageAdmins    = "manage_admins"
	PermManageNurses    = "manage_nurses"
	PermGenerateCards   = "generate_cards"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[session.Role][]string{
	session.RoleSuperAdmin: {
		PermManageBrands, PermManageCampaigns, PermManageAdmins, PermManageNurses,
		PermGenerateCards,
	},
	session.RoleAdmin: {
		PermViewAdminBrands, PermManageCampaigns, PermManageNurses,
		PermGenerateCards,
		// Admin CANNOT: PermManageBrands, PermManageAdmins
	},
	session.RoleNurse: {
		PermViewAssigned, PermGenerateCards,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role session.Role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
