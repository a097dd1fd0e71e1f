package models

// Action is something a user may attempt on the portal.
type Action string

const (
	ActionRead          Action = "read"
	ActionFavorite      Action = "favorite"
	ActionUpload        Action = "upload"
	ActionManageFolders Action = "manage_folders"
	ActionRename        Action = "rename"
	ActionDelete        Action = "delete"
	ActionInspect       Action = "inspect"
	ActionManageUsers   Action = "manage_users"
)

var rolePermissions = map[Role]map[Action]bool{
	RoleAdmin: {
		ActionRead: true, ActionFavorite: true, ActionUpload: true, ActionManageFolders: true,
		ActionRename: true, ActionDelete: true, ActionInspect: true, ActionManageUsers: true,
	},
	RoleQuality: {
		ActionRead: true, ActionFavorite: true, ActionUpload: true, ActionManageFolders: true,
		ActionRename: true, ActionDelete: true, ActionInspect: true,
	},
	RoleClient: {
		ActionRead: true, ActionFavorite: true,
	},
}

// Can reports whether the role grants action.
func (r Role) Can(action Action) bool {
	return rolePermissions[r][action]
}

// Can reports whether the user's role grants action.
func (u User) Can(action Action) bool { return u.Role.Can(action) }

// CanSeeOrganization reports whether u may read documents owned by orgID.
// Staff roles see every organization; clients only their own.
func (u User) CanSeeOrganization(orgID string) bool {
	if u.Role == RoleAdmin || u.Role == RoleQuality {
		return true
	}
	return u.HasOrganization() && u.OrganizationID == orgID
}
