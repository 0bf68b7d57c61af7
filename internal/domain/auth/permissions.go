package auth

import "ams/internal/domain/directory"

const (
	PermAppraisalsRead     = "appraisals.read"
	PermAppraisalsRate     = "appraisals.rate"
	PermAppraisalsAssign   = "appraisals.assign"
	PermAppraisalsCreate   = "appraisals.create"
	PermAppraisalsFinalize = "appraisals.finalize"
	PermUsersRead          = "users.read"
	PermUsersManage        = "users.manage"
	PermReportsRead        = "reports.read"
)

var DefaultPermissions = []string{
	PermAppraisalsRead,
	PermAppraisalsRate,
	PermAppraisalsAssign,
	PermAppraisalsCreate,
	PermAppraisalsFinalize,
	PermUsersRead,
	PermUsersManage,
	PermReportsRead,
}

// RolePermissions is the single source of truth for what each role may do.
// Assigning reviewers, creating cycles, finalizing, and managing the user
// directory are Super Admin only; reviewer roles may read and rate; employees
// may only read their own history.
var RolePermissions = map[string][]string{
	directory.RoleSuperAdmin: {
		PermAppraisalsRead,
		PermAppraisalsAssign,
		PermAppraisalsCreate,
		PermAppraisalsFinalize,
		PermUsersRead,
		PermUsersManage,
		PermReportsRead,
	},
	directory.RoleManager: {
		PermAppraisalsRead,
		PermAppraisalsRate,
		PermReportsRead,
	},
	directory.RoleHR: {
		PermAppraisalsRead,
		PermAppraisalsRate,
		PermUsersRead,
		PermReportsRead,
	},
	directory.RoleTeamLead: {
		PermAppraisalsRead,
		PermAppraisalsRate,
	},
	directory.RoleEmployee: {
		PermAppraisalsRead,
	},
}

func HasPermission(role, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

// FeatureAreas maps each role to the navigation surfaces it may reach. This is
// presentation gating for the client, not an authorization boundary; the
// record-level policy is enforced separately on every operation.
var FeatureAreas = map[string][]string{
	directory.RoleSuperAdmin: {"dashboard", "users", "cycles", "reports", "settings"},
	directory.RoleManager:    {"dashboard", "tasks", "reports", "settings"},
	directory.RoleHR:         {"dashboard", "users", "tasks", "reports", "settings"},
	directory.RoleTeamLead:   {"dashboard", "tasks", "settings"},
	directory.RoleEmployee:   {"dashboard", "career", "settings"},
}
