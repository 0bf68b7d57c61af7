package directory

import "time"

const (
	RoleSuperAdmin = "Super Admin"
	RoleManager    = "Manager"
	RoleHR         = "HR"
	RoleTeamLead   = "Team Lead"
	RoleEmployee   = "Employee"
)

// Roles lists every valid role, in seniority order.
var Roles = []string{RoleSuperAdmin, RoleManager, RoleHR, RoleTeamLead, RoleEmployee}

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	Email       string    `json:"email"`
	JoiningDate time.Time `json:"joiningDate"`
}

func ValidRole(role string) bool {
	for _, candidate := range Roles {
		if candidate == role {
			return true
		}
	}
	return false
}
