package auth

import (
	"testing"

	"ams/internal/domain/directory"
)

func TestRolePermissionsSubset(t *testing.T) {
	allowed := map[string]struct{}{}
	for _, perm := range DefaultPermissions {
		allowed[perm] = struct{}{}
	}

	for role, perms := range RolePermissions {
		if len(perms) == 0 {
			t.Fatalf("role %s has no permissions", role)
		}
		for _, perm := range perms {
			if _, ok := allowed[perm]; !ok {
				t.Fatalf("role %s has unknown permission %s", role, perm)
			}
		}
	}
}

func TestDefaultPermissionsUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, perm := range DefaultPermissions {
		if _, ok := seen[perm]; ok {
			t.Fatalf("duplicate permission %s", perm)
		}
		seen[perm] = struct{}{}
	}
}

func TestPrivilegedActionsAreSuperAdminOnly(t *testing.T) {
	for _, perm := range []string{PermAppraisalsAssign, PermAppraisalsCreate, PermAppraisalsFinalize, PermUsersManage} {
		for role := range RolePermissions {
			has := HasPermission(role, perm)
			if role == directory.RoleSuperAdmin && !has {
				t.Fatalf("super admin missing %s", perm)
			}
			if role != directory.RoleSuperAdmin && has {
				t.Fatalf("role %s must not hold %s", role, perm)
			}
		}
	}
}

func TestEmployeeCannotRate(t *testing.T) {
	if HasPermission(directory.RoleEmployee, PermAppraisalsRate) {
		t.Fatal("employees must not rate appraisals")
	}
}

func TestEveryRoleHasFeatureAreas(t *testing.T) {
	for _, role := range directory.Roles {
		if len(FeatureAreas[role]) == 0 {
			t.Fatalf("role %s has no feature areas", role)
		}
	}
}
