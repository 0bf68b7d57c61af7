package auth

import (
	"ams/internal/domain/appraisal"
	"ams/internal/domain/directory"
)

// Record-level access policy. Every mutating entry point consults these
// checks before invoking the lifecycle engine, independently of whatever the
// client chose to render.

// SlotRole maps a reviewer slot to the directory role that may occupy it.
func SlotRole(slot appraisal.Slot) (string, bool) {
	switch slot {
	case appraisal.SlotHR:
		return directory.RoleHR, true
	case appraisal.SlotTeamLead:
		return directory.RoleTeamLead, true
	case appraisal.SlotManager:
		return directory.RoleManager, true
	}
	return "", false
}

// CanView reports whether the user may see the given appraisal. Super Admin
// sees everything, reviewers see cycles where they occupy a slot, employees
// see only their own history.
func CanView(userID, role string, a appraisal.Appraisal) bool {
	switch role {
	case directory.RoleSuperAdmin:
		return true
	case directory.RoleHR, directory.RoleManager, directory.RoleTeamLead:
		return a.HasReviewer(userID)
	case directory.RoleEmployee:
		return a.EmployeeID == userID
	}
	return false
}

// CanSubmitRating requires the user to occupy one of the three slots and not
// to have rated the cycle already.
func CanSubmitRating(userID, role string, a appraisal.Appraisal) bool {
	if !HasPermission(role, PermAppraisalsRate) {
		return false
	}
	return a.HasReviewer(userID) && !a.RatedBy(userID)
}

func CanAssignReviewers(role string) bool {
	return HasPermission(role, PermAppraisalsAssign)
}

func CanCreateCycle(role string) bool {
	return HasPermission(role, PermAppraisalsCreate)
}

// CanFinalize gates finalization to Super Admin and to cycles that have
// reached Pending Review. The engine itself does not hard-block the source
// status; that contract lives here.
func CanFinalize(role string, a appraisal.Appraisal) bool {
	return HasPermission(role, PermAppraisalsFinalize) && a.Status == appraisal.StatusPendingReview
}

func CanManageUsers(role string) bool {
	return HasPermission(role, PermUsersManage)
}
