package auth

import (
	"testing"
	"time"

	"ams/internal/domain/appraisal"
	"ams/internal/domain/directory"
)

func assignedCycle(t *testing.T) appraisal.Appraisal {
	t.Helper()
	a := appraisal.New("7", "April", 2025)
	var err error
	for slot, userID := range map[appraisal.Slot]string{
		appraisal.SlotHR:       "2",
		appraisal.SlotTeamLead: "6",
		appraisal.SlotManager:  "4",
	} {
		a, err = appraisal.AssignReviewer(a, slot, userID)
		if err != nil {
			t.Fatalf("assign %s: %v", slot, err)
		}
	}
	return a
}

func TestSlotRoleMapping(t *testing.T) {
	cases := []struct {
		slot appraisal.Slot
		role string
	}{
		{appraisal.SlotHR, directory.RoleHR},
		{appraisal.SlotTeamLead, directory.RoleTeamLead},
		{appraisal.SlotManager, directory.RoleManager},
	}
	for _, tc := range cases {
		role, ok := SlotRole(tc.slot)
		if !ok || role != tc.role {
			t.Fatalf("slot %s mapped to %q", tc.slot, role)
		}
	}
	if _, ok := SlotRole(appraisal.Slot("ceo")); ok {
		t.Fatal("unknown slot must not map")
	}
}

func TestCanViewScoping(t *testing.T) {
	a := assignedCycle(t)

	if !CanView("1", directory.RoleSuperAdmin, a) {
		t.Fatal("super admin sees everything")
	}
	if !CanView("2", directory.RoleHR, a) {
		t.Fatal("assigned hr must see the cycle")
	}
	if CanView("3", directory.RoleHR, a) {
		t.Fatal("unassigned hr must not see the cycle")
	}
	if !CanView("7", directory.RoleEmployee, a) {
		t.Fatal("employee must see own cycle")
	}
	if CanView("8", directory.RoleEmployee, a) {
		t.Fatal("employee must not see another employee's cycle")
	}
}

func TestCanSubmitRating(t *testing.T) {
	a := assignedCycle(t)

	if !CanSubmitRating("6", directory.RoleTeamLead, a) {
		t.Fatal("assigned team lead may rate")
	}
	if CanSubmitRating("13", directory.RoleTeamLead, a) {
		t.Fatal("unassigned team lead may not rate")
	}
	if CanSubmitRating("7", directory.RoleEmployee, a) {
		t.Fatal("employee may never rate")
	}

	rated, err := appraisal.SubmitRating(a, "6", directory.RoleTeamLead, appraisal.CriteriaScores{Skills: 7, Personality: 7, Communication: 7, Teamwork: 7, Performance: 7}, "solid work", time.Now())
	if err != nil {
		t.Fatalf("rating: %v", err)
	}
	if CanSubmitRating("6", directory.RoleTeamLead, rated) {
		t.Fatal("reviewer who already rated may not rate again")
	}
}

func TestCanFinalizeRequiresPendingReview(t *testing.T) {
	a := assignedCycle(t)
	if CanFinalize(directory.RoleSuperAdmin, a) {
		t.Fatal("in-progress cycle must not be finalizable")
	}

	a.Status = appraisal.StatusPendingReview
	if !CanFinalize(directory.RoleSuperAdmin, a) {
		t.Fatal("super admin finalizes a pending-review cycle")
	}
	if CanFinalize(directory.RoleHR, a) {
		t.Fatal("hr must not finalize")
	}
}
