package simulator

import (
	"testing"

	"github.com/venuecraft/venuesim/internal/models"
)

func TestAssignStaffPrefersServiceRole(t *testing.T) {
	venue := testVenue(models.VenueBar)
	s := newTestSimulator(venue, 3)
	waiter := testStaff(venue.ID, models.StaffWaiter, 50, 50)
	bartender := testStaff(venue.ID, models.StaffBartender, 50, 50)
	s.Staff[venue.ID] = []*models.Staff{waiter, bartender}

	g := testGroup(venue.ID, models.StatusOrdering)
	if !s.assignStaff(g, venue) {
		t.Fatal("assignment should succeed")
	}
	if g.AssignedStaffID != bartender.ID {
		t.Errorf("assigned %q, want the bartender at a bar", g.AssignedStaffID)
	}
	if s.StaffLoad[bartender.ID] != 1 {
		t.Errorf("bartender load = %d, want 1", s.StaffLoad[bartender.ID])
	}
}

func TestAssignStaffPicksLeastLoaded(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 3)
	busy := testStaff(venue.ID, models.StaffWaiter, 50, 50)
	busy.ID = "staff-busy"
	idle := testStaff(venue.ID, models.StaffWaiter, 50, 50)
	idle.ID = "staff-idle"
	s.Staff[venue.ID] = []*models.Staff{busy, idle}
	s.StaffLoad[busy.ID] = 2

	g := testGroup(venue.ID, models.StatusOrdering)
	s.assignStaff(g, venue)
	if g.AssignedStaffID != idle.ID {
		t.Errorf("assigned %q, want the idle waiter", g.AssignedStaffID)
	}
}

func TestAssignStaffRespectsConcurrentCaps(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 3)
	waiter := testStaff(venue.ID, models.StaffWaiter, 50, 50)
	s.Staff[venue.ID] = []*models.Staff{waiter}
	s.StaffLoad[waiter.ID] = 3 // waiter cap

	g := testGroup(venue.ID, models.StatusOrdering)
	if s.assignStaff(g, venue) {
		t.Fatal("assignment should fail when the only waiter is at cap")
	}
	if g.Patience != 85 {
		t.Errorf("patience = %v, want 85 after -5 no-staff penalty", g.Patience)
	}
	if g.AssignedStaffID != "" {
		t.Error("group must stay unassigned")
	}
}

func TestAssignStaffFallsBackToAnyRole(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 3)
	cook := testStaff(venue.ID, models.StaffCook, 50, 50)
	s.Staff[venue.ID] = []*models.Staff{cook}

	g := testGroup(venue.ID, models.StatusOrdering)
	if !s.assignStaff(g, venue) {
		t.Fatal("assignment should fall back to the cook")
	}
	if g.AssignedStaffID != cook.ID {
		t.Errorf("assigned %q, want the cook", g.AssignedStaffID)
	}
}

func TestResolveStaffIgnoresOffDutyMembers(t *testing.T) {
	venue := testVenue(models.VenueBar)
	s := newTestSimulator(venue, 3)
	bartender := testStaff(venue.ID, models.StaffBartender, 50, 50)
	s.Staff[venue.ID] = []*models.Staff{bartender}

	g := testGroup(venue.ID, models.StatusWaiting)
	g.AssignedStaffID = bartender.ID

	if s.resolveStaff(g) == nil {
		t.Fatal("on-duty staff should resolve")
	}
	bartender.IsWorking = false
	if s.resolveStaff(g) != nil {
		t.Fatal("off-duty staff must not resolve")
	}
	g.AssignedStaffID = "fired-long-ago"
	if s.resolveStaff(g) != nil {
		t.Fatal("unknown staff id must not resolve")
	}
}

func TestOrderingReassignmentReleasesOffDutyLoad(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 3)
	first := testStaff(venue.ID, models.StaffWaiter, 50, 50)
	first.ID = "staff-first"
	second := testStaff(venue.ID, models.StaffWaiter, 50, 50)
	second.ID = "staff-second"
	s.Staff[venue.ID] = []*models.Staff{first, second}

	g := testGroup(venue.ID, models.StatusOrdering)
	if !s.assignStaff(g, venue) || g.AssignedStaffID != first.ID {
		t.Fatal("expected the first waiter to take the group")
	}

	first.IsWorking = false
	s.handleOrdering(g, venue)

	if g.AssignedStaffID != second.ID {
		t.Fatalf("assigned %q, want reassignment to the second waiter", g.AssignedStaffID)
	}
	if s.StaffLoad[first.ID] != 0 {
		t.Errorf("off-duty waiter load = %d, want 0 (slot must be released on reassignment)",
			s.StaffLoad[first.ID])
	}

	s.Customers = append(s.Customers, g)
	s.removeCustomerAt(0, "departed")
	if s.StaffLoad[second.ID] != 0 {
		t.Errorf("second waiter load = %d, want 0 after the group left", s.StaffLoad[second.ID])
	}
}

func TestReleaseStaffDecrementsLoad(t *testing.T) {
	venue := testVenue(models.VenueBar)
	s := newTestSimulator(venue, 3)
	bartender := testStaff(venue.ID, models.StaffBartender, 50, 50)
	s.Staff[venue.ID] = []*models.Staff{bartender}

	g := testGroup(venue.ID, models.StatusWaiting)
	s.assignStaff(g, venue)
	s.releaseStaff(g)

	if s.StaffLoad[bartender.ID] != 0 {
		t.Errorf("load = %d, want 0 after release", s.StaffLoad[bartender.ID])
	}
	if g.AssignedStaffID != "" {
		t.Error("release must clear the assignment")
	}

	s.releaseStaff(g) // second release is a no-op
	if s.StaffLoad[bartender.ID] != 0 {
		t.Error("double release must not drive load negative")
	}
}
