package simulator

import "github.com/venuecraft/venuesim/internal/models"

// assignStaff picks the least-loaded on-duty staff member for the group,
// preferring the venue type's canonical service role and falling back to any
// on-duty member. Returns false, with a patience penalty applied, when no
// eligible candidate exists.
func (s *Simulator) assignStaff(g *models.CustomerGroup, venue *models.Venue) bool {
	preferred := venue.Type.ServiceRole()

	pick := s.pickLeastLoaded(venue.ID, func(m *models.Staff) bool {
		return m.Role == preferred
	})
	if pick == nil {
		pick = s.pickLeastLoaded(venue.ID, func(m *models.Staff) bool {
			return true
		})
	}
	if pick == nil {
		g.Patience -= 5
		return false
	}

	g.AssignedStaffID = pick.ID
	s.StaffLoad[pick.ID]++
	return true
}

// pickLeastLoaded scans the roster in hire order so ties resolve to the
// earliest hire, keeping assignment deterministic for a given seed.
func (s *Simulator) pickLeastLoaded(venueID string, eligible func(*models.Staff) bool) *models.Staff {
	var pick *models.Staff
	for _, member := range s.Staff[venueID] {
		if !member.IsWorking || !eligible(member) {
			continue
		}
		if s.StaffLoad[member.ID] >= member.ConcurrentLimit() {
			continue
		}
		if pick == nil || s.StaffLoad[member.ID] < s.StaffLoad[pick.ID] {
			pick = member
		}
	}
	return pick
}

// resolveStaff looks up the group's assigned staff member through the store
// on each use. Staff can be fired or clock off between ticks, so the id is
// never cached as a live reference.
func (s *Simulator) resolveStaff(g *models.CustomerGroup) *models.Staff {
	if g.AssignedStaffID == "" {
		return nil
	}
	for _, member := range s.Staff[g.VenueID] {
		if member.ID == g.AssignedStaffID {
			if !member.IsWorking {
				return nil
			}
			return member
		}
	}
	return nil
}

func (s *Simulator) releaseStaff(g *models.CustomerGroup) {
	if g.AssignedStaffID == "" {
		return
	}
	if s.StaffLoad[g.AssignedStaffID] > 0 {
		s.StaffLoad[g.AssignedStaffID]--
	}
	g.AssignedStaffID = ""
}
