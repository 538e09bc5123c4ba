package factories

import (
	"math/rand"
	"testing"

	"github.com/venuecraft/venuesim/internal/models"
)

func TestCreateVenueRespectsTypeTemplate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vf := &VenueFactory{}

	for _, venueType := range models.AllVenueTypes {
		tmpl := venueTemplates[venueType]
		for i := 0; i < 20; i++ {
			venue := vf.CreateVenue(venueType, rng)

			if venue.ID == "" || venue.Name == "" {
				t.Fatalf("%s: venue must have id and name", venueType)
			}
			if venue.Capacity < tmpl.CapacityMin || venue.Capacity > tmpl.CapacityMax {
				t.Fatalf("%s: capacity %d outside [%d,%d]",
					venueType, venue.Capacity, tmpl.CapacityMin, tmpl.CapacityMax)
			}
			if venue.EntranceFee < tmpl.FeeMin || venue.EntranceFee > tmpl.FeeMax {
				t.Fatalf("%s: fee %v outside [%v,%v]",
					venueType, venue.EntranceFee, tmpl.FeeMin, tmpl.FeeMax)
			}
			if len(venue.Inventory.Drinks) == 0 {
				t.Fatalf("%s: venue must stock drinks", venueType)
			}
			if venueType.ServesFood() && len(venue.Inventory.Food) == 0 {
				t.Fatalf("%s: food-serving venue must stock food", venueType)
			}
			if !venueType.ServesFood() && len(venue.Inventory.Food) != 0 {
				t.Fatalf("%s: drinks-only venue must not stock food", venueType)
			}
		}
	}
}

func TestCreateRosterCoversServiceRole(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	vf := &VenueFactory{}
	sf := &StaffFactory{}

	for _, venueType := range models.AllVenueTypes {
		venue := vf.CreateVenue(venueType, rng)
		roster := sf.CreateRoster(venue, 6, rng)

		if len(roster) != 6 {
			t.Fatalf("%s: roster size %d, want 6", venueType, len(roster))
		}
		hasServiceRole := false
		for _, member := range roster {
			if member.VenueID != venue.ID {
				t.Fatalf("%s: staff bound to wrong venue", venueType)
			}
			if !member.IsWorking {
				t.Fatalf("%s: new hires start on duty", venueType)
			}
			if member.Skill(models.SkillSpeed) < 30 || member.Skill(models.SkillSpeed) > 95 {
				t.Fatalf("%s: speed skill %d outside hiring range", venueType, member.Skill(models.SkillSpeed))
			}
			if member.Role == venueType.ServiceRole() {
				hasServiceRole = true
			}
		}
		if !hasServiceRole {
			t.Fatalf("%s: roster of 6 must include the canonical service role", venueType)
		}
	}
}
