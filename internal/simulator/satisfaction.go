package simulator

import (
	"math"

	"github.com/venuecraft/venuesim/internal/models"
)

// updatePsychology runs once per tick per active, non-leaving group, after
// the state handler. Returns true when patience has run out and the group
// must be removed as a forced dissatisfied departure.
func (s *Simulator) updatePsychology(g *models.CustomerGroup, venue *models.Venue) bool {
	g.Patience -= patienceDecay[g.Status]
	g.Patience -= math.Max(0, 50-venue.Cleanliness) / 100

	if gap := math.Abs(float64(g.MusicPreference - venue.MusicVolume)); gap > 30 {
		excess := gap - 30
		g.Patience -= excess / 200
		g.AdjustSatisfaction(-excess / 100)
	}
	if gap := math.Abs(float64(g.LightingPreference - venue.LightingLevel)); gap > 30 {
		excess := gap - 30
		g.Patience -= excess / 200
		g.AdjustSatisfaction(-excess / 100)
	}

	return g.Patience <= 0
}

// finalizeSatisfaction folds the service experience into the accumulated
// satisfaction score at payment time.
func (s *Simulator) finalizeSatisfaction(g *models.CustomerGroup, venue *models.Venue) {
	if staff := s.resolveStaff(g); staff != nil {
		if staff.Friendliness > 0 {
			g.AdjustSatisfaction(float64(staff.Friendliness) / 2)
		}
		g.AdjustSatisfaction((staff.AvgSkill() - 50) / 5)
	}

	expected := VenueProfiles[venue.Type].ExpectedSpendPerHead
	actualPerHead := g.TotalSpending / float64(g.GroupSize)
	valueRatio := (venue.ServiceQuality / 100 * expected) /
		math.Max(0.1, actualPerHead) *
		(0.5 + float64(g.QualityImportance)/100)
	g.AdjustSatisfaction((valueRatio - 1) * 20)

	g.AdjustSatisfaction((venue.Atmosphere - 50) / 5)

	if g.GroupSize <= 2 && g.Table != nil && g.Table.Size == "large" {
		g.AdjustSatisfaction(5)
	}

	for _, item := range g.Orders {
		if g.PrefersItem(item.Name) {
			g.AdjustSatisfaction(5)
		}
	}
}
