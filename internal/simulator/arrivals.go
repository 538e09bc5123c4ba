package simulator

import (
	"math"

	"github.com/lucsky/cuid"
	"github.com/venuecraft/venuesim/internal/models"
)

// generateArrivals appends zero or more new groups for one venue this tick.
// The count draw is floor(expected × uniform[0,1)), which undercounts
// relative to the stated hourly rate. Downstream tuning assumes this draw,
// so it must not be replaced with a proper Poisson sampler.
func (s *Simulator) generateArrivals(venue *models.Venue) {
	now := s.Clock.Now()
	if !venue.IsOpenAt(now.Hour) {
		return
	}

	profile := VenueProfiles[venue.Type]
	hourlyRate := profile.BaseArrivalRate *
		profile.HourMultipliers[now.Hour] *
		(0.5 + 1.5*venue.Popularity/100) *
		s.Config.CityPopularityMultiplier
	if now.IsWeekendNight() {
		hourlyRate *= 1.5
	}

	perTick := hourlyRate * float64(s.Config.TickIntervalMinutes) / 60.0
	count := int(perTick * s.Rng.Float64())

	for i := 0; i < count; i++ {
		if len(s.Customers) >= s.Config.MaxActiveCustomers {
			return
		}
		group := s.newCustomerGroup(venue, now)
		s.Customers = append(s.Customers, group)
		s.emit(models.EventCustomerArrival, &ArrivalEvent{
			BaseEvent:    s.newBaseEvent(models.EventCustomerArrival, venue.ID),
			GroupID:      group.ID,
			CustomerType: string(group.Type),
			GroupSize:    int32(group.GroupSize),
			Budget:       group.SpendingBudget,
		})
	}
}

func (s *Simulator) newCustomerGroup(venue *models.Venue, now models.GameTime) *models.CustomerGroup {
	customerType := s.pickCustomerType(venue.Type, now.Hour)
	profile := CustomerProfiles[customerType]
	venueProfile := VenueProfiles[venue.Type]

	patience := math.Floor(float64(80+s.Rng.Intn(20)) * profile.PatienceModifier)
	budget := (venueProfile.SpendMin + s.Rng.Float64()*(venueProfile.SpendMax-venueProfile.SpendMin)) *
		profile.SpendingModifier * s.Config.CityAffluence

	return &models.CustomerGroup{
		ID:                 cuid.New(),
		VenueID:            venue.ID,
		Type:               customerType,
		GroupSize:          s.rollGroupSize(profile),
		Status:             models.StatusEntering,
		CreatedTick:        s.TickCount,
		ArrivedAt:          now,
		SpendingBudget:     budget,
		Patience:           patience,
		Satisfaction:       70,
		MusicPreference:    s.intBetween(venueProfile.MusicPrefMin, venueProfile.MusicPrefMax),
		LightingPreference: s.intBetween(venueProfile.LightingPrefMin, venueProfile.LightingPrefMax),
		QualityImportance:  s.intBetween(profile.QualityMin, profile.QualityMax),
		SpeedImportance:    s.intBetween(profile.SpeedMin, profile.SpeedMax),
		PreferredDrinks:    s.sampleItemNames(venue.Inventory.Drinks, 1+s.Rng.Intn(3)),
		PreferredFoods:     s.sampleItemNames(venue.Inventory.Food, 1+s.Rng.Intn(2)),
	}
}

func (s *Simulator) pickCustomerType(venueType models.VenueType, hour int) models.CustomerType {
	total := 0.0
	weights := make([]float64, len(models.AllCustomerTypes))
	for i, ct := range models.AllCustomerTypes {
		w := CustomerProfiles[ct].Weight * hourTypeWeight(ct, venueType, hour)
		weights[i] = w
		total += w
	}

	roll := s.Rng.Float64() * total
	for i, ct := range models.AllCustomerTypes {
		roll -= weights[i]
		if roll < 0 {
			return ct
		}
	}
	return models.AllCustomerTypes[len(models.AllCustomerTypes)-1]
}

func (s *Simulator) rollGroupSize(profile CustomerProfile) int {
	roll := s.Rng.Float64()
	for i, cumulative := range profile.GroupSizeTable {
		if roll < cumulative {
			return i + 1
		}
	}
	return len(profile.GroupSizeTable)
}

func (s *Simulator) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Rng.Intn(max-min+1)
}

func (s *Simulator) sampleItemNames(items []models.StockItem, count int) []string {
	if len(items) == 0 {
		return nil
	}
	if count > len(items) {
		count = len(items)
	}
	picked := make([]string, 0, count)
	seen := make(map[int]bool)
	for len(picked) < count {
		idx := s.Rng.Intn(len(items))
		if seen[idx] {
			continue
		}
		seen[idx] = true
		picked = append(picked, items[idx].Name)
	}
	return picked
}
