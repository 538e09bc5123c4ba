package simulator

import (
	"math/rand"
	"time"

	"github.com/venuecraft/venuesim/internal/models"
)

func testVenue(venueType models.VenueType) *models.Venue {
	return &models.Venue{
		ID:                   "venue-1",
		Name:                 "The Test Tap",
		Type:                 venueType,
		Capacity:             50,
		OpeningHour:          0,
		ClosingHour:          0, // open around the clock
		MusicVolume:          50,
		LightingLevel:        50,
		Cleanliness:          80,
		Atmosphere:           60,
		ServiceQuality:       70,
		Popularity:           50,
		CustomerSatisfaction: 60,
		Inventory: models.Inventory{
			Drinks: []models.StockItem{
				{Name: "House Lager", Stock: 10, SellPrice: 5.50},
				{Name: "Old Fashioned", Stock: 10, SellPrice: 11.00},
			},
			Food: []models.StockItem{
				{Name: "Ribeye Steak", Stock: 10, SellPrice: 28.00},
				{Name: "Caesar Salad", Stock: 10, SellPrice: 12.00},
			},
		},
	}
}

func testStaff(venueID string, role models.StaffRole, speed, service int) *models.Staff {
	return &models.Staff{
		ID:        "staff-" + string(role),
		VenueID:   venueID,
		Name:      "Test Member",
		Role:      role,
		IsWorking: true,
		Skills: map[string]int{
			models.SkillSpeed:           speed,
			models.SkillCustomerService: service,
		},
		Friendliness: 60,
	}
}

func newTestSimulator(venue *models.Venue, seed int64) *Simulator {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) // a Monday
	return &Simulator{
		Config: &models.Config{
			Seed:                     int(seed),
			StartDate:                start,
			EndDate:                  start.Add(24 * time.Hour),
			TickIntervalMinutes:      15,
			InitialVenues:            1,
			StaffPerVenueMin:         2,
			StaffPerVenueMax:         4,
			MaxActiveCustomers:       100,
			CityPopularityMultiplier: 1.0,
			CityAffluence:            1.0,
		},
		Clock:      models.NewGameClock(start),
		Rng:        rand.New(rand.NewSource(seed)),
		Player:     &models.Player{},
		Venues:     map[string]*models.Venue{venue.ID: venue},
		VenueOrder: []string{venue.ID},
		Staff:      map[string][]*models.Staff{},
		StaffLoad:  map[string]int{},
		EventQueue: models.NewEventQueue(),
	}
}

func testGroup(venueID string, status models.CustomerStatus) *models.CustomerGroup {
	return &models.CustomerGroup{
		ID:                 "group-1",
		VenueID:            venueID,
		Type:               models.CustomerRegular,
		GroupSize:          2,
		Status:             status,
		CreatedTick:        -1,
		SpendingBudget:     40,
		Patience:           90,
		Satisfaction:       70,
		MusicPreference:    50,
		LightingPreference: 50,
		QualityImportance:  50,
		SpeedImportance:    50,
	}
}
