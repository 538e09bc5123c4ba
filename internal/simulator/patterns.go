package simulator

import (
	"fmt"

	"github.com/venuecraft/venuesim/internal/models"
)

// VenueProfile captures the arrival, spending and timing character of one
// venue type. Rates are customers per hour before the hourly multiplier.
type VenueProfile struct {
	BaseArrivalRate      float64
	HourMultipliers      [24]float64
	SpendMin             float64
	SpendMax             float64
	ExpectedSpendPerHead float64
	ConsumptionFactor    float64
	FoodPrepMinutes      float64
	MusicPrefMin         int
	MusicPrefMax         int
	LightingPrefMin      int
	LightingPrefMax      int
}

// CustomerProfile captures the behavioral tilt of one customer type.
type CustomerProfile struct {
	Weight           float64
	PatienceModifier float64
	SpendingModifier float64
	// GroupSizeTable is cumulative probability over group sizes 1..len.
	GroupSizeTable []float64
	QualityMin     int
	QualityMax     int
	SpeedMin       int
	SpeedMax       int
}

const (
	DrinkPrepMinutes    = 5.0
	FoodConsumeMinutes  = 20.0
	DrinkConsumeMinutes = 10.0
)

func flatHours(base float64) [24]float64 {
	var m [24]float64
	for i := range m {
		m[i] = base
	}
	return m
}

func barHours() [24]float64 {
	m := flatHours(0.3)
	for h := 17; h <= 19; h++ {
		m[h] = 1.5
	}
	for h := 20; h <= 23; h++ {
		m[h] = 2.0
	}
	m[0], m[1] = 1.2, 0.8
	return m
}

func restaurantHours() [24]float64 {
	m := flatHours(0.4)
	for h := 12; h <= 14; h++ {
		m[h] = 2.0
	}
	for h := 18; h <= 21; h++ {
		m[h] = 2.5
	}
	return m
}

func nightclubHours() [24]float64 {
	m := flatHours(0.05)
	m[21], m[22] = 1.0, 1.8
	m[23], m[0] = 2.5, 2.5
	m[1], m[2], m[3] = 2.0, 1.2, 0.6
	return m
}

func fastFoodHours() [24]float64 {
	m := flatHours(0.6)
	for h := 12; h <= 13; h++ {
		m[h] = 2.0
	}
	for h := 18; h <= 20; h++ {
		m[h] = 1.6
	}
	m[23], m[0] = 1.2, 1.0
	return m
}

var VenueProfiles = map[models.VenueType]VenueProfile{
	models.VenueBar: {
		BaseArrivalRate:      6,
		HourMultipliers:      barHours(),
		SpendMin:             15,
		SpendMax:             60,
		ExpectedSpendPerHead: 20,
		ConsumptionFactor:    1.2,
		FoodPrepMinutes:      20,
		MusicPrefMin:         40, MusicPrefMax: 90,
		LightingPrefMin: 10, LightingPrefMax: 60,
	},
	models.VenueRestaurant: {
		BaseArrivalRate:      8,
		HourMultipliers:      restaurantHours(),
		SpendMin:             25,
		SpendMax:             90,
		ExpectedSpendPerHead: 30,
		ConsumptionFactor:    1.0,
		FoodPrepMinutes:      20,
		MusicPrefMin:         10, MusicPrefMax: 60,
		LightingPrefMin: 40, LightingPrefMax: 90,
	},
	models.VenueNightclub: {
		BaseArrivalRate:      10,
		HourMultipliers:      nightclubHours(),
		SpendMin:             20,
		SpendMax:             80,
		ExpectedSpendPerHead: 25,
		ConsumptionFactor:    1.2,
		FoodPrepMinutes:      20,
		MusicPrefMin:         60, MusicPrefMax: 100,
		LightingPrefMin: 0, LightingPrefMax: 40,
	},
	models.VenueFastFood: {
		BaseArrivalRate:      12,
		HourMultipliers:      fastFoodHours(),
		SpendMin:             8,
		SpendMax:             25,
		ExpectedSpendPerHead: 10,
		ConsumptionFactor:    0.7,
		FoodPrepMinutes:      10,
		MusicPrefMin:         0, MusicPrefMax: 60,
		LightingPrefMin: 50, LightingPrefMax: 100,
	},
}

var CustomerProfiles = map[models.CustomerType]CustomerProfile{
	models.CustomerRegular: {
		Weight:           0.40,
		PatienceModifier: 1.0,
		SpendingModifier: 1.0,
		GroupSizeTable:   []float64{0.30, 0.65, 0.85, 1.0},
		QualityMin:       30, QualityMax: 80,
		SpeedMin: 30, SpeedMax: 80,
	},
	models.CustomerTourist: {
		Weight:           0.25,
		PatienceModifier: 1.2,
		SpendingModifier: 1.3,
		GroupSizeTable:   []float64{0.15, 0.45, 0.75, 0.90, 1.0},
		QualityMin:       40, QualityMax: 90,
		SpeedMin: 20, SpeedMax: 60,
	},
	models.CustomerBusiness: {
		Weight:           0.15,
		PatienceModifier: 0.8,
		SpendingModifier: 1.6,
		GroupSizeTable:   []float64{0.40, 0.75, 0.95, 1.0},
		QualityMin:       60, QualityMax: 100,
		SpeedMin: 60, SpeedMax: 100,
	},
	models.CustomerStudent: {
		Weight:           0.20,
		PatienceModifier: 1.1,
		SpendingModifier: 0.6,
		GroupSizeTable:   []float64{0.10, 0.35, 0.65, 0.85, 1.0},
		QualityMin:       10, QualityMax: 50,
		SpeedMin: 30, SpeedMax: 70,
	},
}

// hourTypeWeight tilts the customer-type mix by hour and venue. Business
// groups cluster around lunch and dinner, students dominate late nights at
// drinking venues, tourists skew to afternoons.
func hourTypeWeight(ct models.CustomerType, vt models.VenueType, hour int) float64 {
	switch ct {
	case models.CustomerBusiness:
		if (hour >= 12 && hour <= 14) || (hour >= 18 && hour <= 21) {
			return 1.5
		}
		return 0.5
	case models.CustomerStudent:
		if hour >= 21 && (vt == models.VenueBar || vt == models.VenueNightclub) {
			return 1.5
		}
	case models.CustomerTourist:
		if hour >= 12 && hour <= 17 {
			return 1.3
		}
	}
	return 1.0
}

// patienceDecay is the per-tick patience drain while in each pre-departure
// state. Leaving has no entry because departing groups stop decaying.
var patienceDecay = map[models.CustomerStatus]float64{
	models.StatusEntering: 0.5,
	models.StatusSeated:   0.2,
	models.StatusOrdering: 0.3,
	models.StatusWaiting:  0.4,
	models.StatusEating:   0.1,
	models.StatusDrinking: 0.1,
	models.StatusPaying:   0.3,
}

func validatePatterns() error {
	for vt, p := range VenueProfiles {
		if p.BaseArrivalRate <= 0 {
			return fmt.Errorf("venue profile %s: non-positive arrival rate", vt)
		}
		if p.SpendMax < p.SpendMin {
			return fmt.Errorf("venue profile %s: spend range inverted", vt)
		}
		for h, m := range p.HourMultipliers {
			if m < 0 {
				return fmt.Errorf("venue profile %s: negative multiplier at hour %d", vt, h)
			}
		}
	}
	totalWeight := 0.0
	for ct, p := range CustomerProfiles {
		totalWeight += p.Weight
		n := len(p.GroupSizeTable)
		if n == 0 || p.GroupSizeTable[n-1] != 1.0 {
			return fmt.Errorf("customer profile %s: group size table must end at 1.0", ct)
		}
		for i := 1; i < n; i++ {
			if p.GroupSizeTable[i] < p.GroupSizeTable[i-1] {
				return fmt.Errorf("customer profile %s: group size table not monotonic", ct)
			}
		}
	}
	if totalWeight <= 0 {
		return fmt.Errorf("customer profiles: total weight must be positive")
	}
	return nil
}
