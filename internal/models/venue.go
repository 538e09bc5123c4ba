package models

type VenueType string

const (
	VenueBar        VenueType = "bar"
	VenueRestaurant VenueType = "restaurant"
	VenueNightclub  VenueType = "nightclub"
	VenueFastFood   VenueType = "fast_food"
)

var AllVenueTypes = []VenueType{VenueBar, VenueRestaurant, VenueNightclub, VenueFastFood}

func (vt VenueType) Valid() bool {
	switch vt {
	case VenueBar, VenueRestaurant, VenueNightclub, VenueFastFood:
		return true
	}
	return false
}

// ServesFood reports whether customers order food in addition to drinks.
func (vt VenueType) ServesFood() bool {
	return vt == VenueRestaurant || vt == VenueFastFood
}

// ServiceRole is the staff role customers expect to be served by.
func (vt VenueType) ServiceRole() StaffRole {
	if vt == VenueBar || vt == VenueNightclub {
		return StaffBartender
	}
	return StaffWaiter
}

// StockItem is one sellable inventory line.
type StockItem struct {
	Name      string  `json:"name"`
	Stock     int     `json:"stock"`
	SellPrice float64 `json:"sell_price"`
}

type Inventory struct {
	Drinks []StockItem `json:"drinks"`
	Food   []StockItem `json:"food"`
}

func findItem(items []StockItem, name string) *StockItem {
	for i := range items {
		if items[i].Name == name {
			return &items[i]
		}
	}
	return nil
}

func (inv *Inventory) FindDrink(name string) *StockItem { return findItem(inv.Drinks, name) }
func (inv *Inventory) FindFood(name string) *StockItem  { return findItem(inv.Food, name) }

type Venue struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Type                 VenueType `json:"type"`
	Capacity             int       `json:"capacity"`
	OpeningHour          int       `json:"opening_hour"`
	ClosingHour          int       `json:"closing_hour"`
	MusicVolume          int       `json:"music_volume"`
	LightingLevel        int       `json:"lighting_level"`
	EntranceFee          float64   `json:"entrance_fee"`
	Cleanliness          float64   `json:"cleanliness"`
	Atmosphere           float64   `json:"atmosphere"`
	ServiceQuality       float64   `json:"service_quality"`
	Popularity           float64   `json:"popularity"`
	CustomerSatisfaction float64   `json:"customer_satisfaction"`
	DailyRevenue         float64   `json:"daily_revenue"`
	WeeklyRevenue        float64   `json:"weekly_revenue"`
	MonthlyRevenue       float64   `json:"monthly_revenue"`
	TotalCustomersServed int       `json:"total_customers_served"`
	Inventory            Inventory `json:"inventory"`
}

// IsOpenAt handles opening windows that wrap past midnight (nightclubs).
func (v *Venue) IsOpenAt(hour int) bool {
	if v.OpeningHour == v.ClosingHour {
		return true // around the clock
	}
	if v.OpeningHour < v.ClosingHour {
		return hour >= v.OpeningHour && hour < v.ClosingHour
	}
	return hour >= v.OpeningHour || hour < v.ClosingHour
}

// RecordSale accumulates revenue into the rolling daily/weekly/monthly totals.
func (v *Venue) RecordSale(amount float64) {
	v.DailyRevenue += amount
	v.WeeklyRevenue += amount
	v.MonthlyRevenue += amount
}

// NudgePopularity shifts popularity by delta, clamped to [0,100].
func (v *Venue) NudgePopularity(delta float64) {
	v.Popularity += delta
	if v.Popularity < 0 {
		v.Popularity = 0
	}
	if v.Popularity > 100 {
		v.Popularity = 100
	}
}
