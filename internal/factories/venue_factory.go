package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/venuecraft/venuesim/internal/models"
)

var fake = faker.New()

// VenueFactory creates venues with type-appropriate capacity, pricing,
// opening hours and starting inventory.
type VenueFactory struct{}

type venueTemplate struct {
	CapacityMin int
	CapacityMax int
	FeeMin      float64
	FeeMax      float64
	OpeningHour int
	ClosingHour int
	MusicMin    int
	MusicMax    int
	LightingMin int
	LightingMax int
}

var venueTemplates = map[models.VenueType]venueTemplate{
	models.VenueBar: {
		CapacityMin: 30, CapacityMax: 80,
		FeeMin: 0, FeeMax: 5,
		OpeningHour: 16, ClosingHour: 2,
		MusicMin: 50, MusicMax: 80,
		LightingMin: 20, LightingMax: 50,
	},
	models.VenueRestaurant: {
		CapacityMin: 40, CapacityMax: 120,
		FeeMin: 0, FeeMax: 0,
		OpeningHour: 11, ClosingHour: 23,
		MusicMin: 20, MusicMax: 50,
		LightingMin: 50, LightingMax: 80,
	},
	models.VenueNightclub: {
		CapacityMin: 80, CapacityMax: 300,
		FeeMin: 5, FeeMax: 25,
		OpeningHour: 21, ClosingHour: 4,
		MusicMin: 75, MusicMax: 100,
		LightingMin: 5, LightingMax: 30,
	},
	models.VenueFastFood: {
		CapacityMin: 20, CapacityMax: 60,
		FeeMin: 0, FeeMax: 0,
		OpeningHour: 8, ClosingHour: 23,
		MusicMin: 10, MusicMax: 40,
		LightingMin: 70, LightingMax: 100,
	},
}

var drinkCatalog = map[models.VenueType][]models.StockItem{
	models.VenueBar: {
		{Name: "House Lager", SellPrice: 5.50},
		{Name: "Pale Ale", SellPrice: 6.00},
		{Name: "Gin and Tonic", SellPrice: 8.50},
		{Name: "Old Fashioned", SellPrice: 11.00},
		{Name: "House Red Wine", SellPrice: 7.00},
		{Name: "Sparkling Water", SellPrice: 3.00},
	},
	models.VenueRestaurant: {
		{Name: "House Red Wine", SellPrice: 7.50},
		{Name: "House White Wine", SellPrice: 7.50},
		{Name: "Craft Beer", SellPrice: 6.50},
		{Name: "Fresh Lemonade", SellPrice: 4.00},
		{Name: "Espresso", SellPrice: 3.00},
		{Name: "Sparkling Water", SellPrice: 3.50},
	},
	models.VenueNightclub: {
		{Name: "Vodka Soda", SellPrice: 9.00},
		{Name: "Tequila Shot", SellPrice: 7.00},
		{Name: "Champagne Glass", SellPrice: 14.00},
		{Name: "House Lager", SellPrice: 7.00},
		{Name: "Energy Mixer", SellPrice: 10.00},
	},
	models.VenueFastFood: {
		{Name: "Cola", SellPrice: 2.50},
		{Name: "Milkshake", SellPrice: 4.50},
		{Name: "Iced Tea", SellPrice: 2.75},
		{Name: "Orange Juice", SellPrice: 3.00},
	},
}

var foodCatalog = map[models.VenueType][]models.StockItem{
	models.VenueRestaurant: {
		{Name: "Grilled Salmon", SellPrice: 22.00},
		{Name: "Ribeye Steak", SellPrice: 28.00},
		{Name: "Mushroom Risotto", SellPrice: 16.50},
		{Name: "Caesar Salad", SellPrice: 12.00},
		{Name: "Margherita Pizza", SellPrice: 14.00},
		{Name: "Tiramisu", SellPrice: 8.00},
	},
	models.VenueFastFood: {
		{Name: "Cheeseburger", SellPrice: 6.50},
		{Name: "Chicken Wrap", SellPrice: 5.75},
		{Name: "Fries", SellPrice: 3.00},
		{Name: "Hot Dog", SellPrice: 4.50},
		{Name: "Veggie Burger", SellPrice: 6.00},
	},
}

func (vf *VenueFactory) CreateVenue(venueType models.VenueType, rng *rand.Rand) *models.Venue {
	tmpl := venueTemplates[venueType]

	venue := &models.Venue{
		ID:                   cuid.New(),
		Name:                 fake.Company().Name(),
		Type:                 venueType,
		Capacity:             tmpl.CapacityMin + rng.Intn(tmpl.CapacityMax-tmpl.CapacityMin+1),
		OpeningHour:          tmpl.OpeningHour,
		ClosingHour:          tmpl.ClosingHour,
		MusicVolume:          tmpl.MusicMin + rng.Intn(tmpl.MusicMax-tmpl.MusicMin+1),
		LightingLevel:        tmpl.LightingMin + rng.Intn(tmpl.LightingMax-tmpl.LightingMin+1),
		EntranceFee:          tmpl.FeeMin + rng.Float64()*(tmpl.FeeMax-tmpl.FeeMin),
		Cleanliness:          float64(60 + rng.Intn(41)),
		Atmosphere:           float64(40 + rng.Intn(51)),
		ServiceQuality:       float64(40 + rng.Intn(51)),
		Popularity:           30 + rng.Float64()*40,
		CustomerSatisfaction: 50 + rng.Float64()*20,
		Inventory:            vf.stockInventory(venueType, rng),
	}
	return venue
}

func (vf *VenueFactory) stockInventory(venueType models.VenueType, rng *rand.Rand) models.Inventory {
	inv := models.Inventory{}
	for _, item := range drinkCatalog[venueType] {
		item.Stock = 40 + rng.Intn(61)
		inv.Drinks = append(inv.Drinks, item)
	}
	if venueType.ServesFood() {
		for _, item := range foodCatalog[venueType] {
			item.Stock = 25 + rng.Intn(36)
			inv.Food = append(inv.Food, item)
		}
	}
	return inv
}
