package simulator

import (
	"github.com/venuecraft/venuesim/internal/models"
)

// placeOrder builds the group's order against the venue inventory and the
// shared budget, decrementing stock as items are added and recording the
// finalized total on the group. An empty result signals affordability
// failure; the caller applies the penalty and keeps the group in its
// current state.
func (s *Simulator) placeOrder(g *models.CustomerGroup, venue *models.Venue, staff *models.Staff) {
	profile := VenueProfiles[venue.Type]

	var items []models.OrderItem
	total := 0.0
	for i := 0; i < g.GroupSize; i++ {
		if drink := s.selectItem(venue.Inventory.Drinks, g.PreferredDrinks); drink != nil {
			drink.Stock--
			items = append(items, models.OrderItem{
				Kind:        models.ItemDrink,
				Name:        drink.Name,
				Price:       drink.SellPrice,
				PrepMinutes: DrinkPrepMinutes,
			})
			total += drink.SellPrice
		}
		if !venue.Type.ServesFood() {
			continue
		}
		if food := s.selectItem(venue.Inventory.Food, g.PreferredFoods); food != nil {
			food.Stock--
			items = append(items, models.OrderItem{
				Kind:        models.ItemFood,
				Name:        food.Name,
				Price:       food.SellPrice,
				PrepMinutes: profile.FoodPrepMinutes,
			})
			total += food.SellPrice
		}
	}

	// Over budget: shed the most expensive items first, restoring stock.
	budget := g.SpendingBudget * float64(g.GroupSize)
	for total > budget && len(items) > 0 {
		expensive := 0
		for i := range items {
			if items[i].Price > items[expensive].Price {
				expensive = i
			}
		}
		s.restoreStock(venue, items[expensive])
		total -= items[expensive].Price
		items = append(items[:expensive], items[expensive+1:]...)
	}

	if len(items) > 0 {
		if upsell := s.tryUpsell(venue, staff, total, budget); upsell != nil {
			items = append(items, *upsell)
			total += upsell.Price
		}
	}

	g.Orders = items
	g.TotalSpending += total
}

// tryUpsell lets a skilled waiter add one premium drink when the group has
// clear budget headroom. Restaurant and bar only.
func (s *Simulator) tryUpsell(venue *models.Venue, staff *models.Staff, total, budget float64) *models.OrderItem {
	if venue.Type != models.VenueRestaurant && venue.Type != models.VenueBar {
		return nil
	}
	if staff == nil || staff.Role != models.StaffWaiter {
		return nil
	}
	skill := staff.Skill(models.SkillCustomerService)
	if skill <= 70 {
		return nil
	}
	if budget-total <= 0.2*budget {
		return nil
	}
	if s.Rng.Float64() >= float64(skill-70)/100 {
		return nil
	}

	// The pick must clear the 20%-of-spend floor and still fit the
	// remaining headroom, or the add-on would blow past the group budget.
	var pick *models.StockItem
	for i := range venue.Inventory.Drinks {
		item := &venue.Inventory.Drinks[i]
		if item.Stock <= 0 || item.SellPrice <= 0.2*total || item.SellPrice > budget-total {
			continue
		}
		if pick == nil || item.SellPrice > pick.SellPrice {
			pick = item
		}
	}
	if pick == nil {
		return nil
	}

	pick.Stock--
	return &models.OrderItem{
		Kind:        models.ItemDrink,
		Name:        pick.Name,
		Price:       pick.SellPrice,
		PrepMinutes: DrinkPrepMinutes,
	}
}

// selectItem prefers an in-stock preferred item, else any in-stock item.
func (s *Simulator) selectItem(items []models.StockItem, preferred []string) *models.StockItem {
	var preferredInStock []*models.StockItem
	for _, name := range preferred {
		for i := range items {
			if items[i].Name == name && items[i].Stock > 0 {
				preferredInStock = append(preferredInStock, &items[i])
			}
		}
	}
	if len(preferredInStock) > 0 {
		return preferredInStock[s.Rng.Intn(len(preferredInStock))]
	}

	var inStock []*models.StockItem
	for i := range items {
		if items[i].Stock > 0 {
			inStock = append(inStock, &items[i])
		}
	}
	if len(inStock) == 0 {
		return nil
	}
	return inStock[s.Rng.Intn(len(inStock))]
}

func (s *Simulator) restoreStock(venue *models.Venue, item models.OrderItem) {
	var stock *models.StockItem
	if item.Kind == models.ItemDrink {
		stock = venue.Inventory.FindDrink(item.Name)
	} else {
		stock = venue.Inventory.FindFood(item.Name)
	}
	if stock != nil {
		stock.Stock++
	}
}
