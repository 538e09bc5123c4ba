package simulator

import (
	"testing"

	"github.com/venuecraft/venuesim/internal/models"
)

func inventoryTotal(venue *models.Venue) int {
	total := 0
	for _, item := range venue.Inventory.Drinks {
		total += item.Stock
	}
	for _, item := range venue.Inventory.Food {
		total += item.Stock
	}
	return total
}

func TestPlaceOrderStaysWithinBudget(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 7)
	stockBefore := inventoryTotal(venue)

	g := testGroup(venue.ID, models.StatusOrdering)
	g.SpendingBudget = 10 // group of 2: shared budget 20, steak alone is 28

	s.placeOrder(g, venue, nil)

	total := 0.0
	for _, item := range g.Orders {
		total += item.Price
	}
	if total > g.SpendingBudget*float64(g.GroupSize) {
		t.Fatalf("order total %v exceeds shared budget %v", total, g.SpendingBudget*2)
	}
	if !approxEqual(g.TotalSpending, total) {
		t.Errorf("recorded spending = %v, want the finalized order total %v", g.TotalSpending, total)
	}
	if stockBefore-inventoryTotal(venue) != len(g.Orders) {
		t.Errorf("stock decrement %d does not match %d items held",
			stockBefore-inventoryTotal(venue), len(g.Orders))
	}
}

func TestPlaceOrderEvictsMostExpensiveFirst(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 7)

	g := testGroup(venue.ID, models.StatusOrdering)
	g.GroupSize = 2
	g.SpendingBudget = 12 // shared 24: any steak at 28 must always be shed

	s.placeOrder(g, venue, nil)

	for _, item := range g.Orders {
		if item.Name == "Ribeye Steak" {
			t.Fatal("steak above the full shared budget should always be evicted")
		}
	}
	for _, item := range venue.Inventory.Food {
		if item.Name == "Ribeye Steak" && item.Stock != 10 {
			t.Errorf("evicted steak stock = %d, want 10 restored", item.Stock)
		}
	}
}

func TestPlaceOrderEmptyWhenOutOfStock(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	for i := range venue.Inventory.Drinks {
		venue.Inventory.Drinks[i].Stock = 0
	}
	for i := range venue.Inventory.Food {
		venue.Inventory.Food[i].Stock = 0
	}
	s := newTestSimulator(venue, 7)

	g := testGroup(venue.ID, models.StatusOrdering)
	s.placeOrder(g, venue, nil)

	if len(g.Orders) != 0 {
		t.Fatalf("order has %d items, want none with empty inventory", len(g.Orders))
	}
}

func TestEmptyOrderPenalizesAndKeepsOrdering(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	for i := range venue.Inventory.Drinks {
		venue.Inventory.Drinks[i].Stock = 0
	}
	for i := range venue.Inventory.Food {
		venue.Inventory.Food[i].Stock = 0
	}
	s := newTestSimulator(venue, 7)
	staff := testStaff(venue.ID, models.StaffWaiter, 50, 50)
	s.Staff[venue.ID] = []*models.Staff{staff}

	g := testGroup(venue.ID, models.StatusOrdering)
	g.AssignedStaffID = staff.ID

	s.handleOrdering(g, venue)

	if g.Status != models.StatusOrdering {
		t.Fatalf("status = %v, want ordering retained on empty order", g.Status)
	}
	if g.Patience != 70 {
		t.Errorf("patience = %v, want 70 after -20 affordability penalty", g.Patience)
	}
	if !g.OrderedAt.IsZero() {
		t.Error("order time must not be snapshotted for an empty order")
	}
}

func TestPreferredItemsChosenWhenInStock(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 7)

	g := testGroup(venue.ID, models.StatusOrdering)
	g.GroupSize = 1
	g.SpendingBudget = 100
	g.PreferredDrinks = []string{"Old Fashioned"}
	g.PreferredFoods = []string{"Caesar Salad"}

	s.placeOrder(g, venue, nil)

	if len(g.Orders) != 2 {
		t.Fatalf("order has %d items, want drink and food for a solo diner", len(g.Orders))
	}
	names := map[string]bool{}
	for _, item := range g.Orders {
		names[item.Name] = true
	}
	if !names["Old Fashioned"] || !names["Caesar Salad"] {
		t.Errorf("order %v should contain both preferred items", names)
	}
}

func TestUpsellNeverFiresBelowSkillGate(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 7)
	staff := testStaff(venue.ID, models.StaffWaiter, 50, 70) // at the gate, not past it

	for i := 0; i < 200; i++ {
		if s.tryUpsell(venue, staff, 50, 100) != nil {
			t.Fatal("upsell must never fire at customer-service skill 70")
		}
	}
}

func TestUpsellNeverFiresWithoutHeadroom(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 7)
	staff := testStaff(venue.ID, models.StaffWaiter, 50, 100)

	for i := 0; i < 200; i++ {
		if s.tryUpsell(venue, staff, 85, 100) != nil {
			t.Fatal("upsell must never fire with 15% headroom")
		}
	}
}

func TestUpsellSkippedOutsideRestaurantAndBar(t *testing.T) {
	venue := testVenue(models.VenueFastFood)
	s := newTestSimulator(venue, 7)
	staff := testStaff(venue.ID, models.StaffWaiter, 50, 100)

	for i := 0; i < 200; i++ {
		if s.tryUpsell(venue, staff, 50, 200) != nil {
			t.Fatal("upsell is restricted to restaurants and bars")
		}
	}
}

func TestUpsellNeverBreachesGroupBudget(t *testing.T) {
	s := newTestSimulator(testVenue(models.VenueRestaurant), 11)
	staff := testStaff("venue-1", models.StaffWaiter, 50, 100)

	for i := 0; i < 200; i++ {
		venue := testVenue(models.VenueRestaurant)
		// A premium bottle well above any headroom a solo diner has left.
		venue.Inventory.Drinks = append(venue.Inventory.Drinks,
			models.StockItem{Name: "Vintage Champagne", Stock: 5, SellPrice: 39})

		g := testGroup(venue.ID, models.StatusOrdering)
		g.GroupSize = 1
		g.SpendingBudget = 40

		s.placeOrder(g, venue, staff)

		total := 0.0
		for _, item := range g.Orders {
			total += item.Price
		}
		if total > 40 {
			t.Fatalf("finalized order total %v exceeds the 40 budget (items=%d)", total, len(g.Orders))
		}
		if !approxEqual(g.TotalSpending, total) {
			t.Fatalf("recorded spending = %v, want %v", g.TotalSpending, total)
		}
	}
}

func TestUpsellPickCappedByHeadroom(t *testing.T) {
	venue := testVenue(models.VenueRestaurant)
	s := newTestSimulator(venue, 11)
	staff := testStaff(venue.ID, models.StaffWaiter, 50, 100)

	// Headroom 10 rules out every drink clearing the 20%-of-spend floor:
	// House Lager at 5.50 sits under the 6 floor, Old Fashioned at 11 over
	// the headroom.
	for i := 0; i < 200; i++ {
		if s.tryUpsell(venue, staff, 30, 40) != nil {
			t.Fatal("upsell must not fire when no drink fits the remaining headroom")
		}
	}
}

func TestUpsellProbabilisticWithPremiumDrink(t *testing.T) {
	s := newTestSimulator(testVenue(models.VenueRestaurant), 7)
	staff := testStaff("venue-1", models.StaffWaiter, 50, 100) // 30% roll

	fired, skipped := 0, 0
	for i := 0; i < 300; i++ {
		venue := testVenue(models.VenueRestaurant)
		// Old Fashioned at 11 clears the 20%-of-spend bar against a 50 spend.
		if item := s.tryUpsell(venue, staff, 50, 200); item != nil {
			fired++
			if item.Name != "Old Fashioned" {
				t.Fatalf("upsell picked %q, want the highest-priced drink", item.Name)
			}
			if drink := venue.Inventory.FindDrink(item.Name); drink.Stock != 9 {
				t.Fatalf("upsell stock = %d, want 9 after decrement", drink.Stock)
			}
		} else {
			skipped++
		}
	}
	if fired == 0 || skipped == 0 {
		t.Errorf("expected both outcomes over 300 rolls, got fired=%d skipped=%d", fired, skipped)
	}
}
