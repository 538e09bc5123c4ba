package simulator

import (
	"github.com/lucsky/cuid"
	"github.com/venuecraft/venuesim/internal/models"
)

// stepCustomer advances the group at index i by one state-appropriate step,
// then runs the per-tick psychology pass. It may splice the group out, so
// callers must iterate the collection in reverse index order.
func (s *Simulator) stepCustomer(i int) {
	g := s.Customers[i]
	if g.CreatedTick == s.TickCount {
		// Created earlier this same tick; first acts next tick.
		return
	}

	venue, ok := s.Venues[g.VenueID]
	if !ok {
		s.removeCustomerAt(i, "venue_deleted")
		return
	}

	now := s.Clock.Now()
	if g.Status != models.StatusLeaving && !venue.IsOpenAt(now.Hour) {
		g.Status = models.StatusLeaving
		g.LeftAt = now
	}

	var removed bool
	var reason string
	switch g.Status {
	case models.StatusEntering:
		removed, reason = s.handleEntering(g, venue)
	case models.StatusSeated:
		s.handleSeated(g)
	case models.StatusOrdering:
		s.handleOrdering(g, venue)
	case models.StatusWaiting:
		s.handleWaiting(g, venue)
	case models.StatusEating, models.StatusDrinking:
		s.handleConsuming(g, venue)
	case models.StatusPaying:
		s.handlePaying(g, venue)
	case models.StatusLeaving:
		removed, reason = s.handleLeaving(g, venue)
	}
	if removed {
		s.removeCustomerAt(i, reason)
		return
	}

	if g.Status != models.StatusLeaving {
		if forced := s.updatePsychology(g, venue); forced {
			venue.NudgePopularity(-0.2)
			venue.CustomerSatisfaction -= 0.5
			if venue.CustomerSatisfaction < 0 {
				venue.CustomerSatisfaction = 0
			}
			s.removeCustomerAt(i, "impatient_"+g.Status.String())
		}
	}
}

// handleEntering charges the entrance fee against the per-person budget and
// attempts table acquisition.
func (s *Simulator) handleEntering(g *models.CustomerGroup, venue *models.Venue) (bool, string) {
	now := s.Clock.Now()

	if venue.EntranceFee > 0 && !g.FeePaid {
		if venue.EntranceFee > 0.2*g.SpendingBudget {
			return true, "entrance_fee_too_high"
		}
		g.FeePaid = true
		g.SpendingBudget -= venue.EntranceFee
		fee := venue.EntranceFee * float64(g.GroupSize)
		venue.RecordSale(fee)
		s.Player.Credit(fee)
	}

	occupancy := s.venueOccupancy(venue.ID)
	seatProbability := 1.0 - float64(occupancy)/float64(venue.Capacity)
	if seatProbability < 0 {
		seatProbability = 0
	}

	if s.Rng.Float64() >= seatProbability {
		// No table free. Patient groups wait it out, the rest give up.
		if g.Patience > 50 {
			g.Patience -= 10
			return false, ""
		}
		return true, "no_table"
	}

	g.Status = models.StatusSeated
	g.SeatedAt = now
	g.Table = &models.TableAssignment{ID: cuid.New(), Size: tableSizeFor(g.GroupSize, s)}
	g.OrderReadyDelay = 5 + s.Rng.Intn(11)
	g.AdjustSatisfaction(5)
	s.assignStaff(g, venue)

	s.emit(models.EventCustomerSeated, &SeatedEvent{
		BaseEvent:   s.newBaseEvent(models.EventCustomerSeated, venue.ID),
		GroupID:     g.ID,
		TableID:     g.Table.ID,
		TableSize:   g.Table.Size,
		WaitMinutes: int32(models.MinutesBetween(g.ArrivedAt, now)),
	})
	return false, ""
}

func tableSizeFor(groupSize int, s *Simulator) string {
	switch {
	case groupSize <= 2:
		// Small parties occasionally land a bigger table.
		if s.Rng.Float64() < 0.2 {
			return "large"
		}
		return "small"
	case groupSize <= 4:
		return "medium"
	}
	return "large"
}

func (s *Simulator) handleSeated(g *models.CustomerGroup) {
	if models.MinutesBetween(g.SeatedAt, s.Clock.Now()) >= g.OrderReadyDelay {
		g.Status = models.StatusOrdering
	}
}

func (s *Simulator) handleOrdering(g *models.CustomerGroup, venue *models.Venue) {
	staff := s.resolveStaff(g)
	if staff == nil {
		// The previous member may still hold this group's load slot.
		s.releaseStaff(g)
		if !s.assignStaff(g, venue) {
			g.Patience -= 2
			return
		}
		staff = s.resolveStaff(g)
	}

	s.placeOrder(g, venue, staff)
	if len(g.Orders) == 0 {
		g.Patience -= 20
		return
	}

	now := s.Clock.Now()
	g.OrderedAt = now

	total := 0.0
	for _, item := range g.Orders {
		total += item.Price
	}
	g.Status = models.StatusWaiting
	s.emit(models.EventOrderPlaced, &OrderPlacedEvent{
		BaseEvent:   s.newBaseEvent(models.EventOrderPlaced, venue.ID),
		GroupID:     g.ID,
		StaffID:     g.AssignedStaffID,
		ItemCount:   int32(len(g.Orders)),
		TotalAmount: total,
	})
}

func (s *Simulator) handleWaiting(g *models.CustomerGroup, venue *models.Venue) {
	now := s.Clock.Now()
	elapsed := models.MinutesBetween(g.OrderedAt, now)

	speedSkill := 50
	if staff := s.resolveStaff(g); staff != nil {
		speedSkill = staff.Skill(models.SkillSpeed)
	}
	speedFactor := 0.5 + float64(speedSkill)/100

	allPrepared := true
	for i := range g.Orders {
		item := &g.Orders[i]
		if item.Prepared {
			continue
		}
		if float64(elapsed) >= item.PrepMinutes/speedFactor {
			item.Prepared = true
		} else {
			allPrepared = false
		}
	}

	if !allPrepared {
		tolerance := 20 + 30*g.Patience/100
		if float64(elapsed) > tolerance {
			g.AdjustSatisfaction(-1)
		}
		return
	}

	g.ServedAt = now
	switch {
	case elapsed < 10:
		g.AdjustSatisfaction(10)
	case elapsed < 20:
		g.AdjustSatisfaction(5)
	case elapsed > 30:
		g.AdjustSatisfaction(-float64(elapsed-30) / 2)
	}

	g.Status = models.StatusDrinking
	for _, item := range g.Orders {
		if item.Kind == models.ItemFood {
			g.Status = models.StatusEating
			break
		}
	}
	s.emit(models.EventOrderServed, &OrderServedEvent{
		BaseEvent:   s.newBaseEvent(models.EventOrderServed, venue.ID),
		GroupID:     g.ID,
		StaffID:     g.AssignedStaffID,
		WaitMinutes: int32(elapsed),
	})
}

// handleConsuming covers both the eating and drinking phases. Food is
// finished first; drinks stretch past the meal.
func (s *Simulator) handleConsuming(g *models.CustomerGroup, venue *models.Venue) {
	profile := VenueProfiles[venue.Type]
	groupFactor := 1 + 0.1*float64(g.GroupSize-1)

	foodMinutes, drinkMinutes := 0.0, 0.0
	for _, item := range g.Orders {
		if item.Kind == models.ItemFood {
			foodMinutes += FoodConsumeMinutes
		} else {
			drinkMinutes += DrinkConsumeMinutes
		}
	}
	foodMinutes *= profile.ConsumptionFactor * groupFactor
	drinkMinutes *= profile.ConsumptionFactor * groupFactor

	elapsed := float64(models.MinutesBetween(g.ServedAt, s.Clock.Now()))
	if g.Status == models.StatusEating && elapsed >= foodMinutes {
		g.Status = models.StatusDrinking
	}
	if g.Status == models.StatusDrinking && elapsed >= foodMinutes+drinkMinutes {
		g.Status = models.StatusPaying
	}
}

func (s *Simulator) handlePaying(g *models.CustomerGroup, venue *models.Venue) {
	now := s.Clock.Now()

	// The bill was recorded when the order was finalized; settlement only
	// moves it into the venue and player books.
	bill := g.TotalSpending
	venue.RecordSale(bill)
	s.Player.Credit(bill)
	venue.TotalCustomersServed += g.GroupSize

	s.finalizeSatisfaction(g, venue)

	g.PaidAt = now
	g.LeftAt = now
	g.Status = models.StatusLeaving

	s.emit(models.EventPaymentProcessed, &PaymentEvent{
		BaseEvent:    s.newBaseEvent(models.EventPaymentProcessed, venue.ID),
		GroupID:      g.ID,
		Amount:       bill,
		TotalSpent:   g.TotalSpending,
		VisitMinutes: int32(models.MinutesBetween(g.ArrivedAt, now)),
	})
}

func (s *Simulator) handleLeaving(g *models.CustomerGroup, venue *models.Venue) (bool, string) {
	if models.MinutesBetween(g.LeftAt, s.Clock.Now()) < 5 {
		return false, ""
	}
	venue.NudgePopularity((g.Satisfaction - 50) / 1000)
	venue.CustomerSatisfaction = venue.CustomerSatisfaction*0.95 + g.Satisfaction*0.05
	return true, "departed"
}

// removeCustomerAt splices index i out of the active collection, releasing
// any staff assignment and emitting the departure notification.
func (s *Simulator) removeCustomerAt(i int, reason string) {
	g := s.Customers[i]
	s.releaseStaff(g)

	now := s.Clock.Now()
	s.emit(models.EventCustomerDeparture, &DepartureEvent{
		BaseEvent:    s.newBaseEvent(models.EventCustomerDeparture, g.VenueID),
		GroupID:      g.ID,
		Reason:       reason,
		Satisfaction: g.Satisfaction,
		Patience:     g.Patience,
		TotalSpent:   g.TotalSpending,
		VisitMinutes: int32(models.MinutesBetween(g.ArrivedAt, now)),
	})

	s.Customers = append(s.Customers[:i], s.Customers[i+1:]...)
}
