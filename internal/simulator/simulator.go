package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/venuecraft/venuesim/internal/factories"
	"github.com/venuecraft/venuesim/internal/models"
	"github.com/venuecraft/venuesim/internal/repositories"
	"github.com/venuecraft/venuesim/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Simulator owns all mutable simulation state. Components receive it
// explicitly; nothing reads from package-level collections. All mutation
// happens on the single Run goroutine.
type Simulator struct {
	Config *models.Config
	Clock  *models.GameClock
	Rng    *rand.Rand
	Player *models.Player

	Venues map[string]*models.Venue
	// VenueOrder fixes iteration order so a given seed replays identically.
	VenueOrder []string
	Staff      map[string][]*models.Staff

	Customers []*models.CustomerGroup
	// StaffLoad tracks currently-assigned group counts per staff id.
	StaffLoad map[string]int

	TickCount  int64
	EventQueue *models.EventQueue
}

func NewSimulator(config *models.Config) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := validatePatterns(); err != nil {
		return nil, err
	}
	return &Simulator{
		Config:     config,
		Clock:      models.NewGameClock(config.StartDate),
		Rng:        rand.New(rand.NewSource(int64(config.Seed))),
		Player:     &models.Player{},
		Venues:     make(map[string]*models.Venue),
		Staff:      make(map[string][]*models.Staff),
		StaffLoad:  make(map[string]int),
		EventQueue: models.NewEventQueue(),
	}, nil
}

func (s *Simulator) initializeData() error {
	if s.Config.Database.Enabled && s.Config.Database.Preload {
		if err := s.loadFromDatabase(); err != nil {
			return fmt.Errorf("failed to preload from database: %w", err)
		}
		if len(s.Venues) > 0 {
			log.Printf("Preloaded %d venues from database", len(s.Venues))
			return nil
		}
	}

	venueFactory := &factories.VenueFactory{}
	staffFactory := &factories.StaffFactory{}

	for i := 0; i < s.Config.InitialVenues; i++ {
		venueType := models.AllVenueTypes[i%len(models.AllVenueTypes)]
		venue := venueFactory.CreateVenue(venueType, s.Rng)
		s.Venues[venue.ID] = venue
		s.VenueOrder = append(s.VenueOrder, venue.ID)

		rosterSize := s.Config.StaffPerVenueMin
		if spread := s.Config.StaffPerVenueMax - s.Config.StaffPerVenueMin; spread > 0 {
			rosterSize += s.Rng.Intn(spread + 1)
		}
		s.Staff[venue.ID] = staffFactory.CreateRoster(venue, rosterSize, s.Rng)
	}

	if s.Config.Database.Enabled {
		if err := s.persistInitialData(); err != nil {
			log.Printf("Warning: failed to persist initial data: %v", err)
		}
	}
	return nil
}

func (s *Simulator) connectDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		s.Config.Database.User,
		s.Config.Database.Password,
		s.Config.Database.Host,
		s.Config.Database.Port,
		s.Config.Database.DBName,
		s.Config.Database.SSLMode,
	)
	return pgxpool.New(ctx, dsn)
}

func (s *Simulator) loadFromDatabase() error {
	ctx := context.Background()
	pool, err := s.connectDatabase(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	var venueRepo repositories.VenueRepository = postgres.NewVenueRepository(pool)
	var staffRepo repositories.StaffRepository = postgres.NewStaffRepository(pool)

	venues, err := venueRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for id, venue := range venues {
		s.Venues[id] = venue
		s.VenueOrder = append(s.VenueOrder, id)
	}

	staff, err := staffRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, member := range staff {
		s.Staff[member.VenueID] = append(s.Staff[member.VenueID], member)
	}
	return nil
}

func (s *Simulator) persistInitialData() error {
	ctx := context.Background()
	pool, err := s.connectDatabase(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	venueRepo := postgres.NewVenueRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)

	venues := make([]*models.Venue, 0, len(s.Venues))
	for _, id := range s.VenueOrder {
		venues = append(venues, s.Venues[id])
	}
	if err := venueRepo.BulkCreate(ctx, venues); err != nil {
		return err
	}

	var allStaff []*models.Staff
	for _, roster := range s.Staff {
		allStaff = append(allStaff, roster...)
	}
	return staffRepo.BulkCreate(ctx, allStaff)
}

func (s *Simulator) Run() {
	output := s.determineOutputDestination()
	defer func() {
		if err := output.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	if err := s.initializeData(); err != nil {
		log.Fatalf("Failed to initialize simulation data: %v", err)
	}

	log.Printf("Simulation starts from %s to %s\n",
		s.Config.StartDate.Format(time.RFC3339), s.Config.EndDate.Format(time.RFC3339))

	totalTicks := int(s.Config.EndDate.Sub(s.Config.StartDate).Minutes()) / s.Config.TickIntervalMinutes
	bar := progressbar.NewOptions(totalTicks,
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	for s.Clock.Time().Before(s.Config.EndDate) {
		s.tick()
		s.drainEvents(output)
		s.Clock.Advance(s.Config.TickIntervalMinutes)
		_ = bar.Add(1)

		if s.Config.Continuous {
			time.Sleep(time.Duration(s.Config.TickIntervalMinutes) * time.Second / 60)
		}
	}

	log.Printf("\nSimulation completed: %d ticks, %d groups still active at shutdown",
		s.TickCount, len(s.Customers))
}

// tick runs one fixed-interval step: arrivals first, then exactly one
// state-appropriate step per live group. New arrivals carry CreatedTick and
// are skipped this pass so they first act on the following tick.
func (s *Simulator) tick() {
	for _, venueID := range s.VenueOrder {
		s.generateArrivals(s.Venues[venueID])
	}

	// Reverse iteration keeps remaining indices valid across removals and
	// guarantees one visit per live group.
	for i := len(s.Customers) - 1; i >= 0; i-- {
		s.stepCustomer(i)
	}

	if s.Clock.Now().Minute == 0 {
		s.emitVenueStatus()
	}

	s.TickCount++
}

func (s *Simulator) emitVenueStatus() {
	for _, venueID := range s.VenueOrder {
		venue := s.Venues[venueID]
		s.emit(models.EventVenueStatus, &VenueStatusEvent{
			BaseEvent:            s.newBaseEvent(models.EventVenueStatus, venue.ID),
			Popularity:           venue.Popularity,
			CustomerSatisfaction: venue.CustomerSatisfaction,
			DailyRevenue:         venue.DailyRevenue,
			Occupancy:            int32(s.venueOccupancy(venue.ID)),
			Capacity:             int32(venue.Capacity),
			ActiveGroups:         int32(s.venueGroupCount(venue.ID)),
		})
	}
}

func (s *Simulator) emit(eventType string, data interface{}) {
	s.EventQueue.Enqueue(&models.Event{
		Time: s.Clock.Time(),
		Type: eventType,
		Data: data,
	})
}

func (s *Simulator) drainEvents(output OutputDestination) {
	for {
		event := s.EventQueue.Dequeue()
		if event == nil {
			return
		}
		msg, err := s.serializeEvent(event)
		if err != nil {
			log.Printf("Error serializing event: %v", err)
			continue
		}
		if err := output.WriteMessage(msg.Topic, msg.Message); err != nil {
			log.Printf("Failed to write message: %v", err)
		}
	}
}

var eventTopics = map[string]string{
	models.EventCustomerArrival:   "customer_arrival_events",
	models.EventCustomerSeated:    "customer_seated_events",
	models.EventOrderPlaced:       "order_placed_events",
	models.EventOrderServed:       "order_served_events",
	models.EventPaymentProcessed:  "payment_events",
	models.EventCustomerDeparture: "customer_departure_events",
	models.EventVenueStatus:       "venue_status_events",
}

func (s *Simulator) serializeEvent(event *models.Event) (*models.EventMessage, error) {
	topic, ok := eventTopics[event.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", event.Type)
	}
	payload, err := json.Marshal(event.Data)
	if err != nil {
		return nil, err
	}
	return &models.EventMessage{Topic: topic, Message: payload}, nil
}

// venueOccupancy counts people currently holding a table.
func (s *Simulator) venueOccupancy(venueID string) int {
	occupancy := 0
	for _, g := range s.Customers {
		if g.VenueID == venueID && g.Table != nil {
			occupancy += g.GroupSize
		}
	}
	return occupancy
}

func (s *Simulator) venueGroupCount(venueID string) int {
	count := 0
	for _, g := range s.Customers {
		if g.VenueID == venueID {
			count++
		}
	}
	return count
}
