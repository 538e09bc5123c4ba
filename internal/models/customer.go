package models

type CustomerType string

const (
	CustomerRegular  CustomerType = "regular"
	CustomerTourist  CustomerType = "tourist"
	CustomerBusiness CustomerType = "business"
	CustomerStudent  CustomerType = "student"
)

var AllCustomerTypes = []CustomerType{CustomerRegular, CustomerTourist, CustomerBusiness, CustomerStudent}

// CustomerStatus is the closed set of lifecycle states. The scheduler switches
// exhaustively over it, so an unhandled state is a compile-visible gap rather
// than a silently ignored string key.
type CustomerStatus int

const (
	StatusEntering CustomerStatus = iota
	StatusSeated
	StatusOrdering
	StatusWaiting
	StatusEating
	StatusDrinking
	StatusPaying
	StatusLeaving
)

func (s CustomerStatus) String() string {
	switch s {
	case StatusEntering:
		return "entering"
	case StatusSeated:
		return "seated"
	case StatusOrdering:
		return "ordering"
	case StatusWaiting:
		return "waiting"
	case StatusEating:
		return "eating"
	case StatusDrinking:
		return "drinking"
	case StatusPaying:
		return "paying"
	case StatusLeaving:
		return "leaving"
	}
	return "unknown"
}

type ItemKind string

const (
	ItemDrink ItemKind = "drink"
	ItemFood  ItemKind = "food"
)

// OrderItem is one ordered drink or dish. PrepMinutes is the base preparation
// time; the effective time is scaled by the serving staff's speed skill at
// each readiness check, since staff can change mid-visit.
type OrderItem struct {
	Kind        ItemKind `json:"kind"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Prepared    bool     `json:"prepared"`
	PrepMinutes float64  `json:"prep_minutes"`
}

// TableAssignment is an ephemeral descriptor, not a handle into a real layout.
type TableAssignment struct {
	ID   string `json:"id"`
	Size string `json:"size"` // small, medium, large
}

// CustomerGroup is one simulated party sharing a table, an order, and a
// lifecycle state. Groups are owned by the simulator's active collection and
// reference venue and staff by id only.
type CustomerGroup struct {
	ID          string       `json:"id"`
	VenueID     string       `json:"venue_id"`
	Type        CustomerType `json:"type"`
	GroupSize   int          `json:"group_size"`
	Status      CustomerStatus
	CreatedTick int64

	ArrivedAt GameTime `json:"arrived_at"`
	SeatedAt  GameTime `json:"seated_at"`
	OrderedAt GameTime `json:"ordered_at"`
	ServedAt  GameTime `json:"served_at"`
	PaidAt    GameTime `json:"paid_at"`
	LeftAt    GameTime `json:"left_at"`

	// SpendingBudget is per person and shrinks when the entrance fee is
	// paid. TotalSpending holds the order spend, recorded at order time.
	SpendingBudget float64 `json:"spending_budget"`
	FeePaid        bool    `json:"fee_paid"`
	TotalSpending  float64 `json:"total_spending"`
	Orders         []OrderItem

	// Patience has no lower clamp; crossing zero forces departure.
	Patience     float64 `json:"patience"`
	Satisfaction float64 `json:"satisfaction"`

	MusicPreference    int      `json:"music_preference"`
	LightingPreference int      `json:"lighting_preference"`
	QualityImportance  int      `json:"quality_importance"`
	SpeedImportance    int      `json:"speed_importance"`
	PreferredDrinks    []string `json:"preferred_drinks"`
	PreferredFoods     []string `json:"preferred_foods"`

	AssignedStaffID string `json:"assigned_staff_id"`
	Table           *TableAssignment

	// Minutes the group browses the menu before ordering, drawn at seating.
	OrderReadyDelay int
}

// AdjustSatisfaction applies delta and clamps to [0,100].
func (g *CustomerGroup) AdjustSatisfaction(delta float64) {
	g.Satisfaction += delta
	if g.Satisfaction < 0 {
		g.Satisfaction = 0
	}
	if g.Satisfaction > 100 {
		g.Satisfaction = 100
	}
}

// PrefersItem reports whether name is one of the group's stored preferences.
func (g *CustomerGroup) PrefersItem(name string) bool {
	for _, p := range g.PreferredDrinks {
		if p == name {
			return true
		}
	}
	for _, p := range g.PreferredFoods {
		if p == name {
			return true
		}
	}
	return false
}
