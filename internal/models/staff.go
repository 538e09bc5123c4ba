package models

type StaffRole string

const (
	StaffWaiter    StaffRole = "waiter"
	StaffBartender StaffRole = "bartender"
	StaffCook      StaffRole = "cook"
	StaffSecurity  StaffRole = "security"
)

// Skill map keys.
const (
	SkillSpeed           = "speed"
	SkillCustomerService = "customer_service"
)

type Staff struct {
	ID           string         `json:"id"`
	VenueID      string         `json:"venue_id"`
	Name         string         `json:"name"`
	Role         StaffRole      `json:"role"`
	IsWorking    bool           `json:"is_working"`
	Skills       map[string]int `json:"skills"`
	Friendliness int            `json:"friendliness"`
}

func (s *Staff) Skill(name string) int {
	if s.Skills == nil {
		return 0
	}
	return s.Skills[name]
}

func (s *Staff) AvgSkill() float64 {
	if len(s.Skills) == 0 {
		return 0
	}
	total := 0
	for _, v := range s.Skills {
		total += v
	}
	return float64(total) / float64(len(s.Skills))
}

// ConcurrentLimit is how many groups one staff member serves at once.
func (s *Staff) ConcurrentLimit() int {
	if s.Role == StaffWaiter {
		return 3
	}
	return 5
}
