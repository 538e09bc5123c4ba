package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"
	"github.com/venuecraft/venuesim/internal/models"
)

// StaffFactory creates staff rosters sized to a venue's service style.
type StaffFactory struct{}

// roleMix lists the roles hired per venue type, in hiring-priority order.
// The first entries are filled before the roster cycles back around.
var roleMix = map[models.VenueType][]models.StaffRole{
	models.VenueBar:        {models.StaffBartender, models.StaffBartender, models.StaffWaiter, models.StaffSecurity},
	models.VenueRestaurant: {models.StaffWaiter, models.StaffWaiter, models.StaffCook, models.StaffCook},
	models.VenueNightclub:  {models.StaffBartender, models.StaffBartender, models.StaffSecurity, models.StaffWaiter},
	models.VenueFastFood:   {models.StaffCook, models.StaffWaiter, models.StaffCook, models.StaffWaiter},
}

func (sf *StaffFactory) CreateStaff(venue *models.Venue, rng *rand.Rand) *models.Staff {
	roles := roleMix[venue.Type]
	return sf.CreateStaffWithRole(venue, roles[rng.Intn(len(roles))], rng)
}

func (sf *StaffFactory) CreateStaffWithRole(venue *models.Venue, role models.StaffRole, rng *rand.Rand) *models.Staff {
	return &models.Staff{
		ID:        cuid.New(),
		VenueID:   venue.ID,
		Name:      fake.Person().Name(),
		Role:      role,
		IsWorking: true,
		Skills: map[string]int{
			models.SkillSpeed:           30 + rng.Intn(66),
			models.SkillCustomerService: 30 + rng.Intn(66),
		},
		Friendliness: 30 + rng.Intn(66),
	}
}

// CreateRoster hires a full roster for the venue, cycling through the type's
// role mix so the first hires cover the service-critical roles.
func (sf *StaffFactory) CreateRoster(venue *models.Venue, size int, rng *rand.Rand) []*models.Staff {
	roles := roleMix[venue.Type]
	roster := make([]*models.Staff, 0, size)
	for i := 0; i < size; i++ {
		roster = append(roster, sf.CreateStaffWithRole(venue, roles[i%len(roles)], rng))
	}
	return roster
}
