package models

// Player is the economy sink credited by entrance fees and settled bills.
type Player struct {
	Cash float64 `json:"cash"`
}

func (p *Player) Credit(amount float64) {
	p.Cash += amount
}
