// internal/component/player.go
package component

// Player хранит здоровье и деньги игрока.
type Player struct {
	Health int
	Money  int
}

// IsDefeated reports whether health has dropped to zero or below.
// What happens then is up to the front-end.
func (p *Player) IsDefeated() bool {
	return p.Health <= 0
}

// CanAfford reports whether the player has at least price money.
func (p *Player) CanAfford(price int) bool {
	return p.Money >= price
}
