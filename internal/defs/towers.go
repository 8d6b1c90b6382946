// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID        TowerType `json:"id"`
	Name      string    `json:"name"`
	BuyPrice  int       `json:"buy_price"`
	SellPrice int       `json:"sell_price"`
	Range     float64   `json:"range"`  // в клетках
	Reload    float64   `json:"reload"` // seconds between hits
	Damage    float64   `json:"damage"`
}

// RangeSquared avoids a square root in per-tick range checks.
func (d TowerDefinition) RangeSquared() float64 {
	return d.Range * d.Range
}

// DefaultTowers is the built-in tower table.
var DefaultTowers = []TowerDefinition{
	{ID: TowerBasic, Name: "Basic", BuyPrice: 3, SellPrice: 2, Range: 2.5, Reload: 0.1, Damage: 0.2},
	{ID: TowerHeavy, Name: "Heavy", BuyPrice: 20, SellPrice: 15, Range: 6.0, Reload: 0.2, Damage: 1},
	{ID: TowerSpeedy, Name: "Speedy", BuyPrice: 10, SellPrice: 5, Range: 3.5, Reload: 0.025, Damage: 0.3},
}
