// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     EnemyType `json:"id"`
	Name   string    `json:"name"`
	Health float64   `json:"health"`
	// Speed is in tiles per tick and should be a unit fraction so enemies land exactly on tile centres.
	Speed  float64 `json:"speed"`
	Damage int     `json:"damage"` // урон игроку при достижении цели
	Bounty int     `json:"bounty"` // награда за уничтожение
}

// DefaultEnemies is the built-in enemy table.
var DefaultEnemies = []EnemyDefinition{
	{ID: EnemyBasic, Name: "Basic", Health: 10, Speed: 0.025, Damage: 1, Bounty: 1},
	{ID: EnemyHeavy, Name: "Heavy", Health: 50, Speed: 0.025, Damage: 2, Bounty: 2},
	{ID: EnemySpeedy, Name: "Speedy", Health: 30, Speed: 0.05, Damage: 1, Bounty: 1},
}
