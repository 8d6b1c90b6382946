// internal/defs/loot_tables.go
package defs

// SpawnEntry представляет одну запись в таблице появления врагов.
// Weight — относительный шанс появления этого типа при случайном спавне.
type SpawnEntry struct {
	Enemy  EnemyType `json:"enemy"`
	Weight int       `json:"weight"`
}

// DefaultSpawnTable gives every enemy tier the same chance.
var DefaultSpawnTable = []SpawnEntry{
	{Enemy: EnemyBasic, Weight: 1},
	{Enemy: EnemyHeavy, Weight: 1},
	{Enemy: EnemySpeedy, Weight: 1},
}
