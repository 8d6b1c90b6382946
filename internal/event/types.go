// internal/event/types.go
package event

const (
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена, Data: TowerPlacedData
	PlacementRejected EventType = "PlacementRejected" // Data: PlacementRejectedData
	EnemySpawned      EventType = "EnemySpawned"      // Data: EnemyData
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен башней, Data: EnemyData
	EnemyReachedGoal  EventType = "EnemyReachedGoal"  // Враг дошёл до цели, Data: EnemyData
)
