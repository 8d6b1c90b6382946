// internal/types/types.go
package types

// EntityID — идентификатор сущности. Ноль означает «нет сущности».
// IDs are handed out monotonically and never reused, so a stale ID is a lookup miss.
type EntityID uint64
