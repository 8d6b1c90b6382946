// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"
)

// EnemyType — тип (ступень) врага
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyHeavy
	EnemySpeedy
)

// EnemyTypes lists every enemy tier in declaration order.
var EnemyTypes = []EnemyType{EnemyBasic, EnemyHeavy, EnemySpeedy}

func (t EnemyType) String() string {
	switch t {
	case EnemyBasic:
		return "BASIC"
	case EnemyHeavy:
		return "HEAVY"
	case EnemySpeedy:
		return "SPEEDY"
	}
	return fmt.Sprintf("ENEMY(%d)", int(t))
}

// UnmarshalText lets enemy types appear as "BASIC"/"HEAVY"/"SPEEDY" in JSON.
func (t *EnemyType) UnmarshalText(b []byte) error {
	for _, et := range EnemyTypes {
		if strings.EqualFold(string(b), et.String()) {
			*t = et
			return nil
		}
	}
	return fmt.Errorf("unknown enemy type %q", b)
}

func (t EnemyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TowerType — тип башни
type TowerType int

const (
	TowerBasic TowerType = iota
	TowerHeavy
	TowerSpeedy
)

// TowerTypes lists every tower tier in declaration order.
var TowerTypes = []TowerType{TowerBasic, TowerHeavy, TowerSpeedy}

func (t TowerType) String() string {
	switch t {
	case TowerBasic:
		return "BASIC"
	case TowerHeavy:
		return "HEAVY"
	case TowerSpeedy:
		return "SPEEDY"
	}
	return fmt.Sprintf("TOWER(%d)", int(t))
}

// UnmarshalText lets tower types appear as "BASIC"/"HEAVY"/"SPEEDY" in JSON.
func (t *TowerType) UnmarshalText(b []byte) error {
	for _, tt := range TowerTypes {
		if strings.EqualFold(string(b), tt.String()) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unknown tower type %q", b)
}

func (t TowerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
