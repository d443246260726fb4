// Package world implements deterministic rooms-and-mazes dungeon
// generation: non-overlapping rooms, corridor mazes grown into the gaps,
// doors carved where regions meet, and a final dead-end trim, all driven
// from a single explicitly-seeded random stream.
package world

// Cell is the state of one grid coordinate during generation. Zero is
// solid rock, positive values are pre-merge region ids, and the negative
// constants mark cells already folded into the final connected level.
type Cell int32

const (
	// CellSolid is impassable rock, the initial state of every cell.
	CellSolid Cell = 0
	// CellMerged is floor confirmed connected to the final level.
	CellMerged Cell = -1
	// CellDoor is a carved connector joining two regions.
	CellDoor Cell = -2
)

// RegionID tags a pre-merge connected floor area: one room or one maze
// run. Ids are assigned from 1 upward in carve order.
type RegionID int32

// IsOpen reports whether the cell is walkable.
func (c Cell) IsOpen() bool {
	return c != CellSolid
}

// Region returns the cell's pre-merge region id, or 0 if the cell does
// not carry one.
func (c Cell) Region() RegionID {
	if c > 0 {
		return RegionID(c)
	}
	return 0
}

// Kind collapses internal cell state to the public classification. The
// region/merged distinction never leaks past generation.
func (c Cell) Kind() CellKind {
	switch {
	case c == CellSolid:
		return KindSolid
	case c == CellDoor:
		return KindDoor
	default:
		return KindFloor
	}
}

// CellKind is the externally visible classification of a cell.
type CellKind int

const (
	// KindSolid is impassable rock.
	KindSolid CellKind = iota
	// KindFloor is walkable floor, in a room or a corridor.
	KindFloor
	// KindDoor is walkable floor carved where two regions were joined.
	KindDoor
)

// Rune returns the kind's display character.
func (k CellKind) Rune() rune {
	switch k {
	case KindFloor:
		return '.'
	case KindDoor:
		return '+'
	default:
		return '#'
	}
}
