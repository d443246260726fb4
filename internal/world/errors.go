package world

import "errors"

var (
	// ErrDimensions indicates grid dimensions that are even or below the
	// 3x3 minimum the maze lattice requires.
	ErrDimensions = errors.New("world: grid dimensions must be odd and at least 3")
	// ErrRoomSize indicates an even or sub-3 maximum room size.
	ErrRoomSize = errors.New("world: max room size must be odd and at least 3")
	// ErrRoomAttempts indicates a negative room attempt budget.
	ErrRoomAttempts = errors.New("world: room attempts must not be negative")
	// ErrRoomBuffer indicates a negative room separation buffer.
	ErrRoomBuffer = errors.New("world: room buffer must not be negative")
	// ErrWiggle indicates a corridor wiggle percentage outside 0-100.
	ErrWiggle = errors.New("world: wiggle percent must be between 0 and 100")
	// ErrExtraDoorChance indicates a non-positive extra-door denominator.
	ErrExtraDoorChance = errors.New("world: extra door chance must be at least 1")
)
