package world

const (
	// DefaultWidth and DefaultHeight fit a standard 80x24 terminal while
	// keeping both dimensions odd for lattice alignment.
	DefaultWidth  = 79
	DefaultHeight = 23

	// Generation defaults.
	defaultMaxRoomSize     = 9
	defaultRoomAttempts    = 200
	defaultWigglePercent   = 50
	defaultExtraDoorChance = 50
	defaultRoomBuffer      = 1
)

// Config holds the tunables for one generation run. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// Width and Height are the grid dimensions. Both must be odd and at
	// least 3 so rooms and corridors share the same 2-cell lattice.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Seed drives the run's random stream. Identical configs produce
	// bit-identical grids. The library never substitutes a seed; callers
	// wanting a random level must draw one themselves and log it.
	Seed int64 `json:"-"`

	// MaxRoomSize is the largest room dimension, odd and at least 3.
	MaxRoomSize int `json:"maxRoomSize"`

	// RoomAttempts is the placement attempt budget. It is a soft target:
	// exhausting it with few or zero rooms placed is a valid outcome.
	RoomAttempts int `json:"roomAttempts"`

	// WigglePercent is the 0-100 probability that maze growth deviates
	// from continuing straight, controlling corridor windiness.
	WigglePercent int `json:"wigglePercent"`

	// ExtraDoorChance keeps a redundant connector as a door with
	// probability 1-in-N, creating deliberate loops beyond the spanning
	// tree.
	ExtraDoorChance int `json:"extraDoorChance"`

	// RoomBuffer is the minimum wall separation enforced between rooms.
	RoomBuffer int `json:"roomBuffer"`
}

// DefaultConfig returns a Config with standard terminal-sized dimensions
// and moderate tunables. Seed is left zero for the caller to fill in.
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		MaxRoomSize:     defaultMaxRoomSize,
		RoomAttempts:    defaultRoomAttempts,
		WigglePercent:   defaultWigglePercent,
		ExtraDoorChance: defaultExtraDoorChance,
		RoomBuffer:      defaultRoomBuffer,
	}
}

func (c Config) validate() error {
	if c.Width < 3 || c.Height < 3 || c.Width%2 == 0 || c.Height%2 == 0 {
		return ErrDimensions
	}
	if c.MaxRoomSize < 3 || c.MaxRoomSize%2 == 0 {
		return ErrRoomSize
	}
	if c.RoomAttempts < 0 {
		return ErrRoomAttempts
	}
	if c.RoomBuffer < 0 {
		return ErrRoomBuffer
	}
	if c.WigglePercent < 0 || c.WigglePercent > 100 {
		return ErrWiggle
	}
	if c.ExtraDoorChance < 1 {
		return ErrExtraDoorChance
	}
	return nil
}
