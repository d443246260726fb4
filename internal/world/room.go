package world

// Room is an axis-aligned rectangular room. Position and size are always
// odd so the interior aligns with the maze lattice.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
	Region        RegionID
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// TooClose reports whether the edge gap between the two rooms is below
// buffer cells on both axes. A buffer of 1 rejects overlapping or
// edge-sharing rooms while allowing a single wall between them; larger
// buffers demand wider separation.
//
// The test works on doubled coordinates so half-extents stay integral:
// |2*center1 - 2*center2| - (w1 + w2) is twice the gap between the
// nearest edges, negative when the rooms overlap on that axis.
func (r Room) TooClose(other Room, buffer int) bool {
	gapX2 := abs((2*r.X+r.Width)-(2*other.X+other.Width)) - (r.Width + other.Width)
	gapY2 := abs((2*r.Y+r.Height)-(2*other.Y+other.Height)) - (r.Height + other.Height)
	return gapX2 < 2*buffer && gapY2 < 2*buffer
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
