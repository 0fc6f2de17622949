package rooming

// Room type keys as stored on the jamaah record.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeQueen  = "queen"
	RoomTypeTriple = "triple"
	RoomTypeQuad   = "quad"
)

// DefaultCapacity applies to room types the capacity table does not know;
// hotel inventory occasionally grows ad-hoc types and quad is the safe upper bound.
const DefaultCapacity = 4

var roomTypeCapacity = map[string]int{
	RoomTypeSingle: 1,
	RoomTypeDouble: 2,
	RoomTypeQueen:  2,
	RoomTypeTriple: 3,
	RoomTypeQuad:   4,
}

// Capacity returns the maximum occupancy for a room type.
func Capacity(roomType string) int {
	if c, ok := roomTypeCapacity[roomType]; ok {
		return c
	}
	return DefaultCapacity
}
