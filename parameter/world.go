package parameter

// Initial world layout, in world units
const (
	// PlayerSize is the edge length of the square player mesh
	PlayerSize float32 = 30

	// RoomInsetX offsets the start room from the viewport center
	RoomInsetX float32 = 20

	// RoomMarginY is subtracted from the viewport height for the room mesh
	RoomMarginY float32 = 40

	// RoomWidthFactor scales the viewport width into the start room width
	RoomWidthFactor float32 = 2

	// DoorInset places the right door this far from the room edge
	DoorInset float32 = 50
)

// Terminal cell size in world units, the default host resolution
const (
	CellWidth  float32 = 10
	CellHeight float32 = 20
)
