package component

import "github.com/lixenwraith/drift/core"

// Room topology placeholders, carried for future level transitions

// DoorType identifies the wall a door sits on
type DoorType uint8

const (
	DoorRight DoorType = iota
	DoorLeft
	DoorMiddle
	DoorTop
	DoorBottom
)

// Door links to another room entity at a world location
type Door struct {
	ToRoom core.Entity
	Pos    Position
}

// DoorsComponent maps door slots of a room to their targets
type DoorsComponent struct {
	Doors map[DoorType]Door
}

// RoomKind tags special rooms
type RoomKind uint8

const (
	RoomStart RoomKind = iota
	RoomBoss
)

// SpecialRoomComponent marks a start or boss room
type SpecialRoomComponent struct {
	Kind RoomKind
}
