package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/parameter"
)

// Colors of the initial scene
const (
	RoomColor   = tcell.ColorDarkRed
	PlayerColor = tcell.ColorWhite
	DoorColor   = tcell.ColorYellow
)

// DoorSprite marks the start room's right door
var DoorSprite = component.Sprite{Rows: []string{"[]", "[]"}, Color: DoorColor}

// Scene holds the entities created by populate
type Scene struct {
	MainCamera core.Entity
	NextRoom   core.Entity
	StartRoom  core.Entity
	Door       core.Entity
	Player     core.Entity
}

// populate creates the main camera, the start room with its door placeholder, and the player
// width and height are the viewport in world units, cell is the world size of one sprite cell
func populate(w *engine.World, comp engine.ComponentStore, width, height float32, cell component.SizeComponent) Scene {
	var sc Scene

	sc.MainCamera = w.CreateEntity()
	comp.Camera.Set(sc.MainCamera, component.NewCamera(component.Position{}, width, height, 1))

	// Door target, no components until room transitions exist
	sc.NextRoom = w.CreateEntity()

	roomW := width * parameter.RoomWidthFactor
	roomH := height - parameter.RoomMarginY
	roomPos := component.Position{X: width/2 + parameter.RoomInsetX}

	room := w.NewEntity()
	engine.With(room, comp.Mesh, component.RenderableComponent[component.Mesh]{
		Drawable: component.Mesh{Width: roomW, Height: roomH, Color: RoomColor},
		CurPos:   roomPos,
	})
	engine.With(room, comp.Size, component.SizeComponent{Width: roomW, Height: roomH})
	engine.With(room, comp.Doors, component.DoorsComponent{Doors: map[component.DoorType]component.Door{
		component.DoorRight: {ToRoom: sc.NextRoom, Pos: component.Position{Y: width - parameter.DoorInset}},
	}})
	engine.With(room, comp.SpecialRoom, component.SpecialRoomComponent{Kind: component.RoomStart})
	sc.StartRoom = room.Build()

	// Door marker drawn inside the right wall of the start room
	cols, rows := DoorSprite.Size()
	door := w.NewEntity()
	engine.With(door, comp.Sprite, component.RenderableComponent[component.Sprite]{
		Drawable: DoorSprite,
		CurPos:   component.Position{X: roomPos.X + roomW/2 - parameter.DoorInset},
	})
	engine.With(door, comp.Size, component.SizeComponent{
		Width:  float32(cols) * cell.Width,
		Height: float32(rows) * cell.Height,
	})
	sc.Door = door.Build()

	player := w.NewEntity()
	engine.With(player, comp.Mesh, component.RenderableComponent[component.Mesh]{
		Drawable: component.Mesh{Width: parameter.PlayerSize, Height: parameter.PlayerSize, Color: PlayerColor},
	})
	engine.With(player, comp.Size, component.SizeComponent{Width: parameter.PlayerSize, Height: parameter.PlayerSize})
	engine.With(player, comp.Facing, component.FacingComponent{Direction: core.DirRight})
	engine.With(player, comp.Player, component.PlayerComponent{})
	sc.Player = player.Build()

	return sc
}
