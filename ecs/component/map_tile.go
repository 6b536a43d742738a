package component

// MapTile marks an entity spawned from the current map's tile grid. All of them
// are despawned together when the map changes.
type MapTile struct {
	Column int
	Row    int
	Layer  int
}

var MapTileComponent = NewComponent[MapTile]("map_tile")

// Collide blocks the actor from entering the cell (Column, Row).
type Collide struct {
	Column int
	Row    int
}

var CollideComponent = NewComponent[Collide]("collide")
