package component

// Transform is a world-space placement. World Y grows upward; tile row 0 is the
// bottom row of a map. Scale 0 is treated as 1 by readers.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]("transform")
