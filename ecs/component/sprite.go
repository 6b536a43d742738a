package component

// Sprite names the texture an entity is drawn with. The renderer resolves the
// key through the asset cache, so swapping a material is a string write.
type Sprite struct {
	Texture string
}

var SpriteComponent = NewComponent[Sprite]("sprite")

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]("render_layer")
