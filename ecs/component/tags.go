package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]("player_tag")

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]("camera_tag")

// CollectibleTag marks the acorn the player is chasing.
type CollectibleTag struct{}

var CollectibleTagComponent = NewComponent[CollectibleTag]("collectible_tag")
