package prefabs

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	GameFile    = "game.yaml"
	CatalogFile = "maps.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec unmarshals raw YAML. Unknown keys are rejected so typos in a
// hot-reloaded file surface as errors instead of silently using defaults.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PlayerSpec struct {
	Speed        float64 `yaml:"speed"`
	GoalRadius   float64 `yaml:"goal_radius"`
	ButtonRadius float64 `yaml:"button_radius"`
	Texture      string  `yaml:"texture"`
}

type CollectibleSpec struct {
	Texture string `yaml:"texture"`
}

type ElementTexturesSpec struct {
	Button     string `yaml:"button"`
	ButtonDown string `yaml:"button_down"`
	Wall       string `yaml:"wall"`
	WallDown   string `yaml:"wall_down"`
}

// PanSpec holds the four boundaries of a pan-and-return scene, measured from
// the scene start.
type PanSpec struct {
	Hold time.Duration `yaml:"hold"`
	Pan  time.Duration `yaml:"pan"`
	Park time.Duration `yaml:"park"`
	Back time.Duration `yaml:"back"`
}

type ZoomSpec struct {
	Zoom             time.Duration `yaml:"zoom"`
	CameraScaleFloor float64       `yaml:"camera_scale_floor"`
	ActorScaleFloor  float64       `yaml:"actor_scale_floor"`
}

type ScenesSpec struct {
	Intro          PanSpec  `yaml:"intro"`
	ActivateButton PanSpec  `yaml:"activate_button"`
	MapTransition  ZoomSpec `yaml:"map_transition"`
	Won            ZoomSpec `yaml:"won"`
}

type AudioSpec struct {
	EffectsVolume    float64           `yaml:"effects_volume"`
	BackgroundVolume float64           `yaml:"background_volume"`
	Clips            map[string]string `yaml:"clips"`
	WonBackground    []string          `yaml:"won_background"`
}

// GameSpec is game.yaml: everything tunable that is not map data.
type GameSpec struct {
	Window      WindowSpec          `yaml:"window"`
	TileSize    float64             `yaml:"tile_size"`
	Player      PlayerSpec          `yaml:"player"`
	Collectible CollectibleSpec     `yaml:"collectible"`
	Elements    ElementTexturesSpec `yaml:"elements"`
	Scenes      ScenesSpec          `yaml:"scenes"`
	Audio       AudioSpec           `yaml:"audio"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// SlotSpec is a tile coordinate in editor orientation (row 0 at the top).
type SlotSpec struct {
	Column int `yaml:"column"`
	Row    int `yaml:"row"`
}

type ButtonWallSpec struct {
	Button SlotSpec `yaml:"button"`
	Wall   SlotSpec `yaml:"wall"`
}

type MapSpec struct {
	ID          string           `yaml:"id"`
	File        string           `yaml:"file"`
	Columns     int              `yaml:"columns"`
	Rows        int              `yaml:"rows"`
	Start       SlotSpec         `yaml:"start"`
	Goal        SlotSpec         `yaml:"goal"`
	Collectible SlotSpec         `yaml:"collectible"`
	Next        string           `yaml:"next"`
	Background  []string         `yaml:"background"`
	Elements    []ButtonWallSpec `yaml:"elements"`
}

// CatalogSpec is maps.yaml.
type CatalogSpec struct {
	First string    `yaml:"first"`
	Maps  []MapSpec `yaml:"maps"`
}

func LoadCatalogSpec() (*CatalogSpec, error) {
	spec, err := LoadSpec[CatalogSpec](CatalogFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
