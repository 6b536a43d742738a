package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (overlay, F2 copies the player cell)")
	mapName := flag.String("map", "", "start on this map instead of the catalog's first")
	watch := flag.Bool("watch", false, "reload ./prefabs/game.yaml while running")
	skipMenu := flag.Bool("skip-menu", false, "start playing as soon as maps are loaded")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := maps.Load(spec.TileSize)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(Options{
		Spec:     spec,
		Catalog:  catalog,
		First:    maps.ID(*mapName),
		Debug:    *debug,
		Watch:    *watch,
		SkipMenu: *skipMenu,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
