// Command mapcheck validates the map catalog against the embedded Tiled files
// and prints each map's collision grid.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"

	"github.com/milk9111/thechase/assets"
	"github.com/milk9111/thechase/levels"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/prefabs"
	"github.com/milk9111/thechase/tilegrid"
)

func main() {
	quiet := flag.Bool("q", false, "only report problems")
	out := flag.String("txtar", "", "write the grids as a txtar archive to this file")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		fatal(err)
	}
	catalog, err := maps.Load(spec.TileSize)
	if err != nil {
		fatal(err)
	}

	errs := []error{catalog.Validate(levels.Exists)}
	archive := &txtar.Archive{Comment: []byte("Collision grids, top row first. S start, G goal, C collectible, B button, W wall.\n")}
	for _, id := range catalog.IDs() {
		desc, _ := catalog.Get(id)
		m, err := levels.LoadMapFromFS(levels.LevelsFS, desc.File)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if m.Width != desc.Dimensions.Columns || m.Height != desc.Dimensions.Rows {
			errs = append(errs, fmt.Errorf("%s: file is %dx%d, catalog says %dx%d",
				id, m.Width, m.Height, desc.Dimensions.Columns, desc.Dimensions.Rows))
			continue
		}
		grid := tilegrid.Build(m.Source())
		errs = append(errs, reachability(desc, grid)...)
		errs = append(errs, missingTextures(id, grid, assets.Has)...)

		text := dump(desc, grid)
		archive.Files = append(archive.Files, txtar.File{Name: string(id) + ".txt", Data: []byte(text)})
		if !*quiet {
			fmt.Printf("%s (%s, next %q)\n%s\n", id, desc.File, desc.Next, text)
		}
	}

	if *out != "" {
		if err := os.WriteFile(*out, txtar.Format(archive), 0o644); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		fatal(err)
	}
	if !*quiet {
		fmt.Println("ok")
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
