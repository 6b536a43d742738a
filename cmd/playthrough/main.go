// Command playthrough runs scripted games without a window, for checking that
// every map can be finished after editing maps.yaml or the Tiled files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/milk9111/thechase/levels"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/play"
	"github.com/milk9111/thechase/prefabs"
)

type nullSink struct{}

func (nullSink) PlayEffect(string)       {}
func (nullSink) StopEffects()            {}
func (nullSink) PlayBackground([]string) {}
func (nullSink) PauseBackground()        {}
func (nullSink) ResumeBackground()       {}

func main() {
	scripts := flag.String("script", "", "comma separated scripts to run (embedded name or .tengo path); all embedded scripts by default")
	mapName := flag.String("map", "", "start on this map instead of the catalog's first")
	verbose := flag.Bool("v", false, "show game logs")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		fatal(err)
	}
	catalog, err := maps.Load(spec.TileSize)
	if err != nil {
		fatal(err)
	}
	if err := catalog.Validate(levels.Exists); err != nil {
		fatal(err)
	}
	var files []string
	for _, id := range catalog.IDs() {
		desc, _ := catalog.Get(id)
		files = append(files, desc.File)
	}
	batch := levels.Preload(ctx, levels.LevelsFS, files...)
	if err := batch.Wait(); err != nil {
		fatal(err)
	}

	names := prefabs.ScriptNames()
	if *scripts != "" {
		names = strings.Split(*scripts, ",")
	}

	failed := 0
	for _, name := range names {
		src, err := prefabs.LoadScript(name)
		if err != nil {
			fatal(err)
		}
		r, err := play.New(play.Options{Spec: spec, Catalog: catalog, Maps: batch, Audio: nullSink{}, First: maps.ID(*mapName)})
		if err != nil {
			fatal(err)
		}
		if err := play.RunScript(ctx, r, name, src); err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", name, err)
			continue
		}
		fmt.Printf("ok   %s (%s game time, map %s, won %t)\n", name, r.Now(), r.Session().Map, r.Session().Won)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
