package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/thechase/ecs/render"
	"github.com/milk9111/thechase/levels"
	"github.com/milk9111/thechase/maps"
	"github.com/milk9111/thechase/play"
	"github.com/milk9111/thechase/prefabs"
	"github.com/milk9111/thechase/sound"
)

type stage int

const (
	stageLoading stage = iota
	stageMenu
	stagePlaying
)

type Options struct {
	Spec     *prefabs.GameSpec
	Catalog  *maps.Catalog
	First    maps.ID
	Debug    bool
	Watch    bool
	SkipMenu bool
}

type Game struct {
	opts  Options
	stage stage

	batch    *levels.Batch
	cancel   context.CancelFunc
	runtime  *play.Runtime
	mixer    *sound.Mixer
	renderer *render.RenderSystem
	menu     *ebitenui.UI
	again    *ebitenui.UI
	watcher  *prefabs.Watcher

	focused   bool
	clipboard bool
	copied    string
}

func NewGame(opts Options) (*Game, error) {
	if err := opts.Catalog.Validate(levels.Exists); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if opts.First != "" {
		if _, err := opts.Catalog.Get(opts.First); err != nil {
			return nil, fmt.Errorf("game: -map: %w", err)
		}
	}

	var files []string
	for _, id := range opts.Catalog.IDs() {
		desc, _ := opts.Catalog.Get(id)
		files = append(files, desc.File)
	}
	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		opts:     opts,
		batch:    levels.Preload(ctx, levels.LevelsFS, files...),
		cancel:   cancel,
		mixer:    sound.NewMixer(opts.Spec.Audio),
		renderer: render.NewRenderSystem(),
		focused:  true,
	}
	w, h := opts.Spec.Window.Width, opts.Spec.Window.Height
	g.menu = NewMenuUI(w, h, opts.Spec.Window.Title, "Play", func() { g.stage = stagePlaying })
	g.again = NewMenuUI(w, h, "You caught it!", "Again!", func() {
		if g.runtime != nil {
			g.runtime.Retry()
		}
	})

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			log.Printf("game: watch %s: %v", prefabs.DiskDir, err)
		} else {
			g.watcher = watcher
		}
	}
	if opts.Debug {
		if err := clipboard.Init(); err != nil {
			log.Printf("game: clipboard unavailable: %v", err)
		} else {
			g.clipboard = true
		}
	}
	return g, nil
}

func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	switch g.stage {
	case stageLoading:
		return g.updateLoading()
	case stageMenu:
		g.menu.Update()
		return nil
	}

	g.pollWatcher()
	g.trackFocus()

	g.runtime.Step(time.Second/time.Duration(ebiten.TPS()), readIntent())
	if g.runtime.Session().Won && !g.runtime.Session().Frozen() {
		g.again.Update()
	}
	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyCell()
	}
	return nil
}

func (g *Game) updateLoading() error {
	if !g.batch.Done() {
		return nil
	}
	if err := g.batch.Err(); err != nil {
		return fmt.Errorf("game: load maps: %w", err)
	}
	rt, err := play.New(play.Options{
		Spec:    g.opts.Spec,
		Catalog: g.opts.Catalog,
		Maps:    g.batch,
		Audio:   g.mixer,
		First:   g.opts.First,
	})
	if err != nil {
		return err
	}
	g.runtime = rt
	g.stage = stageMenu
	if g.opts.SkipMenu {
		g.stage = stagePlaying
	}
	return nil
}

func (g *Game) pollWatcher() {
	names, err := g.watcher.Poll()
	if err != nil {
		log.Printf("game: watch: %v", err)
	}
	for _, name := range names {
		if name != prefabs.GameFile {
			continue
		}
		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			continue
		}
		g.runtime.ApplyConfig(spec)
		g.mixer.Configure(spec.Audio)
	}
}

func (g *Game) trackFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	g.runtime.SetBackgroundPaused(!focused)
}

func (g *Game) copyCell() {
	col, row := g.runtime.PlayerCell()
	desc := g.runtime.Map()
	if desc == nil {
		return
	}
	// Editor orientation, the way maps.yaml spells slots.
	g.copied = fmt.Sprintf("{column: %d, row: %d}", col, desc.Dimensions.Rows-row-1)
	if g.clipboard {
		clipboard.Write(clipboard.FmtText, []byte(g.copied))
	}
	log.Printf("game: player at %s on %s", g.copied, desc.ID)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.stage {
	case stageLoading:
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	case stageMenu:
		g.menu.Draw(screen)
		return
	}

	g.renderer.Draw(g.runtime.World(), screen)
	if g.runtime.Session().Won && !g.runtime.Session().Frozen() {
		g.again.Draw(screen)
	}
	if g.opts.Debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	s := g.runtime.Session()
	active := "none"
	if kind, ok := s.ActiveKind(); ok {
		active = kind.String()
	}
	col, row := g.runtime.PlayerCell()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  map: %s v%d  cell: %d,%d  scene: %s  won: %t  sprites: %d  copied: %s",
		ebiten.ActualFPS(), s.Map, s.MapVersion, col, row, active, s.Won, g.renderer.Drawn(), g.copied,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Spec.Window.Width, g.opts.Spec.Window.Height
}
