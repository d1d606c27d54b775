package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/emberworks/pathofember/common"
	"github.com/emberworks/pathofember/ecs"
	"github.com/emberworks/pathofember/ecs/component"
	"github.com/emberworks/pathofember/ecs/entity"
	"github.com/emberworks/pathofember/ecs/system"
	"github.com/emberworks/pathofember/loading"
	"github.com/emberworks/pathofember/pool"
	"github.com/emberworks/pathofember/prefabs"
	"github.com/emberworks/pathofember/stream"
	"github.com/emberworks/pathofember/targeting"
)

var colorBackground = color.RGBA{R: 0x14, G: 0x10, B: 0x0e, A: 0xff}

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	catalog   *prefabs.Catalog
	factory   *entity.Factory
	pool      *pool.Pool[ecs.Entity]
	registry  *targeting.Registry
	manager   *stream.Manager[ecs.Entity]
	orch      *loading.Orchestrator[ecs.Entity]
	scheduler *ecs.Scheduler
	renderer  *system.Renderer

	input      *Input
	inputState *system.InputState

	player ecs.Entity
	camera ecs.Entity

	loading  bool
	progress float64
	paused   bool
	gameOver bool

	loadingUI  *ebitenui.UI
	loadingBar *widget.ProgressBar
	pauseUI    *ebitenui.UI
	pauseStats *widget.Text
	watcher    *prefabs.Watcher
}

func NewGame(debug bool) (*Game, error) {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	g := &Game{debug: debug, catalog: catalog, loading: true}
	g.buildWorld()

	g.loadingUI = NewLoadingUI(g)
	g.pauseUI = NewPauseUI(g)

	if watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("game: spec watch disabled: %v", err)
	}
	return g, nil
}

// buildWorld constructs a fresh session: world, spawn plumbing, streaming,
// and the system schedule. Called at start and on restart.
func (g *Game) buildWorld() {
	g.world = ecs.NewWorld()
	g.world.SetPhysicsWorld(ecs.NewPhysicsWorld(g.world.Events()))

	g.factory = entity.NewFactory(g.world, g.catalog)
	game := g.catalog.Game()
	g.pool = pool.New[ecs.Entity](g.factory, game.Pools.DefaultCapacity)
	g.factory.SetPool(g.pool)
	g.registry = &targeting.Registry{}

	g.player = g.factory.BuildPlayer(common.Vec3{Z: 2})
	g.camera = g.factory.BuildCamera(g.player)

	seq, err := stream.BuildSequence(sequenceConfig(game))
	if err != nil {
		log.Printf("game: %v", err)
	}
	g.manager = stream.NewManager[ecs.Entity](seq, stream.Config{
		Length: game.Chunk.Length,
		Gap:    game.Chunk.Gap,
		Ahead:  game.Chunk.Ahead,
		Behind: game.Chunk.Behind,
	}, g.factory)

	g.loading = true
	g.progress = 0
	g.gameOver = false
	g.paused = false
	g.orch = loading.NewOrchestrator(g.pool, prewarmPlan(game), game.Pools.PerTickBudget,
		func(fraction float64) { g.progress = fraction },
		func() {
			g.loading = false
			g.manager.Init(0)
		},
	)

	g.inputState = &system.InputState{}
	g.input = NewInput(g.inputState)
	g.renderer = system.NewRenderer(g.factory, g.camera, g.player)

	g.scheduler = ecs.NewScheduler(
		system.NewPlayerControllerSystem(g.inputState, g.pool, g.factory, g.registry),
		system.NewAISystem(g.player),
		system.NewProjectileSystem(g.pool),
		system.NewTTLSystem(g.pool),
		system.NewChunkSetupSystem(g.factory),
		system.NewStreamSystem(g.manager, g.player),
		system.NewTargetingSystem(g.registry),
		system.NewPhysicsSystem(),
		// Status runs before combat so burn kills are drained the same tick,
		// the same way AI melee damage is.
		system.NewStatusSystem(),
		system.NewCombatSystem(g.factory, g.pool, g.player),
		system.NewCameraSystem(),
	)
}

// sequenceConfig maps the game spec's biome lists onto the sequence builder.
func sequenceConfig(game prefabs.GameSpec) stream.SequenceConfig {
	groups := make([]stream.BiomeGroup, 0, len(game.Biomes))
	for _, b := range game.Biomes {
		groups = append(groups, stream.BiomeGroup{Name: b.Name, Chunks: b.Chunks})
	}
	return stream.SequenceConfig{
		Start:  game.Chunk.Start,
		End:    game.Chunk.End,
		Groups: groups,
	}
}

// prewarmPlan maps the game spec's pool categories onto the loader.
func prewarmPlan(game prefabs.GameSpec) []loading.Category {
	categories := make([]loading.Category, 0, len(game.Pools.Categories))
	for _, c := range game.Pools.Categories {
		items := make([]loading.Item, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, loading.Item{Prototype: it.Prototype, Count: it.Count})
		}
		categories = append(categories, loading.Category{Name: c.Name, Items: items})
	}
	return categories
}

func (g *Game) Update() error {
	g.frames++
	g.pollSpecChanges()

	if g.loading {
		g.orch.Step()
		if g.loadingBar != nil {
			g.loadingBar.SetCurrent(int(g.progress * 100))
		}
		g.loadingUI.Update()
		return nil
	}

	if g.input.PauseToggled() {
		g.paused = !g.paused
	}
	if g.paused {
		if g.pauseStats != nil {
			g.pauseStats.Label = g.runStats()
		}
		g.pauseUI.Update()
		return nil
	}

	if g.gameOver {
		if g.input.RestartRequested() {
			g.buildWorld()
		}
		return nil
	}

	g.input.Update()
	g.scheduler.Update(g.world)

	if hp, ok := ecs.Get(g.world, g.player, component.HealthComponent.Kind()); ok && hp.Current <= 0 {
		g.gameOver = true
	}
	return nil
}

// runStats summarizes the current run for the pause menu.
func (g *Game) runStats() string {
	coins := 0
	if p, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind()); ok {
		coins = p.Coins
	}
	dist := 0.0
	if t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		dist = t.Pos.Z
	}
	return fmt.Sprintf("embers %d   distance %.0fm", coins, dist)
}

// pollSpecChanges applies edited specs without restarting: the catalog is
// reloaded and swapped into the factory, so newly cloned instances pick up
// the new tuning.
func (g *Game) pollSpecChanges() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case ch, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			switch ch.Kind {
			case prefabs.ChangeSpec:
				log.Printf("game: spec changed: %s", ch.Name)
				changed = true
			case prefabs.ChangeScript:
				log.Printf("game: script changed: %s (scripts are embedded, rebuild to apply)", ch.Name)
			}
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("game: spec watch error: %v", err)
			}
		default:
			if !changed {
				return
			}
			catalog, err := prefabs.LoadCatalog()
			if err != nil {
				log.Printf("game: spec reload rejected: %v", err)
				return
			}
			g.catalog = catalog
			g.factory.SetCatalog(catalog)
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if g.loading {
		g.loadingUI.Draw(screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("warming pools %3.0f%%", g.progress*100), common.BaseWidth/2-60, common.BaseHeight/2+40)
		return
	}

	g.renderer.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  chunk %d  pooled %d", ebiten.ActualFPS(), g.manager.CurrentIndex(), g.pool.TrackedCount()), 10, common.BaseHeight-20)
	}
	if g.gameOver {
		ebitenutil.DebugPrintAt(screen, "the ember went out - press R", common.BaseWidth/2-90, common.BaseHeight/2)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
