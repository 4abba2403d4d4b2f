package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/thirdperson/assets"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/platform"
	"github.com/automoto/thirdperson/render"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/automoto/thirdperson/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions selects what the world scene loads.
type WorldOptions struct {
	Arena      string
	TuningPath string // hot-reloaded when set
}

// WorldScene runs the character controller and follow camera in one arena.
type WorldScene struct {
	opts WorldOptions
	ecs  *ecs.ECS
	once sync.Once

	poller   *platform.Poller
	cursor   platform.CursorApplier
	watcher  *cfg.Watcher
	settings *ui.SettingsUI
	paused   bool

	lastDraw time.Time
}

func NewWorldScene(opts WorldOptions) *WorldScene {
	if opts.Arena == "" {
		opts.Arena = assets.DefaultArena
	}
	return &WorldScene{opts: opts}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	ws.poller.Refresh()
	ws.reloadTuning()

	if ws.paused {
		// Only input runs so the settings key can close the panel.
		systems.PollInput(ws.ecs, ws.poller)
		ws.settings.Update()
	} else {
		ws.ecs.Update()
	}

	if systems.GetInput(ws.ecs).ToggleSettingsPressed {
		ws.setPaused(!ws.paused)
	}
	ws.cursor.Apply(systems.CursorState(ws.ecs))
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}

	now := time.Now()
	if !ws.lastDraw.IsZero() && !ws.paused {
		systems.UpdateCameraFrame(ws.ecs, now.Sub(ws.lastDraw).Seconds())
	}
	ws.lastDraw = now

	ws.ecs.Draw(screen)

	if ws.paused {
		ws.settings.SetState(ui.SettingsState{
			CameraMode: cfg.Camera.UpdateMode.String(),
			LookAt:     cfg.Camera.LookAt,
		})
		ws.settings.UI.Draw(screen)
	}
}

// Close releases the cursor and stops watching the tuning file.
func (ws *WorldScene) Close() {
	if ws.ecs != nil {
		systems.ReleaseCursor(ws.ecs)
		ws.cursor.Apply(systems.CursorState(ws.ecs))
	}
	if ws.watcher != nil {
		_ = ws.watcher.Close()
	}
}

func (ws *WorldScene) configure() {
	ws.poller = platform.NewPoller()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: input, then movers and locomotion, then the camera.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.NewInputSystem(ws.poller))
	ecs.AddSystem(systems.UpdateMovers)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateActions)
	ecs.AddSystem(systems.UpdateCamera)
	// Toggles apply from the next tick
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddRenderer(cfg.Default, render.DrawWorld)
	ecs.AddRenderer(cfg.HUD, render.DrawHUD)

	ws.ecs = ecs

	factory.CreateSession(ws.ecs)
	factory.CreateLevel(ws.ecs, ws.opts.Arena)

	ws.settings = ui.NewSettingsUI(
		func() {
			systems.ToggleCameraMode()
			_ = systems.SaveSettings(cfg.CurrentSettings())
		},
		func() {
			systems.ToggleLookAt()
			_ = systems.SaveSettings(cfg.CurrentSettings())
		},
		func() { ws.setPaused(false) },
	)

	if ws.opts.TuningPath != "" {
		w, err := cfg.NewWatcher(ws.opts.TuningPath)
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			ws.watcher = w
		}
	}

	systems.AcquireCursor(ws.ecs)
}

func (ws *WorldScene) setPaused(paused bool) {
	ws.paused = paused
	if paused {
		systems.ReleaseCursor(ws.ecs)
	} else {
		systems.AcquireCursor(ws.ecs)
	}
}

func (ws *WorldScene) reloadTuning() {
	if ws.watcher == nil {
		return
	}
	select {
	case err := <-ws.watcher.Errors:
		log.Printf("Warning: tuning watcher: %v", err)
	default:
	}
	if !ws.watcher.Poll() {
		return
	}

	t, err := cfg.LoadTuning(ws.opts.TuningPath)
	if err != nil {
		log.Printf("Warning: tuning reload: %v", err)
		return
	}
	if err := cfg.ApplyTuning(t); err != nil {
		log.Printf("Warning: tuning rejected: %v", err)
		return
	}
	log.Printf("Tuning reloaded from %s", ws.opts.TuningPath)
}

