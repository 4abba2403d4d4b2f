package main

import (
	"flag"
	"log"

	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/scenes"
	"github.com/automoto/thirdperson/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.WorldOptions) *Game {
	return &Game{scene: scenes.NewWorldScene(opts)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	arena := flag.String("arena", assets.DefaultArena, "Arena to load")
	debug := flag.Bool("debug", config.Debug.Enabled, "Show the debug overlay")
	flag.Parse()

	config.Debug.Enabled = *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	defaults, err := config.ParseTuning(assets.DefaultTuning)
	if err != nil {
		log.Fatalf("embedded tuning: %v", err)
	}
	if err := config.ApplyTuning(defaults); err != nil {
		log.Fatalf("embedded tuning: %v", err)
	}
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := config.ApplyTuning(t); err != nil {
			log.Fatalf("%s: %v", *tuningPath, err)
		}
	}

	// Saved settings win over tuning for the fields the player controls.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: settings will not be saved")
	}
	systems.ApplySavedSettings()

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Third Person")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(scenes.WorldOptions{Arena: *arena, TuningPath: *tuningPath})
	defer func() {
		if ws, ok := game.scene.(*scenes.WorldScene); ok {
			ws.Close()
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
