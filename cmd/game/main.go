package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/labrun/internal/application/game"
	"github.com/younwookim/labrun/internal/application/scene/playing"
	"github.com/younwookim/labrun/internal/application/system"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "lab", "Stage to play (configs/stages/<name>.json)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play a recording without a window and report the outcome")
	flag.Parse()

	loader, err := newLoader()
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		result, err := runReplay(loader, cfg, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("[Replay] %s", result)
		return
	}

	lvl, stageCfg, err := loadLevel(loader, cfg, *stageFlag)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	level, err := playing.New(cfg, stageCfg, lvl, playing.Options{RecordPath: *recordFlag})
	if err != nil {
		log.Fatalf("Failed to set up level: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(level, display.ScreenWidth, display.ScreenHeight)
	g.SetFramerate(display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Lab")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	// Closing the window skips OnExit; flush the recording here
	g.Current().OnExit()
}

// newLoader reads configs from the embedded filesystem
func newLoader() (*config.Loader, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadLevel loads a stage config and builds its level data
func loadLevel(loader *config.Loader, cfg *config.GameConfig, name string) (*system.Level, *config.StageConfig, error) {
	stageCfg, err := loader.LoadStage(name)
	if err != nil {
		return nil, nil, err
	}
	lvl, err := system.LoadStage(stageCfg, cfg.Physics.Physics.TileSize, cfg.Physics.Physics.ChunkSize)
	if err != nil {
		return nil, nil, err
	}
	return lvl, stageCfg, nil
}
