package main

import (
	"fmt"
	"log"

	"github.com/younwookim/labrun/internal/application/replay"
	"github.com/younwookim/labrun/internal/application/scene/playing"
	"github.com/younwookim/labrun/internal/application/system"
	"github.com/younwookim/labrun/internal/domain/entity"
	"github.com/younwookim/labrun/internal/infrastructure/config"
)

// ReplayResult summarizes a headless playback
type ReplayResult struct {
	Frames    int
	Deaths    int
	Cleared   bool
	PlayerPos entity.Vec2
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("frames=%d deaths=%d cleared=%t player=(%.2f, %.2f)",
		r.Frames, r.Deaths, r.Cleared, r.PlayerPos.X, r.PlayerPos.Y)
}

// runReplay loads a recording and plays it through its stage without a window
func runReplay(loader *config.Loader, cfg *config.GameConfig, path string) (ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplayResult{}, err
	}

	lvl, stageCfg, err := loadLevel(loader, cfg, data.Stage)
	if err != nil {
		return ReplayResult{}, err
	}

	return simulate(cfg, stageCfg, lvl, replay.NewReplayer(*data))
}

// simulate drives a level scene with recorded input until the frames run out
// or the level hands over to another scene
func simulate(cfg *config.GameConfig, stageCfg *config.StageConfig, lvl *system.Level, replayer *replay.Replayer) (ReplayResult, error) {
	level, err := playing.New(cfg, stageCfg, lvl, playing.Options{
		Seed:  replayer.Seed(),
		Input: replayer.GetInput,
	})
	if err != nil {
		return ReplayResult{}, err
	}
	level.OnEnter()

	dt := 1.0 / 60
	if fr := cfg.Physics.Display.Framerate; fr > 0 {
		dt = 1.0 / float64(fr)
	}

	var result ReplayResult
	for !replayer.Done() {
		next, err := level.Update(dt)
		if err != nil {
			return result, fmt.Errorf("frame %d: %w", replayer.CurrentFrame(), err)
		}
		result.Frames++
		if next != nil {
			result.Cleared = true
			break
		}
	}

	result.Deaths = level.Deaths()
	result.PlayerPos = level.Player().Pos
	log.Printf("[Replay] played %d/%d frames", result.Frames, replayer.TotalFrames())
	return result, nil
}
