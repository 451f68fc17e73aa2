package main

import (
	"fmt"
	"log"

	"github.com/younwookim/portfoliotown/internal/application/game"
	"github.com/younwookim/portfoliotown/internal/application/replay"
	"github.com/younwookim/portfoliotown/internal/application/system"
	"github.com/younwookim/portfoliotown/internal/infrastructure/config"
	"github.com/younwookim/portfoliotown/internal/infrastructure/script"
)

// replayThenLive plays back a recording and hands control to the live
// source once it runs out
type replayThenLive struct {
	replayer *replay.Replayer
	live     system.InputSource
	handed   bool
}

func newReplayThenLive(data replay.ReplayData, live system.InputSource) *replayThenLive {
	return &replayThenLive{replayer: replay.NewReplayer(data), live: live}
}

// ReadInput implements system.InputSource
func (r *replayThenLive) ReadInput() system.InputState {
	if input, ok := r.replayer.GetInput(); ok {
		return input
	}
	if !r.handed {
		r.handed = true
		log.Printf("Replay finished after %d frames", r.replayer.TotalFrames())
	}
	return r.live.ReadInput()
}

// runHeadless drives a game through every recorded frame without a
// window and returns it for inspection
func runHeadless(cfg *config.GameConfig, loader *config.Loader, data replay.ReplayData) (*game.Game, error) {
	replayer := replay.NewReplayer(data)
	dir, err := buildDirectory(services{
		cfg:      cfg,
		input:    replayer,
		dialogue: script.NewDialogue(loader.LoadScript),
	})
	if err != nil {
		return nil, err
	}

	start, payload, err := startScene(dir, cfg.World, data.Character)
	if err != nil {
		return nil, err
	}
	g := game.New(dir, start, payload, cfg.Display.Display.ScreenWidth, cfg.Display.Display.ScreenHeight)
	g.SetDT(cfg.Display.FrameDT())

	// Fades freeze input reads, so allow generous headroom past the frame count
	limit := 4*replayer.TotalFrames() + 10*cfg.Display.Display.Framerate
	for ticks := 0; !replayer.Done(); ticks++ {
		if ticks > limit {
			return g, fmt.Errorf("replay stalled at frame %d of %d", replayer.CurrentFrame(), replayer.TotalFrames())
		}
		if err := g.Update(); err != nil {
			return g, err
		}
	}
	return g, nil
}
