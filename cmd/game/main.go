package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/portfoliotown/internal/application/game"
	"github.com/younwookim/portfoliotown/internal/application/replay"
	"github.com/younwookim/portfoliotown/internal/application/scene"
	"github.com/younwookim/portfoliotown/internal/application/system"
	"github.com/younwookim/portfoliotown/internal/infrastructure/audio"
	"github.com/younwookim/portfoliotown/internal/infrastructure/config"
	"github.com/younwookim/portfoliotown/internal/infrastructure/render"
	"github.com/younwookim/portfoliotown/internal/infrastructure/script"
)

func main() {
	// Parse command line flags
	configsFlag := flag.String("configs", "", "Config directory (default: configs embedded in the binary)")
	recordFlag := flag.String("record", "", "Record input to file, or to a timestamped file in a directory (e.g., -record replay.json, -record .)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headlessFlag := flag.Bool("headless", false, "With -replay, run without a window and print where the replay ends")
	watchFlag := flag.Bool("watch", false, "Reload configs when files under -configs change")
	characterFlag := flag.String("character", "", "Skip the menus and start with this character")
	debugFlag := flag.Bool("debug", false, "Show scene and session info")
	flag.Parse()

	loader := newLoader(*configsFlag)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	character := *characterFlag
	var replayData *replay.ReplayData
	if *replayFlag != "" {
		replayData, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		character = replayData.Character
		log.Printf("Replaying %s (%d frames)", *replayFlag, len(replayData.Frames))
	}

	if *headlessFlag {
		if replayData == nil {
			log.Fatal("-headless needs -replay")
		}
		g, err := runHeadless(cfg, loader, *replayData)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay ended in %s (%s) with %+v", g.Current().ID(), g.State(), g.Payload())
		return
	}

	fonts, err := render.NewFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var footsteps *audio.Footsteps
	if cfg.Display.Audio.Enabled {
		ctx := ebitenaudio.NewContext(cfg.Display.Audio.SampleRate)
		footsteps = audio.NewFootsteps(ctx, cfg.Display.Audio.FootstepVolume)
	}

	// Input: keyboard, optionally behind a replay and/or a recorder
	keyboard := system.NewInputSystem()
	var input system.InputSource = keyboard
	if replayData != nil {
		input = newReplayThenLive(*replayData, input)
	}
	var recorder *replay.Recorder
	recordFile := recordPath(*recordFlag)
	if recordFile != "" {
		startID := string(scene.MainMenuID)
		if character != "" {
			startID = cfg.World.Start
		}
		recorder = replay.NewRecorder(input, startID, character)
		input = recorder
		log.Printf("Recording enabled: %s", recordFile)
	}

	svc := services{
		cfg:       cfg,
		input:     input,
		dialogue:  script.NewDialogue(loader.LoadScript),
		footsteps: footsteps,
		fonts:     fonts,
		press:     keyboard.PressConfirm,
	}
	dir, err := buildDirectory(svc)
	if err != nil {
		log.Fatalf("Invalid scene setup: %v", err)
	}

	start, payload, err := startScene(dir, cfg.World, character)
	if err != nil {
		log.Fatalf("Failed to build start scene: %v", err)
	}

	g := game.New(dir, start, payload, cfg.Display.Display.ScreenWidth, cfg.Display.Display.ScreenHeight)
	g.SetDT(cfg.Display.FrameDT())
	g.SetDebug(*debugFlag)

	if *watchFlag {
		if *configsFlag == "" {
			log.Printf("-watch needs -configs; hot reload disabled")
		} else if err := watchConfigs(*configsFlag, svc, g); err != nil {
			log.Printf("Hot reload disabled: %v", err)
		}
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.Display.ScreenWidth*cfg.Display.Display.Scale,
		cfg.Display.Display.ScreenHeight*cfg.Display.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Display.Title)
	ebiten.SetTPS(cfg.Display.Display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)
	footsteps.Stop()
	if recorder != nil {
		saveRecording(recorder, recordFile)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	return config.NewFSLoader(fsys, "configs")
}

// watchConfigs rebuilds the scene directory whenever a config file under
// dir changes and hands it to g. Invalid edits are logged and skipped so
// the running game keeps its last good directory.
func watchConfigs(dir string, svc services, g *game.Game) error {
	w, err := config.NewWatcher(watchDirs(dir)...)
	if err != nil {
		return err
	}
	reloads := make(chan *game.Directory, 1)
	g.SetReloads(reloads)

	go func() {
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				loader := config.NewLoader(dir)
				cfg, err := loader.LoadAll()
				if err != nil {
					log.Printf("Reload of %s rejected: %v", name, err)
					continue
				}
				next := svc
				next.cfg = cfg
				// Fresh runtime so edited scripts recompile
				next.dialogue = script.NewDialogue(loader.LoadScript)
				d, err := buildDirectory(next)
				if err != nil {
					log.Printf("Reload of %s rejected: %v", name, err)
					continue
				}
				log.Printf("Reloaded configs after change to %s", filepath.Base(name))
				reloads <- d
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher: %v", err)
			}
		}
	}()
	return nil
}

// watchDirs returns dir plus its scripts folder when there is one
func watchDirs(dir string) []string {
	dirs := []string{dir}
	scripts := filepath.Join(dir, "scripts")
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		dirs = append(dirs, scripts)
	}
	return dirs
}

// recordPath resolves the -record argument. A directory gets a
// timestamped file name inside it.
func recordPath(arg string) string {
	if arg == "" {
		return ""
	}
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return filepath.Join(arg, replay.GenerateFilename())
	}
	return arg
}

// saveRecording saves the recording to filename
func saveRecording(recorder *replay.Recorder, filename string) {
	recorder.Stop()
	if err := recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", filename, recorder.FrameCount())
}
