package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vinegar-rocket/audio"
	"github.com/lixenwraith/vinegar-rocket/config"
	"github.com/lixenwraith/vinegar-rocket/flight"
	"github.com/lixenwraith/vinegar-rocket/game"
	"github.com/lixenwraith/vinegar-rocket/parameter"
	"github.com/lixenwraith/vinegar-rocket/telemetry"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML configuration file")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+parameter.LogDir+"/"+parameter.LogFileName)
	telemetryFlag = flag.String("telemetry", "", "Serve telemetry on this address, e.g. :8086")
	muteFlag      = flag.Bool("mute", false, "Disable sound effects")
	fpsFlag       = flag.Int("fps", 0, "Target frame rate (default from config)")
	headlessFlag  = flag.Bool("headless", false, "Print one flight as text instead of drawing it")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal(err)
	}
	applyFlags(&cfg)

	// Configuration errors abort before any terminal state is touched
	params, err := cfg.Launch()
	if err != nil {
		fatal(err)
	}
	log.Printf("launch: co2=%.4f mol pressure=%.0f Pa force=%.2f N v0=%.2f m/s",
		params.MolesCO2, params.Pressure, params.Force, params.InitialSpeed)

	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		if _, err := game.Replay(os.Stdout, params, cfg.Display.FPS); err != nil {
			fatal(err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(fmt.Errorf("create screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		fatal(fmt.Errorf("init screen: %w", err))
	}

	// Restore the terminal before printing a crash so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVINEGAR-ROCKET CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	g := game.New(screen, params, flight.NewSystemClock(), game.Options{
		FPS:    cfg.Display.FPS,
		ScaleX: cfg.Display.ScaleX,
		ScaleY: cfg.Display.ScaleY,
		Trail:  cfg.Display.Trail,
	})

	status := []string{"[SPACE] launch", "[q] quit"}

	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the rocket flies without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()
	if sounds.Enabled() {
		g.SetSounds(sounds)
		status = append(status, "sound on")
	} else {
		status = append(status, "sound off")
	}

	if cfg.Telemetry.Addr != "" {
		metrics := telemetry.NewMetrics()
		hub := telemetry.NewHub(metrics)
		commands := make(chan telemetry.Command, parameter.CommandQueueSize)
		srv := telemetry.NewServer(hub, metrics, commands)

		if addr, err := srv.Start(cfg.Telemetry.Addr); err != nil {
			log.Printf("Telemetry disabled: %v", err)
			status = append(status, "telemetry failed")
		} else {
			g.SetTelemetry(hub, commands)
			status = append(status, "telemetry "+addr)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					log.Printf("telemetry shutdown: %v", err)
				}
			}()
		}
	}
	g.SetStatus(" " + strings.Join(status, " | "))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.Run(ctx)
	log.Printf("exit after %d frames, %d flights", g.Frame(), g.State().Flights)
}

// applyFlags lets explicit flags win over file and environment
func applyFlags(cfg *config.Config) {
	if *telemetryFlag != "" {
		cfg.Telemetry.Addr = *telemetryFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *fpsFlag != 0 {
		cfg.Display.FPS = *fpsFlag
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "vinegar-rocket: %v\n", err)
	os.Exit(1)
}
