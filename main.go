package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/ratato/audio"
	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/highscore"
	"github.com/pthm-cable/ratato/spectate"
	"github.com/pthm-cable/ratato/telemetry"
	"github.com/pthm-cable/ratato/tui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	useTUI := flag.Bool("tui", false, "Play in the terminal")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	character := flag.String("character", "", "Character key (empty = config default)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and run summary")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	highscorePath := flag.String("highscore", "", "High score file (empty = config highscore.path)")
	highscoreDSN := flag.String("highscore-dsn", "", "Postgres DSN for the high score (overrides -highscore)")
	spectateAddr := flag.String("spectate", "", "Listen address for the spectator websocket (empty = off)")
	mute := flag.Bool("mute", false, "Disable audio cues")
	autopilot := flag.Bool("autopilot", false, "Steer the player automatically in headless mode")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	logFile, err := setupLogging(*useTUI, *outputDir)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	store, closeStore := openStore(cfg, *highscorePath, *highscoreDSN)
	defer closeStore()

	g, err := game.New(cfg, game.Options{
		Character: *character,
		Seed:      rngSeed,
		Store:     store,
		Output:    output,
		LogStats:  *logStats,
	})
	if err != nil {
		slog.Error("failed to start session", "error", err)
		os.Exit(1)
	}

	if *headless {
		var ap *game.Autopilot
		if *autopilot {
			ap = game.NewAutopilot(g)
		}
		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"autopilot", *autopilot,
		)
		res := game.RunHeadless(g, ap, cfg.Derived.FrameTime, *maxTicks)
		slog.Info("headless simulation finished",
			"ticks", res.Ticks,
			"elapsed", res.Elapsed,
			"kills", res.Kills,
			"level", res.Level,
			"survived", res.Survived,
		)
		return
	}

	player, err := audio.New(&cfg.Audio, *mute)
	if err != nil {
		slog.Warn("audio disabled", "error", err)
	}
	defer player.Close()

	hub, stopHub := startSpectator(cfg, *spectateAddr)
	defer stopHub()

	onFrame := func(s *game.Snapshot, events []telemetry.Event) {
		player.Play(events)
		hub.Broadcast(s, time.Now())
	}

	if *useTUI {
		screen, err := tui.NewScreen()
		if err != nil {
			slog.Error("failed to open terminal", "error", err)
			os.Exit(1)
		}
		defer screen.Fini()

		app := tui.New(screen, g, rngSeed)
		app.OnFrame = onFrame
		app.Run()
		return
	}

	runWindow(cfg, g, rngSeed, *maxTicks, onFrame)
}

// setupLogging installs the JSON slog handler. In terminal mode logs go
// to a file so they do not corrupt the screen; the file is returned for
// closing.
func setupLogging(toFile bool, outputDir string) (io.Closer, error) {
	if !toFile {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
		return nil, nil
	}
	path := "ratato.log"
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, err
		}
		path = filepath.Join(outputDir, path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, nil)))
	return f, nil
}

// openStore picks the high score backend. A Postgres failure falls back
// to the file store.
func openStore(cfg *config.Config, path, dsn string) (highscore.Store, func()) {
	if dsn != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pg, err := highscore.OpenPostgres(ctx, dsn, cfg.HighScore.Table)
		if err == nil {
			return pg, func() {
				if err := pg.Close(); err != nil {
					slog.Error("failed to close high score database", "error", err)
				}
			}
		}
		slog.Error("failed to open high score database, using file store", "error", err)
	}
	if path == "" {
		path = cfg.HighScore.Path
	}
	return highscore.NewFileStore(path), func() {}
}

// startSpectator serves the spectator websocket on addr. An empty addr
// returns a nil hub.
func startSpectator(cfg *config.Config, addr string) (*spectate.Hub, func()) {
	if addr == "" {
		return nil, func() {}
	}
	hub := spectate.NewHub(&cfg.Spectate)
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		slog.Info("spectator stream listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("spectator server failed", "error", err)
		}
	}()

	return hub, func() {
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
