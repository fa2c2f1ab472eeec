package main

import (
	"flag"
	"io"
	"os"

	"npc-arena/internal/config"
	"npc-arena/internal/console"
	"npc-arena/internal/domain"
	"npc-arena/internal/engine"
	"npc-arena/internal/network"
	"npc-arena/internal/observers"
	"npc-arena/internal/server"
	"npc-arena/internal/version"
	"npc-arena/pkg/logger"
	"npc-arena/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Флаги
	var (
		configPath string
		seed       int64
		feedAddr   string
		scriptPath string
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.Int64Var(&seed, "seed", 0, "Attribute generator seed (0 for random)")
	flag.StringVar(&feedAddr, "feed", "", "Address for the read-only HTTP/WebSocket feed, e.g. :8080")
	flag.StringVar(&scriptPath, "script", "", "Read console commands from file instead of stdin")
	flag.Parse()

	logger.Log.Info("Starting NPC arena...")
	logger.Log.Info(version.String())

	// 2. Конфиг: файл, затем .env и ARENA_*, затем флаги
	cfg := config.NewConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Log.Fatal("Failed to load config:", err)
		}
		cfg = loaded
	}
	if err := config.LoadEnv(&cfg); err != nil {
		logger.Log.Fatal("Invalid environment:", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if feedAddr != "" {
		cfg.Feed.Enabled = true
		cfg.Feed.Address = feedAddr
	}
	logger.Log.Infof("🎲 Using seed: %d", cfg.Seed)

	// 3. Приёмники событий
	sinks := []domain.Observer{
		observers.NewLogSink(cfg.AuditLogPath),
		observers.NewConsoleSink(os.Stdout),
	}
	var hub *network.Broadcaster
	if cfg.Feed.Enabled {
		hub = network.NewBroadcaster()
		sinks = append(sinks, observers.NewFeedSink(hub))
	}

	game := engine.NewGame(utils.NewRNG(cfg.Seed), sinks...)

	// 4. Лента для зрителей
	if hub != nil {
		srv := server.New(game, hub, cfg.Feed.Address)
		go func() {
			if err := srv.Run(); err != nil {
				logger.Log.Fatal("Feed server error:", err)
			}
		}()
	}

	// 5. Консоль
	var in io.Reader = os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			logger.Log.Fatal("Failed to open script:", err)
		}
		defer f.Close()
		in = f
	}

	if err := console.New(game, cfg, os.Stdout).Run(in); err != nil {
		logger.Log.WithError(err).Error("Console stopped.")
	}
	logger.Log.Info("Done.")
}
