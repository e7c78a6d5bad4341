package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/navadeep2604/Reflex-Rush/internal/common/clock"
	"github.com/navadeep2604/Reflex-Rush/internal/config"
	"github.com/navadeep2604/Reflex-Rush/internal/display"
	"github.com/navadeep2604/Reflex-Rush/internal/handlers/command"
	"github.com/navadeep2604/Reflex-Rush/internal/handlers/tui"
	"github.com/navadeep2604/Reflex-Rush/internal/history"
	"github.com/navadeep2604/Reflex-Rush/internal/leaderboard"
	archiveRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/archive"
	historyRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/history"
	leaderboardRepo "github.com/navadeep2604/Reflex-Rush/internal/repositories/leaderboard"
	gameService "github.com/navadeep2604/Reflex-Rush/internal/services/game"
	"github.com/navadeep2604/Reflex-Rush/internal/services/messaging"
	"github.com/navadeep2604/Reflex-Rush/internal/touch"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: $REFLEX_CONFIG or reflexrush.toml)")
	headless := flag.Bool("headless", false, "run without the terminal UI")
	flag.Parse()

	// .env is optional; explicit environment wins either way
	_ = godotenv.Load()

	cfg := loadConfig(*configPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	historyStore, leaderboardStore, archiveStore := connectStorage(ctx, cfg)

	historyLog, err := history.New(&history.Config{
		MaxSize:   cfg.ResolvedHistoryMaxSize(),
		ChunkSize: cfg.ResolvedHistoryChunkSize(),
	})
	if err != nil {
		log.Fatalf("Failed to create history log: %v", err)
	}

	board, err := leaderboard.New(&leaderboard.Config{
		Capacity: cfg.ResolvedMaxPlayers(),
	})
	if err != nil {
		log.Fatalf("Failed to create leaderboard: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	channels := make([]*touch.Channel, cfg.ResolvedMaxPlayers())
	for i := range channels {
		channels[i], err = touch.New(&touch.Config{
			Clock:    systemClock,
			Debounce: cfg.ResolvedTouchDebounce(),
		})
		if err != nil {
			log.Fatalf("Failed to create touch channel %d: %v", i, err)
		}
	}

	hub, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging hub: %v", err)
	}

	var device display.Device
	var screen *tui.Screen
	if *headless {
		device = display.LogDevice{}
	} else {
		screen = tui.NewScreen()
		device = screen
	}

	redMin, redMax := cfg.ResolvedRedRange()
	yellowMin, yellowMax := cfg.ResolvedYellowRange()
	greenMin, greenMax := cfg.ResolvedGreenRange()

	gameSvc, err := gameService.NewService(ctx, &gameService.Config{
		MaxPlayers:      cfg.ResolvedMaxPlayers(),
		RedRange:        gameService.PhaseRange{Min: redMin, Max: redMax},
		YellowRange:     gameService.PhaseRange{Min: yellowMin, Max: yellowMax},
		GreenRange:      gameService.PhaseRange{Min: greenMin, Max: greenMax},
		PollInterval:    cfg.ResolvedPollInterval(),
		Channels:        channels,
		History:         historyLog,
		Board:           board,
		Device:          device,
		Messaging:       hub,
		HistoryRepo:     historyStore,
		LeaderboardRepo: leaderboardStore,
		ArchiveRepo:     archiveStore,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	router, err := command.NewRouter(&command.Config{
		GameService: gameSvc,
		RemoteStart: cfg.Game.RemoteStart,
	})
	if err != nil {
		log.Fatalf("Failed to create command router: %v", err)
	}

	server, err := command.NewServer(&command.ServerConfig{
		Addr:      cfg.ResolvedListenAddr(),
		Router:    router,
		Messaging: hub,
	})
	if err != nil {
		log.Fatalf("Failed to create command server: %v", err)
	}

	go func() {
		if err := server.ListenAndServe(ctx); err != nil {
			log.Printf("Command server stopped: %v", err)
		}
	}()

	wsHandler, err := command.NewWebSocketHandler(&command.ServerConfig{
		Addr:      cfg.ResolvedHTTPAddr(),
		Router:    router,
		Messaging: hub,
	})
	if err != nil {
		log.Fatalf("Failed to create websocket handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	httpServer := &http.Server{
		Addr:    cfg.ResolvedHTTPAddr(),
		Handler: mux,
	}
	go func() {
		log.Printf("Websocket endpoint on %s/ws", cfg.ResolvedHTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	if *headless {
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
		<-sc
	} else {
		model, err := tui.New(&tui.Config{
			GameService:       gameSvc,
			Screen:            screen,
			MenuDebounce:      cfg.ResolvedMenuDebounce(),
			ConfirmDebounce:   cfg.ResolvedConfirmDebounce(),
			ResultDisplayTime: cfg.ResolvedResultDisplayTime(),
		})
		if err != nil {
			log.Fatalf("Failed to create terminal UI: %v", err)
		}

		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Fatalf("Terminal UI failed: %v", err)
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}

	log.Println("Reflex Rush has shut down")
}

// loadConfig resolves the configuration file. A missing default file
// is fine; any other load failure is fatal.
func loadConfig(path string) config.Config {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("REFLEX_CONFIG")
	}
	if path == "" {
		path = "reflexrush.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg, err = config.FromEnv()
			if err != nil {
				log.Fatalf("Invalid configuration: %v", err)
			}
			return cfg
		}
		log.Fatalf("Failed to load config %s: %v", path, err)
	}

	return cfg
}

// connectStorage wires up whichever persistence backends are
// configured. Failures degrade to in-memory state, never fatal.
func connectStorage(ctx context.Context, cfg config.Config) (historyRepo.Repository, leaderboardRepo.Repository, archiveRepo.Repository) {
	var historyStore historyRepo.Repository
	var leaderboardStore leaderboardRepo.Repository
	var archiveStore archiveRepo.Repository

	if cfg.Storage.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       0,
		})

		hr, err := historyRepo.NewRedis(&historyRepo.Config{RedisClient: redisClient})
		if err != nil {
			log.Printf("History storage unavailable, running in-memory: %v", err)
		} else {
			historyStore = hr
		}

		lr, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: redisClient})
		if err != nil {
			log.Printf("Leaderboard storage unavailable, running in-memory: %v", err)
		} else {
			leaderboardStore = lr
		}
	} else {
		log.Println("No redis address configured, running in-memory")
	}

	if cfg.Storage.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			log.Printf("Round archive unavailable: %v", err)
			return historyStore, leaderboardStore, nil
		}

		ar, err := archiveRepo.NewPostgres(&archiveRepo.Config{Pool: pool})
		if err != nil {
			log.Printf("Round archive unavailable: %v", err)
			return historyStore, leaderboardStore, nil
		}

		if err := ar.EnsureSchema(ctx); err != nil {
			log.Printf("Round archive schema setup failed: %v", err)
			return historyStore, leaderboardStore, nil
		}

		archiveStore = ar
	}

	return historyStore, leaderboardStore, archiveStore
}
