package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TicTacToe/internal/config"
	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/TicTacToe/internal/logging"
	"github.com/mitchelldurbincs/TicTacToe/internal/ui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	ascending := flag.Bool("ascending", true, "List history oldest first (default from config)")
	watch := flag.Bool("watch-config", true, "Reload layout and colors when the config file changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if !flagSet("ascending") {
		*ascending = cfg.Game.HistoryAscending
	}

	logger := logging.Setup(*logLevel, cfg.Logging.Format)

	bus := events.NewEventBusWithLogger(logger)
	eventLogger := subscribers.NewLoggerSubscriber("ui-event-logger", logger, logging.ParseLevel(*logLevel))
	eventLogger.SetDevMode(cfg.Development.VerboseEvents)
	bus.Subscribe(eventLogger)

	engine := game.NewEngine(game.GameConfig{
		Ascending: *ascending,
		Logger:    logger,
		EventBus:  bus,
	})

	uiGame, err := ui.NewUIGame(engine, bus, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create UI")
	}

	if *watch && config.ConfigFilePath() != "" {
		config.WatchConfig(func(err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			eventLogger.SetDevMode(config.Get().Development.VerboseEvents)
			uiGame.RequestReload()
		})
	}

	log.Info().
		Str("game_id", engine.GameID()).
		Str("config_file", config.ConfigFilePath()).
		Msg("Starting UI client")

	ebiten.SetWindowSize(ui.ScreenWidth(), ui.ScreenHeight())
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("UI exited with error")
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
