package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TicTacToe/internal/config"
	"github.com/mitchelldurbincs/TicTacToe/internal/console"
	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/TicTacToe/internal/logging"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	ascending := flag.Bool("ascending", true, "List history oldest first (default from config)")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
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
	eventLogger := subscribers.NewLoggerSubscriber("console-event-logger", logger, logging.ParseLevel(*logLevel))
	eventLogger.SetDevMode(cfg.Development.VerboseEvents)
	bus.Subscribe(eventLogger)

	engine := game.NewEngine(game.GameConfig{
		Ascending: *ascending,
		Logger:    logger,
		EventBus:  bus,
	})

	session := console.NewSession(engine, os.Stdout, !*noColor, logger)
	if err := session.Run(os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("Reading commands failed")
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
