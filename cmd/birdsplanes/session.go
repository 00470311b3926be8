package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birds-planes/internal/audio"
	"github.com/vovakirdan/birds-planes/internal/config"
	"github.com/vovakirdan/birds-planes/internal/game"
	"github.com/vovakirdan/birds-planes/internal/storage"
)

// session bundles the game with the resources it borrows.
type session struct {
	game   *game.Game
	store  *storage.Store
	player *audio.Player
}

// loadConfig reads the configuration and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg := config.Load(flagConfig, logger)
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newSession loads config, opens the score store and the audio device, and
// creates the game. Store and audio failures are logged and play continues
// without them.
func newSession(logger *log.Logger) (*session, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting session", "seed", seed, "lanes", cfg.NumLanes, "lives", cfg.Lives)

	s := &session{player: audio.NewPlayer(logger)}
	opts := []game.Option{
		game.WithLogger(logger),
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithSounder(s.player),
	}

	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database, high score will not be saved", "path", flagDBPath, "error", err)
	} else {
		s.store = store
		opts = append(opts, game.WithStore(store))
	}

	//nolint:errcheck // Init logs its own failure; the player stays silent
	s.player.Init()

	s.game = game.New(cfg, opts...)
	return s, nil
}

// Close releases the store and the audio device.
func (s *session) Close() {
	s.player.Close()
	if s.store != nil {
		s.store.Close()
	}
}
