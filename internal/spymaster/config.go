// Package spymaster wires configuration and persistence into the game
// engine for the server binary.
package spymaster

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/game"
)

type Config struct {
	Debug     bool   `envconfig:"SPY_DEBUG" default:"false"`
	Addr      string `envconfig:"SPY_ADDR" default:":8080"`
	PublicURL string `envconfig:"SPY_PUBLIC_URL" default:"http://localhost:8080"`

	// Size of the ARC cache in front of the match archive
	CacheSize int `envconfig:"SPY_CACHE_SIZE" default:"256"`

	// How long a dropped seat stays reclaimable
	DisconnectGrace time.Duration `envconfig:"SPY_DISCONNECT_GRACE" default:"30m"`

	CategoryVoteSeconds int `envconfig:"SPY_CATEGORY_VOTE_SECONDS" default:"30"`
	RevealSeconds       int `envconfig:"SPY_REVEAL_SECONDS" default:"10"`
	TransitionSeconds   int `envconfig:"SPY_TRANSITION_SECONDS" default:"10"`
	ValidationSeconds   int `envconfig:"SPY_VALIDATION_SECONDS" default:"30"`
	AskSeconds          int `envconfig:"SPY_ASK_SECONDS" default:"60"`
	AnswerSeconds       int `envconfig:"SPY_ANSWER_SECONDS" default:"30"`
	SpyVoteSeconds      int `envconfig:"SPY_VOTE_SECONDS" default:"60"`
	SpyGuessSeconds     int `envconfig:"SPY_GUESS_SECONDS" default:"30"`
	QuestionsPerPlayer  int `envconfig:"SPY_QUESTIONS_PER_PLAYER" default:"3"`
	MinPlayers          int `envconfig:"SPY_MIN_PLAYERS" default:"4"`
	MaxPlayers          int `envconfig:"SPY_MAX_PLAYERS" default:"10"`

	DB database.Config
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return cfg, nil
}

// GameDefaults projects the config onto the engine's knob set.
func (c *Config) GameDefaults() game.Defaults {
	return game.Defaults{
		CategoryVoteSeconds: c.CategoryVoteSeconds,
		RevealSeconds:       c.RevealSeconds,
		TransitionSeconds:   c.TransitionSeconds,
		ValidationSeconds:   c.ValidationSeconds,
		AskSeconds:          c.AskSeconds,
		AnswerSeconds:       c.AnswerSeconds,
		SpyVoteSeconds:      c.SpyVoteSeconds,
		SpyGuessSeconds:     c.SpyGuessSeconds,
		QuestionsPerPlayer:  c.QuestionsPerPlayer,
		MinPlayers:          c.MinPlayers,
		MaxPlayers:          c.MaxPlayers,
	}
}
