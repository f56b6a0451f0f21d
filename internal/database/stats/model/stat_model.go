package model

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeSpyCaught  Outcome = "spy_caught"
	OutcomeSpyEscaped Outcome = "spy_escaped"
)

func NewRound(playerName string) Round {
	return Round{ID: uuid.New(), PlayerName: playerName, CreatedAt: time.Now()}
}

// Round is one finished round from a single player's perspective.
type Round struct {
	ID         uuid.UUID `json:"-"`
	PlayerName string    `json:"playerName"`

	RoomCode    string  `json:"roomCode"`
	RoundNumber int     `json:"roundNumber"`
	Category    string  `json:"category"`
	WasSpy      bool    `json:"wasSpy"`
	Points      int     `json:"points"`
	VotedSpy    bool    `json:"votedSpy"`
	GuessedWord bool    `json:"guessedWord"`
	Outcome     Outcome `json:"outcome"`

	PlayersNum int       `json:"playersNum"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Lifetime aggregates a player's archive for the join-time lookup.
type Lifetime struct {
	Rounds     int
	Points     int
	SpyRounds  int
	SpyCatches int
	WordsFound int
}
