package spymaster

import (
	"context"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database/stats"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database/stats/model"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/game"
)

// Archive bridges the engine's round records into the bolt-backed stats
// store.
type Archive struct {
	stats *stats.DB
}

var _ game.Archive = (*Archive)(nil)

func NewArchive(statsDB *stats.DB) *Archive {
	return &Archive{stats: statsDB}
}

func (a *Archive) Record(_ context.Context, rec game.RoundRecord) error {
	m := model.NewRound(rec.PlayerName)
	m.RoomCode = rec.RoomCode
	m.RoundNumber = rec.RoundNumber
	m.Category = rec.Category
	m.WasSpy = rec.WasSpy
	m.Points = rec.Points
	m.VotedSpy = rec.VotedSpy
	m.GuessedWord = rec.GuessedWord
	m.Outcome = model.Outcome(rec.Outcome)
	m.PlayersNum = rec.PlayersNum
	return a.stats.Add(m)
}

// Lifetime returns the player's career points. A player with no archive
// yet reports ok=false; that is not an error.
func (a *Archive) Lifetime(_ context.Context, playerName string) (int, bool) {
	agg, err := a.stats.FetchLifetime(playerName)
	if err != nil {
		return 0, false
	}
	return agg.Points, agg.Rounds > 0
}
