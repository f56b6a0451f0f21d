package spymaster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/cache/cachelru"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/database/stats"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/game"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	ctx := context.Background()

	db, err := database.New(ctx, &database.Config{
		FilePath: filepath.Join(t.TempDir(), "archive.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })

	c, err := cachelru.NewLRU(16)
	require.NoError(t, err)

	return NewArchive(stats.New(db, c))
}

func TestArchiveRoundtrip(t *testing.T) {
	t.Parallel()
	a := newTestArchive(t)
	ctx := context.Background()

	_, ok := a.Lifetime(ctx, "غادة")
	assert.False(t, ok, "unknown player has no career yet")

	require.NoError(t, a.Record(ctx, game.RoundRecord{
		PlayerName:  "غادة",
		RoomCode:    "AB2345",
		RoundNumber: 1,
		Category:    "animals",
		Points:      2,
		VotedSpy:    true,
		Outcome:     game.OutcomeSpyCaught,
		PlayersNum:  5,
	}))
	require.NoError(t, a.Record(ctx, game.RoundRecord{
		PlayerName:  "غادة",
		RoomCode:    "AB2345",
		RoundNumber: 2,
		Category:    "cars",
		WasSpy:      true,
		Points:      1,
		GuessedWord: true,
		Outcome:     game.OutcomeSpyEscaped,
		PlayersNum:  5,
	}))

	points, ok := a.Lifetime(ctx, "غادة")
	require.True(t, ok)
	assert.Equal(t, 3, points)

	// other players are unaffected
	_, ok = a.Lifetime(ctx, "سالم")
	assert.False(t, ok)
}
