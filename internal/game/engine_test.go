package game

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/words"
)

type eventSink struct {
	mu     sync.Mutex
	events map[string][]Event
}

func newEventSink() *eventSink {
	return &eventSink{events: map[string][]Event{}}
}

func (s *eventSink) Send(playerID string, ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[playerID] = append(s.events[playerID], ev)
}

func (s *eventSink) typesFor(playerID string) []EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []EventType
	for _, ev := range s.events[playerID] {
		out = append(out, ev.Type)
	}
	return out
}

type memArchive struct {
	mu   sync.Mutex
	rows []RoundRecord
}

func (a *memArchive) Record(ctx context.Context, rec RoundRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rows = append(a.rows, rec)
	return nil
}

func (a *memArchive) Lifetime(ctx context.Context, name string) (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	total, found := 0, false
	for _, r := range a.rows {
		if r.PlayerName == name {
			total += r.Points
			found = true
		}
	}
	return total, found
}

func newTestEngine(t *testing.T) (*Engine, *eventSink, *memArchive) {
	t.Helper()
	sink := newEventSink()
	archive := &memArchive{}
	e := NewEngine(
		context.Background(),
		zap.NewNop(),
		NewStore(),
		NewSessionManager(30*time.Minute),
		sink,
		archive,
		ClassicDefaults(),
	)
	return e, sink, archive
}

// lobbyOf seats n players in a fresh room and readies everyone.
func lobbyOf(t *testing.T, e *Engine, n int, mode Mode) (*Room, []*JoinPayload) {
	t.Helper()
	ctx := context.Background()

	host, err := e.CreateRoom(ctx, "اللاعب 0", mode, WordsInternal)
	require.NoError(t, err)
	payloads := []*JoinPayload{host}

	for i := 1; i < n; i++ {
		p, err := e.JoinRoom(ctx, host.Room.Code, fmt.Sprintf("اللاعب %d", i))
		require.NoError(t, err)
		require.NoError(t, e.ToggleReady(ctx, p.PlayerID))
		payloads = append(payloads, p)
	}

	r, ok := e.store.Get(host.Room.Code)
	require.True(t, ok)
	return r, payloads
}

func startedGame(t *testing.T, e *Engine, n int, mode Mode) (*Room, []*JoinPayload) {
	t.Helper()
	r, payloads := lobbyOf(t, e, n, mode)
	require.NoError(t, e.StartGame(context.Background(), payloads[0].PlayerID))
	return r, payloads
}

// dealtRound drives a started game through category voting into the
// questioning phase.
func dealtRound(t *testing.T, e *Engine, n int, mode Mode) (*Room, []*JoinPayload) {
	t.Helper()
	ctx := context.Background()
	r, payloads := startedGame(t, e, n, mode)
	for _, p := range payloads {
		require.NoError(t, e.VoteCategory(ctx, p.PlayerID, "animals"))
	}
	require.Equal(t, PhaseWordReveal, currentPhase(r))
	e.onExpire(r.Code, TimerReveal)
	require.Equal(t, PhaseQuestioning, currentPhase(r))
	return r, payloads
}

func currentPhase(r *Room) Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Phase
}

func spyAndCrew(r *Room) (spies, crew []*Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.Players {
		if p.Role == RoleSpy {
			spies = append(spies, p)
		} else {
			crew = append(crew, p)
		}
	}
	return spies, crew
}

func TestCreateRoom(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	payload, err := e.CreateRoom(ctx, "  محمد  ", ModeClassic, WordsInternal)
	require.NoError(t, err)
	assert.Len(t, payload.Room.Code, 6)
	assert.NotEmpty(t, payload.SessionToken)
	require.Len(t, payload.Room.Players, 1)
	assert.True(t, payload.Room.Players[0].Host)
	assert.True(t, payload.Room.Players[0].Ready, "host is auto-ready")
	assert.NotEmpty(t, payload.Room.Players[0].Avatar)
	assert.Equal(t, PhaseLobby, payload.Room.Phase)

	_, err = e.CreateRoom(ctx, "x", ModeClassic, WordsInternal)
	assert.ErrorIs(t, err, ErrBadName)
}

func TestJoinRoomRules(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	host, err := e.CreateRoom(ctx, "المضيف", ModeClassic, WordsInternal)
	require.NoError(t, err)
	code := host.Room.Code

	_, err = e.JoinRoom(ctx, "ZZZZZZ", "ضيف")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = e.JoinRoom(ctx, code, "المضيف")
	assert.ErrorIs(t, err, ErrNameTaken)

	for i := 1; i < 10; i++ {
		_, err = e.JoinRoom(ctx, code, fmt.Sprintf("ضيف %d", i))
		require.NoError(t, err)
	}
	_, err = e.JoinRoom(ctx, code, "الحادي عشر")
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestJoinAfterStartRejected(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)

	r, _ := startedGame(t, e, 4, ModeClassic)
	_, err := e.JoinRoom(context.Background(), r.Code, "متأخر")
	assert.ErrorIs(t, err, ErrRoomStarted)
}

func TestStartGameGuards(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := lobbyOf(t, e, 3, ModeClassic)
	err := e.StartGame(ctx, payloads[0].PlayerID)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)

	fourth, err := e.JoinRoom(ctx, r.Code, "الرابع")
	require.NoError(t, err)
	err = e.StartGame(ctx, payloads[0].PlayerID)
	assert.ErrorIs(t, err, ErrPlayersNotReady)

	require.NoError(t, e.ToggleReady(ctx, fourth.PlayerID))
	err = e.StartGame(ctx, payloads[1].PlayerID)
	assert.ErrorIs(t, err, ErrNotHost)

	require.NoError(t, e.StartGame(ctx, payloads[0].PlayerID))
	assert.Equal(t, PhaseCategoryVoting, currentPhase(r))
}

func TestCategoryQuorumDealsRound(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := startedGame(t, e, 4, ModeClassic)
	for i, p := range payloads {
		require.NoError(t, e.VoteCategory(ctx, p.PlayerID, "cars"))
		if i < len(payloads)-1 {
			assert.Equal(t, PhaseCategoryVoting, currentPhase(r))
		}
	}
	assert.Equal(t, PhaseWordReveal, currentPhase(r))

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, "cars", r.Category)
	assert.NotEmpty(t, r.Word)

	spies := 0
	for _, p := range r.Players {
		require.Equal(t, 3, p.QuestionsLeft)
		if p.Role == RoleSpy {
			spies++
			assert.Equal(t, SpyWordClassic, p.Word)
		} else {
			assert.Equal(t, r.Word, p.Word)
		}
	}
	assert.Equal(t, 1, spies)
	assert.Len(t, r.TurnQueue, 4)
}

func TestCategoryTimeoutDealsFromPartialBallot(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := startedGame(t, e, 4, ModeClassic)
	require.NoError(t, e.VoteCategory(ctx, payloads[1].PlayerID, "countries"))

	e.onExpire(r.Code, TimerCategoryVote)
	assert.Equal(t, PhaseWordReveal, currentPhase(r))

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, "countries", r.Category)
}

func TestBlindModeSpyGetsSimilarWord(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)

	r, _ := dealtRound(t, e, 4, ModeBlind)
	spies, crew := spyAndCrew(r)
	require.Len(t, spies, 1)
	require.NotEmpty(t, crew)

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.NotEqual(t, r.Word, spies[0].Word)
	assert.NotEqual(t, SpyWordClassic, spies[0].Word)
	assert.True(t, words.SameClass(r.Category, r.Word, spies[0].Word))
}

func TestSpyCountClamped(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := lobbyOf(t, e, 4, ModeClassic)
	five := 5
	require.NoError(t, e.UpdateSettings(ctx, payloads[0].PlayerID, SettingsPatch{SpyCount: &five}))

	r.mu.Lock()
	assert.Equal(t, 2, r.Settings.SpyCount, "clamped to half the roster")
	r.mu.Unlock()

	require.NoError(t, e.StartGame(ctx, payloads[0].PlayerID))
	for _, p := range payloads {
		require.NoError(t, e.VoteCategory(ctx, p.PlayerID, "animals"))
	}
	spies, _ := spyAndCrew(r)
	assert.Len(t, spies, 2)
}

func TestQuestioningFlow(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, _ := dealtRound(t, e, 4, ModeClassic)

	r.mu.Lock()
	asker := r.TurnID
	var target string
	for _, p := range r.Players {
		if p.ID != asker {
			target = p.ID
			break
		}
	}
	r.mu.Unlock()

	// only the holder can ask
	err := e.AskQuestion(ctx, target, asker, "ما لونه؟")
	assert.ErrorIs(t, err, ErrNotYourTurn)

	require.NoError(t, e.AskQuestion(ctx, asker, target, "ما لونه؟"))

	// one pending question at a time
	err = e.AskQuestion(ctx, asker, target, "وما حجمه؟")
	assert.ErrorIs(t, err, ErrPendingQuestion)

	// only the target can answer
	err = e.AnswerQuestion(ctx, asker, "أحمر")
	assert.ErrorIs(t, err, ErrNoPendingAnswer)

	require.NoError(t, e.AnswerQuestion(ctx, target, "أحمر"))

	r.mu.Lock()
	defer r.mu.Unlock()
	require.Len(t, r.Questions, 1)
	assert.True(t, r.Questions[0].Answered)
	assert.Equal(t, "أحمر", r.Questions[0].Answer)
	assert.NotEqual(t, asker, r.TurnID, "turn advanced after the answer")
	p := r.FindPlayer(asker)
	assert.Equal(t, 2, p.QuestionsLeft)
}

func TestAskTimeoutCostsAQuestion(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)

	r, _ := dealtRound(t, e, 4, ModeClassic)
	r.mu.Lock()
	holder := r.TurnID
	r.mu.Unlock()

	e.onExpire(r.Code, TimerAsk)

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, 2, r.FindPlayer(holder).QuestionsLeft)
	assert.NotEqual(t, holder, r.TurnID)
}

func TestEveryoneDoneEntersTransition(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	assert.Equal(t, PhaseTransition, currentPhase(r))

	e.onExpire(r.Code, TimerTransition)
	assert.Equal(t, PhaseSpyVoting, currentPhase(r))
}

func TestSpyVotingScoresAndReveals(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)

	spies, crew := spyAndCrew(r)
	require.Len(t, spies, 1)
	spy := spies[0]

	// two crew members finger the spy, one misses, the spy deflects
	require.NoError(t, e.VoteSpy(ctx, crew[0].ID, spy.ID))
	require.NoError(t, e.VoteSpy(ctx, crew[1].ID, spy.ID))
	require.NoError(t, e.VoteSpy(ctx, crew[2].ID, crew[0].ID))
	require.NoError(t, e.VoteSpy(ctx, spy.ID, crew[1].ID))

	assert.Equal(t, PhaseSpyGuess, currentPhase(r))

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, 1, crew[0].Score)
	assert.Equal(t, 1, crew[1].Score)
	assert.Zero(t, crew[2].Score)
	assert.Zero(t, spy.Score)
	assert.True(t, r.SpyCaught)
	assert.Equal(t, spy.ID, r.MostVotedID)
	assert.Contains(t, r.RevealedSpyIDs, spy.ID)
}

func TestSpyVoteReplaceableUntilDeadline(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)

	spies, crew := spyAndCrew(r)
	voter := crew[0]

	require.NoError(t, e.VoteSpy(ctx, voter.ID, crew[1].ID))
	require.NoError(t, e.VoteSpy(ctx, voter.ID, spies[0].ID))

	r.mu.Lock()
	require.Len(t, r.SpyVotes, 1, "replacement, not a second ballot entry")
	assert.Equal(t, spies[0].ID, r.SpyVotes[0].SuspectID)
	r.PhaseDeadline = time.Now().Add(-time.Second)
	r.mu.Unlock()

	err := e.VoteSpy(ctx, voter.ID, crew[1].ID)
	assert.ErrorIs(t, err, ErrVoteClosed)
}

func TestSystemValidationCorrectGuess(t *testing.T) {
	t.Parallel()
	e, _, archive := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	r.mu.Lock()
	r.Settings.ValidationMode = ValidationSystem
	r.mu.Unlock()

	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)
	e.onExpire(r.Code, TimerSpyVote)

	spies, _ := spyAndCrew(r)
	r.mu.Lock()
	word := r.Word
	r.mu.Unlock()

	require.NoError(t, e.SubmitGuess(ctx, spies[0].ID, word))

	assert.Equal(t, PhaseResults, currentPhase(r))
	r.mu.Lock()
	require.NotNil(t, r.GuessCorrect)
	assert.True(t, *r.GuessCorrect)
	assert.Equal(t, 1, spies[0].Score)
	r.mu.Unlock()

	archive.mu.Lock()
	defer archive.mu.Unlock()
	assert.Len(t, archive.rows, 4, "one archive row per player")
}

func TestPlayerValidationMajority(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)
	e.onExpire(r.Code, TimerSpyVote)

	spies, crew := spyAndCrew(r)
	require.NoError(t, e.SubmitGuess(ctx, spies[0].ID, "تخمين بعيد"))
	assert.Equal(t, PhaseGuessValidation, currentPhase(r))

	// the spy has no say
	err := e.ValidateGuess(ctx, spies[0].ID, true)
	assert.ErrorIs(t, err, ErrSpyCannotVote)

	require.NoError(t, e.ValidateGuess(ctx, crew[0].ID, false))
	// verdicts are immutable
	err = e.ValidateGuess(ctx, crew[0].ID, true)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	require.NoError(t, e.ValidateGuess(ctx, crew[1].ID, false))
	require.NoError(t, e.ValidateGuess(ctx, crew[2].ID, true))

	assert.Equal(t, PhaseResults, currentPhase(r))
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotNil(t, r.GuessCorrect)
	assert.False(t, *r.GuessCorrect)
	assert.Zero(t, spies[0].Score)
}

func TestValidationTimeoutFavorsSpy(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)
	e.onExpire(r.Code, TimerSpyVote)

	spies, _ := spyAndCrew(r)
	require.NoError(t, e.SubmitGuess(ctx, spies[0].ID, "تخمين"))

	// nobody validates before the window closes
	e.onExpire(r.Code, TimerValidation)

	assert.Equal(t, PhaseResults, currentPhase(r))
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotNil(t, r.GuessCorrect)
	assert.True(t, *r.GuessCorrect, "empty ballot defaults in the spy's favor")
	assert.Equal(t, 1, spies[0].Score)
}

func TestGuessTimeoutWithoutGuess(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)
	e.onExpire(r.Code, TimerSpyVote)
	e.onExpire(r.Code, TimerSpyGuess)

	assert.Equal(t, PhaseResults, currentPhase(r))
	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Nil(t, r.GuessCorrect)
}

func TestNextRoundResetsAndKeepsScores(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)

	spies, crew := spyAndCrew(r)
	for _, c := range crew {
		require.NoError(t, e.VoteSpy(ctx, c.ID, spies[0].ID))
	}
	require.NoError(t, e.VoteSpy(ctx, spies[0].ID, crew[0].ID))
	e.onExpire(r.Code, TimerSpyGuess)
	require.Equal(t, PhaseResults, currentPhase(r))

	require.NoError(t, e.NextRound(ctx, payloads[0].PlayerID))
	assert.Equal(t, PhaseCategoryVoting, currentPhase(r))

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, 2, r.Round)
	assert.Empty(t, r.Word)
	for _, c := range crew {
		assert.Equal(t, 1, c.Score, "scores carry across rounds")
	}
}

func TestReconnectRestoresSeat(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 5, ModeClassic)
	victim := payloads[2]

	r.mu.Lock()
	before := r.FindPlayer(victim.PlayerID)
	before.Score = 7
	role := before.Role
	word := before.Word
	r.mu.Unlock()

	e.MarkDisconnected(ctx, victim.PlayerID)
	r.mu.Lock()
	assert.False(t, r.FindPlayer(victim.PlayerID).Active())
	r.mu.Unlock()

	payload, err := e.Reconnect(ctx, r.Code, victim.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, victim.PlayerID, payload.PlayerID)

	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.FindPlayer(victim.PlayerID)
	assert.True(t, p.Active())
	assert.Equal(t, 7, p.Score)
	assert.Equal(t, role, p.Role)
	assert.Equal(t, word, p.Word)
}

func TestReconnectPastGraceRejected(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	victim := payloads[1]

	r.mu.Lock()
	stale := time.Now().Add(-31 * time.Minute)
	r.FindPlayer(victim.PlayerID).DisconnectedAt = &stale
	r.mu.Unlock()

	_, err := e.Reconnect(ctx, r.Code, victim.SessionToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestDisconnectShrinksQuorum(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)

	spies, crew := spyAndCrew(r)
	require.NoError(t, e.VoteSpy(ctx, crew[0].ID, spies[0].ID))
	require.NoError(t, e.VoteSpy(ctx, crew[1].ID, spies[0].ID))
	require.NoError(t, e.VoteSpy(ctx, spies[0].ID, crew[0].ID))
	require.Equal(t, PhaseSpyVoting, currentPhase(r))

	// the last hold-out drops; the ballot resolves without them
	e.MarkDisconnected(ctx, crew[2].ID)
	assert.Equal(t, PhaseSpyGuess, currentPhase(r))
}

func TestHostLeavingTransfersHost(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := lobbyOf(t, e, 4, ModeClassic)
	require.NoError(t, e.LeaveRoom(ctx, payloads[0].PlayerID))

	r.mu.Lock()
	defer r.mu.Unlock()
	require.Len(t, r.Players, 3)
	newHost := r.FindPlayer(r.HostID)
	require.NotNil(t, newHost)
	assert.True(t, newHost.Host)
	assert.True(t, newHost.Ready, "promoted host is auto-ready")
}

func TestTransferHost(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := lobbyOf(t, e, 4, ModeClassic)
	err := e.TransferHost(ctx, payloads[1].PlayerID, payloads[2].PlayerID)
	assert.ErrorIs(t, err, ErrNotHost)

	require.NoError(t, e.TransferHost(ctx, payloads[0].PlayerID, payloads[2].PlayerID))

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, payloads[2].PlayerID, r.HostID)
	assert.False(t, r.FindPlayer(payloads[0].PlayerID).Host)
}

func TestKickPlayer(t *testing.T) {
	t.Parallel()
	e, sink, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := lobbyOf(t, e, 4, ModeClassic)
	target := payloads[3].PlayerID

	err := e.KickPlayer(ctx, payloads[1].PlayerID, target)
	assert.ErrorIs(t, err, ErrNotHost)

	require.NoError(t, e.KickPlayer(ctx, payloads[0].PlayerID, target))

	r.mu.Lock()
	assert.Nil(t, r.FindPlayer(target))
	r.mu.Unlock()
	assert.Contains(t, sink.typesFor(target), EventPlayerKicked)
}

func TestLastPlayerLeavingClosesRoom(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	payload, err := e.CreateRoom(ctx, "وحيد", ModeClassic, WordsInternal)
	require.NoError(t, err)

	require.NoError(t, e.LeaveRoom(ctx, payload.PlayerID))
	_, ok := e.store.Get(payload.Room.Code)
	assert.False(t, ok)
}

func TestSnapshotRedaction(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)

	r, _ := dealtRound(t, e, 4, ModeClassic)
	spies, crew := spyAndCrew(r)
	viewer := crew[0]

	r.mu.Lock()
	view := Snapshot(r, viewer.ID)
	r.mu.Unlock()

	assert.Empty(t, view.Word, "room word hidden before results")
	for _, pv := range view.Players {
		if pv.ID == viewer.ID {
			assert.Equal(t, RolePlayer, pv.Role)
			assert.NotEmpty(t, pv.Word)
		} else {
			assert.Empty(t, pv.Role, "other roles hidden mid-round")
			assert.Empty(t, pv.Word)
		}
	}

	// the spy still sees only their own card
	r.mu.Lock()
	spyView := Snapshot(r, spies[0].ID)
	r.mu.Unlock()
	for _, pv := range spyView.Players {
		if pv.ID == spies[0].ID {
			assert.Equal(t, RoleSpy, pv.Role)
			assert.Equal(t, SpyWordClassic, pv.Word)
		} else {
			assert.Empty(t, pv.Word)
		}
	}
}

func TestSnapshotAtResultsRevealsEverything(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)
	e.onExpire(r.Code, TimerSpyVote)
	e.onExpire(r.Code, TimerSpyGuess)
	require.Equal(t, PhaseResults, currentPhase(r))

	_, crew := spyAndCrew(r)
	r.mu.Lock()
	view := Snapshot(r, crew[0].ID)
	r.mu.Unlock()

	assert.NotEmpty(t, view.Word)
	for _, pv := range view.Players {
		assert.NotEmpty(t, pv.Role)
	}
}

func TestChatBroadcast(t *testing.T) {
	t.Parallel()
	e, sink, _ := newTestEngine(t)
	ctx := context.Background()

	_, payloads := lobbyOf(t, e, 4, ModeClassic)
	require.NoError(t, e.SendChat(ctx, payloads[1].PlayerID, "مرحبا جميعا"))

	for _, p := range payloads {
		assert.Contains(t, sink.typesFor(p.PlayerID), EventNewChatMessage)
	}
}

func TestSweepRemovesExpiredSeats(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := lobbyOf(t, e, 5, ModeClassic)
	victim := payloads[4].PlayerID

	r.mu.Lock()
	stale := time.Now().Add(-time.Hour)
	r.FindPlayer(victim).DisconnectedAt = &stale
	r.mu.Unlock()

	e.sweep(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Nil(t, r.FindPlayer(victim))
	assert.Len(t, r.Players, 4)
}

func TestCareerPointsFromArchive(t *testing.T) {
	t.Parallel()
	e, _, archive := newTestEngine(t)
	ctx := context.Background()

	archive.rows = []RoundRecord{
		{PlayerName: "خالد", Points: 2},
		{PlayerName: "خالد", Points: 3},
	}

	payload, err := e.CreateRoom(ctx, "خالد", ModeClassic, WordsInternal)
	require.NoError(t, err)
	assert.Equal(t, 5, payload.Room.Players[0].CareerPoints)
}

func TestExternalWordsRoom(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	host, err := e.CreateRoom(ctx, "المضيف", ModeClassic, WordsExternal)
	require.NoError(t, err)
	code := host.Room.Code
	var ids []string
	ids = append(ids, host.PlayerID)
	for i := 1; i < 4; i++ {
		p, err := e.JoinRoom(ctx, code, fmt.Sprintf("لاعب %d", i))
		require.NoError(t, err)
		require.NoError(t, e.ToggleReady(ctx, p.PlayerID))
		ids = append(ids, p.PlayerID)
	}
	require.NoError(t, e.StartGame(ctx, host.PlayerID))

	r, ok := e.store.Get(code)
	require.True(t, ok)
	require.Equal(t, PhaseCategoryVoting, currentPhase(r))

	// internal ballots are rejected in an externally-worded room
	err = e.VoteCategory(ctx, ids[1], "animals")
	assert.ErrorIs(t, err, ErrWrongPhase)

	err = e.SetExternalWords(ctx, ids[1], "قلعة", "")
	assert.ErrorIs(t, err, ErrNotHost)

	require.NoError(t, e.SetExternalWords(ctx, host.PlayerID, "قلعة", ""))
	assert.Equal(t, PhaseWordReveal, currentPhase(r))

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Equal(t, "قلعة", r.Word)
	assert.Equal(t, SpyWordClassic, r.SpyWord)
}

func TestEmptyTextRejected(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	r.mu.Lock()
	asker := r.TurnID
	var target string
	for _, p := range r.Players {
		if p.ID != asker {
			target = p.ID
			break
		}
	}
	r.mu.Unlock()

	err := e.AskQuestion(ctx, asker, target, "   ")
	assert.ErrorIs(t, err, ErrEmptyText)
	r.mu.Lock()
	assert.Empty(t, r.Questions)
	assert.Equal(t, 3, r.FindPlayer(asker).QuestionsLeft, "a blank question costs nothing")
	r.mu.Unlock()

	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)
	e.onExpire(r.Code, TimerSpyVote)

	spies, _ := spyAndCrew(r)
	err = e.SubmitGuess(ctx, spies[0].ID, "  ")
	assert.ErrorIs(t, err, ErrEmptyText)
	r.mu.Lock()
	assert.Empty(t, r.SpyGuess, "a blank guess does not consume the attempt")
	r.mu.Unlock()
}

func TestLateCategoryBallotRejected(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := startedGame(t, e, 4, ModeClassic)
	r.mu.Lock()
	r.PhaseDeadline = time.Now().Add(-time.Second)
	r.mu.Unlock()

	err := e.VoteCategory(ctx, payloads[1].PlayerID, "animals")
	assert.ErrorIs(t, err, ErrVoteClosed)
}

func TestLateValidationBallotRejected(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, payloads := dealtRound(t, e, 4, ModeClassic)
	for _, p := range payloads {
		require.NoError(t, e.MarkDone(ctx, p.PlayerID))
	}
	e.onExpire(r.Code, TimerTransition)
	e.onExpire(r.Code, TimerSpyVote)

	spies, crew := spyAndCrew(r)
	require.NoError(t, e.SubmitGuess(ctx, spies[0].ID, "تخمين"))
	require.Equal(t, PhaseGuessValidation, currentPhase(r))

	r.mu.Lock()
	r.PhaseDeadline = time.Now().Add(-time.Second)
	r.mu.Unlock()

	err := e.ValidateGuess(ctx, crew[0].ID, true)
	assert.ErrorIs(t, err, ErrVoteClosed)
}
