package game

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/enescakir/emoji"
	"github.com/google/uuid"
	"github.com/valyala/fastrand"
	"go.uber.org/zap"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/guess"
	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/words"
)

// Defaults are the engine-level constants of a deployment: the fixed
// phase durations that are not host-tunable plus the roster bounds.
type Defaults struct {
	CategoryVoteSeconds int
	RevealSeconds       int
	TransitionSeconds   int
	ValidationSeconds   int
	AskSeconds          int
	AnswerSeconds       int
	SpyVoteSeconds      int
	SpyGuessSeconds     int
	QuestionsPerPlayer  int
	MinPlayers          int
	MaxPlayers          int
}

func ClassicDefaults() Defaults {
	return Defaults{
		CategoryVoteSeconds: 30,
		RevealSeconds:       10,
		TransitionSeconds:   10,
		ValidationSeconds:   30,
		AskSeconds:          60,
		AnswerSeconds:       30,
		SpyVoteSeconds:      60,
		SpyGuessSeconds:     30,
		QuestionsPerPlayer:  3,
		MinPlayers:          4,
		MaxPlayers:          10,
	}
}

// RoundRecord is the archive row written for each player when a round
// reaches results.
type RoundRecord struct {
	PlayerName  string
	RoomCode    string
	RoundNumber int
	Category    string
	WasSpy      bool
	Points      int
	VotedSpy    bool
	GuessedWord bool
	Outcome     string
	PlayersNum  int
}

const (
	OutcomeSpyCaught  = "spy_caught"
	OutcomeSpyEscaped = "spy_escaped"
)

// Archive persists finished rounds and answers career lookups at join
// time. Live room state never touches it.
type Archive interface {
	Record(ctx context.Context, rec RoundRecord) error
	Lifetime(ctx context.Context, playerName string) (points int, ok bool)
}

var avatars = []emoji.Emoji{
	emoji.DogFace, emoji.CatFace, emoji.Fox, emoji.Lion, emoji.TigerFace,
	emoji.Bear, emoji.Panda, emoji.Koala, emoji.RabbitFace, emoji.Frog,
	emoji.Penguin, emoji.Owl, emoji.Wolf,
}

func randomAvatar() string {
	return avatars[fastrand.Uint32n(uint32(len(avatars)))].String()
}

// Engine owns every room mutation. Each action locks the target room for
// its whole duration, so per-room handling is fully serialized; timer
// expirations take the same lock and re-check the phase before acting.
type Engine struct {
	log      *zap.Logger
	store    Store
	timers   *TimerManager
	sessions *SessionManager
	bc       Broadcaster
	archive  Archive
	defaults Defaults

	baseCtx context.Context
}

func NewEngine(
	ctx context.Context,
	log *zap.Logger,
	store Store,
	sessions *SessionManager,
	bc Broadcaster,
	archive Archive,
	defaults Defaults,
) *Engine {
	e := &Engine{
		log:      log,
		store:    store,
		sessions: sessions,
		bc:       bc,
		archive:  archive,
		defaults: defaults,
		baseCtx:  ctx,
	}
	e.timers = NewTimerManager(e.onExpire, e.onTick)
	return e
}

// Run drives the session sweeper until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

func (e *Engine) defaultSettings() Settings {
	return Settings{
		AskSeconds:         e.defaults.AskSeconds,
		AnswerSeconds:      e.defaults.AnswerSeconds,
		SpyVoteSeconds:     e.defaults.SpyVoteSeconds,
		SpyGuessSeconds:    e.defaults.SpyGuessSeconds,
		QuestionsPerPlayer: e.defaults.QuestionsPerPlayer,
		SpyCount:           1,
		ValidationMode:     ValidationPlayers,
	}
}

func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 2 && n <= 20
}

func clampSpyCount(requested, players int) int {
	max := players / 2
	if max < 1 {
		max = 1
	}
	if requested < 1 {
		return 1
	}
	if requested > max {
		return max
	}
	return requested
}

func (e *Engine) newPlayer(ctx context.Context, name string, host bool) *Player {
	p := &Player{
		ID:       uuid.NewString(),
		Name:     name,
		Avatar:   randomAvatar(),
		Host:     host,
		Ready:    host,
		JoinedAt: time.Now(),
	}
	if e.archive != nil {
		if pts, ok := e.archive.Lifetime(ctx, name); ok {
			p.CareerPoints = pts
		}
	}
	return p
}

// CreateRoom opens a lobby with the caller as host.
func (e *Engine) CreateRoom(ctx context.Context, name string, mode Mode, source WordSource) (*JoinPayload, error) {
	name = strings.TrimSpace(name)
	if !validName(name) {
		return nil, ErrBadName
	}
	if mode != ModeBlind {
		mode = ModeClassic
	}
	if source != WordsExternal {
		source = WordsInternal
	}

	p := e.newPlayer(ctx, name, true)
	r := &Room{
		Mode:      mode,
		Source:    source,
		Phase:     PhaseLobby,
		Settings:  e.defaultSettings(),
		Players:   []*Player{p},
		HostID:    p.ID,
		CreatedAt: time.Now(),
	}
	e.store.Insert(r)
	token := e.sessions.Issue(p, r.Code)
	e.store.Bind(p.ID, r.Code)

	e.log.Info("room created",
		zap.String("code", r.Code),
		zap.String("mode", string(mode)),
		zap.String("host", name))

	return &JoinPayload{PlayerID: p.ID, SessionToken: token, Room: Snapshot(r, p.ID)}, nil
}

// JoinRoom seats a new player in a lobby.
func (e *Engine) JoinRoom(ctx context.Context, code, name string) (*JoinPayload, error) {
	name = strings.TrimSpace(name)
	if !validName(name) {
		return nil, ErrBadName
	}
	r, ok := e.store.Get(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseLobby {
		return nil, ErrRoomStarted
	}
	if len(r.Players) >= e.defaults.MaxPlayers {
		return nil, ErrRoomFull
	}
	for _, p := range r.Players {
		if p.Name == name {
			return nil, ErrNameTaken
		}
	}

	p := e.newPlayer(ctx, name, false)
	r.Players = append(r.Players, p)
	token := e.sessions.Issue(p, r.Code)
	e.store.Bind(p.ID, r.Code)

	e.broadcastExcept(r, EventRoomUpdated, p.ID)
	return &JoinPayload{PlayerID: p.ID, SessionToken: token, Room: Snapshot(r, p.ID)}, nil
}

// Reconnect restores a seat from a session token within the grace
// window. The seat keeps its score, role, word, and place in the turn
// queue.
func (e *Engine) Reconnect(ctx context.Context, code, token string) (*JoinPayload, error) {
	r, ok := e.store.Get(code)
	if !ok {
		return nil, ErrSessionExpired
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := e.sessions.Resume(r, token)
	if err != nil {
		return nil, err
	}
	e.store.Bind(p.ID, r.Code)
	e.log.Info("player reconnected", zap.String("code", r.Code), zap.String("name", p.Name))

	e.broadcastExcept(r, EventRoomUpdated, p.ID)
	return &JoinPayload{PlayerID: p.ID, SessionToken: token, Room: Snapshot(r, p.ID)}, nil
}

// ToggleReady flips a non-host player's lobby readiness.
func (e *Engine) ToggleReady(ctx context.Context, playerID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseLobby {
		return ErrWrongPhase
	}
	if p.Host {
		return ErrNotHost
	}
	p.Ready = !p.Ready
	e.broadcastRoom(r, EventRoomUpdated)
	return nil
}

// UpdateSettings applies a host's partial settings change in the lobby
// or between rounds.
func (e *Engine) UpdateSettings(ctx context.Context, playerID string, patch SettingsPatch) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if !p.Host {
		return ErrNotHost
	}
	if r.Phase != PhaseLobby && r.Phase != PhaseResults {
		return ErrWrongPhase
	}

	clampSecs := func(v int) int {
		if v < 5 {
			return 5
		}
		if v > 600 {
			return 600
		}
		return v
	}
	s := &r.Settings
	if patch.AskSeconds != nil {
		s.AskSeconds = clampSecs(*patch.AskSeconds)
	}
	if patch.AnswerSeconds != nil {
		s.AnswerSeconds = clampSecs(*patch.AnswerSeconds)
	}
	if patch.SpyVoteSeconds != nil {
		s.SpyVoteSeconds = clampSecs(*patch.SpyVoteSeconds)
	}
	if patch.SpyGuessSeconds != nil {
		s.SpyGuessSeconds = clampSecs(*patch.SpyGuessSeconds)
	}
	if patch.QuestionsPerPlayer != nil {
		q := *patch.QuestionsPerPlayer
		if q < 1 {
			q = 1
		}
		if q > 10 {
			q = 10
		}
		s.QuestionsPerPlayer = q
	}
	if patch.SpyCount != nil {
		s.SpyCount = clampSpyCount(*patch.SpyCount, len(r.Players))
	}
	if patch.ValidationMode != nil {
		if m := *patch.ValidationMode; m == ValidationPlayers || m == ValidationSystem {
			s.ValidationMode = m
		}
	}

	e.broadcastRoom(r, EventRoomUpdated)
	return nil
}

// StartGame begins round one once the roster and readiness checks pass.
func (e *Engine) StartGame(ctx context.Context, playerID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if !p.Host {
		return ErrNotHost
	}
	if r.Phase != PhaseLobby {
		return ErrWrongPhase
	}
	if r.ActiveCount() < e.defaults.MinPlayers {
		return ErrNotEnoughPlayers
	}
	for _, pl := range r.Players {
		if !pl.Ready {
			return ErrPlayersNotReady
		}
	}

	r.Round = 1
	r.Settings.SpyCount = clampSpyCount(r.Settings.SpyCount, len(r.Players))
	e.log.Info("game started",
		zap.String("code", r.Code),
		zap.Int("players", len(r.Players)),
		zap.Int("spies", r.Settings.SpyCount))

	e.enterCategoryVoting(ctx, r)
	e.broadcastRoom(r, EventGameStarted)
	return nil
}

// VoteCategory records a category ballot entry; the round deals as soon
// as every connected player has voted or the window closes.
func (e *Engine) VoteCategory(ctx context.Context, playerID, category string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseCategoryVoting || r.Source != WordsInternal {
		return ErrWrongPhase
	}
	if !r.PhaseDeadline.IsZero() && time.Now().After(r.PhaseDeadline) {
		return ErrVoteClosed
	}
	if !words.Valid(category) {
		return ErrBadCategory
	}
	if r.HasCategoryVote(p.ID) {
		return ErrAlreadyVoted
	}

	r.CategoryVotes = append(r.CategoryVotes, CategoryVote{PlayerID: p.ID, Category: category})
	e.broadcastRoom(r, EventRoomUpdated)
	if e.categoryQuorum(r) {
		e.resolveCategory(ctx, r)
	}
	return nil
}

// SetExternalWords deals a round in an externally-worded room. The host
// supplies the word pair directly; spyWord is ignored in classic mode.
func (e *Engine) SetExternalWords(ctx context.Context, playerID, word, spyWord string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if !p.Host {
		return ErrNotHost
	}
	if r.Phase != PhaseCategoryVoting || r.Source != WordsExternal {
		return ErrWrongPhase
	}
	word = strings.TrimSpace(word)
	spyWord = strings.TrimSpace(spyWord)
	if word == "" {
		return ErrEmptyText
	}
	if r.Mode != ModeBlind || spyWord == "" {
		spyWord = SpyWordClassic
	}

	r.Category = ""
	e.dealRound(ctx, r, word, spyWord)
	return nil
}

// AskQuestion records the turn holder's question and opens the answer
// window for the target.
func (e *Engine) AskQuestion(ctx context.Context, playerID, targetID, text string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseQuestioning {
		return ErrWrongPhase
	}
	if r.TurnID != p.ID {
		return ErrNotYourTurn
	}
	if p.QuestionsLeft <= 0 {
		return ErrNoQuestionsLeft
	}
	if r.PendingQuestion() != nil {
		return ErrPendingQuestion
	}
	target := r.FindPlayer(targetID)
	if target == nil || target.ID == p.ID || !target.Active() {
		return ErrUnknownPlayer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}

	r.Questions = append(r.Questions, &Question{
		ID:      uuid.NewString(),
		FromID:  p.ID,
		ToID:    target.ID,
		Text:    text,
		AskedAt: time.Now(),
	})
	p.QuestionsLeft--
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerAnswer, secs(r.Settings.AnswerSeconds))
	e.broadcastRoom(r, EventRoomUpdated)
	return nil
}

// AnswerQuestion closes the pending question and advances the turn.
func (e *Engine) AnswerQuestion(ctx context.Context, playerID, text string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseQuestioning {
		return ErrWrongPhase
	}
	q := r.PendingQuestion()
	if q == nil || q.ToID != p.ID {
		return ErrNoPendingAnswer
	}
	q.Answer = strings.TrimSpace(text)
	q.Answered = true
	e.broadcastRoom(r, EventRoomUpdated)
	e.advanceTurn(ctx, r)
	return nil
}

// EndTurn lets the holder pass voluntarily. A question left hanging is
// closed unanswered.
func (e *Engine) EndTurn(ctx context.Context, playerID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseQuestioning {
		return ErrWrongPhase
	}
	if r.TurnID != p.ID {
		return ErrNotYourTurn
	}
	if q := r.PendingQuestion(); q != nil {
		q.Answered = true
	}
	e.advanceTurn(ctx, r)
	return nil
}

// MarkDone takes the player out of the turn rotation for the rest of
// the round.
func (e *Engine) MarkDone(ctx context.Context, playerID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseQuestioning {
		return ErrWrongPhase
	}
	if p.DoneAsking {
		return nil
	}
	p.DoneAsking = true
	e.broadcastRoom(r, EventRoomUpdated)
	if r.TurnID == p.ID {
		if q := r.PendingQuestion(); q != nil {
			q.Answered = true
		}
		e.advanceTurn(ctx, r)
	}
	return nil
}

// VoteSpy records or replaces the voter's suspect. Replacement is open
// until the deadline; afterwards the ballot is frozen even if the timer
// goroutine has not fired yet.
func (e *Engine) VoteSpy(ctx context.Context, playerID, suspectID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseSpyVoting {
		return ErrWrongPhase
	}
	if !r.PhaseDeadline.IsZero() && time.Now().After(r.PhaseDeadline) {
		return ErrVoteClosed
	}
	if suspect := r.FindPlayer(suspectID); suspect == nil {
		return ErrUnknownPlayer
	}

	if i := r.SpyVoteIndex(p.ID); i >= 0 {
		r.SpyVotes[i].SuspectID = suspectID
	} else {
		r.SpyVotes = append(r.SpyVotes, SpyVote{VoterID: p.ID, SuspectID: suspectID})
	}
	e.broadcastRoom(r, EventRoomUpdated)
	if e.spyVoteQuorum(r) {
		e.resolveSpyVotes(ctx, r)
	}
	return nil
}

// SubmitGuess takes the spy's one word guess. Under system validation
// the verdict is immediate; under player validation the room moves to a
// validation ballot.
func (e *Engine) SubmitGuess(ctx context.Context, playerID, text string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseSpyGuess {
		return ErrWrongPhase
	}
	if p.Role != RoleSpy {
		return ErrNotSpy
	}
	if r.SpyGuess != "" {
		return ErrAlreadyGuessed
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	r.SpyGuess = text

	if r.Settings.ValidationMode == ValidationSystem {
		e.applyVerdict(ctx, r, guess.Match(text, r.Word))
		return nil
	}

	r.Phase = PhaseGuessValidation
	r.ValidationVotes = nil
	r.PhaseStartedAt = time.Now()
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerValidation, secs(e.defaults.ValidationSeconds))
	e.broadcastRoom(r, EventPhaseChanged)
	return nil
}

// ValidateGuess records a non-spy's immutable verdict on the guess.
func (e *Engine) ValidateGuess(ctx context.Context, playerID string, correct bool) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.Phase != PhaseGuessValidation {
		return ErrWrongPhase
	}
	if !r.PhaseDeadline.IsZero() && time.Now().After(r.PhaseDeadline) {
		return ErrVoteClosed
	}
	if p.Role == RoleSpy {
		return ErrSpyCannotVote
	}
	if r.HasValidationVote(p.ID) {
		return ErrAlreadyVoted
	}

	r.ValidationVotes = append(r.ValidationVotes, ValidationVote{VoterID: p.ID, Correct: correct})
	e.broadcastRoom(r, EventRoomUpdated)
	if e.validationQuorum(r) {
		e.applyVerdict(ctx, r, ValidationVerdict(r.ValidationVotes, false))
	}
	return nil
}

// NextRound loops the room from results back to category voting.
func (e *Engine) NextRound(ctx context.Context, playerID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if !p.Host {
		return ErrNotHost
	}
	if r.Phase != PhaseResults {
		return ErrWrongPhase
	}

	r.Round++
	r.Settings.SpyCount = clampSpyCount(r.Settings.SpyCount, len(r.Players))
	e.enterCategoryVoting(ctx, r)
	e.broadcastRoom(r, EventPhaseChanged)
	return nil
}

// SendChat appends to the room chat. Chat is open in every phase.
func (e *Engine) SendChat(ctx context.Context, playerID, text string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) > 500 {
		text = string([]rune(text)[:500])
	}
	msg := ChatMessage{
		ID:       uuid.NewString(),
		PlayerID: p.ID,
		Name:     p.Name,
		Text:     text,
		SentAt:   time.Now(),
	}
	r.Chat = append(r.Chat, msg)
	if len(r.Chat) > 200 {
		r.Chat = r.Chat[len(r.Chat)-200:]
	}
	for _, pl := range r.ActivePlayers() {
		e.bc.Send(pl.ID, Event{Type: EventNewChatMessage, Data: msg})
	}
	return nil
}

// TransferHost hands the host seat to another connected player.
func (e *Engine) TransferHost(ctx context.Context, playerID, targetID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if !p.Host {
		return ErrNotHost
	}
	target := r.FindPlayer(targetID)
	if target == nil || target.ID == p.ID || !target.Active() {
		return ErrUnknownPlayer
	}

	p.Host = false
	target.Host = true
	target.Ready = true
	r.HostID = target.ID
	e.broadcastRoom(r, EventHostTransferred)
	return nil
}

// KickPlayer removes a player at the host's request.
func (e *Engine) KickPlayer(ctx context.Context, playerID, targetID string) error {
	r, p, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if !p.Host {
		return ErrNotHost
	}
	target := r.FindPlayer(targetID)
	if target == nil || target.ID == p.ID {
		return ErrUnknownPlayer
	}

	e.bc.Send(target.ID, Event{Type: EventPlayerKicked, Data: PlayerRef{PlayerID: target.ID, Name: target.Name}})
	e.removePlayerLocked(ctx, r, target.ID)
	return nil
}

// LeaveRoom removes the caller's seat permanently.
func (e *Engine) LeaveRoom(ctx context.Context, playerID string) error {
	r, _, err := e.playerRoom(playerID)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	e.removePlayerLocked(ctx, r, playerID)
	return nil
}

// MarkDisconnected flags a dropped connection. The seat survives the
// grace window; the sweeper removes it afterwards.
func (e *Engine) MarkDisconnected(ctx context.Context, playerID string) {
	r, ok := e.store.ByPlayer(playerID)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.FindPlayer(playerID)
	if p == nil || !p.Active() {
		return
	}
	now := time.Now()
	p.DisconnectedAt = &now
	e.log.Info("player disconnected", zap.String("code", r.Code), zap.String("name", p.Name))

	if r.Phase == PhaseQuestioning && r.TurnID == p.ID {
		if q := r.PendingQuestion(); q != nil {
			q.Answered = true
		}
		e.advanceTurn(ctx, r)
		return
	}
	e.checkQuorums(ctx, r)
	e.broadcastRoom(r, EventRoomUpdated)
}

// playerRoom resolves and locks the caller's room. On success the room
// is returned locked; the caller must unlock it.
func (e *Engine) playerRoom(playerID string) (*Room, *Player, error) {
	r, ok := e.store.ByPlayer(playerID)
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	r.mu.Lock()
	p := r.FindPlayer(playerID)
	if p == nil {
		r.mu.Unlock()
		return nil, nil, ErrUnknownPlayer
	}
	return r, p, nil
}

func secs(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (e *Engine) enterCategoryVoting(ctx context.Context, r *Room) {
	r.Phase = PhaseCategoryVoting
	r.CategoryVotes = nil
	r.Category, r.Word, r.SpyWord = "", "", ""
	r.PhaseStartedAt = time.Now()
	if r.Source == WordsInternal {
		r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerCategoryVote, secs(e.defaults.CategoryVoteSeconds))
	} else {
		// Externally-worded rooms wait for the host; no deadline.
		e.timers.Cancel(r.Code)
		r.PhaseDeadline = time.Time{}
	}
}

func (e *Engine) resolveCategory(ctx context.Context, r *Room) {
	category := WinningCategory(r.CategoryVotes, words.IDs())
	word := words.Random(category)
	spyWord := SpyWordClassic
	if r.Mode == ModeBlind {
		spyWord = words.Similar(category, word)
	}
	r.Category = category
	e.dealRound(ctx, r, word, spyWord)
}

// dealRound assigns roles and words, resets the per-round state, and
// opens the reveal window. Spy assignment and the turn order are two
// independent shuffles.
func (e *Engine) dealRound(ctx context.Context, r *Room, word, spyWord string) {
	r.Word, r.SpyWord = word, spyWord

	spyCount := clampSpyCount(r.Settings.SpyCount, len(r.Players))
	draw := BuildTurnQueue(r.Players)
	spies := map[string]bool{}
	for _, id := range draw[:spyCount] {
		spies[id] = true
	}
	for _, p := range r.Players {
		p.DoneAsking = false
		p.QuestionsLeft = r.Settings.QuestionsPerPlayer
		if spies[p.ID] {
			p.Role = RoleSpy
			p.Word = spyWord
		} else {
			p.Role = RolePlayer
			p.Word = word
		}
	}

	r.Questions = nil
	r.SpyVotes = nil
	r.ValidationVotes = nil
	r.RevealedSpyIDs = nil
	r.MostVotedID = ""
	r.SpyCaught = false
	r.SpyGuess = ""
	r.GuessCorrect = nil
	r.TurnQueue = BuildTurnQueue(r.Players)
	r.TurnID = ""

	r.Phase = PhaseWordReveal
	r.PhaseStartedAt = time.Now()
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerReveal, secs(e.defaults.RevealSeconds))
	e.log.Info("round dealt",
		zap.String("code", r.Code),
		zap.Int("round", r.Round),
		zap.String("category", r.Category),
		zap.Int("spies", spyCount))
	e.broadcastRoom(r, EventPhaseChanged)
}

func (e *Engine) beginQuestioning(ctx context.Context, r *Room) {
	r.Phase = PhaseQuestioning
	next, ok := NextTurn(r)
	if !ok {
		e.enterTransition(ctx, r)
		return
	}
	r.TurnID = next
	r.PhaseStartedAt = time.Now()
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerAsk, secs(r.Settings.AskSeconds))
	e.broadcastRoom(r, EventPhaseChanged)
}

func (e *Engine) advanceTurn(ctx context.Context, r *Room) {
	next, ok := NextTurn(r)
	if !ok {
		e.enterTransition(ctx, r)
		return
	}
	r.TurnID = next
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerAsk, secs(r.Settings.AskSeconds))
	e.broadcastRoom(r, EventTurnChanged)
}

func (e *Engine) enterTransition(ctx context.Context, r *Room) {
	r.Phase = PhaseTransition
	r.TurnID = ""
	r.PhaseStartedAt = time.Now()
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerTransition, secs(e.defaults.TransitionSeconds))
	e.broadcastRoom(r, EventPhaseChanged)
}

func (e *Engine) startSpyVoting(ctx context.Context, r *Room) {
	r.Phase = PhaseSpyVoting
	r.SpyVotes = nil
	r.PhaseStartedAt = time.Now()
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerSpyVote, secs(r.Settings.SpyVoteSeconds))
	e.broadcastRoom(r, EventPhaseChanged)
}

// resolveSpyVotes scores the ballot, reveals the spies, and opens the
// guess window.
func (e *Engine) resolveSpyVotes(ctx context.Context, r *Room) {
	for id, d := range SpyVoteDeltas(r) {
		if p := r.FindPlayer(id); p != nil {
			p.Score += d
		}
	}
	if top, ok := TopSuspect(r.SpyVotes); ok {
		r.MostVotedID = top
		r.SpyCaught = r.IsSpy(top)
	}
	for _, s := range r.Spies() {
		r.RevealedSpyIDs = append(r.RevealedSpyIDs, s.ID)
	}

	r.Phase = PhaseSpyGuess
	r.SpyGuess = ""
	r.PhaseStartedAt = time.Now()
	r.PhaseDeadline = e.timers.Schedule(e.baseCtx, r.Code, TimerSpyGuess, secs(r.Settings.SpyGuessSeconds))
	e.broadcastRoom(r, EventPhaseChanged)
}

func (e *Engine) applyVerdict(ctx context.Context, r *Room, correct bool) {
	v := correct
	r.GuessCorrect = &v
	if correct {
		for _, s := range r.Spies() {
			s.Score++
		}
	}
	e.finishRound(ctx, r)
}

func (e *Engine) finishRound(ctx context.Context, r *Room) {
	e.timers.Cancel(r.Code)
	r.Phase = PhaseResults
	r.TurnID = ""
	r.PhaseDeadline = time.Time{}
	e.recordRound(ctx, r)
	e.log.Info("round finished",
		zap.String("code", r.Code),
		zap.Int("round", r.Round),
		zap.Bool("spyCaught", r.SpyCaught))
	e.broadcastRoom(r, EventPhaseChanged)
}

func (e *Engine) recordRound(ctx context.Context, r *Room) {
	if e.archive == nil {
		return
	}
	deltas := SpyVoteDeltas(r)
	bonus := 0
	if r.GuessCorrect != nil && *r.GuessCorrect {
		bonus = 1
	}
	outcome := OutcomeSpyEscaped
	if r.SpyCaught {
		outcome = OutcomeSpyCaught
	}
	for _, p := range r.Players {
		rec := RoundRecord{
			PlayerName:  p.Name,
			RoomCode:    r.Code,
			RoundNumber: r.Round,
			Category:    r.Category,
			WasSpy:      p.Role == RoleSpy,
			Outcome:     outcome,
			PlayersNum:  len(r.Players),
		}
		if p.Role == RoleSpy {
			rec.Points = bonus
			rec.GuessedWord = bonus > 0
		} else {
			rec.Points = deltas[p.ID]
			rec.VotedSpy = deltas[p.ID] > 0
		}
		if err := e.archive.Record(ctx, rec); err != nil {
			e.log.Warn("archive write failed", zap.String("code", r.Code), zap.Error(err))
		}
	}
}

func (e *Engine) categoryQuorum(r *Room) bool {
	active := r.ActivePlayers()
	if len(active) == 0 {
		return false
	}
	for _, p := range active {
		if !r.HasCategoryVote(p.ID) {
			return false
		}
	}
	return true
}

func (e *Engine) spyVoteQuorum(r *Room) bool {
	active := r.ActivePlayers()
	if len(active) == 0 {
		return false
	}
	for _, p := range active {
		if r.SpyVoteIndex(p.ID) < 0 {
			return false
		}
	}
	return true
}

func (e *Engine) validationQuorum(r *Room) bool {
	n := 0
	for _, p := range r.ActivePlayers() {
		if p.Role == RoleSpy {
			continue
		}
		n++
		if !r.HasValidationVote(p.ID) {
			return false
		}
	}
	return n > 0
}

// checkQuorums re-evaluates the open ballot after the eligible voter
// set shrank.
func (e *Engine) checkQuorums(ctx context.Context, r *Room) {
	switch r.Phase {
	case PhaseCategoryVoting:
		if r.Source == WordsInternal && e.categoryQuorum(r) {
			e.resolveCategory(ctx, r)
		}
	case PhaseSpyVoting:
		if e.spyVoteQuorum(r) {
			e.resolveSpyVotes(ctx, r)
		}
	case PhaseGuessValidation:
		if e.validationQuorum(r) {
			e.applyVerdict(ctx, r, ValidationVerdict(r.ValidationVotes, false))
		}
	}
}

// removePlayerLocked drops a seat for good: host succession, turn
// repair, and quorum re-checks all happen here. Empty rooms are torn
// down with their timers.
func (e *Engine) removePlayerLocked(ctx context.Context, r *Room, id string) {
	idx := -1
	for i, p := range r.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	left := r.Players[idx]
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	e.store.Unbind(id)

	if len(r.Players) == 0 {
		e.timers.Cancel(r.Code)
		e.store.Remove(r.Code)
		e.log.Info("room closed", zap.String("code", r.Code))
		return
	}

	if r.HostID == id {
		next := r.Players[0]
		for _, p := range r.Players {
			if p.Active() {
				next = p
				break
			}
		}
		next.Host = true
		next.Ready = true
		r.HostID = next.ID
		e.broadcastRoom(r, EventHostTransferred)
	}

	if r.Phase == PhaseQuestioning && r.TurnID == id {
		if q := r.PendingQuestion(); q != nil {
			q.Answered = true
		}
		e.advanceTurn(ctx, r)
	}
	e.checkQuorums(ctx, r)

	for _, p := range r.ActivePlayers() {
		e.bc.Send(p.ID, Event{Type: EventPlayerLeft, Data: PlayerRef{PlayerID: left.ID, Name: left.Name}})
	}
	e.broadcastRoom(r, EventRoomUpdated)
}

func (e *Engine) sweep(ctx context.Context) {
	for _, r := range e.store.Rooms() {
		r.mu.Lock()
		for _, id := range e.sessions.Expired(r) {
			if p := r.FindPlayer(id); p != nil {
				e.log.Info("session expired", zap.String("code", r.Code), zap.String("name", p.Name))
			}
			e.removePlayerLocked(ctx, r, id)
		}
		r.mu.Unlock()
	}
}

func (e *Engine) onExpire(code string, purpose TimerPurpose) {
	r, ok := e.store.Get(code)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ctx := e.baseCtx

	// A timer that raced a phase change is dropped here; the phase guard
	// is the second line of defense after the manager's identity check.
	switch purpose {
	case TimerCategoryVote:
		if r.Phase == PhaseCategoryVoting && r.Source == WordsInternal {
			e.resolveCategory(ctx, r)
		}
	case TimerReveal:
		if r.Phase == PhaseWordReveal {
			e.beginQuestioning(ctx, r)
		}
	case TimerAsk:
		if r.Phase == PhaseQuestioning {
			if p := r.FindPlayer(r.TurnID); p != nil && p.QuestionsLeft > 0 {
				p.QuestionsLeft--
			}
			e.advanceTurn(ctx, r)
		}
	case TimerAnswer:
		if r.Phase == PhaseQuestioning {
			if q := r.PendingQuestion(); q != nil {
				q.Answered = true
			}
			e.advanceTurn(ctx, r)
		}
	case TimerTransition:
		if r.Phase == PhaseTransition {
			e.startSpyVoting(ctx, r)
		}
	case TimerSpyVote:
		if r.Phase == PhaseSpyVoting {
			e.resolveSpyVotes(ctx, r)
		}
	case TimerSpyGuess:
		if r.Phase == PhaseSpyGuess {
			e.finishRound(ctx, r)
		}
	case TimerValidation:
		if r.Phase == PhaseGuessValidation {
			e.applyVerdict(ctx, r, ValidationVerdict(r.ValidationVotes, true))
		}
	}
}

func (e *Engine) onTick(code string, purpose TimerPurpose, remaining int) {
	r, ok := e.store.Get(code)
	if !ok {
		return
	}
	r.mu.Lock()
	ids := make([]string, 0, len(r.Players))
	for _, p := range r.ActivePlayers() {
		ids = append(ids, p.ID)
	}
	r.mu.Unlock()

	ev := Event{Type: EventTimerUpdate, Data: TimerUpdate{Purpose: purpose, Remaining: remaining}}
	for _, id := range ids {
		e.bc.Send(id, ev)
	}
}

func (e *Engine) broadcastRoom(r *Room, t EventType) {
	for _, p := range r.ActivePlayers() {
		e.bc.Send(p.ID, Event{Type: t, Data: Snapshot(r, p.ID)})
	}
}

func (e *Engine) broadcastExcept(r *Room, t EventType, exceptID string) {
	for _, p := range r.ActivePlayers() {
		if p.ID == exceptID {
			continue
		}
		e.bc.Send(p.ID, Event{Type: t, Data: Snapshot(r, p.ID)})
	}
}
