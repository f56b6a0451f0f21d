package game

import (
	"sync"
	"time"
)

// Settings are the host-tunable knobs of a room. Durations are whole
// seconds because that is the granularity of the countdown broadcasts.
type Settings struct {
	AskSeconds         int            `json:"askSeconds"`
	AnswerSeconds      int            `json:"answerSeconds"`
	SpyVoteSeconds     int            `json:"spyVoteSeconds"`
	SpyGuessSeconds    int            `json:"spyGuessSeconds"`
	QuestionsPerPlayer int            `json:"questionsPerPlayer"`
	SpyCount           int            `json:"spyCount"`
	ValidationMode     ValidationMode `json:"validationMode"`
}

// SettingsPatch carries a partial settings update; nil fields are left
// untouched.
type SettingsPatch struct {
	AskSeconds         *int            `json:"askSeconds,omitempty"`
	AnswerSeconds      *int            `json:"answerSeconds,omitempty"`
	SpyVoteSeconds     *int            `json:"spyVoteSeconds,omitempty"`
	SpyGuessSeconds    *int            `json:"spyGuessSeconds,omitempty"`
	QuestionsPerPlayer *int            `json:"questionsPerPlayer,omitempty"`
	SpyCount           *int            `json:"spyCount,omitempty"`
	ValidationMode     *ValidationMode `json:"validationMode,omitempty"`
}

type Player struct {
	ID     string
	Name   string
	Avatar string

	Host  bool
	Ready bool

	Role Role
	Word string

	Score        int
	CareerPoints int

	QuestionsLeft int
	DoneAsking    bool

	SessionToken   string
	DisconnectedAt *time.Time
	JoinedAt       time.Time
}

// Active reports whether the player currently holds a live connection.
func (p *Player) Active() bool {
	return p.DisconnectedAt == nil
}

type Question struct {
	ID       string    `json:"id"`
	FromID   string    `json:"fromId"`
	ToID     string    `json:"toId"`
	Text     string    `json:"text"`
	Answer   string    `json:"answer"`
	Answered bool      `json:"answered"`
	AskedAt  time.Time `json:"askedAt"`
}

type CategoryVote struct {
	PlayerID string `json:"playerId"`
	Category string `json:"category"`
}

type SpyVote struct {
	VoterID   string `json:"voterId"`
	SuspectID string `json:"suspectId"`
}

type ValidationVote struct {
	VoterID string `json:"voterId"`
	Correct bool   `json:"correct"`
}

type ChatMessage struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	Name     string    `json:"name"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sentAt"`
}

// Room is the authoritative state of one game. All reads and writes go
// through its mutex; the engine locks it for the whole of each action so
// every mutation observes a consistent snapshot.
type Room struct {
	mu sync.Mutex

	Code   string
	Mode   Mode
	Source WordSource

	Phase Phase
	Round int

	Settings Settings
	Players  []*Player
	HostID   string

	Category string
	Word     string
	SpyWord  string

	CategoryVotes   []CategoryVote
	SpyVotes        []SpyVote
	ValidationVotes []ValidationVote

	Questions []*Question
	TurnQueue []string
	TurnID    string

	RevealedSpyIDs []string
	MostVotedID    string
	SpyCaught      bool
	SpyGuess       string
	GuessCorrect   *bool

	Chat []ChatMessage

	PhaseStartedAt time.Time
	PhaseDeadline  time.Time
	CreatedAt      time.Time
}

func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) ActivePlayers() []*Player {
	out := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Active() {
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) ActiveCount() int {
	n := 0
	for _, p := range r.Players {
		if p.Active() {
			n++
		}
	}
	return n
}

func (r *Room) Spies() []*Player {
	var out []*Player
	for _, p := range r.Players {
		if p.Role == RoleSpy {
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) IsSpy(id string) bool {
	p := r.FindPlayer(id)
	return p != nil && p.Role == RoleSpy
}

func (r *Room) HasCategoryVote(playerID string) bool {
	for _, v := range r.CategoryVotes {
		if v.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (r *Room) SpyVoteIndex(voterID string) int {
	for i, v := range r.SpyVotes {
		if v.VoterID == voterID {
			return i
		}
	}
	return -1
}

func (r *Room) HasValidationVote(voterID string) bool {
	for _, v := range r.ValidationVotes {
		if v.VoterID == voterID {
			return true
		}
	}
	return false
}

// PendingQuestion returns the unanswered question of the current turn,
// if any. At most one question can be pending at a time.
func (r *Room) PendingQuestion() *Question {
	if len(r.Questions) == 0 {
		return nil
	}
	q := r.Questions[len(r.Questions)-1]
	if !q.Answered {
		return q
	}
	return nil
}
