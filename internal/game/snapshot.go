package game

import (
	"time"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/words"
)

// PlayerView is the redacted projection of a seat. Role and word are
// only populated for the viewer's own seat, for revealed spies, and for
// everyone once the round reaches results.
type PlayerView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Host          bool   `json:"host"`
	Ready         bool   `json:"ready"`
	Connected     bool   `json:"connected"`
	Score         int    `json:"score"`
	CareerPoints  int    `json:"careerPoints"`
	QuestionsLeft int    `json:"questionsLeft"`
	DoneAsking    bool   `json:"doneAsking"`
	Role          Role   `json:"role,omitempty"`
	Word          string `json:"word,omitempty"`
}

type RoomView struct {
	Code     string     `json:"code"`
	Mode     Mode       `json:"mode"`
	Source   WordSource `json:"source"`
	Phase    Phase      `json:"phase"`
	Round    int        `json:"round"`
	Settings Settings   `json:"settings"`
	HostID   string     `json:"hostId"`

	Players []PlayerView `json:"players"`

	Category   string           `json:"category,omitempty"`
	Categories []words.Category `json:"categories"`

	CategoryVotes   []CategoryVote   `json:"categoryVotes,omitempty"`
	SpyVotes        []SpyVote        `json:"spyVotes,omitempty"`
	ValidationVotes []ValidationVote `json:"validationVotes,omitempty"`

	Questions []Question `json:"questions,omitempty"`
	TurnID    string     `json:"turnId,omitempty"`

	RevealedSpyIDs []string `json:"revealedSpyIds,omitempty"`
	MostVotedID    string   `json:"mostVotedId,omitempty"`
	SpyCaught      bool     `json:"spyCaught"`
	SpyGuess       string   `json:"spyGuess,omitempty"`
	GuessCorrect   *bool    `json:"guessCorrect,omitempty"`

	// Word is the round's secret, exposed only once results are public.
	Word string `json:"word,omitempty"`

	Chat []ChatMessage `json:"chat"`

	Remaining int `json:"remaining"`
}

func revealed(r *Room, id string) bool {
	for _, s := range r.RevealedSpyIDs {
		if s == id {
			return true
		}
	}
	return false
}

// Snapshot builds the room as seen by viewerID. The caller holds the
// room lock; the view copies everything it carries, so it stays safe to
// serialize after the lock is released while the room keeps mutating.
func Snapshot(r *Room, viewerID string) *RoomView {
	v := &RoomView{
		Code:       r.Code,
		Mode:       r.Mode,
		Source:     r.Source,
		Phase:      r.Phase,
		Round:      r.Round,
		Settings:   r.Settings,
		HostID:     r.HostID,
		Category:   r.Category,
		Categories: words.Categories,
		TurnID:     r.TurnID,
		Chat:       append([]ChatMessage(nil), r.Chat...),
	}

	if len(r.Questions) > 0 {
		v.Questions = make([]Question, len(r.Questions))
		for i, q := range r.Questions {
			v.Questions[i] = *q
		}
	}

	if !r.PhaseDeadline.IsZero() {
		if left := time.Until(r.PhaseDeadline); left > 0 {
			v.Remaining = int(left.Round(time.Second).Seconds())
		}
	}

	results := r.Phase == PhaseResults
	if r.Phase == PhaseCategoryVoting {
		v.CategoryVotes = append([]CategoryVote(nil), r.CategoryVotes...)
	}
	if r.Phase == PhaseSpyVoting || r.Phase == PhaseSpyGuess || r.Phase == PhaseGuessValidation || results {
		v.SpyVotes = append([]SpyVote(nil), r.SpyVotes...)
		v.RevealedSpyIDs = append([]string(nil), r.RevealedSpyIDs...)
		v.MostVotedID = r.MostVotedID
		v.SpyCaught = r.SpyCaught
	}
	if r.Phase == PhaseGuessValidation || results {
		v.SpyGuess = r.SpyGuess
		v.ValidationVotes = append([]ValidationVote(nil), r.ValidationVotes...)
	}
	if results {
		v.Word = r.Word
		v.GuessCorrect = r.GuessCorrect
	}

	v.Players = make([]PlayerView, 0, len(r.Players))
	for _, p := range r.Players {
		pv := PlayerView{
			ID:            p.ID,
			Name:          p.Name,
			Avatar:        p.Avatar,
			Host:          p.Host,
			Ready:         p.Ready,
			Connected:     p.Active(),
			Score:         p.Score,
			CareerPoints:  p.CareerPoints,
			QuestionsLeft: p.QuestionsLeft,
			DoneAsking:    p.DoneAsking,
		}
		if p.ID == viewerID || results || revealed(r, p.ID) {
			pv.Role = p.Role
		}
		if p.ID == viewerID || results {
			pv.Word = p.Word
		}
		v.Players = append(v.Players, pv)
	}
	return v
}
