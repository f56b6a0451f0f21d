package game

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is full")
	ErrRoomStarted      = errors.New("room is not in lobby")
	ErrUnknownPlayer    = errors.New("player not found")
	ErrBadName          = errors.New("name must be 2-20 characters")
	ErrNameTaken        = errors.New("name already taken in this room")
	ErrNotHost          = errors.New("host-only action")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrPlayersNotReady  = errors.New("players not ready")
	ErrWrongPhase       = errors.New("action does not match phase")
	ErrNotYourTurn      = errors.New("not the turn holder")
	ErrNoQuestionsLeft  = errors.New("no questions remaining")
	ErrPendingQuestion  = errors.New("previous question not answered")
	ErrNoPendingAnswer  = errors.New("no question to answer")
	ErrAlreadyVoted     = errors.New("already voted")
	ErrVoteClosed       = errors.New("voting deadline elapsed")
	ErrNotSpy           = errors.New("only a spy may guess")
	ErrSpyCannotVote    = errors.New("spies do not validate the guess")
	ErrAlreadyGuessed   = errors.New("guess already submitted")
	ErrEmptyText        = errors.New("text must not be empty")
	ErrBadCategory      = errors.New("unknown category")
	ErrSessionInvalid   = errors.New("unknown session token")
	ErrSessionExpired   = errors.New("session expired")
)

// Visible reports whether a rejection should be surfaced to the offending
// connection as an error event. Everything else is a silent no-op: wrong-phase
// spam and duplicate votes produce no traffic at all.
func Visible(err error) bool {
	switch {
	case errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrRoomFull),
		errors.Is(err, ErrRoomStarted),
		errors.Is(err, ErrBadName),
		errors.Is(err, ErrNameTaken),
		errors.Is(err, ErrNotEnoughPlayers),
		errors.Is(err, ErrPlayersNotReady),
		errors.Is(err, ErrSessionInvalid),
		errors.Is(err, ErrSessionExpired):
		return true
	}
	return false
}
