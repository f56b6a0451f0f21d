package game

import (
	"time"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/hashutil"
)

// SessionManager mints and resumes per-player session tokens. A token is
// bound to one player in one room; presenting it within the disconnect
// grace window restores the seat with score, role, and word intact.
// The engine holds the room lock around every call here.
type SessionManager struct {
	grace time.Duration
	now   func() time.Time
}

func NewSessionManager(grace time.Duration) *SessionManager {
	return &SessionManager{grace: grace, now: time.Now}
}

func (sm *SessionManager) Grace() time.Duration {
	return sm.grace
}

// Issue creates and attaches a fresh token for the player's seat.
func (sm *SessionManager) Issue(p *Player, roomCode string) string {
	p.SessionToken = hashutil.SessionToken(p.ID, roomCode)
	return p.SessionToken
}

// Resume matches a token against the room's seats. A seat past its
// grace window is treated the same as a bad token would be after the
// sweeper ran, so clients see one behavior regardless of timing.
func (sm *SessionManager) Resume(r *Room, token string) (*Player, error) {
	for _, p := range r.Players {
		if p.SessionToken != token {
			continue
		}
		if p.DisconnectedAt != nil && sm.now().Sub(*p.DisconnectedAt) > sm.grace {
			return nil, ErrSessionExpired
		}
		p.DisconnectedAt = nil
		return p, nil
	}
	return nil, ErrSessionInvalid
}

// Expired lists the seats whose grace window has lapsed.
func (sm *SessionManager) Expired(r *Room) []string {
	var out []string
	for _, p := range r.Players {
		if p.DisconnectedAt != nil && sm.now().Sub(*p.DisconnectedAt) > sm.grace {
			out = append(out, p.ID)
		}
	}
	return out
}
