package game

import (
	"strings"
	"sync"

	"github.com/valyala/fastrand"
)

// Store indexes live rooms by code and by member player id. Rooms live
// only in memory; a finished or emptied room is simply removed.
type Store interface {
	Insert(r *Room)
	Get(code string) (*Room, bool)
	Remove(code string)
	Bind(playerID, code string)
	Unbind(playerID string)
	ByPlayer(playerID string) (*Room, bool)
	Rooms() []*Room
}

// codeAlphabet avoids 0/O/1/I lookalikes so codes survive being read
// aloud or typed from a screenshot.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLen      = 6
)

type MemoryStore struct {
	mu      sync.RWMutex
	rooms   map[string]*Room
	players map[string]string
}

func NewStore() *MemoryStore {
	return &MemoryStore{
		rooms:   map[string]*Room{},
		players: map[string]string{},
	}
}

func (s *MemoryStore) Put(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.Code] = r
}

func (s *MemoryStore) Get(code string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[strings.ToUpper(code)]
	return r, ok
}

func (s *MemoryStore) Remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	for id, c := range s.players {
		if c == code {
			delete(s.players, id)
		}
	}
}

func (s *MemoryStore) Bind(playerID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[playerID] = code
}

func (s *MemoryStore) Unbind(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, playerID)
}

func (s *MemoryStore) ByPlayer(playerID string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.players[playerID]
	if !ok {
		return nil, false
	}
	r, ok := s.rooms[code]
	return r, ok
}

func (s *MemoryStore) Rooms() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

func randomCode() string {
	b := make([]byte, codeLen)
	for i := range b {
		b[i] = codeAlphabet[fastrand.Uint32n(uint32(len(codeAlphabet)))]
	}
	return string(b)
}

// Insert mints a free code for r and registers the room in the same
// critical section, so concurrent creates can never collide on a code.
// With 32^6 combinations the retry loop is effectively a single draw.
func (s *MemoryStore) Insert(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		code := randomCode()
		if _, taken := s.rooms[code]; taken {
			continue
		}
		r.Code = code
		s.rooms[code] = r
		return
	}
}
