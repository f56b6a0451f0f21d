package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionResume(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(30 * time.Minute)
	p := &Player{ID: "p1", Name: "سارة", Score: 3}
	r := &Room{Code: "ABCDEF", Players: []*Player{p}}
	token := sm.Issue(p, r.Code)
	require.NotEmpty(t, token)

	dropped := time.Now().Add(-5 * time.Minute)
	p.DisconnectedAt = &dropped

	got, err := sm.Resume(r, token)
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Nil(t, p.DisconnectedAt)
	assert.Equal(t, 3, p.Score)
}

func TestSessionResumeBadToken(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(30 * time.Minute)
	p := &Player{ID: "p1"}
	r := &Room{Code: "ABCDEF", Players: []*Player{p}}
	sm.Issue(p, r.Code)

	_, err := sm.Resume(r, "bogus")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionResumePastGrace(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(30 * time.Minute)
	p := &Player{ID: "p1"}
	r := &Room{Code: "ABCDEF", Players: []*Player{p}}
	token := sm.Issue(p, r.Code)

	dropped := time.Now().Add(-31 * time.Minute)
	p.DisconnectedAt = &dropped

	_, err := sm.Resume(r, token)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.NotNil(t, p.DisconnectedAt, "expired seat stays down for the sweeper")
}

func TestExpiredLists(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(30 * time.Minute)
	fresh := time.Now().Add(-time.Minute)
	stale := time.Now().Add(-time.Hour)
	r := &Room{Players: []*Player{
		{ID: "a"},
		{ID: "b", DisconnectedAt: &fresh},
		{ID: "c", DisconnectedAt: &stale},
	}}

	assert.Equal(t, []string{"c"}, sm.Expired(r))
}

func TestTokensAreUnique(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(30 * time.Minute)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := &Player{ID: "p1"}
		tok := sm.Issue(p, "ABCDEF")
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
