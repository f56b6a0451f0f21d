package game

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func askerAndTarget(r *Room) (asker, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asker = r.TurnID
	for _, p := range r.Players {
		if p.ID != asker {
			return asker, p.ID
		}
	}
	return asker, ""
}

func TestSnapshotDetachedFromRoom(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, _ := dealtRound(t, e, 4, ModeClassic)
	asker, target := askerAndTarget(r)
	require.NoError(t, e.AskQuestion(ctx, asker, target, "ما لونه؟"))

	r.mu.Lock()
	view := Snapshot(r, target)
	r.mu.Unlock()

	require.NoError(t, e.AnswerQuestion(ctx, target, "أخضر"))

	require.Len(t, view.Questions, 1)
	assert.False(t, view.Questions[0].Answered, "the view keeps its own copy")
	assert.Empty(t, view.Questions[0].Answer)
}

func TestSnapshotMarshalsWhileRoomMutates(t *testing.T) {
	t.Parallel()
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	r, _ := dealtRound(t, e, 4, ModeClassic)
	asker, target := askerAndTarget(r)
	require.NoError(t, e.AskQuestion(ctx, asker, target, "كم عدد أرجله؟"))

	// a view is serialized outside the room lock, concurrently with
	// whatever the room does next
	r.mu.Lock()
	view := Snapshot(r, target)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if _, err := json.Marshal(view); err != nil {
				t.Errorf("marshal view: %v", err)
				return
			}
		}
	}()

	require.NoError(t, e.AnswerQuestion(ctx, target, "أربعة"))
	<-done
}
