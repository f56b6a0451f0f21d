package game

import (
	"context"
	"sync"
	"time"
)

// TimerPurpose names what a room's pending deadline is for. A room holds
// at most one pending timer; scheduling a new one cancels the old.
type TimerPurpose string

const (
	TimerCategoryVote TimerPurpose = "category_vote"
	TimerReveal       TimerPurpose = "word_reveal"
	TimerAsk          TimerPurpose = "ask"
	TimerAnswer       TimerPurpose = "answer"
	TimerTransition   TimerPurpose = "transition"
	TimerSpyVote      TimerPurpose = "spy_vote"
	TimerSpyGuess     TimerPurpose = "spy_guess"
	TimerValidation   TimerPurpose = "guess_validation"
)

type roomTimer struct {
	purpose  TimerPurpose
	deadline time.Time
	cancel   chan struct{}
}

// TimerManager runs per-room phase deadlines. Each scheduled timer gets
// its own goroutine with a 1 Hz ticker for countdown broadcasts and a
// one-shot deadline. Cancellation always precedes rescheduling, and a
// timer only fires while it is still the room's registered timer, so a
// stale goroutine that lost the race can never mutate a later phase.
type TimerManager struct {
	mu     sync.Mutex
	active map[string]*roomTimer

	expire func(code string, purpose TimerPurpose)
	tick   func(code string, purpose TimerPurpose, remaining int)
}

func NewTimerManager(
	expire func(code string, purpose TimerPurpose),
	tick func(code string, purpose TimerPurpose, remaining int),
) *TimerManager {
	return &TimerManager{
		active: map[string]*roomTimer{},
		expire: expire,
		tick:   tick,
	}
}

// Schedule arms the room's deadline, replacing any pending timer.
func (tm *TimerManager) Schedule(ctx context.Context, code string, purpose TimerPurpose, d time.Duration) time.Time {
	rt := &roomTimer{
		purpose:  purpose,
		deadline: time.Now().Add(d),
		cancel:   make(chan struct{}),
	}

	tm.mu.Lock()
	if prev, ok := tm.active[code]; ok {
		close(prev.cancel)
	}
	tm.active[code] = rt
	tm.mu.Unlock()

	go tm.run(ctx, code, rt)
	return rt.deadline
}

// Cancel drops the room's pending timer, if any.
func (tm *TimerManager) Cancel(code string) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if rt, ok := tm.active[code]; ok {
		close(rt.cancel)
		delete(tm.active, code)
	}
}

// Pending returns the purpose of the room's live timer.
func (tm *TimerManager) Pending(code string) (TimerPurpose, bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	rt, ok := tm.active[code]
	if !ok {
		return "", false
	}
	return rt.purpose, true
}

func (tm *TimerManager) run(ctx context.Context, code string, rt *roomTimer) {
	deadline := time.NewTimer(time.Until(rt.deadline))
	defer deadline.Stop()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-rt.cancel:
			return
		case <-ticker.C:
			remaining := int(time.Until(rt.deadline).Round(time.Second).Seconds())
			if remaining > 0 && tm.tick != nil {
				tm.tick(code, rt.purpose, remaining)
			}
		case <-deadline.C:
			tm.mu.Lock()
			if tm.active[code] != rt {
				// Replaced or cancelled between the channel fire and
				// taking the lock. Stale, drop it.
				tm.mu.Unlock()
				return
			}
			delete(tm.active, code)
			tm.mu.Unlock()
			tm.expire(code, rt.purpose)
			return
		}
	}
}
