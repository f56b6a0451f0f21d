package game

import "github.com/valyala/fastrand"

// BuildTurnQueue fixes the asking order for a round with a Fisher-Yates
// shuffle over the full roster. Disconnected players stay in the queue
// and are skipped at selection time, so a reconnect restores their slot.
func BuildTurnQueue(players []*Player) []string {
	q := make([]string, len(players))
	for i, p := range players {
		q[i] = p.ID
	}
	for i := len(q) - 1; i > 0; i-- {
		j := int(fastrand.Uint32n(uint32(i + 1)))
		q[i], q[j] = q[j], q[i]
	}
	return q
}

func (r *Room) eligibleForTurn(id string) bool {
	p := r.FindPlayer(id)
	if p == nil || !p.Active() {
		return false
	}
	return !p.DoneAsking && p.QuestionsLeft > 0
}

// NextTurn walks the queue starting after the current holder and returns
// the first eligible player. It visits each slot at most once, so an
// exhausted queue terminates with ok=false instead of looping.
func NextTurn(r *Room) (string, bool) {
	n := len(r.TurnQueue)
	if n == 0 {
		return "", false
	}
	start := 0
	for i, id := range r.TurnQueue {
		if id == r.TurnID {
			start = i + 1
			break
		}
	}
	for step := 0; step < n; step++ {
		id := r.TurnQueue[(start+step)%n]
		if r.eligibleForTurn(id) {
			return id, true
		}
	}
	return "", false
}
