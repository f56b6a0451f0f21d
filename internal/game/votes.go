package game

import "github.com/valyala/fastrand"

// WinningCategory resolves a category ballot by plurality with a random
// tie-break. With no votes at all it draws from fallback instead.
func WinningCategory(votes []CategoryVote, fallback []string) string {
	if len(votes) == 0 {
		return fallback[fastrand.Uint32n(uint32(len(fallback)))]
	}
	tally := map[string]int{}
	for _, v := range votes {
		tally[v.Category]++
	}
	best := 0
	for _, n := range tally {
		if n > best {
			best = n
		}
	}
	// Iterate the ballot, not the map, so ties break over a stable
	// candidate order before the random draw.
	var leaders []string
	seen := map[string]bool{}
	for _, v := range votes {
		if tally[v.Category] == best && !seen[v.Category] {
			leaders = append(leaders, v.Category)
			seen[v.Category] = true
		}
	}
	return leaders[fastrand.Uint32n(uint32(len(leaders)))]
}

// TopSuspect returns the plurality suspect of the spy ballot, breaking
// ties randomly. ok is false when nobody voted.
func TopSuspect(votes []SpyVote) (string, bool) {
	if len(votes) == 0 {
		return "", false
	}
	tally := map[string]int{}
	for _, v := range votes {
		tally[v.SuspectID]++
	}
	best := 0
	for _, n := range tally {
		if n > best {
			best = n
		}
	}
	var leaders []string
	seen := map[string]bool{}
	for _, v := range votes {
		if tally[v.SuspectID] == best && !seen[v.SuspectID] {
			leaders = append(leaders, v.SuspectID)
			seen[v.SuspectID] = true
		}
	}
	return leaders[fastrand.Uint32n(uint32(len(leaders)))], true
}

// SpyVoteDeltas scores the spy ballot: every non-spy voter whose suspect
// turned out to be any of the actual spies earns a point. Spies never
// earn from this ballot even if they voted.
func SpyVoteDeltas(r *Room) map[string]int {
	deltas := map[string]int{}
	for _, v := range r.SpyVotes {
		voter := r.FindPlayer(v.VoterID)
		if voter == nil || voter.Role == RoleSpy {
			continue
		}
		if r.IsSpy(v.SuspectID) {
			deltas[v.VoterID]++
		}
	}
	return deltas
}

// ValidationVerdict folds the guess-validation ballot into a verdict.
// On quorum resolution a strict majority of "correct" among the cast
// votes is required. On timeout the bar drops to correct >= incorrect,
// so an empty or split ballot defaults in the spy's favor.
func ValidationVerdict(votes []ValidationVote, timedOut bool) bool {
	correct := 0
	for _, v := range votes {
		if v.Correct {
			correct++
		}
	}
	if timedOut {
		return correct >= len(votes)-correct
	}
	return correct > len(votes)/2
}
