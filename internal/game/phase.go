package game

// Phase is the current stage of a room's state machine. Transitions only
// move forward in this order; "next round" is the single loop back from
// results to category voting.
type Phase string

const (
	PhaseLobby           Phase = "lobby"
	PhaseCategoryVoting  Phase = "category_voting"
	PhaseWordReveal      Phase = "word_reveal"
	PhaseQuestioning     Phase = "questioning"
	PhaseTransition      Phase = "transition"
	PhaseSpyVoting       Phase = "spy_voting"
	PhaseSpyGuess        Phase = "spy_guess"
	PhaseGuessValidation Phase = "guess_validation"
	PhaseResults         Phase = "results"
)

type Role string

const (
	RolePlayer Role = "player"
	RoleSpy    Role = "spy"
)

type Mode string

const (
	// ModeClassic hands the spy the literal "you are the spy" card.
	ModeClassic Mode = "classic"
	// ModeBlind hands the spy a topically similar word instead.
	ModeBlind Mode = "blind"
)

// SpyWordClassic is what the spy sees instead of the secret word in
// classic mode.
const SpyWordClassic = "أنت الجاسوس"

// ValidationMode decides who judges the spy's word guess.
type ValidationMode string

const (
	// ValidationPlayers collects a human majority vote.
	ValidationPlayers ValidationMode = "players"
	// ValidationSystem matches the guess against the word automatically.
	ValidationSystem ValidationMode = "system"
)

// WordSource is where a round's words come from.
type WordSource string

const (
	WordsInternal WordSource = "internal"
	// WordsExternal delegates word selection to an out-of-band party;
	// category voting is bypassed for such rooms.
	WordsExternal WordSource = "external"
)
