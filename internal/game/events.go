package game

// EventType enumerates the server-to-client message kinds. Every event
// carrying room state carries a per-recipient snapshot, never the raw
// room, so hidden roles and words stay server-side.
type EventType string

const (
	EventRoomCreated     EventType = "room_created"
	EventRoomJoined      EventType = "room_joined"
	EventReconnected     EventType = "reconnected"
	EventRoomUpdated     EventType = "room_updated"
	EventGameStarted     EventType = "game_started"
	EventPhaseChanged    EventType = "phase_changed"
	EventTurnChanged     EventType = "turn_changed"
	EventTimerUpdate     EventType = "timer_update"
	EventNewChatMessage  EventType = "new_chat_message"
	EventPlayerLeft      EventType = "player_left"
	EventPlayerKicked    EventType = "player_kicked"
	EventHostTransferred EventType = "host_transferred"
	EventError           EventType = "error"
)

type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// Broadcaster delivers events to connected players. Delivery to a
// disconnected player is a no-op; the reconnect snapshot covers the gap.
type Broadcaster interface {
	Send(playerID string, ev Event)
}

type TimerUpdate struct {
	Purpose   TimerPurpose `json:"purpose"`
	Remaining int          `json:"remaining"`
}

type JoinPayload struct {
	PlayerID     string    `json:"playerId"`
	SessionToken string    `json:"sessionToken"`
	Room         *RoomView `json:"room"`
}

type PlayerRef struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
