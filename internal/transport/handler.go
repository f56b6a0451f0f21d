package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/game"
)

// Handler upgrades connections and dispatches inbound messages to the
// engine. Per-room ordering is the engine's job; the handler only
// translates frames.
type Handler struct {
	log      *zap.Logger
	hub      *Hub
	engine   *game.Engine
	upgrader websocket.Upgrader
}

func NewHandler(log *zap.Logger, hub *Hub, engine *game.Engine) *Handler {
	return &Handler{
		log:    log,
		hub:    hub,
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Clients are served from arbitrary origins; the room code
			// plus session token is the access control.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.Error(err))
		return
	}

	c := newClient(h.log, conn)
	go c.writePump()
	c.readPump(h.dispatch)
	h.drop(c)
}

// drop runs when the read pump exits. The seat itself survives inside
// the engine's grace window.
func (h *Handler) drop(c *Client) {
	c.close()
	if c.playerID == "" {
		return
	}
	if h.hub.unbind(c.playerID, c) {
		h.engine.MarkDisconnected(context.Background(), c.playerID)
	}
}

func (h *Handler) dispatch(c *Client, raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.sendError(c, "رسالة غير مفهومة")
		return
	}
	ctx := context.Background()

	switch env.Type {
	case msgCreateRoom:
		var req createRoomReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		payload, err := h.engine.CreateRoom(ctx, req.Name, req.Mode, req.Source)
		if err != nil {
			h.reject(c, err)
			return
		}
		h.seat(c, payload, game.EventRoomCreated)

	case msgJoinRoom:
		var req joinRoomReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		payload, err := h.engine.JoinRoom(ctx, req.Code, req.Name)
		if err != nil {
			h.reject(c, err)
			return
		}
		h.seat(c, payload, game.EventRoomJoined)

	case msgReconnect:
		var req reconnectReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		payload, err := h.engine.Reconnect(ctx, req.Code, req.SessionToken)
		if err != nil {
			h.reject(c, err)
			return
		}
		h.seat(c, payload, game.EventReconnected)

	case msgToggleReady:
		h.reject(c, h.engine.ToggleReady(ctx, c.playerID))

	case msgUpdateSettings:
		var patch game.SettingsPatch
		if json.Unmarshal(env.Data, &patch) != nil {
			return
		}
		h.reject(c, h.engine.UpdateSettings(ctx, c.playerID, patch))

	case msgStartGame:
		h.reject(c, h.engine.StartGame(ctx, c.playerID))

	case msgVoteCategory:
		var req voteCategoryReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.VoteCategory(ctx, c.playerID, req.Category))

	case msgSetWords:
		var req setWordsReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.SetExternalWords(ctx, c.playerID, req.Word, req.SpyWord))

	case msgAskQuestion:
		var req askQuestionReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.AskQuestion(ctx, c.playerID, req.TargetID, req.Text))

	case msgAnswerQuestion:
		var req answerQuestionReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.AnswerQuestion(ctx, c.playerID, req.Text))

	case msgEndTurn:
		h.reject(c, h.engine.EndTurn(ctx, c.playerID))

	case msgDoneQuestions:
		h.reject(c, h.engine.MarkDone(ctx, c.playerID))

	case msgVoteSpy:
		var req voteSpyReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.VoteSpy(ctx, c.playerID, req.SuspectID))

	case msgSubmitGuess:
		var req submitGuessReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.SubmitGuess(ctx, c.playerID, req.Guess))

	case msgValidateGuess:
		var req validateGuessReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.ValidateGuess(ctx, c.playerID, req.Correct))

	case msgNextRound:
		h.reject(c, h.engine.NextRound(ctx, c.playerID))

	case msgSendChat:
		var req chatReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.SendChat(ctx, c.playerID, req.Text))

	case msgTransferHost:
		var req targetReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.TransferHost(ctx, c.playerID, req.TargetID))

	case msgKickPlayer:
		var req targetReq
		if json.Unmarshal(env.Data, &req) != nil {
			return
		}
		h.reject(c, h.engine.KickPlayer(ctx, c.playerID, req.TargetID))

	case msgLeaveRoom:
		if err := h.engine.LeaveRoom(ctx, c.playerID); err == nil {
			h.hub.unbind(c.playerID, c)
			c.playerID = ""
		}

	default:
		h.log.Debug("unknown message type", zap.String("type", env.Type))
	}
}

// seat binds the connection to its player id and confirms with the
// join payload.
func (h *Handler) seat(c *Client, payload *game.JoinPayload, t game.EventType) {
	c.playerID = payload.PlayerID
	h.hub.bind(c.playerID, c)
	h.sendEvent(c, game.Event{Type: t, Data: payload})
}

// reject surfaces user-facing failures and swallows the silent ones.
func (h *Handler) reject(c *Client, err error) {
	if err == nil || !game.Visible(err) {
		return
	}
	h.sendError(c, errorMessage(err))
}

func (h *Handler) sendError(c *Client, msg string) {
	h.sendEvent(c, game.Event{Type: game.EventError, Data: game.ErrorPayload{Message: msg}})
}

func (h *Handler) sendEvent(c *Client, ev game.Event) {
	raw, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("event marshal failed", zap.Error(err))
		return
	}
	c.enqueue(raw)
}
