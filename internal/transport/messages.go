package transport

import (
	"encoding/json"
	"errors"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/game"
)

// envelope is the wire shape in both directions: a type tag and a
// type-specific payload.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// client-to-server message types
const (
	msgCreateRoom     = "create_room"
	msgJoinRoom       = "join_room"
	msgReconnect      = "reconnect"
	msgToggleReady    = "toggle_ready"
	msgUpdateSettings = "update_settings"
	msgStartGame      = "start_game"
	msgVoteCategory   = "vote_category"
	msgSetWords       = "set_words"
	msgAskQuestion    = "ask_question"
	msgAnswerQuestion = "answer_question"
	msgEndTurn        = "end_turn"
	msgDoneQuestions  = "done_questions"
	msgVoteSpy        = "vote_spy"
	msgSubmitGuess    = "submit_guess"
	msgValidateGuess  = "validate_guess"
	msgNextRound      = "next_round"
	msgSendChat       = "send_chat"
	msgTransferHost   = "transfer_host"
	msgKickPlayer     = "kick_player"
	msgLeaveRoom      = "leave_room"
)

type createRoomReq struct {
	Name   string          `json:"name"`
	Mode   game.Mode       `json:"mode"`
	Source game.WordSource `json:"source"`
}

type joinRoomReq struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type reconnectReq struct {
	Code         string `json:"code"`
	SessionToken string `json:"sessionToken"`
}

type voteCategoryReq struct {
	Category string `json:"category"`
}

type setWordsReq struct {
	Word    string `json:"word"`
	SpyWord string `json:"spyWord"`
}

type askQuestionReq struct {
	TargetID string `json:"targetId"`
	Text     string `json:"text"`
}

type answerQuestionReq struct {
	Text string `json:"text"`
}

type voteSpyReq struct {
	SuspectID string `json:"suspectId"`
}

type submitGuessReq struct {
	Guess string `json:"guess"`
}

type validateGuessReq struct {
	Correct bool `json:"correct"`
}

type chatReq struct {
	Text string `json:"text"`
}

type targetReq struct {
	TargetID string `json:"targetId"`
}

// errorMessage maps engine rejections to the Arabic strings clients
// show verbatim.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		return "الغرفة غير موجودة"
	case errors.Is(err, game.ErrRoomFull):
		return "الغرفة ممتلئة"
	case errors.Is(err, game.ErrRoomStarted):
		return "اللعبة بدأت بالفعل"
	case errors.Is(err, game.ErrBadName):
		return "الاسم يجب أن يكون بين حرفين و٢٠ حرفًا"
	case errors.Is(err, game.ErrNameTaken):
		return "هذا الاسم مستخدم في الغرفة"
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return "عدد اللاعبين غير كافٍ لبدء اللعبة"
	case errors.Is(err, game.ErrPlayersNotReady):
		return "بعض اللاعبين غير جاهزين"
	case errors.Is(err, game.ErrSessionExpired):
		return "انتهت صلاحية الجلسة"
	case errors.Is(err, game.ErrSessionInvalid):
		return "جلسة غير صالحة"
	default:
		return "حدث خطأ غير متوقع"
	}
}
