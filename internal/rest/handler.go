package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/exchange-chat-service/internal/config"
	api "github.com/s21platform/exchange-chat-service/internal/generated"
	"github.com/s21platform/exchange-chat-service/internal/model"
)

type Handler struct {
	repository   DBRepo
	guard        AccessGuard
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(repo DBRepo, guard AccessGuard, vldtr Validator, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		repository:   repo,
		guard:        guard,
		validator:    vldtr,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRooms")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	rooms, err := h.repository.GetRoomsForUser(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get rooms: %v", err))
		h.writeError(w, "failed to get rooms", http.StatusInternalServerError)
		return
	}

	resp := api.GetRoomsResponse{Rooms: make([]api.RoomPreview, 0, len(*rooms))}
	for _, room := range *rooms {
		resp.Rooms = append(resp.Rooms, api.RoomPreview{
			RoomId:             room.RoomID,
			CompanionId:        room.CompanionID,
			ExchangeRequestId:  room.ExchangeRequestID,
			LastActivityAt:     room.LastActivityAt,
			LastMessageContent: room.LastMessageContent,
			LastMessageSentAt:  room.LastMessageSentAt,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateRoom")

	var req api.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateRoom(&req, userID); err != nil {
		logger.Error(fmt.Sprintf("room validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("room validation failed: %v", err), http.StatusBadRequest)
		return
	}

	room, err := h.repository.CreateOrGetRoom(r.Context(), userID, req.CompanionId, req.ExchangeRequestId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create room: %v", err))
		h.writeError(w, "failed to create room", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, h.roomToResponse(room, userID))
}

func (h *Handler) GetRoomDetail(w http.ResponseWriter, r *http.Request, roomId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRoomDetail")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if !h.checkAccess(w, r, logger, userID, roomId) {
		return
	}

	room, err := h.repository.GetRoom(r.Context(), roomId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeError(w, "failed to get room", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, h.roomToResponse(room, userID))
}

func (h *Handler) GetRoomMessages(w http.ResponseWriter, r *http.Request, roomId string, params api.GetRoomMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRoomMessages")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	if !h.checkAccess(w, r, logger, userID, roomId) {
		return
	}

	var messages *model.MessageList
	var err error
	if params.After != nil {
		messages, err = h.repository.GetRoomMessagesAfter(r.Context(), roomId, time.UnixMilli(*params.After).UTC())
	} else {
		messages, err = h.repository.GetRoomMessages(r.Context(), roomId)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get messages: %v", err))
		h.writeError(w, "failed to get messages", http.StatusInternalServerError)
		return
	}

	resp := api.GetMessagesResponse{Messages: make([]api.MessageResponse, 0, len(*messages))}
	for _, message := range *messages {
		resp.Messages = append(resp.Messages, api.MessageResponse{
			Id:          message.ID.String(),
			RoomId:      message.RoomID.String(),
			SenderId:    message.SenderID.String(),
			SenderLabel: message.SenderLabel,
			Content:     message.Content,
			SentAt:      message.SentAt,
			Seq:         message.Seq,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, api.TokenResponse{Token: token, ExpiresAt: expiresAt})
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request, params api.GetSubscribeTokenParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	roomID, ok := model.ParseRoomChannel(params.Channel)
	if !ok {
		logger.Error(fmt.Sprintf("rejected subscribe token for channel %q", params.Channel))
		h.writeError(w, "unknown channel", http.StatusBadRequest)
		return
	}

	if !h.checkAccess(w, r, logger, userID, roomID) {
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userID, params.Channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, api.TokenResponse{Token: token, ExpiresAt: expiresAt})
}

// checkAccess runs the access guard and writes the failure response when the
// requester has no standing. An unknown room yields 404 and a foreign room
// 403, so callers can tell the two apart.
func (h *Handler) checkAccess(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, userID, roomID string) bool {
	ok, err := h.guard.CanAccess(r.Context(), userID, roomID)
	if errors.Is(err, model.ErrRoomNotFound) {
		h.writeError(w, "room not found", http.StatusNotFound)
		return false
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check room access: %v", err))
		h.writeError(w, "failed to check room access", http.StatusInternalServerError)
		return false
	}
	if !ok {
		logger.Error(fmt.Sprintf("user %s denied access to room %s", userID, roomID))
		h.writeError(w, "access denied", http.StatusForbidden)
		return false
	}

	return true
}

func (h *Handler) roomToResponse(room *model.Room, requesterID string) api.RoomResponse {
	companionID := room.ParticipantA.String()
	if companionID == requesterID {
		companionID = room.ParticipantB.String()
	}

	var exchangeRequestID *string
	if room.ExchangeRequestID != nil {
		id := room.ExchangeRequestID.String()
		exchangeRequestID = &id
	}

	return api.RoomResponse{
		Id:                room.ID.String(),
		CompanionId:       companionID,
		ExchangeRequestId: exchangeRequestID,
		CreatedAt:         room.CreatedAt,
		LastActivityAt:    room.LastActivityAt,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, api.Error{Error: message})
}
