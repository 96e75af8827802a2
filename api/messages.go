package api

import (
	"encoding/json"
	"net/http"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

type MessageHandler struct {
	messageRepo      repository.MessageRepo
	userRepo         repository.UserRepo
	notificationRepo repository.NotificationRepo
}

// NewMessageHandler creates a new MessageHandler with required dependencies.
func NewMessageHandler(mr repository.MessageRepo, ur repository.UserRepo, nr repository.NotificationRepo) *MessageHandler {
	return &MessageHandler{
		messageRepo:      mr,
		userRepo:         ur,
		notificationRepo: nr,
	}
}

type sendMessageRequest struct {
	ReceiverID int64  `json:"receiverId"`
	Message    string `json:"message"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ReceiverID == 0 || req.Message == "" {
		respondError(w, http.StatusBadRequest, "Please provide a receiver and a message")
		return
	}

	ctx := r.Context()
	senderID := userIDFrom(r)

	if req.ReceiverID == senderID {
		respondError(w, http.StatusBadRequest, "You cannot message yourself")
		return
	}

	receiver, err := h.userRepo.GetUserByID(ctx, req.ReceiverID)
	if err != nil {
		respondStoreError(w, "Failed to fetch receiver", err)
		return
	}
	if receiver == nil {
		respondError(w, http.StatusNotFound, "Receiver not found")
		return
	}

	messageID, err := h.messageRepo.CreateMessage(ctx, senderID, req.ReceiverID, req.Message)
	if err != nil {
		respondStoreError(w, "Failed to send message", err)
		return
	}

	notify(ctx, h.notificationRepo, req.ReceiverID, models.NotifyInfo,
		"New Message", "You have a new message")

	respondOK(w, http.StatusCreated, map[string]any{
		"message":   "Message sent successfully",
		"messageId": messageID,
	})
}

func (h *MessageHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.messageRepo.ListConversations(r.Context(), userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch conversations", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"conversations": conversations})
}

func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	otherID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx := r.Context()
	userID := userIDFrom(r)

	messages, err := h.messageRepo.ListConversation(ctx, userID, otherID)
	if err != nil {
		respondStoreError(w, "Failed to fetch messages", err)
		return
	}

	// Reading a conversation marks the counterpart's messages as read.
	if _, err := h.messageRepo.MarkMessagesRead(ctx, otherID, userID); err != nil {
		logger.Warn("failed to mark messages read",
			"user_id", userID,
			"sender_id", otherID,
			"error", err)
	}

	respondOK(w, http.StatusOK, map[string]any{"messages": messages})
}

func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.messageRepo.UnreadMessageCount(r.Context(), userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch unread count", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"unreadCount": count})
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	otherID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	updated, err := h.messageRepo.MarkMessagesRead(r.Context(), otherID, userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to mark messages read", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"message": "Messages marked as read",
		"updated": updated,
	})
}
