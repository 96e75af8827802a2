package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

type ConnectionHandler struct {
	connectionRepo   repository.ConnectionRepo
	userRepo         repository.UserRepo
	notificationRepo repository.NotificationRepo
}

// NewConnectionHandler creates a new ConnectionHandler with required dependencies.
func NewConnectionHandler(cr repository.ConnectionRepo, ur repository.UserRepo, nr repository.NotificationRepo) *ConnectionHandler {
	return &ConnectionHandler{
		connectionRepo:   cr,
		userRepo:         ur,
		notificationRepo: nr,
	}
}

// legalTransitions maps a connection status to the statuses it may move to.
var legalTransitions = map[string][]string{
	models.ConnectionPending: {models.ConnectionActive, models.ConnectionCancelled},
	models.ConnectionActive:  {models.ConnectionCompleted, models.ConnectionCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, s := range legalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (h *ConnectionHandler) List(w http.ResponseWriter, r *http.Request) {
	connections, err := h.connectionRepo.ListConnectionsByUser(r.Context(), userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch connections", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"connections": connections})
}

type createConnectionRequest struct {
	HelperID int64 `json:"helperId"`
}

func (h *ConnectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if userTypeFrom(r) != models.TypeEmployer {
		respondError(w, http.StatusForbidden, "Only employers can initiate connections")
		return
	}

	var req createConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.HelperID == 0 {
		respondError(w, http.StatusBadRequest, "Please provide a helper id")
		return
	}

	ctx := r.Context()
	employerID := userIDFrom(r)

	helper, err := h.userRepo.GetUserByID(ctx, req.HelperID)
	if err != nil {
		respondStoreError(w, "Failed to fetch helper", err)
		return
	}
	if helper == nil || helper.UserType != models.TypeHelper {
		respondError(w, http.StatusNotFound, "Helper not found")
		return
	}

	connectionID, err := h.connectionRepo.CreateConnection(ctx, employerID, req.HelperID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respondError(w, http.StatusBadRequest, "Connection already exists")
			return
		}
		respondStoreError(w, "Failed to create connection", err)
		return
	}

	notify(ctx, h.notificationRepo, req.HelperID, models.NotifyInfo,
		"New Connection Request", "An employer wants to connect with you")

	respondOK(w, http.StatusCreated, map[string]any{
		"message":      "Connection request sent",
		"connectionId": connectionID,
	})
}

type updateConnectionRequest struct {
	Status string `json:"status"`
}

func (h *ConnectionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid connection id")
		return
	}

	var req updateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx := r.Context()

	connection, err := h.connectionRepo.GetConnection(ctx, id)
	if err != nil {
		respondStoreError(w, "Failed to fetch connection", err)
		return
	}
	if connection == nil {
		respondError(w, http.StatusNotFound, "Connection not found")
		return
	}

	callerID := userIDFrom(r)
	if callerID != connection.EmployerID && callerID != connection.HelperID && !isAdmin(r) {
		respondError(w, http.StatusForbidden, "You are not part of this connection")
		return
	}

	if !transitionAllowed(connection.Status, req.Status) {
		respondError(w, http.StatusBadRequest, "Invalid status transition")
		return
	}

	if err := h.connectionRepo.UpdateConnectionStatus(ctx, id, req.Status); err != nil {
		respondStoreError(w, "Failed to update connection", err)
		return
	}

	// Tell the other participant about the change.
	otherID := connection.EmployerID
	if callerID == connection.EmployerID {
		otherID = connection.HelperID
	}
	notify(ctx, h.notificationRepo, otherID, models.NotifyInfo,
		"Connection Updated", "A connection was marked "+req.Status)

	respondOK(w, http.StatusOK, map[string]any{"message": "Connection updated successfully"})
}

func (h *ConnectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid connection id")
		return
	}

	ctx := r.Context()

	connection, err := h.connectionRepo.GetConnection(ctx, id)
	if err != nil {
		respondStoreError(w, "Failed to fetch connection", err)
		return
	}
	if connection == nil {
		respondError(w, http.StatusNotFound, "Connection not found")
		return
	}

	callerID := userIDFrom(r)
	if callerID != connection.EmployerID && callerID != connection.HelperID && !isAdmin(r) {
		respondError(w, http.StatusForbidden, "You are not part of this connection")
		return
	}

	if _, err := h.connectionRepo.DeleteConnection(ctx, id); err != nil {
		respondStoreError(w, "Failed to delete connection", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{"message": "Connection deleted successfully"})
}
