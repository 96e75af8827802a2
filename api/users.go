package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

type UserHandler struct {
	userRepo         repository.UserRepo
	profileRepo      repository.ProfileRepo
	reviewRepo       repository.ReviewRepo
	reportRepo       repository.ReportRepo
	savedRepo        repository.SavedProfileRepo
	notificationRepo repository.NotificationRepo
}

// NewUserHandler creates a new UserHandler with required dependencies.
func NewUserHandler(
	ur repository.UserRepo,
	pr repository.ProfileRepo,
	rr repository.ReviewRepo,
	rep repository.ReportRepo,
	sr repository.SavedProfileRepo,
	nr repository.NotificationRepo,
) *UserHandler {
	return &UserHandler{
		userRepo:         ur,
		profileRepo:      pr,
		reviewRepo:       rr,
		reportRepo:       rep,
		savedRepo:        sr,
		notificationRepo: nr,
	}
}

// pathID extracts a numeric path variable from the request.
func pathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path variable %q", name)
	}
	return strconv.ParseInt(raw, 10, 64)
}

// userWithProfile loads a user and attaches the role-specific profile object.
func (h *UserHandler) userWithProfile(r *http.Request, userID int64) (map[string]any, error) {
	ctx := r.Context()

	user, err := h.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	out := map[string]any{"user": user}
	switch user.UserType {
	case models.TypeHelper:
		profile, err := h.profileRepo.GetHelperProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		out["helperProfile"] = profile
	case models.TypeEmployer:
		prefs, err := h.profileRepo.GetEmployerPreferences(ctx, userID)
		if err != nil {
			return nil, err
		}
		out["employerPreferences"] = prefs
	}
	return out, nil
}

func (h *UserHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	out, err := h.userWithProfile(r, userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch profile", err)
		return
	}
	if out == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondOK(w, http.StatusOK, out)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	out, err := h.userWithProfile(r, id)
	if err != nil {
		respondStoreError(w, "Failed to fetch user", err)
		return
	}
	if out == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondOK(w, http.StatusOK, out)
}

type updateProfileRequest struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	About        string `json:"about"`
	ProfileImage string `json:"profileImage"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	userID := userIDFrom(r)
	ctx := r.Context()

	if err := h.userRepo.UpdateUserProfile(ctx, userID, req.FullName, req.Phone, req.City, req.About, req.ProfileImage); err != nil {
		respondStoreError(w, "Failed to update profile", err)
		return
	}

	user, err := h.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		respondStoreError(w, "Failed to fetch profile", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) UpdateHelperProfile(w http.ResponseWriter, r *http.Request) {
	if userTypeFrom(r) != models.TypeHelper {
		respondError(w, http.StatusForbidden, "Only helpers can update helper profiles")
		return
	}

	var profile models.HelperProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	profile.UserID = userIDFrom(r)

	if err := h.profileRepo.UpsertHelperProfile(r.Context(), &profile); err != nil {
		respondStoreError(w, "Failed to update helper profile", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"message":       "Helper profile updated successfully",
		"helperProfile": profile,
	})
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.SearchFilter{
		UserType: q.Get("userType"),
		City:     q.Get("city"),
		Skills:   q.Get("skills"),
		Keywords: q.Get("keywords"),
	}
	if raw := q.Get("rating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinRating = v
		}
	}

	results, err := h.userRepo.SearchUsers(r.Context(), userIDFrom(r), filter)
	if err != nil {
		respondStoreError(w, "Search failed", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"count": len(results),
		"users": results,
	})
}

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.userRepo.UserStats(r.Context(), userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch stats", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"stats": stats})
}

func (h *UserHandler) ToggleSaved(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	userID := userIDFrom(r)
	if targetID == userID {
		respondError(w, http.StatusBadRequest, "You cannot save your own profile")
		return
	}

	saved, err := h.savedRepo.ToggleSavedProfile(r.Context(), userID, targetID)
	if err != nil {
		respondStoreError(w, "Failed to update saved profiles", err)
		return
	}

	msg := "Profile removed from saved"
	if saved {
		msg = "Profile saved"
	}
	respondOK(w, http.StatusOK, map[string]any{
		"message": msg,
		"saved":   saved,
	})
}

func (h *UserHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.savedRepo.ListSavedProfiles(r.Context(), userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch saved profiles", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"savedProfiles": profiles})
}

func (h *UserHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationRepo.ListNotifications(r.Context(), userIDFrom(r), 50)
	if err != nil {
		respondStoreError(w, "Failed to fetch notifications", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (h *UserHandler) UnreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationRepo.UnreadNotificationCount(r.Context(), userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch unread count", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"count": count})
}

func (h *UserHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	affected, err := h.notificationRepo.MarkNotificationRead(r.Context(), id, userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to update notification", err)
		return
	}
	if affected == 0 {
		respondError(w, http.StatusNotFound, "Notification not found")
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"message": "Notification marked as read"})
}

type createReviewRequest struct {
	RevieweeID   int64  `json:"revieweeId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ConnectionID *int64 `json:"connectionId"`
}

func (h *UserHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.RevieweeID == 0 || req.Rating < 1 || req.Rating > 5 {
		respondError(w, http.StatusBadRequest, "Please provide a reviewee and a rating between 1 and 5")
		return
	}

	userID := userIDFrom(r)
	if req.RevieweeID == userID {
		respondError(w, http.StatusBadRequest, "You cannot review yourself")
		return
	}

	ctx := r.Context()

	review := models.Review{
		ReviewerID:   userID,
		RevieweeID:   req.RevieweeID,
		ConnectionID: req.ConnectionID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	reviewID, err := h.reviewRepo.CreateReview(ctx, &review)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			respondError(w, http.StatusNotFound, "User or connection not found")
			return
		}
		respondStoreError(w, "Failed to create review", err)
		return
	}

	if err := h.reviewRepo.RefreshUserRating(ctx, req.RevieweeID); err != nil {
		respondStoreError(w, "Failed to update rating", err)
		return
	}

	notify(ctx, h.notificationRepo, req.RevieweeID, models.NotifySuccess,
		"New Review", "You have received a new review")

	respondOK(w, http.StatusCreated, map[string]any{
		"message":  "Review submitted successfully",
		"reviewId": reviewID,
	})
}

func (h *UserHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	reviews, err := h.reviewRepo.ListReviewsForUser(r.Context(), userID)
	if err != nil {
		respondStoreError(w, "Failed to fetch reviews", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"reviews": reviews})
}

type createReportRequest struct {
	ReportedUserID int64  `json:"reportedUserId"`
	Reason         string `json:"reason"`
	Description    string `json:"description"`
}

func (h *UserHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.ReportedUserID == 0 || req.Reason == "" {
		respondError(w, http.StatusBadRequest, "Please provide a reported user and a reason")
		return
	}

	reportID, err := h.reportRepo.CreateReport(r.Context(), userIDFrom(r), req.ReportedUserID, req.Reason, req.Description)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondStoreError(w, "Failed to submit report", err)
		return
	}

	respondOK(w, http.StatusCreated, map[string]any{
		"message":  "Report submitted successfully",
		"reportId": reportID,
	})
}
