package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

type AdminHandler struct {
	adminRepo        repository.AdminRepo
	userRepo         repository.UserRepo
	profileRepo      repository.ProfileRepo
	reportRepo       repository.ReportRepo
	jobRepo          repository.JobRepo
	notificationRepo repository.NotificationRepo
}

// NewAdminHandler creates a new AdminHandler with required dependencies.
func NewAdminHandler(
	ar repository.AdminRepo,
	ur repository.UserRepo,
	pr repository.ProfileRepo,
	rr repository.ReportRepo,
	jr repository.JobRepo,
	nr repository.NotificationRepo,
) *AdminHandler {
	return &AdminHandler{
		adminRepo:        ar,
		userRepo:         ur,
		profileRepo:      pr,
		reportRepo:       rr,
		jobRepo:          jr,
		notificationRepo: nr,
	}
}

// pagination reads page/limit query parameters with sane bounds.
func pagination(r *http.Request) (page, limit int) {
	page, limit = 1, 20

	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	return page, limit
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminRepo.DashboardStats(r.Context())
	if err != nil {
		respondStoreError(w, "Failed to fetch stats", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"stats": stats})
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	q := r.URL.Query()

	users, total, err := h.adminRepo.ListUsers(r.Context(), q.Get("userType"), q.Get("status"), limit, (page-1)*limit)
	if err != nil {
		respondStoreError(w, "Failed to fetch users", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{
		"users": users,
		"pagination": map[string]any{
			"total":      total,
			"page":       page,
			"limit":      limit,
			"totalPages": int64(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetUserByID(ctx, id)
	if err != nil {
		respondStoreError(w, "Failed to fetch user", err)
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	out := map[string]any{"user": user}
	switch user.UserType {
	case models.TypeHelper:
		profile, err := h.profileRepo.GetHelperProfile(ctx, id)
		if err != nil {
			respondStoreError(w, "Failed to fetch profile", err)
			return
		}
		out["helperProfile"] = profile
	case models.TypeEmployer:
		prefs, err := h.profileRepo.GetEmployerPreferences(ctx, id)
		if err != nil {
			respondStoreError(w, "Failed to fetch preferences", err)
			return
		}
		out["employerPreferences"] = prefs
	}
	respondOK(w, http.StatusOK, out)
}

type updateUserStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req updateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	switch req.Status {
	case models.UserActive, models.UserInactive, models.UserSuspended:
	default:
		respondError(w, http.StatusBadRequest, "Invalid user status")
		return
	}

	ctx := r.Context()

	affected, err := h.adminRepo.UpdateUserStatus(ctx, id, req.Status)
	if err != nil {
		respondStoreError(w, "Failed to update user", err)
		return
	}
	if affected == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	notify(ctx, h.notificationRepo, id, models.NotifyWarning,
		"Account Status Changed", "Your account status is now "+req.Status)

	respondOK(w, http.StatusOK, map[string]any{"message": "User status updated successfully"})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	affected, err := h.adminRepo.DeleteUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Failed to delete user", err)
		return
	}
	if affected == 0 {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"message": "User deleted successfully"})
}

func (h *AdminHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	connections, err := h.adminRepo.ListAllConnections(r.Context(), r.URL.Query().Get("status"), limit, (page-1)*limit)
	if err != nil {
		respondStoreError(w, "Failed to fetch connections", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"connections": connections})
}

func (h *AdminHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	reports, err := h.reportRepo.ListReports(r.Context(), r.URL.Query().Get("status"), limit, (page-1)*limit)
	if err != nil {
		respondStoreError(w, "Failed to fetch reports", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"reports": reports})
}

type updateReportRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

func (h *AdminHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	var req updateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	switch req.Status {
	case models.ReportPending, models.ReportInvestigating, models.ReportResolved, models.ReportDismissed:
	default:
		respondError(w, http.StatusBadRequest, "Invalid report status")
		return
	}

	affected, err := h.reportRepo.UpdateReportStatus(r.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		respondStoreError(w, "Failed to update report", err)
		return
	}
	if affected == 0 {
		respondError(w, http.StatusNotFound, "Report not found")
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"message": "Report updated successfully"})
}

func (h *AdminHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	jobs, err := h.adminRepo.ListAllJobs(r.Context(), r.URL.Query().Get("status"), limit, (page-1)*limit)
	if err != nil {
		respondStoreError(w, "Failed to fetch jobs", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (h *AdminHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	affected, err := h.jobRepo.DeleteJob(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Failed to delete job", err)
		return
	}
	if affected == 0 {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"message": "Job deleted successfully"})
}
