package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

type JobHandler struct {
	jobRepo          repository.JobRepo
	applicationRepo  repository.ApplicationRepo
	notificationRepo repository.NotificationRepo
}

// NewJobHandler creates a new JobHandler with required dependencies.
func NewJobHandler(jr repository.JobRepo, ar repository.ApplicationRepo, nr repository.NotificationRepo) *JobHandler {
	return &JobHandler{
		jobRepo:          jr,
		applicationRepo:  ar,
		notificationRepo: nr,
	}
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.JobFilter{
		City:     q.Get("city"),
		WorkType: q.Get("workType"),
	}
	if raw := q.Get("postedBy"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.PostedBy = v
		}
	}

	jobs, err := h.jobRepo.ListJobs(r.Context(), filter)
	if err != nil {
		respondStoreError(w, "Failed to fetch jobs", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{
		"count": len(jobs),
		"jobs":  jobs,
	})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.jobRepo.GetJob(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Failed to fetch job", err)
		return
	}
	if job == nil {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"job": job})
}

type createJobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	WorkType     string `json:"workType"`
	Location     string `json:"location"`
	SalaryRange  string `json:"salaryRange"`
	Requirements string `json:"requirements"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	if userTypeFrom(r) != models.TypeEmployer {
		respondError(w, http.StatusForbidden, "Only employers can post jobs")
		return
	}

	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Title == "" || req.Description == "" || req.WorkType == "" || req.Location == "" {
		respondError(w, http.StatusBadRequest, "Please provide title, description, work type and location")
		return
	}

	job := models.Job{
		EmployerID:   userIDFrom(r),
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		WorkType:     req.WorkType,
		SalaryRange:  req.SalaryRange,
		Requirements: req.Requirements,
	}
	jobID, err := h.jobRepo.CreateJob(r.Context(), &job)
	if err != nil {
		respondStoreError(w, "Failed to create job", err)
		return
	}

	respondOK(w, http.StatusCreated, map[string]any{
		"message": "Job posted successfully",
		"jobId":   jobID,
	})
}

type updateJobRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	WorkType     *string `json:"workType"`
	Location     *string `json:"location"`
	SalaryRange  *string `json:"salaryRange"`
	Requirements *string `json:"requirements"`
	Status       *string `json:"status"`
}

// ownedJob loads a job and checks the caller may manage it.
func (h *JobHandler) ownedJob(w http.ResponseWriter, r *http.Request) (*models.JobDetail, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job id")
		return nil, false
	}

	job, err := h.jobRepo.GetJob(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Failed to fetch job", err)
		return nil, false
	}
	if job == nil {
		respondError(w, http.StatusNotFound, "Job not found")
		return nil, false
	}
	if !canModerate(r, job.EmployerID) {
		respondError(w, http.StatusForbidden, "You can only manage your own jobs")
		return nil, false
	}
	return job, true
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	job, ok := h.ownedJob(w, r)
	if !ok {
		return
	}

	var req updateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Status != nil {
		switch *req.Status {
		case models.JobActive, models.JobClosed, models.JobFilled:
		default:
			respondError(w, http.StatusBadRequest, "Invalid job status")
			return
		}
	}

	update := models.JobUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		WorkType:     req.WorkType,
		SalaryRange:  req.SalaryRange,
		Requirements: req.Requirements,
		Status:       req.Status,
	}
	if err := h.jobRepo.UpdateJob(r.Context(), job.ID, update); err != nil {
		respondStoreError(w, "Failed to update job", err)
		return
	}

	respondOK(w, http.StatusOK, map[string]any{"message": "Job updated successfully"})
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	job, ok := h.ownedJob(w, r)
	if !ok {
		return
	}

	if _, err := h.jobRepo.DeleteJob(r.Context(), job.ID); err != nil {
		respondStoreError(w, "Failed to delete job", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"message": "Job deleted successfully"})
}

type applyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if userTypeFrom(r) != models.TypeHelper {
		respondError(w, http.StatusForbidden, "Only helpers can apply to jobs")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var req applyRequest
	if r.Body != nil {
		// Cover letter is optional, an empty body is fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	ctx := r.Context()

	job, err := h.jobRepo.GetJob(ctx, id)
	if err != nil {
		respondStoreError(w, "Failed to fetch job", err)
		return
	}
	if job == nil {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}
	if job.Status != models.JobActive {
		respondError(w, http.StatusBadRequest, "This job is no longer accepting applications")
		return
	}

	applicationID, err := h.applicationRepo.CreateApplication(ctx, id, userIDFrom(r), req.CoverLetter)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respondError(w, http.StatusBadRequest, "You have already applied to this job")
			return
		}
		respondStoreError(w, "Failed to submit application", err)
		return
	}

	notify(ctx, h.notificationRepo, job.EmployerID, models.NotifyInfo,
		"New Job Application", "Someone applied to your job: "+job.Title)

	respondOK(w, http.StatusCreated, map[string]any{
		"message":       "Application submitted successfully",
		"applicationId": applicationID,
	})
}

func (h *JobHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	job, ok := h.ownedJob(w, r)
	if !ok {
		return
	}

	applications, err := h.applicationRepo.ListApplicationsForJob(r.Context(), job.ID)
	if err != nil {
		respondStoreError(w, "Failed to fetch applications", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"applications": applications})
}

type updateApplicationRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "applicationId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req updateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	switch req.Status {
	case models.ApplicationPending, models.ApplicationReviewed, models.ApplicationShortlisted,
		models.ApplicationAccepted, models.ApplicationRejected:
	default:
		respondError(w, http.StatusBadRequest, "Invalid application status")
		return
	}

	ctx := r.Context()

	ownership, err := h.applicationRepo.GetApplicationOwnership(ctx, id)
	if err != nil {
		respondStoreError(w, "Failed to fetch application", err)
		return
	}
	if ownership == nil {
		respondError(w, http.StatusNotFound, "Application not found")
		return
	}
	if !canModerate(r, ownership.EmployerID) {
		respondError(w, http.StatusForbidden, "You can only manage applications to your own jobs")
		return
	}

	if err := h.applicationRepo.UpdateApplicationStatus(ctx, id, req.Status); err != nil {
		respondStoreError(w, "Failed to update application", err)
		return
	}

	notify(ctx, h.notificationRepo, ownership.HelperID, models.NotifyInfo,
		"Application Update", "Your application was marked "+req.Status)

	respondOK(w, http.StatusOK, map[string]any{"message": "Application updated successfully"})
}

func (h *JobHandler) MyApplications(w http.ResponseWriter, r *http.Request) {
	if userTypeFrom(r) != models.TypeHelper {
		respondError(w, http.StatusForbidden, "Only helpers have job applications")
		return
	}

	applications, err := h.applicationRepo.ListApplicationsByHelper(r.Context(), userIDFrom(r))
	if err != nil {
		respondStoreError(w, "Failed to fetch applications", err)
		return
	}
	respondOK(w, http.StatusOK, map[string]any{"applications": applications})
}
