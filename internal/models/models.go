package models

// User statuses.
const (
	UserActive    = "active"
	UserInactive  = "inactive"
	UserSuspended = "suspended"
	UserPending   = "pending"
)

// User types.
const (
	TypeEmployer = "employer"
	TypeHelper   = "helper"
)

// Connection statuses.
const (
	ConnectionPending   = "pending"
	ConnectionActive    = "active"
	ConnectionCompleted = "completed"
	ConnectionCancelled = "cancelled"
)

// Job statuses.
const (
	JobActive = "active"
	JobClosed = "closed"
	JobFilled = "filled"
)

// Job application statuses.
const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationAccepted    = "accepted"
	ApplicationRejected    = "rejected"
)

// Notification types.
const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyError   = "error"
)

// Report statuses.
const (
	ReportPending       = "pending"
	ReportInvestigating = "investigating"
	ReportResolved      = "resolved"
	ReportDismissed     = "dismissed"
)

type User struct {
	ID           int64   `json:"id" db:"id"`
	FullName     string  `json:"full_name" db:"full_name"`
	Email        string  `json:"email" db:"email"`
	Phone        string  `json:"phone" db:"phone"`
	PasswordHash string  `json:"-" db:"password_hash"`
	UserType     string  `json:"user_type" db:"user_type"`
	City         string  `json:"city" db:"city"`
	About        string  `json:"about" db:"about"`
	ProfileImage *string `json:"profile_image,omitempty" db:"profile_image"`
	Verified     bool    `json:"verified" db:"verified"`
	Status       string  `json:"status" db:"status"`
	Rating       float64 `json:"rating" db:"rating"`
	TotalReviews int64   `json:"total_reviews" db:"total_reviews"`
	Created      int64   `json:"created_at" db:"created_at"`
	Updated      int64   `json:"updated_at" db:"updated_at"`
}

type HelperProfile struct {
	ID             int64    `json:"id" db:"id"`
	UserID         int64    `json:"user_id" db:"user_id"`
	Skills         string   `json:"skills" db:"skills"`
	Experience     string   `json:"experience" db:"experience"`
	HourlyRate     *float64 `json:"hourly_rate,omitempty" db:"hourly_rate"`
	Availability   string   `json:"availability" db:"availability"`
	Languages      string   `json:"languages" db:"languages"`
	Certifications string   `json:"certifications" db:"certifications"`
	Updated        int64    `json:"updated_at" db:"updated_at"`
}

type EmployerPreferences struct {
	ID                  int64  `json:"id" db:"id"`
	UserID              int64  `json:"user_id" db:"user_id"`
	ServicesNeeded      string `json:"services_needed" db:"services_needed"`
	BudgetRange         string `json:"budget_range" db:"budget_range"`
	PreferredExperience string `json:"preferred_experience" db:"preferred_experience"`
	PreferredSkills     string `json:"preferred_skills" db:"preferred_skills"`
	WorkSchedule        string `json:"work_schedule" db:"work_schedule"`
	Updated             int64  `json:"updated_at" db:"updated_at"`
}

type Connection struct {
	ID         int64  `json:"id" db:"id"`
	EmployerID int64  `json:"employer_id" db:"employer_id"`
	HelperID   int64  `json:"helper_id" db:"helper_id"`
	Status     string `json:"status" db:"status"`
	StartedAt  *int64 `json:"started_at,omitempty" db:"started_at"`
	EndedAt    *int64 `json:"ended_at,omitempty" db:"ended_at"`
	Created    int64  `json:"created_at" db:"created_at"`
	Updated    int64  `json:"updated_at" db:"updated_at"`
}

// ConnectionDetail is a connection joined with both parties for listings.
type ConnectionDetail struct {
	Connection
	EmployerName  string  `json:"employer_name"`
	EmployerEmail string  `json:"employer_email"`
	EmployerCity  string  `json:"employer_city"`
	HelperName    string  `json:"helper_name"`
	HelperEmail   string  `json:"helper_email"`
	HelperCity    string  `json:"helper_city"`
	HelperRating  float64 `json:"helper_rating"`
}

type Message struct {
	ID         int64  `json:"id" db:"id"`
	SenderID   int64  `json:"sender_id" db:"sender_id"`
	ReceiverID int64  `json:"receiver_id" db:"receiver_id"`
	Message    string `json:"message" db:"message"`
	Read       bool   `json:"read" db:"read"`
	Created    int64  `json:"created_at" db:"created_at"`
}

// MessageDetail carries sender/receiver display fields for history views.
type MessageDetail struct {
	Message
	SenderName    string  `json:"sender_name"`
	SenderImage   *string `json:"sender_image,omitempty"`
	ReceiverName  string  `json:"receiver_name"`
	ReceiverImage *string `json:"receiver_image,omitempty"`
}

// ConversationSummary is one counterpart in the conversation list.
type ConversationSummary struct {
	UserID          int64   `json:"user_id"`
	FullName        string  `json:"full_name"`
	ProfileImage    *string `json:"profile_image,omitempty"`
	UserType        string  `json:"user_type"`
	LastMessage     *string `json:"last_message"`
	LastMessageTime *int64  `json:"last_message_time"`
	UnreadCount     int64   `json:"unread_count"`
}

type Review struct {
	ID           int64  `json:"id" db:"id"`
	ReviewerID   int64  `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID   int64  `json:"reviewee_id" db:"reviewee_id"`
	ConnectionID *int64 `json:"connection_id,omitempty" db:"connection_id"`
	Rating       int    `json:"rating" db:"rating"`
	Comment      string `json:"comment" db:"comment"`
	Created      int64  `json:"created_at" db:"created_at"`
}

type ReviewDetail struct {
	Review
	ReviewerName  string  `json:"reviewer_name"`
	ReviewerImage *string `json:"reviewer_image,omitempty"`
}

type Report struct {
	ID             int64  `json:"id" db:"id"`
	ReporterID     int64  `json:"reporter_id" db:"reporter_id"`
	ReportedUserID int64  `json:"reported_user_id" db:"reported_user_id"`
	Reason         string `json:"reason" db:"reason"`
	Description    string `json:"description" db:"description"`
	Status         string `json:"status" db:"status"`
	AdminNotes     string `json:"admin_notes" db:"admin_notes"`
	Created        int64  `json:"created_at" db:"created_at"`
	Updated        int64  `json:"updated_at" db:"updated_at"`
	ResolvedAt     *int64 `json:"resolved_at,omitempty" db:"resolved_at"`
}

type ReportDetail struct {
	Report
	ReporterName  string `json:"reporter_name"`
	ReporterEmail string `json:"reporter_email"`
	ReportedName  string `json:"reported_name"`
	ReportedEmail string `json:"reported_email"`
}

// SavedProfileDetail is a saved user joined with its public fields.
type SavedProfileDetail struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	UserType     string  `json:"user_type"`
	City         string  `json:"city"`
	About        string  `json:"about"`
	ProfileImage *string `json:"profile_image,omitempty"`
	Verified     bool    `json:"verified"`
	Rating       float64 `json:"rating"`
	TotalReviews int64   `json:"total_reviews"`
	SavedAt      int64   `json:"saved_at"`
}

type Notification struct {
	ID      int64  `json:"id" db:"id"`
	UserID  int64  `json:"user_id" db:"user_id"`
	Title   string `json:"title" db:"title"`
	Message string `json:"message" db:"message"`
	Type    string `json:"type" db:"type"`
	Read    bool   `json:"read" db:"read"`
	Created int64  `json:"created_at" db:"created_at"`
}

type Job struct {
	ID           int64  `json:"id" db:"id"`
	EmployerID   int64  `json:"employer_id" db:"employer_id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description" db:"description"`
	Location     string `json:"location" db:"location"`
	WorkType     string `json:"work_type" db:"work_type"`
	SalaryRange  string `json:"salary_range" db:"salary_range"`
	Requirements string `json:"requirements" db:"requirements"`
	Status       string `json:"status" db:"status"`
	Created      int64  `json:"created_at" db:"created_at"`
	Updated      int64  `json:"updated_at" db:"updated_at"`
}

// JobSummary is a job row joined with employer fields for listings.
type JobSummary struct {
	Job
	EmployerName     string `json:"employer_name"`
	EmployerCity     string `json:"employer_city"`
	ApplicationCount int64  `json:"application_count"`
}

// JobDetail adds employer contact and pending counts for the single-job view.
type JobDetail struct {
	JobSummary
	EmployerEmail string  `json:"employer_email"`
	EmployerPhone string  `json:"employer_phone"`
	EmployerImage *string `json:"employer_image,omitempty"`
	PendingCount  int64   `json:"pending_count"`
}

// JobUpdate carries the optional fields of a partial job update; nil means
// leave the column untouched.
type JobUpdate struct {
	Title        *string
	Description  *string
	Location     *string
	WorkType     *string
	SalaryRange  *string
	Requirements *string
	Status       *string
}

type JobApplication struct {
	ID          int64  `json:"id" db:"id"`
	JobID       int64  `json:"job_id" db:"job_id"`
	HelperID    int64  `json:"helper_id" db:"helper_id"`
	CoverLetter string `json:"cover_letter" db:"cover_letter"`
	Status      string `json:"status" db:"status"`
	Created     int64  `json:"created_at" db:"created_at"`
	Updated     int64  `json:"updated_at" db:"updated_at"`
}

// ApplicationDetail is an application joined with the helper and their profile,
// shown to the job's employer.
type ApplicationDetail struct {
	JobApplication
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	City         string   `json:"city"`
	ProfileImage *string  `json:"profile_image,omitempty"`
	Experience   *string  `json:"experience,omitempty"`
	Skills       *string  `json:"skills,omitempty"`
	Languages    *string  `json:"languages,omitempty"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty"`
}

// HelperApplication is an application joined with the job and its employer,
// shown to the applying helper.
type HelperApplication struct {
	JobApplication
	Title         string `json:"title"`
	Description   string `json:"description"`
	WorkType      string `json:"work_type"`
	Location      string `json:"location"`
	SalaryRange   string `json:"salary_range"`
	EmployerName  string `json:"employer_name"`
	EmployerEmail string `json:"employer_email"`
	EmployerCity  string `json:"employer_city"`
}

// ApplicationOwnership resolves who may act on an application.
type ApplicationOwnership struct {
	ApplicationID int64
	JobID         int64
	EmployerID    int64
	HelperID      int64
}

// SearchFilter narrows the user search.
type SearchFilter struct {
	UserType  string
	City      string
	Skills    string
	MinRating float64
	Keywords  string
}

// SearchResult is a public user row, with helper profile fields populated
// when the search joined helper_profiles.
type SearchResult struct {
	ID           int64    `json:"id"`
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	UserType     string   `json:"user_type"`
	City         string   `json:"city"`
	About        string   `json:"about"`
	ProfileImage *string  `json:"profile_image,omitempty"`
	Verified     bool     `json:"verified"`
	Rating       float64  `json:"rating"`
	TotalReviews int64    `json:"total_reviews"`
	Created      int64    `json:"created_at"`
	Skills       *string  `json:"skills,omitempty"`
	Experience   *string  `json:"experience,omitempty"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty"`
	Availability *string  `json:"availability,omitempty"`
}

// UserStats is the per-user dashboard block.
type UserStats struct {
	ActiveConnections int64 `json:"activeConnections"`
	TotalReviews      int64 `json:"totalReviews"`
	SavedProfiles     int64 `json:"savedProfiles"`
}

// JobFilter narrows the public job listing.
type JobFilter struct {
	City     string
	WorkType string
	PostedBy int64
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	Users struct {
		Total     int64 `json:"total"`
		Employers int64 `json:"employers"`
		Helpers   int64 `json:"helpers"`
	} `json:"users"`
	Connections struct {
		Total   int64 `json:"total"`
		Active  int64 `json:"active"`
		Pending int64 `json:"pending"`
	} `json:"connections"`
	Jobs struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"jobs"`
	Reports struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"reports"`
	RecentSignups int64 `json:"recentSignups"`
}
