package repository

import (
	"context"
	"errors"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrDuplicate is returned when a write collides with a unique constraint
// (email, connection pair, application pair, saved-profile pair).
var ErrDuplicate = errors.New("repository: duplicate entry")

// ErrForeignKey is returned when a write references a row that does not
// exist (reviewee, reported user, connection).
var ErrForeignKey = errors.New("repository: referenced entity not found")

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id int64, fullName, phone, city, about, profileImage string) error
	SearchUsers(ctx context.Context, excludeID int64, f models.SearchFilter) ([]models.SearchResult, error)
	UserStats(ctx context.Context, userID int64) (*models.UserStats, error)
}

type ProfileRepo interface {
	CreateHelperProfile(ctx context.Context, userID int64) error
	CreateEmployerPreferences(ctx context.Context, userID int64) error
	GetHelperProfile(ctx context.Context, userID int64) (*models.HelperProfile, error)
	GetEmployerPreferences(ctx context.Context, userID int64) (*models.EmployerPreferences, error)
	UpsertHelperProfile(ctx context.Context, p *models.HelperProfile) error
}

type ConnectionRepo interface {
	CreateConnection(ctx context.Context, employerID, helperID int64) (int64, error)
	GetConnection(ctx context.Context, id int64) (*models.Connection, error)
	ListConnectionsByUser(ctx context.Context, userID int64) ([]models.ConnectionDetail, error)
	UpdateConnectionStatus(ctx context.Context, id int64, status string) error
	DeleteConnection(ctx context.Context, id int64) (int64, error)
}

type MessageRepo interface {
	CreateMessage(ctx context.Context, senderID, receiverID int64, body string) (int64, error)
	ListConversation(ctx context.Context, userID, otherID int64) ([]models.MessageDetail, error)
	ListConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error)
	MarkMessagesRead(ctx context.Context, senderID, receiverID int64) (int64, error)
	UnreadMessageCount(ctx context.Context, userID int64) (int64, error)
}

type ReviewRepo interface {
	CreateReview(ctx context.Context, r *models.Review) (int64, error)
	RefreshUserRating(ctx context.Context, revieweeID int64) error
	ListReviewsForUser(ctx context.Context, revieweeID int64) ([]models.ReviewDetail, error)
}

type ReportRepo interface {
	CreateReport(ctx context.Context, reporterID, reportedUserID int64, reason, description string) (int64, error)
	ListReports(ctx context.Context, status string, limit, offset int) ([]models.ReportDetail, error)
	UpdateReportStatus(ctx context.Context, id int64, status, adminNotes string) (int64, error)
}

type SavedProfileRepo interface {
	ToggleSavedProfile(ctx context.Context, userID, savedUserID int64) (bool, error)
	ListSavedProfiles(ctx context.Context, userID int64) ([]models.SavedProfileDetail, error)
}

type NotificationRepo interface {
	CreateNotification(ctx context.Context, userID int64, title, message, typ string) error
	ListNotifications(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
	UnreadNotificationCount(ctx context.Context, userID int64) (int64, error)
	MarkNotificationRead(ctx context.Context, id, userID int64) (int64, error)
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) (int64, error)
	GetJob(ctx context.Context, id int64) (*models.JobDetail, error)
	ListJobs(ctx context.Context, f models.JobFilter) ([]models.JobSummary, error)
	UpdateJob(ctx context.Context, id int64, u models.JobUpdate) error
	DeleteJob(ctx context.Context, id int64) (int64, error)
}

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, jobID, helperID int64, coverLetter string) (int64, error)
	GetApplicationOwnership(ctx context.Context, id int64) (*models.ApplicationOwnership, error)
	ListApplicationsForJob(ctx context.Context, jobID int64) ([]models.ApplicationDetail, error)
	ListApplicationsByHelper(ctx context.Context, helperID int64) ([]models.HelperApplication, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) error
}

type AdminRepo interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ListUsers(ctx context.Context, userType, status string, limit, offset int) ([]models.User, int64, error)
	UpdateUserStatus(ctx context.Context, id int64, status string) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
	ListAllConnections(ctx context.Context, status string, limit, offset int) ([]models.ConnectionDetail, error)
	ListAllJobs(ctx context.Context, status string, limit, offset int) ([]models.JobSummary, error)
}
