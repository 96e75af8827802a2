package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	dbfs "github.com/maneomkar369/saheli-connect-2.0/db"
	dbpkg "github.com/maneomkar369/saheli-connect-2.0/internal/db"
	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
	sqlite "github.com/maneomkar369/saheli-connect-2.0/internal/repository/sqlite"
	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

func setupRepo(t *testing.T) *sqlite.SQLiteRepo {
	t.Helper()
	ctx := context.Background()

	d, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return sqlite.New(d, nil)
}

func mustCreateUser(t *testing.T, repo *sqlite.SQLiteRepo, email, userType string) int64 {
	t.Helper()
	id, err := repo.CreateUser(context.Background(), &models.User{
		FullName:     "User " + email,
		Email:        email,
		Phone:        "9999999999",
		PasswordHash: "hash",
		UserType:     userType,
		City:         "Pune",
	})
	if err != nil {
		t.Fatalf("CreateUser(%s) error: %v", email, err)
	}
	return id
}

func TestUserCRUD(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, nil); err == nil {
		t.Fatalf("expected error when creating nil user")
	}

	got, err := repo.GetUserByID(ctx, 9999)
	if err != nil {
		t.Fatalf("GetUserByID error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing id, got: %#v", got)
	}

	id := mustCreateUser(t, repo, "alice@example.com", models.TypeEmployer)
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	if _, err := repo.CreateUser(ctx, &models.User{
		FullName: "Dup", Email: "alice@example.com", PasswordHash: "h", UserType: models.TypeEmployer,
	}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for reused email, got: %v", err)
	}

	got, err = repo.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if got == nil || got.ID != id || got.Status != models.UserActive {
		t.Fatalf("GetUserByEmail wrong result: %#v", got)
	}

	if err := repo.UpdateUserProfile(ctx, id, "Alice Renamed", "8888888888", "Mumbai", "about me", "img.png"); err != nil {
		t.Fatalf("UpdateUserProfile error: %v", err)
	}
	got, _ = repo.GetUserByID(ctx, id)
	if got.FullName != "Alice Renamed" || got.City != "Mumbai" {
		t.Fatalf("profile update not applied: %#v", got)
	}
}

func TestSearchUsers(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	employerID := mustCreateUser(t, repo, "boss@example.com", models.TypeEmployer)
	helperID := mustCreateUser(t, repo, "helper@example.com", models.TypeHelper)
	otherID := mustCreateUser(t, repo, "other@example.com", models.TypeHelper)

	if err := repo.UpsertHelperProfile(ctx, &models.HelperProfile{UserID: helperID, Skills: "cooking, cleaning"}); err != nil {
		t.Fatalf("UpsertHelperProfile error: %v", err)
	}

	results, err := repo.SearchUsers(ctx, employerID, models.SearchFilter{UserType: models.TypeHelper})
	if err != nil {
		t.Fatalf("SearchUsers error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 helpers, got %d", len(results))
	}

	// Searcher never sees themselves.
	results, err = repo.SearchUsers(ctx, helperID, models.SearchFilter{UserType: models.TypeHelper})
	if err != nil {
		t.Fatalf("SearchUsers error: %v", err)
	}
	if len(results) != 1 || results[0].ID != otherID {
		t.Fatalf("expected only the other helper, got: %#v", results)
	}

	// Skills filter uses the helper profile join.
	results, err = repo.SearchUsers(ctx, employerID, models.SearchFilter{UserType: models.TypeHelper, Skills: "cooking"})
	if err != nil {
		t.Fatalf("SearchUsers error: %v", err)
	}
	if len(results) != 1 || results[0].ID != helperID {
		t.Fatalf("expected skill match only, got: %#v", results)
	}
}

func TestProfileCRUD(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	helperID := mustCreateUser(t, repo, "helper@example.com", models.TypeHelper)
	employerID := mustCreateUser(t, repo, "boss@example.com", models.TypeEmployer)

	if err := repo.CreateHelperProfile(ctx, helperID); err != nil {
		t.Fatalf("CreateHelperProfile error: %v", err)
	}
	if err := repo.CreateEmployerPreferences(ctx, employerID); err != nil {
		t.Fatalf("CreateEmployerPreferences error: %v", err)
	}

	rate := 150.0
	if err := repo.UpsertHelperProfile(ctx, &models.HelperProfile{
		UserID: helperID, Skills: "cooking", Experience: "5 years", HourlyRate: &rate,
	}); err != nil {
		t.Fatalf("UpsertHelperProfile error: %v", err)
	}

	profile, err := repo.GetHelperProfile(ctx, helperID)
	if err != nil {
		t.Fatalf("GetHelperProfile error: %v", err)
	}
	if profile == nil || profile.Skills != "cooking" || profile.HourlyRate == nil || *profile.HourlyRate != rate {
		t.Fatalf("unexpected helper profile: %#v", profile)
	}

	prefs, err := repo.GetEmployerPreferences(ctx, employerID)
	if err != nil {
		t.Fatalf("GetEmployerPreferences error: %v", err)
	}
	if prefs == nil || prefs.UserID != employerID {
		t.Fatalf("unexpected employer preferences: %#v", prefs)
	}
}

func TestConnectionLifecycle(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	employerID := mustCreateUser(t, repo, "boss@example.com", models.TypeEmployer)
	helperID := mustCreateUser(t, repo, "helper@example.com", models.TypeHelper)

	id, err := repo.CreateConnection(ctx, employerID, helperID)
	if err != nil {
		t.Fatalf("CreateConnection error: %v", err)
	}

	if _, err := repo.CreateConnection(ctx, employerID, helperID); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for repeated pair, got: %v", err)
	}

	conn, err := repo.GetConnection(ctx, id)
	if err != nil {
		t.Fatalf("GetConnection error: %v", err)
	}
	if conn == nil || conn.Status != models.ConnectionPending || conn.StartedAt != nil {
		t.Fatalf("unexpected new connection: %#v", conn)
	}

	if err := repo.UpdateConnectionStatus(ctx, id, models.ConnectionActive); err != nil {
		t.Fatalf("UpdateConnectionStatus error: %v", err)
	}
	conn, _ = repo.GetConnection(ctx, id)
	if conn.StartedAt == nil {
		t.Fatalf("expected started_at stamped on activation")
	}
	started := *conn.StartedAt

	if err := repo.UpdateConnectionStatus(ctx, id, models.ConnectionCompleted); err != nil {
		t.Fatalf("UpdateConnectionStatus error: %v", err)
	}
	conn, _ = repo.GetConnection(ctx, id)
	if conn.EndedAt == nil {
		t.Fatalf("expected ended_at stamped on completion")
	}
	if *conn.StartedAt != started {
		t.Fatalf("started_at must be stamped exactly once, got %d then %d", started, *conn.StartedAt)
	}

	if err := repo.UpdateConnectionStatus(ctx, 9999, models.ConnectionActive); err == nil {
		t.Fatalf("expected error for unknown connection id")
	}

	list, err := repo.ListConnectionsByUser(ctx, helperID)
	if err != nil {
		t.Fatalf("ListConnectionsByUser error: %v", err)
	}
	if len(list) != 1 || list[0].EmployerName == "" {
		t.Fatalf("unexpected connection listing: %#v", list)
	}

	affected, err := repo.DeleteConnection(ctx, id)
	if err != nil || affected != 1 {
		t.Fatalf("DeleteConnection returned (%d, %v)", affected, err)
	}
	affected, err = repo.DeleteConnection(ctx, id)
	if err != nil || affected != 0 {
		t.Fatalf("expected 0 rows for second delete, got (%d, %v)", affected, err)
	}
}

func TestMessaging(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	aID := mustCreateUser(t, repo, "a@example.com", models.TypeEmployer)
	bID := mustCreateUser(t, repo, "b@example.com", models.TypeHelper)

	for i := 0; i < 3; i++ {
		if _, err := repo.CreateMessage(ctx, aID, bID, fmt.Sprintf("hello %d", i)); err != nil {
			t.Fatalf("CreateMessage error: %v", err)
		}
	}
	if _, err := repo.CreateMessage(ctx, bID, aID, "hi back"); err != nil {
		t.Fatalf("CreateMessage error: %v", err)
	}

	count, err := repo.UnreadMessageCount(ctx, bID)
	if err != nil {
		t.Fatalf("UnreadMessageCount error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 unread for b, got %d", count)
	}

	history, err := repo.ListConversation(ctx, aID, bID)
	if err != nil {
		t.Fatalf("ListConversation error: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(history))
	}
	if history[0].Message.Message != "hello 0" {
		t.Fatalf("expected chronological order, got first: %q", history[0].Message.Message)
	}

	conversations, err := repo.ListConversations(ctx, bID)
	if err != nil {
		t.Fatalf("ListConversations error: %v", err)
	}
	if len(conversations) != 1 || conversations[0].UserID != aID || conversations[0].UnreadCount != 3 {
		t.Fatalf("unexpected conversations: %#v", conversations)
	}

	updated, err := repo.MarkMessagesRead(ctx, aID, bID)
	if err != nil || updated != 3 {
		t.Fatalf("MarkMessagesRead returned (%d, %v)", updated, err)
	}
	count, _ = repo.UnreadMessageCount(ctx, bID)
	if count != 0 {
		t.Fatalf("expected 0 unread after mark-read, got %d", count)
	}
}

func TestReviewsRefreshRating(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	reviewer1 := mustCreateUser(t, repo, "r1@example.com", models.TypeEmployer)
	reviewer2 := mustCreateUser(t, repo, "r2@example.com", models.TypeEmployer)
	helperID := mustCreateUser(t, repo, "helper@example.com", models.TypeHelper)

	for _, rv := range []models.Review{
		{ReviewerID: reviewer1, RevieweeID: helperID, Rating: 5, Comment: "great"},
		{ReviewerID: reviewer2, RevieweeID: helperID, Rating: 4},
	} {
		if _, err := repo.CreateReview(ctx, &rv); err != nil {
			t.Fatalf("CreateReview error: %v", err)
		}
	}

	if err := repo.RefreshUserRating(ctx, helperID); err != nil {
		t.Fatalf("RefreshUserRating error: %v", err)
	}

	helper, _ := repo.GetUserByID(ctx, helperID)
	if helper.Rating != 4.5 || helper.TotalReviews != 2 {
		t.Fatalf("expected rating 4.5 over 2 reviews, got %f over %d", helper.Rating, helper.TotalReviews)
	}

	reviews, err := repo.ListReviewsForUser(ctx, helperID)
	if err != nil {
		t.Fatalf("ListReviewsForUser error: %v", err)
	}
	if len(reviews) != 2 || reviews[0].ReviewerName == "" {
		t.Fatalf("unexpected reviews: %#v", reviews)
	}

	if _, err := repo.CreateReview(ctx, &models.Review{
		ReviewerID: reviewer1, RevieweeID: 99999, Rating: 5,
	}); !errors.Is(err, repository.ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey for missing reviewee, got %v", err)
	}
}

func TestSavedProfileToggle(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	aID := mustCreateUser(t, repo, "a@example.com", models.TypeEmployer)
	bID := mustCreateUser(t, repo, "b@example.com", models.TypeHelper)

	saved, err := repo.ToggleSavedProfile(ctx, aID, bID)
	if err != nil || !saved {
		t.Fatalf("first toggle should save, got (%v, %v)", saved, err)
	}

	list, err := repo.ListSavedProfiles(ctx, aID)
	if err != nil || len(list) != 1 || list[0].ID != bID {
		t.Fatalf("unexpected saved list: %#v (%v)", list, err)
	}

	saved, err = repo.ToggleSavedProfile(ctx, aID, bID)
	if err != nil || saved {
		t.Fatalf("second toggle should unsave, got (%v, %v)", saved, err)
	}

	list, _ = repo.ListSavedProfiles(ctx, aID)
	if len(list) != 0 {
		t.Fatalf("expected empty saved list, got: %#v", list)
	}
}

func TestNotifications(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	userID := mustCreateUser(t, repo, "a@example.com", models.TypeHelper)

	if err := repo.CreateNotification(ctx, userID, "Hello", "body", models.NotifyInfo); err != nil {
		t.Fatalf("CreateNotification error: %v", err)
	}

	count, err := repo.UnreadNotificationCount(ctx, userID)
	if err != nil || count != 1 {
		t.Fatalf("expected 1 unread notification, got (%d, %v)", count, err)
	}

	list, err := repo.ListNotifications(ctx, userID, 50)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected notifications: %#v (%v)", list, err)
	}

	// Other users cannot mark a foreign notification.
	affected, err := repo.MarkNotificationRead(ctx, list[0].ID, userID+1)
	if err != nil || affected != 0 {
		t.Fatalf("expected no rows for foreign user, got (%d, %v)", affected, err)
	}

	affected, err = repo.MarkNotificationRead(ctx, list[0].ID, userID)
	if err != nil || affected != 1 {
		t.Fatalf("MarkNotificationRead returned (%d, %v)", affected, err)
	}
	count, _ = repo.UnreadNotificationCount(ctx, userID)
	if count != 0 {
		t.Fatalf("expected 0 unread after mark-read, got %d", count)
	}
}

func TestReports(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	reporterID := mustCreateUser(t, repo, "a@example.com", models.TypeEmployer)
	reportedID := mustCreateUser(t, repo, "b@example.com", models.TypeHelper)

	id, err := repo.CreateReport(ctx, reporterID, reportedID, "spam", "keeps spamming")
	if err != nil {
		t.Fatalf("CreateReport error: %v", err)
	}

	reports, err := repo.ListReports(ctx, models.ReportPending, 20, 0)
	if err != nil || len(reports) != 1 {
		t.Fatalf("unexpected reports: %#v (%v)", reports, err)
	}
	if reports[0].ResolvedAt != nil {
		t.Fatalf("pending report must not be resolved")
	}

	affected, err := repo.UpdateReportStatus(ctx, id, models.ReportResolved, "warned the user")
	if err != nil || affected != 1 {
		t.Fatalf("UpdateReportStatus returned (%d, %v)", affected, err)
	}

	reports, _ = repo.ListReports(ctx, models.ReportResolved, 20, 0)
	if len(reports) != 1 || reports[0].ResolvedAt == nil || reports[0].AdminNotes != "warned the user" {
		t.Fatalf("unexpected resolved report: %#v", reports)
	}

	if _, err := repo.CreateReport(ctx, reporterID, 99999, "spam", ""); !errors.Is(err, repository.ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey for missing reported user, got %v", err)
	}
}

func TestJobsAndApplications(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	employerID := mustCreateUser(t, repo, "boss@example.com", models.TypeEmployer)
	helperID := mustCreateUser(t, repo, "helper@example.com", models.TypeHelper)

	jobID, err := repo.CreateJob(ctx, &models.Job{
		EmployerID:  employerID,
		Title:       "Cook needed",
		Description: "Daily meals",
		Location:    "Pune",
		WorkType:    "cooking",
		SalaryRange: "10000-15000",
	})
	if err != nil {
		t.Fatalf("CreateJob error: %v", err)
	}

	job, err := repo.GetJob(ctx, jobID)
	if err != nil {
		t.Fatalf("GetJob error: %v", err)
	}
	if job == nil || job.Status != models.JobActive || job.EmployerName == "" {
		t.Fatalf("unexpected job detail: %#v", job)
	}

	jobs, err := repo.ListJobs(ctx, models.JobFilter{WorkType: "cooking"})
	if err != nil || len(jobs) != 1 {
		t.Fatalf("unexpected job listing: %#v (%v)", jobs, err)
	}
	jobs, _ = repo.ListJobs(ctx, models.JobFilter{WorkType: "driving"})
	if len(jobs) != 0 {
		t.Fatalf("expected no driving jobs, got: %#v", jobs)
	}

	appID, err := repo.CreateApplication(ctx, jobID, helperID, "I cook well")
	if err != nil {
		t.Fatalf("CreateApplication error: %v", err)
	}
	if _, err := repo.CreateApplication(ctx, jobID, helperID, "again"); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for repeated application, got: %v", err)
	}

	ownership, err := repo.GetApplicationOwnership(ctx, appID)
	if err != nil {
		t.Fatalf("GetApplicationOwnership error: %v", err)
	}
	if ownership == nil || ownership.EmployerID != employerID || ownership.HelperID != helperID {
		t.Fatalf("unexpected ownership: %#v", ownership)
	}

	if err := repo.UpdateApplicationStatus(ctx, appID, models.ApplicationShortlisted); err != nil {
		t.Fatalf("UpdateApplicationStatus error: %v", err)
	}

	apps, err := repo.ListApplicationsForJob(ctx, jobID)
	if err != nil || len(apps) != 1 || apps[0].Status != models.ApplicationShortlisted {
		t.Fatalf("unexpected applications: %#v (%v)", apps, err)
	}

	mine, err := repo.ListApplicationsByHelper(ctx, helperID)
	if err != nil || len(mine) != 1 || mine[0].JobID != jobID {
		t.Fatalf("unexpected helper applications: %#v (%v)", mine, err)
	}

	newTitle := "Senior cook needed"
	closed := models.JobClosed
	if err := repo.UpdateJob(ctx, jobID, models.JobUpdate{Title: &newTitle, Status: &closed}); err != nil {
		t.Fatalf("UpdateJob error: %v", err)
	}
	job, _ = repo.GetJob(ctx, jobID)
	if job.Title != newTitle || job.Status != models.JobClosed {
		t.Fatalf("job update not applied: %#v", job)
	}

	affected, err := repo.DeleteJob(ctx, jobID)
	if err != nil || affected != 1 {
		t.Fatalf("DeleteJob returned (%d, %v)", affected, err)
	}
}

func TestUserStats(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	employerID := mustCreateUser(t, repo, "boss@example.com", models.TypeEmployer)
	helperID := mustCreateUser(t, repo, "helper@example.com", models.TypeHelper)

	connID, err := repo.CreateConnection(ctx, employerID, helperID)
	if err != nil {
		t.Fatalf("CreateConnection error: %v", err)
	}
	if err := repo.UpdateConnectionStatus(ctx, connID, models.ConnectionActive); err != nil {
		t.Fatalf("UpdateConnectionStatus error: %v", err)
	}
	if _, err := repo.CreateReview(ctx, &models.Review{ReviewerID: employerID, RevieweeID: helperID, Rating: 5}); err != nil {
		t.Fatalf("CreateReview error: %v", err)
	}
	if _, err := repo.ToggleSavedProfile(ctx, employerID, helperID); err != nil {
		t.Fatalf("ToggleSavedProfile error: %v", err)
	}

	stats, err := repo.UserStats(ctx, employerID)
	if err != nil {
		t.Fatalf("UserStats error: %v", err)
	}
	if stats.ActiveConnections != 1 || stats.SavedProfiles != 1 {
		t.Fatalf("unexpected employer stats: %#v", stats)
	}

	stats, err = repo.UserStats(ctx, helperID)
	if err != nil {
		t.Fatalf("UserStats error: %v", err)
	}
	if stats.TotalReviews != 1 {
		t.Fatalf("unexpected helper stats: %#v", stats)
	}
}

func TestAdminQueries(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	employerID := mustCreateUser(t, repo, "boss@example.com", models.TypeEmployer)
	helperID := mustCreateUser(t, repo, "helper@example.com", models.TypeHelper)
	if _, err := repo.CreateConnection(ctx, employerID, helperID); err != nil {
		t.Fatalf("CreateConnection error: %v", err)
	}
	if _, err := repo.CreateJob(ctx, &models.Job{
		EmployerID: employerID, Title: "Cook", Description: "d", Location: "Pune", WorkType: "cooking",
	}); err != nil {
		t.Fatalf("CreateJob error: %v", err)
	}

	stats, err := repo.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}
	if stats.Users.Total != 2 || stats.Users.Employers != 1 || stats.Users.Helpers != 1 {
		t.Fatalf("unexpected user stats: %#v", stats.Users)
	}
	if stats.Connections.Pending != 1 || stats.Jobs.Total != 1 {
		t.Fatalf("unexpected dashboard stats: %#v", stats)
	}

	users, total, err := repo.ListUsers(ctx, models.TypeHelper, "", 10, 0)
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].ID != helperID {
		t.Fatalf("unexpected user listing: total=%d users=%#v", total, users)
	}

	affected, err := repo.UpdateUserStatus(ctx, helperID, models.UserSuspended)
	if err != nil || affected != 1 {
		t.Fatalf("UpdateUserStatus returned (%d, %v)", affected, err)
	}
	helper, _ := repo.GetUserByID(ctx, helperID)
	if helper.Status != models.UserSuspended {
		t.Fatalf("status update not applied: %#v", helper)
	}

	connections, err := repo.ListAllConnections(ctx, models.ConnectionPending, 10, 0)
	if err != nil || len(connections) != 1 {
		t.Fatalf("unexpected admin connections: %#v (%v)", connections, err)
	}
	jobs, err := repo.ListAllJobs(ctx, "", 10, 0)
	if err != nil || len(jobs) != 1 {
		t.Fatalf("unexpected admin jobs: %#v (%v)", jobs, err)
	}

	affected, err = repo.DeleteUser(ctx, helperID)
	if err != nil || affected != 1 {
		t.Fatalf("DeleteUser returned (%d, %v)", affected, err)
	}
	connections, _ = repo.ListAllConnections(ctx, "", 10, 0)
	if len(connections) != 0 {
		t.Fatalf("expected cascade delete of connections, got: %#v", connections)
	}
}
