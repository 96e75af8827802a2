package api

import (
	"context"

	"github.com/maneomkar369/saheli-connect-2.0/pkg/repository"
)

// notify records a notification for a user. Failures are logged and never
// alter the caller's response.
func notify(ctx context.Context, repo repository.NotificationRepo, userID int64, typ, title, message string) {
	if repo == nil {
		return
	}
	if err := repo.CreateNotification(ctx, userID, title, message, typ); err != nil {
		logger.Warn("failed to create notification",
			"user_id", userID,
			"type", typ,
			"error", err)
	}
}
