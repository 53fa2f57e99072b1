package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grociko/grociko-backend/api/middleware"
	"github.com/grociko/grociko-backend/api/responses"
	"github.com/grociko/grociko-backend/internal/notifications"
	"github.com/grociko/grociko-backend/pkg/enums"
	"github.com/grociko/grociko-backend/pkg/logger"
)

// NotificationsList returns the session's feed, optionally filtered by type
// or limited to unread entries.
func NotificationsList(notificationsSvc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		feed, err := notificationsSvc.List(ctx, notifications.ListParams{
			SessionToken: middleware.SessionTokenFromContext(ctx),
			Type:         enums.NotificationType(trimmedQuery(r, "type")),
			UnreadOnly:   trimmedQuery(r, "unread") == "true",
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		unread := 0
		for _, n := range feed {
			if !n.Read {
				unread++
			}
		}
		responses.WriteSuccess(w, map[string]any{
			"notifications": feed,
			"total":         len(feed),
			"unread":        unread,
		})
	}
}

// NotificationsMarkRead marks one entry as read.
func NotificationsMarkRead(notificationsSvc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		notificationID := chi.URLParam(r, "notificationID")
		if err := notificationsSvc.MarkRead(ctx, middleware.SessionTokenFromContext(ctx), notificationID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"notification_id": notificationID,
			"read":            true,
		})
	}
}

// NotificationsMarkAllRead marks the whole feed as read.
func NotificationsMarkAllRead(notificationsSvc notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		marked, err := notificationsSvc.MarkAllRead(ctx, middleware.SessionTokenFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"marked": marked})
	}
}
