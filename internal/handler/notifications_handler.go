package handler

import (
	"net/http"

	"github.com/boddenberg/casa-cashflow-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Notifications — /v1/households/{householdId}/notifications
// ============================================================

func listNotificationsHandler(svc *service.CashflowService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/notifications")
		defer span.End()

		householdID := chi.URLParam(r, "householdId")
		unreadOnly := r.URL.Query().Get("unread") == "true"

		notifications, err := svc.ListNotifications(ctx, householdID, unreadOnly)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
	}
}

func markNotificationReadHandler(svc *service.CashflowService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/households/{householdId}/notifications/{notifId}/read")
		defer span.End()

		if err := svc.MarkNotificationRead(ctx, chi.URLParam(r, "notifId")); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
