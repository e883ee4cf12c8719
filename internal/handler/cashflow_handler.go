package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Cashflow projection — GET /v1/households/{householdId}/cashflow
// ============================================================

// getCashflowHandler computes the household's projection. Query params:
// ?days=N (window length) and ?start_date=YYYY-MM-DD (first projected day,
// defaults to today).
func getCashflowHandler(svc *service.CashflowService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/cashflow")
		defer span.End()

		householdID := chi.URLParam(r, "householdId")
		span.SetAttributes(attribute.String("household.id", householdID))

		days := 0
		if v := r.URL.Query().Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "days must be an integer")
				return
			}
			days = n
		}

		var startDate time.Time
		if v := r.URL.Query().Get("start_date"); v != "" {
			d, err := time.Parse("2006-01-02", v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
				return
			}
			startDate = d
		}

		proj, err := svc.GetProjection(ctx, householdID, startDate, days)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, proj)
	}
}

// ============================================================
// Projection snapshots
// ============================================================

func listSnapshotsHandler(svc *service.CashflowService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/cashflow/snapshots")
		defer span.End()

		householdID := chi.URLParam(r, "householdId")
		snapshots, err := svc.ListSnapshots(ctx, householdID, parseLimit(r, 20))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"snapshots": snapshots})
	}
}

func getSnapshotHandler(svc *service.CashflowService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/households/{householdId}/cashflow/snapshots/{snapshotId}")
		defer span.End()

		householdID := chi.URLParam(r, "householdId")
		snapshotID := chi.URLParam(r, "snapshotId")
		snap, err := svc.GetSnapshot(ctx, householdID, snapshotID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}
