package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/refform/refform/analytics"
	"github.com/refform/refform/app"
	"github.com/refform/refform/httpx"
	"github.com/refform/refform/log"
	"github.com/refform/refform/model"
	"github.com/refform/refform/store"
)

// GetCampaignAnalytics serves one campaign's metrics snapshot plus its
// derived insights. A storage read failure degrades to a zero snapshot
// (logged, so it stays distinguishable from an empty campaign); a missing
// campaign is a 404, never a zero snapshot.
func GetCampaignAnalytics(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignId := chi.URLParam(r, "id")

		metrics, err := app.Analytics.CampaignMetrics(r.Context(), campaignId)
		var fetchErr *analytics.FetchError
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.LogNotFound(w, "analytics.get_campaign", campaignId)
			return
		case errors.As(err, &fetchErr):
			log.Errorf("analytics.campaign.fetch: %s", fetchErr)
			metrics = analytics.Zero(time.Now())
		case err != nil:
			httpx.LogInternalError(w, "analytics.campaign", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"analytics": metrics,
			"insights":  analytics.Insights(metrics),
		})
	}
}

// GetOverallAnalytics serves the organization-wide snapshot.
func GetOverallAnalytics(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := app.Analytics.OverallMetrics(r.Context())
		var fetchErr *analytics.FetchError
		switch {
		case errors.As(err, &fetchErr):
			log.Errorf("analytics.overall.fetch: %s", fetchErr)
			metrics = model.OverallMetrics{Metrics: analytics.Zero(time.Now())}
		case err != nil:
			httpx.LogInternalError(w, "analytics.overall", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"analytics": metrics,
			"insights":  analytics.Insights(metrics.Metrics),
		})
	}
}

// GetAllCampaignAnalytics serves one snapshot per campaign, computed
// concurrently. Campaigns whose fetch failed come back zero-valued.
func GetAllCampaignAnalytics(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byCampaign, err := app.Analytics.AllCampaignMetrics(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "analytics.all_campaigns", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"campaigns": byCampaign,
		})
	}
}
