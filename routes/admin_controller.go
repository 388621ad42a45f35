package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/refform/refform/app"
	"github.com/refform/refform/httpx"
	"github.com/refform/refform/log"
	"github.com/refform/refform/model"
	"github.com/refform/refform/store"
)

func CreateCampaign(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaign := model.Campaign{}
		err := render.DecodeJSON(r.Body, &campaign)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		err = validate.Struct(campaign)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.validate_body", "%s", err)
			return
		}

		campaign, err = app.Store.CreateCampaign(r.Context(), campaign)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_campaign", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": campaign.ID,
		})
	}
}

func ListCampaigns(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active") == "true"

		campaigns, err := app.Campaigns(r.Context(), activeOnly)
		if err != nil {
			httpx.LogInternalError(w, "db.get_campaigns", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"campaigns": campaigns,
		})
	}
}

func GetCampaignById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignId := chi.URLParam(r, "id")

		campaign, err := app.CampaignByID(r.Context(), campaignId)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_campaign", campaignId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_campaign", err)
			return
		}

		render.JSON(w, r, campaign)
	}
}

func UpdateCampaign(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignId := chi.URLParam(r, "id")

		campaign := model.Campaign{}
		err := render.DecodeJSON(r.Body, &campaign)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		err = validate.Struct(campaign)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.validate_body", "%s", err)
			return
		}

		// optimistic lock on the version the client last saw
		err = app.Store.UpdateCampaign(r.Context(), campaignId, campaign)
		if errors.Is(err, store.ErrConflict) {
			httpx.LogStatus(w, http.StatusConflict, log.DebugLevel, "db.update_campaign.conflict")
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.update_campaign", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteCampaign(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignId := chi.URLParam(r, "id")

		err := app.Store.DeleteCampaign(r.Context(), campaignId)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "delete_campaign", campaignId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.delete_campaign", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetCampaignSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignId := chi.URLParam(r, "id")

		_, err := app.CampaignByID(r.Context(), campaignId)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_submissions", campaignId)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_campaign", err)
			return
		}

		submissions, err := app.Submissions(r.Context(), campaignId)
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"submissions": submissions,
		})
	}
}
