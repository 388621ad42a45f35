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
	"github.com/refform/refform/referral"
	"github.com/refform/refform/scoring"
	"github.com/refform/refform/store"
)

func PublicGetCampaignById(app app.App) http.HandlerFunc {
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
		if !campaign.Active {
			httpx.LogNotFound(w, "get_campaign.inactive", campaignId)
			return
		}

		// don't leak the answer key to submitters
		for qi, q := range campaign.Schema.Questions {
			for oi := range q.Options {
				campaign.Schema.Questions[qi].Options[oi].Correct = false
			}
		}

		render.JSON(w, r, campaign)
	}
}

type submitRequest struct {
	Answers      model.AnswerSet `json:"answers" validate:"dive"`
	ReferrerCode string          `json:"referrerCode"`
	ReferrerName string          `json:"referrerName"`
}

type submitResponse struct {
	Submission   model.Submission `json:"submission"`
	Score        int              `json:"score"`
	MaxScore     int              `json:"maxScore"`
	ReferralLink string           `json:"referralLink"`
}

// PublicSubmitCampaign is the submit-and-score flow: validate the answer
// set against the campaign schema, score it, persist the submission with
// its referral attribution, and hand the submitter their own link.
func PublicSubmitCampaign(app app.App) http.HandlerFunc {
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
		if !campaign.Active {
			httpx.LogNotFound(w, "get_campaign.inactive", campaignId)
			return
		}

		req := submitRequest{}
		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		err = validate.Struct(req)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.validate_body", "%s", err)
			return
		}
		err = scoring.ValidateAnswers(campaign.Schema, req.Answers)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.validate_answers", "%s", err)
			return
		}

		// the inbound code wins over whatever the body claims
		referrerCode := referral.Code(r.URL.Query())
		if referrerCode == "" {
			referrerCode = req.ReferrerCode
		}
		referrerName := req.ReferrerName
		if referrerName == "" {
			referrerName = referrerCode
		}

		if campaign.Schema.Settings != nil && campaign.Schema.Settings.RequireReferral && referrerCode == "" {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.missing_referral")
			return
		}

		score := scoring.Score(campaign.Schema, req.Answers)

		sub, err := app.CreateSubmission(r.Context(), model.Submission{
			CampaignID:   campaignId,
			Answers:      req.Answers,
			ReferrerCode: referrerCode,
			ReferrerName: referrerName,
			Score:        score,
		})
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, submitResponse{
			Submission:   sub,
			Score:        score,
			MaxScore:     scoring.MaxScore(campaign.Schema),
			ReferralLink: referral.Link(app.BaseUrl, campaignId, referral.SubmitterName(req.Answers)),
		})
	}
}
