package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/refform/refform/log"
	"github.com/refform/refform/model"
)

// Store is the storage collaborator the analytics engine reads from.
type Store interface {
	CampaignByID(ctx context.Context, id string) (model.Campaign, error)
	Campaigns(ctx context.Context, activeOnly bool) ([]model.Campaign, error)
	Submissions(ctx context.Context, campaignID string) ([]model.Submission, error)
	AllSubmissions(ctx context.Context) ([]model.Submission, error)
}

// FetchError marks a storage read failure, as opposed to a campaign that
// genuinely has no data yet. Callers may degrade it to a zero snapshot,
// but only after logging it.
type FetchError struct {
	CampaignID string
	Err        error
}

func (e *FetchError) Error() string {
	if e.CampaignID == "" {
		return fmt.Sprintf("fetch submissions: %s", e.Err)
	}
	return fmt.Sprintf("fetch submissions for campaign %s: %s", e.CampaignID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CampaignMetrics computes a campaign's snapshot from its full submission
// set. A missing campaign surfaces as the store's not-found error; a
// storage read failure surfaces as a *FetchError.
func (s *Service) CampaignMetrics(ctx context.Context, campaignID string) (model.Metrics, error) {
	_, err := s.store.CampaignByID(ctx, campaignID)
	if err != nil {
		return Zero(s.now()), err
	}

	submissions, err := s.store.Submissions(ctx, campaignID)
	if err != nil {
		return Zero(s.now()), &FetchError{CampaignID: campaignID, Err: err}
	}
	return Aggregate(submissions, s.now()), nil
}

// OverallMetrics computes the organization-wide snapshot. Every field is
// re-derived from the raw cross-campaign submission set; per-campaign
// top-10 lists are never merged, which would under-count referrers ranked
// 11+ in any single campaign.
func (s *Service) OverallMetrics(ctx context.Context) (model.OverallMetrics, error) {
	active, err := s.store.Campaigns(ctx, true)
	if err != nil {
		return model.OverallMetrics{Metrics: Zero(s.now())}, &FetchError{Err: err}
	}

	submissions, err := s.store.AllSubmissions(ctx)
	if err != nil {
		return model.OverallMetrics{Metrics: Zero(s.now())}, &FetchError{Err: err}
	}

	return model.OverallMetrics{
		Metrics:         Aggregate(submissions, s.now()),
		ActiveCampaigns: len(active),
	}, nil
}

// AllCampaignMetrics fans out one fetch-and-aggregate per campaign. The
// snapshots are independent, so fetches run concurrently; a failed fetch
// is logged and substituted with a zero snapshot so the result set stays
// complete and uniformly shaped.
func (s *Service) AllCampaignMetrics(ctx context.Context) (map[string]model.Metrics, error) {
	campaigns, err := s.store.Campaigns(ctx, false)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	snapshots := make([]model.Metrics, len(campaigns))
	var wg sync.WaitGroup
	for i, campaign := range campaigns {
		wg.Add(1)
		go func(i int, campaignID string) {
			defer wg.Done()

			submissions, err := s.store.Submissions(ctx, campaignID)
			if err != nil {
				log.Errorf("analytics.fan_out.fetch: %s", &FetchError{CampaignID: campaignID, Err: err})
				snapshots[i] = Zero(s.now())
				return
			}
			snapshots[i] = Aggregate(submissions, s.now())
		}(i, campaign.ID)
	}
	wg.Wait()

	byCampaign := make(map[string]model.Metrics, len(campaigns))
	for i, campaign := range campaigns {
		byCampaign[campaign.ID] = snapshots[i]
	}
	return byCampaign, nil
}
