package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/refform/refform/model"
)

// ErrNotFound reports a missing campaign. It is a navigational error and
// must not be collapsed into an empty result.
var ErrNotFound = errors.New("not found")

// Store is an explicitly constructed repository over the database. Its
// lifecycle is owned by the caller.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CampaignByID(ctx context.Context, id string) (model.Campaign, error) {
	if id == DemoCampaignID {
		return DemoCampaign(), nil
	}

	c := model.Campaign{}
	var schemaJson, createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, version, title, description, type, form_schema, target_url, is_active, created_at
		FROM campaign
		WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.Version, &c.Title, &c.Description, &c.Type, &schemaJson, &c.TargetURL, &c.Active, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	if err != nil {
		return c, err
	}

	return c, scanCampaignJson(&c, schemaJson, createdAt)
}

func (s *Store) Campaigns(ctx context.Context, activeOnly bool) ([]model.Campaign, error) {
	query := `
		SELECT id, version, title, description, type, form_schema, target_url, is_active, created_at
		FROM campaign`
	if activeOnly {
		query += `
		WHERE is_active = 1`
	}
	query += `
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.Campaign{}
	for rows.Next() {
		c := model.Campaign{}
		var schemaJson, createdAt string
		err = rows.Scan(&c.ID, &c.Version, &c.Title, &c.Description, &c.Type, &schemaJson, &c.TargetURL, &c.Active, &createdAt)
		if err != nil {
			return nil, err
		}
		err = scanCampaignJson(&c, schemaJson, createdAt)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// Submissions returns all submissions of one campaign.
func (s *Store) Submissions(ctx context.Context, campaignID string) ([]model.Submission, error) {
	return s.querySubmissions(ctx, `
		SELECT id, campaign_id, answers, referrer_code, referrer_name, score, submitted_at
		FROM submission
		WHERE campaign_id = ?
		ORDER BY submitted_at DESC`,
		campaignID,
	)
}

// AllSubmissions returns the full submission set across campaigns.
func (s *Store) AllSubmissions(ctx context.Context) ([]model.Submission, error) {
	return s.querySubmissions(ctx, `
		SELECT id, campaign_id, answers, referrer_code, referrer_name, score, submitted_at
		FROM submission
		ORDER BY submitted_at DESC`,
	)
}

func (s *Store) querySubmissions(ctx context.Context, query string, args ...any) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		sub := model.Submission{}
		var answersJson, submittedAt string
		err = rows.Scan(&sub.ID, &sub.CampaignID, &answersJson, &sub.ReferrerCode, &sub.ReferrerName, &sub.Score, &submittedAt)
		if err != nil {
			return nil, err
		}

		err = json.Unmarshal([]byte(answersJson), &sub.Answers)
		if err != nil {
			return nil, err
		}
		sub.SubmittedAt, err = time.Parse(time.RFC3339, submittedAt)
		if err != nil {
			return nil, err
		}

		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}

// CreateSubmission persists a new submission, assigning its id and
// timestamp. Submissions addressed to the reserved demo campaign bypass
// the database entirely and come back synthesized.
func (s *Store) CreateSubmission(ctx context.Context, sub model.Submission) (model.Submission, error) {
	sub.SubmittedAt = time.Now().UTC()

	if sub.CampaignID == DemoCampaignID {
		sub.ID = DemoSubmissionID
		return sub, nil
	}
	sub.ID = uuid.NewString()

	answersJson, err := json.Marshal(sub.Answers)
	if err != nil {
		return sub, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submission (id, campaign_id, answers, referrer_code, referrer_name, score, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID,
		sub.CampaignID,
		string(answersJson),
		sub.ReferrerCode,
		sub.ReferrerName,
		sub.Score,
		sub.SubmittedAt.Format(time.RFC3339),
	)
	return sub, err
}

func scanCampaignJson(c *model.Campaign, schemaJson, createdAt string) (err error) {
	if schemaJson != "" {
		err = json.Unmarshal([]byte(schemaJson), &c.Schema)
		if err != nil {
			return
		}
	}
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	return
}
