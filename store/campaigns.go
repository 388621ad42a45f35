package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/refform/refform/model"
)

// ErrConflict reports a lost optimistic-lock race on campaign update.
var ErrConflict = errors.New("conflict")

func (s *Store) CreateCampaign(ctx context.Context, c model.Campaign) (model.Campaign, error) {
	c.ID = uuid.NewString()
	c.Version = 1
	c.CreatedAt = time.Now().UTC()

	schemaJson, err := json.Marshal(c.Schema)
	if err != nil {
		return c, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO campaign (id, version, title, description, type, form_schema, target_url, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.Version,
		c.Title,
		c.Description,
		c.Type,
		string(schemaJson),
		c.TargetURL,
		c.Active,
		c.CreatedAt.Format(time.RFC3339),
	)
	return c, err
}

// UpdateCampaign rewrites a campaign under an optimistic lock on its
// version. ErrConflict means the caller lost the race.
func (s *Store) UpdateCampaign(ctx context.Context, id string, c model.Campaign) error {
	schemaJson, err := json.Marshal(c.Schema)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE campaign
		SET
			title = ?,
			description = ?,
			type = ?,
			form_schema = ?,
			target_url = ?,
			is_active = ?,
			version = version+1
		WHERE	id = ?
			AND version = ?`,
		c.Title,
		c.Description,
		c.Type,
		string(schemaJson),
		c.TargetURL,
		c.Active,
		id,
		c.Version,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrConflict
	}
	return nil
}

func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM submission
		WHERE campaign_id = ?`,
		id,
	)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM campaign WHERE id = ?`,
		id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrNotFound
	}

	return tx.Commit()
}
