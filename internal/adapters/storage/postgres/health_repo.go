package postgres

import (
	"context"
	"database/sql"
	"strings"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

const healthColumns = `
	id, owner_user_id,
	specimen, species, date,
	enclosure_size, temperature, humidity,
	condition, behavior, health_issues, treatment, follow_up_date,
	attachments,
	created_at, updated_at
`

func (r *HealthRepo) Create(ctx context.Context, h health.HealthEntry) error {
	atts, err := jsonbValue(h.Attachments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_entries (`+healthColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		h.ID,
		h.OwnerUserID,
		h.Specimen,
		h.Species,
		h.Date,
		h.EnclosureSize,
		nullFloat(h.Temperature),
		nullFloat(h.Humidity),
		string(h.Condition),
		h.Behavior,
		h.HealthIssues,
		h.Treatment,
		nullTime(h.FollowUpDate),
		atts,
		h.CreatedAt,
		h.UpdatedAt,
	)
	return err
}

func (r *HealthRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (health.HealthEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.HealthEntry{}, health.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+healthColumns+`
		FROM health_entries
		WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)

	h, err := scanHealth(row)
	if err == sql.ErrNoRows {
		return health.HealthEntry{}, health.ErrNotFound
	}
	return h, err
}

func (r *HealthRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]health.HealthEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+healthColumns+`
		FROM health_entries
		WHERE owner_user_id = $1
		ORDER BY date DESC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.HealthEntry, 0)
	for rows.Next() {
		h, err := scanHealth(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Update(ctx context.Context, h health.HealthEntry) error {
	atts, err := jsonbValue(h.Attachments)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE health_entries SET
			specimen = $3, species = $4, date = $5,
			enclosure_size = $6, temperature = $7, humidity = $8,
			condition = $9, behavior = $10, health_issues = $11,
			treatment = $12, follow_up_date = $13,
			attachments = $14,
			updated_at = $15
		WHERE owner_user_id = $1 AND id = $2
	`,
		h.OwnerUserID,
		h.ID,
		h.Specimen,
		h.Species,
		h.Date,
		h.EnclosureSize,
		nullFloat(h.Temperature),
		nullFloat(h.Humidity),
		string(h.Condition),
		h.Behavior,
		h.HealthIssues,
		h.Treatment,
		nullTime(h.FollowUpDate),
		atts,
		h.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return health.ErrNotFound
	}
	return nil
}

func (r *HealthRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM health_entries WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return health.ErrNotFound
	}
	return nil
}

func (r *HealthRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM health_entries WHERE owner_user_id = $1
	`, ownerUserID)
	return err
}

func scanHealth(row rowScanner) (health.HealthEntry, error) {
	var h health.HealthEntry
	var condition string
	var temperature, humidity sql.NullFloat64
	var followUp sql.NullTime
	var atts []byte

	if err := row.Scan(
		&h.ID,
		&h.OwnerUserID,
		&h.Specimen,
		&h.Species,
		&h.Date,
		&h.EnclosureSize,
		&temperature,
		&humidity,
		&condition,
		&h.Behavior,
		&h.HealthIssues,
		&h.Treatment,
		&followUp,
		&atts,
		&h.CreatedAt,
		&h.UpdatedAt,
	); err != nil {
		return health.HealthEntry{}, err
	}

	h.Condition = health.Condition(condition)
	h.Temperature = floatPtr(temperature)
	h.Humidity = floatPtr(humidity)
	h.FollowUpDate = timePtr(followUp)

	var list []attachments.Attachment
	if err := jsonbScan(atts, &list); err != nil {
		return health.HealthEntry{}, err
	}
	if len(list) > 0 {
		h.Attachments = list
	}

	return h, nil
}
