package postgres

import (
	"context"
	"database/sql"
	"strings"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/domain/breeding"
)

type BreedingRepo struct {
	db *sql.DB
}

func NewBreedingRepo(db *sql.DB) *BreedingRepo {
	return &BreedingRepo{db: db}
}

const breedingColumns = `
	id, owner_user_id,
	female, male, species,
	pairing_date, status, pairing_notes,
	egg_sac_date, egg_sac_status, egg_sac_count,
	hatch_date, sling_count, follow_up_date,
	attachments,
	created_at, updated_at
`

func (r *BreedingRepo) Create(ctx context.Context, b breeding.BreedingEntry) error {
	atts, err := jsonbValue(b.Attachments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO breeding_entries (`+breedingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		b.ID,
		b.OwnerUserID,
		b.Female,
		b.Male,
		b.Species,
		b.PairingDate,
		string(b.Status),
		b.PairingNotes,
		nullTime(b.EggSacDate),
		b.EggSacStatus,
		nullInt(b.EggSacCount),
		nullTime(b.HatchDate),
		nullInt(b.SlingCount),
		nullTime(b.FollowUpDate),
		atts,
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *BreedingRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (breeding.BreedingEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeding.BreedingEntry{}, breeding.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+breedingColumns+`
		FROM breeding_entries
		WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)

	b, err := scanBreeding(row)
	if err == sql.ErrNoRows {
		return breeding.BreedingEntry{}, breeding.ErrNotFound
	}
	return b, err
}

func (r *BreedingRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]breeding.BreedingEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+breedingColumns+`
		FROM breeding_entries
		WHERE owner_user_id = $1
		ORDER BY pairing_date DESC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeding.BreedingEntry, 0)
	for rows.Next() {
		b, err := scanBreeding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BreedingRepo) Update(ctx context.Context, b breeding.BreedingEntry) error {
	atts, err := jsonbValue(b.Attachments)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE breeding_entries SET
			female = $3, male = $4, species = $5,
			pairing_date = $6, status = $7, pairing_notes = $8,
			egg_sac_date = $9, egg_sac_status = $10, egg_sac_count = $11,
			hatch_date = $12, sling_count = $13, follow_up_date = $14,
			attachments = $15,
			updated_at = $16
		WHERE owner_user_id = $1 AND id = $2
	`,
		b.OwnerUserID,
		b.ID,
		b.Female,
		b.Male,
		b.Species,
		b.PairingDate,
		string(b.Status),
		b.PairingNotes,
		nullTime(b.EggSacDate),
		b.EggSacStatus,
		nullInt(b.EggSacCount),
		nullTime(b.HatchDate),
		nullInt(b.SlingCount),
		nullTime(b.FollowUpDate),
		atts,
		b.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeding.ErrNotFound
	}
	return nil
}

func (r *BreedingRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM breeding_entries WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return breeding.ErrNotFound
	}
	return nil
}

func (r *BreedingRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM breeding_entries WHERE owner_user_id = $1
	`, ownerUserID)
	return err
}

func scanBreeding(row rowScanner) (breeding.BreedingEntry, error) {
	var b breeding.BreedingEntry
	var status string
	var eggSacDate, hatchDate, followUp sql.NullTime
	var eggSacCount, slingCount sql.NullInt64
	var atts []byte

	if err := row.Scan(
		&b.ID,
		&b.OwnerUserID,
		&b.Female,
		&b.Male,
		&b.Species,
		&b.PairingDate,
		&status,
		&b.PairingNotes,
		&eggSacDate,
		&b.EggSacStatus,
		&eggSacCount,
		&hatchDate,
		&slingCount,
		&followUp,
		&atts,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return breeding.BreedingEntry{}, err
	}

	b.Status = breeding.Status(status)
	b.EggSacDate = timePtr(eggSacDate)
	b.EggSacCount = intPtr(eggSacCount)
	b.HatchDate = timePtr(hatchDate)
	b.SlingCount = intPtr(slingCount)
	b.FollowUpDate = timePtr(followUp)

	var list []attachments.Attachment
	if err := jsonbScan(atts, &list); err != nil {
		return breeding.BreedingEntry{}, err
	}
	if len(list) > 0 {
		b.Attachments = list
	}

	return b, nil
}
