package postgres

import (
	"context"
	"database/sql"
	"strings"

	"tarantula-husbandry/internal/domain/research"
)

type ResearchRepo struct {
	db *sql.DB
}

func NewResearchRepo(db *sql.DB) *ResearchRepo {
	return &ResearchRepo{db: db}
}

func (r *ResearchRepo) Create(ctx context.Context, s research.Stack) error {
	notes, err := jsonbValue(s.Notes)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO research_stacks (
			id, owner_user_id, name, species, notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.OwnerUserID,
		s.Name,
		s.Species,
		notes,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *ResearchRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (research.Stack, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return research.Stack{}, research.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, name, species, notes, created_at, updated_at
		FROM research_stacks
		WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)

	s, err := scanStack(row)
	if err == sql.ErrNoRows {
		return research.Stack{}, research.ErrNotFound
	}
	return s, err
}

func (r *ResearchRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]research.Stack, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, name, species, notes, created_at, updated_at
		FROM research_stacks
		WHERE owner_user_id = $1
		ORDER BY updated_at DESC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]research.Stack, 0)
	for rows.Next() {
		s, err := scanStack(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ResearchRepo) Update(ctx context.Context, s research.Stack) error {
	notes, err := jsonbValue(s.Notes)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE research_stacks SET
			name = $3, species = $4, notes = $5, updated_at = $6
		WHERE owner_user_id = $1 AND id = $2
	`,
		s.OwnerUserID,
		s.ID,
		s.Name,
		s.Species,
		notes,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return research.ErrNotFound
	}
	return nil
}

func (r *ResearchRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM research_stacks WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return research.ErrNotFound
	}
	return nil
}

func (r *ResearchRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM research_stacks WHERE owner_user_id = $1
	`, ownerUserID)
	return err
}

func scanStack(row rowScanner) (research.Stack, error) {
	var s research.Stack
	var notes []byte

	if err := row.Scan(
		&s.ID,
		&s.OwnerUserID,
		&s.Name,
		&s.Species,
		&notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return research.Stack{}, err
	}

	s.Notes = []research.Note{}
	if err := jsonbScan(notes, &s.Notes); err != nil {
		return research.Stack{}, err
	}

	return s, nil
}
