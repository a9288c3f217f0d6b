package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/domain/entries"
)

type EntriesRepo struct {
	db *sql.DB
}

func NewEntriesRepo(db *sql.DB) *EntriesRepo {
	return &EntriesRepo{db: db}
}

const entriesColumns = `
	id, owner_user_id,
	entry_type, specimen, species,
	date, stage,
	old_size, new_size, humidity, temperature, temp_unit,
	notes, reminder_date,
	prey, outcome, amount,
	attachments,
	created_at, updated_at
`

func (r *EntriesRepo) Create(ctx context.Context, e entries.Entry) error {
	atts, err := jsonbValue(e.Attachments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO entries (`+entriesColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`,
		e.ID,
		e.OwnerUserID,
		string(e.Kind),
		e.Specimen,
		e.Species,
		e.Date,
		string(e.Stage),
		nullFloat(e.OldSize),
		nullFloat(e.NewSize),
		nullFloat(e.Humidity),
		nullFloat(e.Temperature),
		string(e.TempUnit),
		e.Notes,
		nullTime(e.ReminderDate),
		e.Prey,
		e.Outcome,
		nullInt(e.Amount),
		atts,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *EntriesRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (entries.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entries.Entry{}, entries.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+entriesColumns+`
		FROM entries
		WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return entries.Entry{}, entries.ErrNotFound
	}
	return e, err
}

func (r *EntriesRepo) ListByOwner(ctx context.Context, ownerUserID string, filter entries.ListFilter) ([]entries.Entry, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + entriesColumns + ` FROM entries WHERE owner_user_id = $1`)

	args := []any{ownerUserID}
	argN := 2

	if len(filter.Kinds) > 0 {
		placeholders := make([]string, 0, len(filter.Kinds))
		for _, k := range filter.Kinds {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(k))
			argN++
		}
		sb.WriteString(" AND entry_type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND date >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND date <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	// q: búsqueda simple en specimen + species + notes
	if strings.TrimSpace(filter.Query) != "" {
		sb.WriteString(fmt.Sprintf(" AND (specimen ILIKE $%d OR species ILIKE $%d OR notes ILIKE $%d)", argN, argN, argN))
		args = append(args, "%"+strings.TrimSpace(filter.Query)+"%")
		argN++
	}

	sb.WriteString(" ORDER BY date DESC, id ASC")
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entries.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EntriesRepo) Update(ctx context.Context, e entries.Entry) error {
	atts, err := jsonbValue(e.Attachments)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE entries SET
			entry_type = $3, specimen = $4, species = $5,
			date = $6, stage = $7,
			old_size = $8, new_size = $9, humidity = $10, temperature = $11, temp_unit = $12,
			notes = $13, reminder_date = $14,
			prey = $15, outcome = $16, amount = $17,
			attachments = $18,
			updated_at = $19
		WHERE owner_user_id = $1 AND id = $2
	`,
		e.OwnerUserID,
		e.ID,
		string(e.Kind),
		e.Specimen,
		e.Species,
		e.Date,
		string(e.Stage),
		nullFloat(e.OldSize),
		nullFloat(e.NewSize),
		nullFloat(e.Humidity),
		nullFloat(e.Temperature),
		string(e.TempUnit),
		e.Notes,
		nullTime(e.ReminderDate),
		e.Prey,
		e.Outcome,
		nullInt(e.Amount),
		atts,
		e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entries.ErrNotFound
	}
	return nil
}

func (r *EntriesRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM entries WHERE owner_user_id = $1 AND id = $2
	`, ownerUserID, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return entries.ErrNotFound
	}
	return nil
}

func (r *EntriesRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM entries WHERE owner_user_id = $1
	`, ownerUserID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (entries.Entry, error) {
	var e entries.Entry
	var kind, stage, tempUnit string
	var oldSize, newSize, humidity, temperature sql.NullFloat64
	var reminder sql.NullTime
	var amount sql.NullInt64
	var atts []byte

	if err := row.Scan(
		&e.ID,
		&e.OwnerUserID,
		&kind,
		&e.Specimen,
		&e.Species,
		&e.Date,
		&stage,
		&oldSize,
		&newSize,
		&humidity,
		&temperature,
		&tempUnit,
		&e.Notes,
		&reminder,
		&e.Prey,
		&e.Outcome,
		&amount,
		&atts,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return entries.Entry{}, err
	}

	e.Kind = entries.Kind(kind)
	e.Stage = entries.Stage(stage)
	e.TempUnit = entries.TempUnit(tempUnit)
	e.OldSize = floatPtr(oldSize)
	e.NewSize = floatPtr(newSize)
	e.Humidity = floatPtr(humidity)
	e.Temperature = floatPtr(temperature)
	e.ReminderDate = timePtr(reminder)
	e.Amount = intPtr(amount)

	var list []attachments.Attachment
	if err := jsonbScan(atts, &list); err != nil {
		return entries.Entry{}, err
	}
	if len(list) > 0 {
		e.Attachments = list
	}

	return e, nil
}
