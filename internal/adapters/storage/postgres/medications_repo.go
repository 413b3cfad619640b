package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"health-companion/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `
	id, owner_user_id,
	name, dosage, frequency, time_of_day, type,
	start_date, end_date, instructions,
	refill_date, refill_reminder,
	created_at, updated_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (`+medicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		m.ID,
		m.OwnerUserID,
		m.Name,
		m.Dosage,
		string(m.Frequency),
		m.TimeOfDay,
		string(m.Type),
		m.StartDate,
		toNullDate(m.EndDate),
		m.Instructions,
		toNullDate(m.RefillDate),
		m.RefillReminder,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET
			name = $2,
			dosage = $3,
			frequency = $4,
			time_of_day = $5,
			type = $6,
			start_date = $7,
			end_date = $8,
			instructions = $9,
			refill_date = $10,
			refill_reminder = $11,
			updated_at = $12
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Dosage,
		string(m.Frequency),
		m.TimeOfDay,
		string(m.Type),
		m.StartDate,
		toNullDate(m.EndDate),
		m.Instructions,
		toNullDate(m.RefillDate),
		m.RefillReminder,
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE id = $1`, id)

	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, medications.ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE owner_user_id = $1
		ORDER BY seq ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(row rowScanner) (medications.Medication, error) {
	var (
		m                  medications.Medication
		frequency, typ     string
		endDate, refillDay sql.NullTime
	)
	if err := row.Scan(
		&m.ID,
		&m.OwnerUserID,
		&m.Name,
		&m.Dosage,
		&frequency,
		&m.TimeOfDay,
		&typ,
		&m.StartDate,
		&endDate,
		&m.Instructions,
		&refillDay,
		&m.RefillReminder,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	m.Frequency = medications.Frequency(frequency)
	m.Type = medications.Type(typ)
	m.EndDate = fromNullDate(endDate)
	m.RefillDate = fromNullDate(refillDay)
	return m, nil
}
