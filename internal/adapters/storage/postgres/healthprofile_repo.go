package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-companion/internal/domain/healthprofile"
)

type HealthProfileRepo struct {
	db *sql.DB
}

func NewHealthProfileRepo(db *sql.DB) *HealthProfileRepo {
	return &HealthProfileRepo{db: db}
}

// Formato de las columnas JSONB.
type conditionRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	DiagnosedDate *string `json:"diagnosed_date,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

type allergyRow struct {
	ID       string `json:"id"`
	Allergen string `json:"allergen"`
	Severity string `json:"severity,omitempty"`
	Reaction string `json:"reaction,omitempty"`
}

const jsonDateLayout = "2006-01-02"

func (r *HealthProfileRepo) GetHealthData(ctx context.Context, ownerUserID string) (healthprofile.HealthData, error) {
	var (
		h                     healthprofile.HealthData
		bloodType             string
		conditions, allergies []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT owner_user_id, blood_type, height_cm, weight_kg,
			conditions, allergies,
			insurance_provider, insurance_policy, insurance_group,
			updated_at
		FROM health_data
		WHERE owner_user_id = $1
	`, ownerUserID).Scan(
		&h.OwnerUserID,
		&bloodType,
		&h.HeightCm,
		&h.WeightKg,
		&conditions,
		&allergies,
		&h.Insurance.Provider,
		&h.Insurance.PolicyNumber,
		&h.Insurance.GroupNumber,
		&h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return healthprofile.HealthData{}, healthprofile.ErrNoHealthData
		}
		return healthprofile.HealthData{}, err
	}
	h.BloodType = healthprofile.BloodType(bloodType)

	if h.Conditions, err = decodeConditions(conditions); err != nil {
		return healthprofile.HealthData{}, err
	}
	if h.Allergies, err = decodeAllergies(allergies); err != nil {
		return healthprofile.HealthData{}, err
	}
	return h, nil
}

func (r *HealthProfileRepo) SaveHealthData(ctx context.Context, h healthprofile.HealthData) error {
	conditions, err := encodeConditions(h.Conditions)
	if err != nil {
		return err
	}
	allergies, err := encodeAllergies(h.Allergies)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_data (
			owner_user_id, blood_type, height_cm, weight_kg,
			conditions, allergies,
			insurance_provider, insurance_policy, insurance_group,
			updated_at
		)
		VALUES ($1,$2,$3,$4,$5::jsonb,$6::jsonb,$7,$8,$9,$10)
		ON CONFLICT (owner_user_id) DO UPDATE SET
			blood_type = EXCLUDED.blood_type,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			conditions = EXCLUDED.conditions,
			allergies = EXCLUDED.allergies,
			insurance_provider = EXCLUDED.insurance_provider,
			insurance_policy = EXCLUDED.insurance_policy,
			insurance_group = EXCLUDED.insurance_group,
			updated_at = EXCLUDED.updated_at
	`,
		h.OwnerUserID,
		string(h.BloodType),
		h.HeightCm,
		h.WeightKg,
		string(conditions),
		string(allergies),
		h.Insurance.Provider,
		h.Insurance.PolicyNumber,
		h.Insurance.GroupNumber,
		h.UpdatedAt,
	)
	return err
}

func encodeConditions(items []healthprofile.Condition) ([]byte, error) {
	rows := make([]conditionRow, 0, len(items))
	for _, c := range items {
		row := conditionRow{ID: c.ID, Name: c.Name, Notes: c.Notes}
		if c.DiagnosedDate != nil {
			d := c.DiagnosedDate.Format(jsonDateLayout)
			row.DiagnosedDate = &d
		}
		rows = append(rows, row)
	}
	return json.Marshal(rows)
}

func decodeConditions(raw []byte) ([]healthprofile.Condition, error) {
	var rows []conditionRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode conditions: %w", err)
	}
	out := make([]healthprofile.Condition, 0, len(rows))
	for _, row := range rows {
		c := healthprofile.Condition{ID: row.ID, Name: row.Name, Notes: row.Notes}
		if row.DiagnosedDate != nil {
			d, err := time.Parse(jsonDateLayout, *row.DiagnosedDate)
			if err != nil {
				return nil, fmt.Errorf("decode conditions: %w", err)
			}
			c.DiagnosedDate = &d
		}
		out = append(out, c)
	}
	return out, nil
}

func encodeAllergies(items []healthprofile.Allergy) ([]byte, error) {
	rows := make([]allergyRow, 0, len(items))
	for _, a := range items {
		rows = append(rows, allergyRow(a))
	}
	return json.Marshal(rows)
}

func decodeAllergies(raw []byte) ([]healthprofile.Allergy, error) {
	var rows []allergyRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode allergies: %w", err)
	}
	out := make([]healthprofile.Allergy, 0, len(rows))
	for _, row := range rows {
		out = append(out, healthprofile.Allergy(row))
	}
	return out, nil
}

const contactColumns = `
	id, owner_user_id,
	name, relationship, primary_phone, secondary_phone, address,
	created_at, updated_at`

func (r *HealthProfileRepo) CreateContact(ctx context.Context, c healthprofile.EmergencyContact) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO emergency_contacts (`+contactColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.Relationship,
		c.PrimaryPhone,
		c.SecondaryPhone,
		c.Address,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *HealthProfileRepo) UpdateContact(ctx context.Context, c healthprofile.EmergencyContact) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE emergency_contacts
		SET
			name = $2,
			relationship = $3,
			primary_phone = $4,
			secondary_phone = $5,
			address = $6,
			updated_at = $7
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Relationship,
		c.PrimaryPhone,
		c.SecondaryPhone,
		c.Address,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return healthprofile.ErrNotFound
	}
	return nil
}

func (r *HealthProfileRepo) DeleteContact(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return healthprofile.ErrNotFound
	}
	return nil
}

func (r *HealthProfileRepo) GetContact(ctx context.Context, id string) (healthprofile.EmergencyContact, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return healthprofile.EmergencyContact{}, healthprofile.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM emergency_contacts WHERE id = $1`, id)

	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return healthprofile.EmergencyContact{}, healthprofile.ErrNotFound
		}
		return healthprofile.EmergencyContact{}, err
	}
	return c, nil
}

func (r *HealthProfileRepo) ListContacts(ctx context.Context, ownerUserID string) ([]healthprofile.EmergencyContact, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+contactColumns+`
		FROM emergency_contacts
		WHERE owner_user_id = $1
		ORDER BY seq ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthprofile.EmergencyContact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanContact(row rowScanner) (healthprofile.EmergencyContact, error) {
	var c healthprofile.EmergencyContact
	err := row.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.Relationship,
		&c.PrimaryPhone,
		&c.SecondaryPhone,
		&c.Address,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
