package db

import (
	"context"
	"database/sql"
	"errors"

	"hospital-triage/pkg"
)

// Repository wraps database operations for patient profiles and hospital
// records.  The caller owns the *sql.DB lifecycle.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a Repository from an existing sql.DB.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

const profileCols = `s_no, full_name, date_of_birth, address, contact_number, emergency_contact,
	gender, age, blood_group, past_illnesses, current_medical_conditions, allergies,
	current_medications, past_surgeries_major_injuries, family_medical_history, lifestyle_factors`

// GetProfile fetches one patient profile by serial number.  A missing row is
// not an error: it returns (nil, nil).
func (r *Repository) GetProfile(ctx context.Context, sNo int64) (*pkg.ProfileRecord, error) {
	var rec pkg.ProfileRecord
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+profileCols+` FROM user_profile WHERE s_no = $1`, sNo,
	).Scan(
		&rec.SNo, &rec.FullName, &rec.DateOfBirth, &rec.Address, &rec.ContactNumber,
		&rec.EmergencyContact, &rec.Gender, &rec.Age, &rec.BloodGroup, &rec.PastIllnesses,
		&rec.CurrentConditions, &rec.Allergies, &rec.Medications, &rec.PastSurgeries,
		&rec.FamilyHistory, &rec.Lifestyle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindHospitalsBySpecialization returns facilities whose free-text
// specializations column contains the keyword.  The match is a
// case-insensitive substring, mirroring how the column is populated
// ("Cardiology, Neurology, ...").
func (r *Repository) FindHospitalsBySpecialization(ctx context.Context, keyword string) ([]pkg.HospitalRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, address, contact_number, specializations
         FROM hospitals
         WHERE specializations ILIKE '%' || $1 || '%'
         ORDER BY name`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hospitals []pkg.HospitalRecord
	for rows.Next() {
		var h pkg.HospitalRecord
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.ContactNumber, &h.Specializations); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}
