package db

import (
	"context"
	"database/sql"

	_ "embed"

	"github.com/google/uuid"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the database schema.  The statements in schema.sql create
// tables only if they do not already exist, so it is safe to run at every
// boot.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// seedHospitals covers every specialization keyword in the taxonomy so a
// fresh database returns matches for any predicted category.
var seedHospitals = []struct {
	name            string
	address         string
	contact         string
	specializations string
}{
	{"City Heart Institute", "12 Harbor Road", "+1-555-0101", "Cardiology, Vascular Surgery"},
	{"Lakeside Pulmonary Center", "48 Lakeview Avenue", "+1-555-0102", "Pulmonology, Sleep Medicine"},
	{"Metro Endocrine Clinic", "7 Union Square", "+1-555-0103", "Endocrinology, Diabetology"},
	{"St. Anne Infectious Disease Hospital", "220 Elm Street", "+1-555-0104", "Infectious Diseases, Internal Medicine"},
	{"Northside Neurology Center", "91 Summit Drive", "+1-555-0105", "Neurology, Neurosurgery"},
	{"Riverbend Skin Clinic", "5 Mill Lane", "+1-555-0106", "Dermatology, Allergy"},
	{"Orthopedic & Sports Medicine Institute", "33 Stadium Way", "+1-555-0107", "Orthopedics, Physiotherapy"},
	{"Bayview Digestive Health", "18 Bayview Terrace", "+1-555-0108", "Gastroenterology, Hepatology"},
	{"Greenfield Behavioral Health", "64 Willow Court", "+1-555-0109", "Psychiatry, Psychology"},
	{"Central General Hospital", "1 Hospital Plaza", "+1-555-0110", "General Medicine, Emergency, Cardiology"},
}

// SeedHospitals inserts demo facility rows once.  It is a no-op when the
// hospitals table already has data.
func SeedHospitals(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hospitals`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, h := range seedHospitals {
		_, err := db.ExecContext(ctx,
			`INSERT INTO hospitals (id, name, address, contact_number, specializations)
             VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), h.name, h.address, h.contact, h.specializations,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
