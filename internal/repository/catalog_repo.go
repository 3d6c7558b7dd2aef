package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"turnero/internal/db"

	"github.com/lib/pq"
)

var ErrSpecialtyNotFound = errors.New("specialty not found")

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ListSpecialties returns the full catalog ordered by identifier.
func (r *CatalogRepository) ListSpecialties() ([]db.Specialty, error) {
	query := `SELECT id, name, practitioners FROM specialties ORDER BY id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying specialties: %w", err)
	}
	defer rows.Close()

	var specialties []db.Specialty
	for rows.Next() {
		var s db.Specialty
		if err := rows.Scan(&s.ID, &s.Name, pq.Array(&s.Practitioners)); err != nil {
			return nil, fmt.Errorf("error scanning specialty: %w", err)
		}
		specialties = append(specialties, s)
	}
	return specialties, rows.Err()
}

// GetSpecialty looks a specialty up by its exact identifier ("01" and "1"
// are different keys). Returns ErrSpecialtyNotFound for unknown ids.
func (r *CatalogRepository) GetSpecialty(id string) (*db.Specialty, error) {
	var s db.Specialty
	err := r.DB.QueryRow(`SELECT id, name, practitioners FROM specialties WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, pq.Array(&s.Practitioners))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, fmt.Errorf("error querying specialty '%s': %w", id, err)
	}
	return &s, nil
}

// UpsertSpecialty creates or replaces a specialty with its ordered
// practitioner list.
func (r *CatalogRepository) UpsertSpecialty(spec *db.Specialty) error {
	query := `
		INSERT INTO specialties (id, name, practitioners)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, practitioners = EXCLUDED.practitioners`
	_, err := r.DB.Exec(query, spec.ID, spec.Name, pq.Array(spec.Practitioners))
	if err != nil {
		return fmt.Errorf("error upserting specialty '%s': %w", spec.ID, err)
	}
	return nil
}
