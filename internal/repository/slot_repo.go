package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"turnero/internal/db"
)

// Claim outcomes. The service layer maps both onto the user-facing
// "slot not available" response.
var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrSlotAlreadyReserved = errors.New("slot already reserved")
)

type SlotRepository struct {
	DB *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{DB: db}
}

// ListAvailable returns every available slot for the given practitioner.
// The name is matched by exact string equality; no ordering is guaranteed,
// the calendar widget sorts by start time itself.
func (r *SlotRepository) ListAvailable(practitioner string) ([]db.Slot, error) {
	query := `
		SELECT id, practitioner, slot_date, slot_time, status
		FROM slots
		WHERE practitioner = $1 AND status = $2`

	rows, err := r.DB.Query(query, practitioner, db.SlotStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("error querying available slots: %w", err)
	}
	defer rows.Close()

	var slots []db.Slot
	for rows.Next() {
		var s db.Slot
		if err := rows.Scan(&s.ID, &s.Practitioner, &s.Date, &s.Time, &s.Status); err != nil {
			return nil, fmt.Errorf("error scanning slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating slot rows: %w", err)
	}
	return slots, nil
}

// TryClaim transitions a slot from available to reserved and writes the
// patient fields as a single conditional UPDATE. The precondition on the
// current status lives in the database, so concurrent claims on the same
// slot (including from other server instances) cannot both succeed.
// Returns ErrSlotAlreadyReserved if the slot was taken first and
// ErrSlotNotFound if the identifier does not exist.
func (r *SlotRepository) TryClaim(slotID, patientName, patientPhone string) (*db.Slot, error) {
	query := `
		UPDATE slots
		SET status = $2, patient_name = $3, patient_phone = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
		RETURNING id, practitioner, slot_date, slot_time, status, patient_name, patient_phone`

	var s db.Slot
	err := r.DB.QueryRow(query, slotID, db.SlotStatusReserved, patientName, patientPhone, db.SlotStatusAvailable).Scan(
		&s.ID, &s.Practitioner, &s.Date, &s.Time, &s.Status, &s.PatientName, &s.PatientPhone,
	)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("error claiming slot %s: %w", slotID, err)
	}

	// The conditional write matched nothing: either the slot is gone or
	// someone else reserved it first. A follow-up read tells the two apart;
	// it only informs the error message, the claim itself already failed.
	var status string
	err = r.DB.QueryRow(`SELECT status FROM slots WHERE id = $1`, slotID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error checking slot %s after failed claim: %w", slotID, err)
	}
	return nil, ErrSlotAlreadyReserved
}

// InsertSlots bulk-inserts seed slots. Slots that already exist for the
// same practitioner, date and time are skipped, so seeding is idempotent.
func (r *SlotRepository) InsertSlots(slots []db.Slot) (int64, error) {
	query := `
		INSERT INTO slots (id, practitioner, slot_date, slot_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (practitioner, slot_date, slot_time) DO NOTHING`

	var inserted int64
	for _, s := range slots {
		result, err := r.DB.Exec(query, s.ID, s.Practitioner, s.Date, s.Time, db.SlotStatusAvailable)
		if err != nil {
			return inserted, fmt.Errorf("error inserting slot for %s at %s: %w", s.Practitioner, s.Time, err)
		}
		n, err := result.RowsAffected()
		if err == nil {
			inserted += n
		}
	}
	return inserted, nil
}

// ListReserved returns booked slots with their patient details,
// optionally filtered by date (YYYY-MM-DD) and practitioner.
func (r *SlotRepository) ListReserved(date, practitioner string) ([]db.Slot, error) {
	query := `
	SELECT id, practitioner, slot_date, slot_time, status, patient_name, patient_phone, updated_at
	FROM slots
	WHERE status = 'reserved'`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND slot_date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if practitioner != "" {
		query += " AND practitioner = $" + strconv.Itoa(idx)
		args = append(args, practitioner)
		idx++
	}
	query += " ORDER BY slot_date, slot_time"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reserved slots: %w", err)
	}
	defer rows.Close()

	var slots []db.Slot
	for rows.Next() {
		var s db.Slot
		err := rows.Scan(&s.ID, &s.Practitioner, &s.Date, &s.Time, &s.Status, &s.PatientName, &s.PatientPhone, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning reserved slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
