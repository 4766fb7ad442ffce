package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibook/medibook/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const apptCols = `id, doctor_id, patient_name, patient_email,
	appointment_date, appointment_time, status, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.DoctorID, &a.PatientName, &a.PatientEmail,
		&a.Date, &a.Time, &a.Status, &a.CreatedAt)
	return &a, err
}

// Create claims the slot and inserts in one statement. The partial unique
// index on (doctor_id, appointment_date, appointment_time) WHERE status <>
// 'cancelled' makes the conflict check and the insert atomic, so two
// concurrent requests for the same slot cannot both succeed.
func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (doctor_id, patient_name, patient_email,
			appointment_date, appointment_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (doctor_id, appointment_date, appointment_time)
			WHERE status <> 'cancelled' DO NOTHING
		RETURNING id, created_at`,
		a.DoctorID, a.PatientName, a.PatientEmail, a.Date, a.Time, a.Status).
		Scan(&a.ID, &a.CreatedAt)
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSlotTaken
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return &ValidationError{Field: "doctor_id", Reason: "unknown doctor"}
	}
	return &StorageError{Op: "create appointment", Err: err}
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	a, err := scanAppointment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get appointment", Err: err}
	}
	return a, nil
}

func (r *repoPG) FindActiveBySlot(ctx context.Context, doctorID int64, date time.Time, timeSlot string) (*Appointment, error) {
	a, err := scanAppointment(r.conn(ctx).QueryRow(ctx, `
		SELECT `+apptCols+` FROM appointments
		WHERE doctor_id = $1 AND appointment_date = $2 AND appointment_time = $3
			AND status <> 'cancelled'`,
		doctorID, date, timeSlot))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "find slot", Err: err}
	}
	return a, nil
}

func (r *repoPG) Cancel(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointments SET status = 'cancelled'
		WHERE id = $1 AND status <> 'cancelled'`, id)
	if err != nil {
		return &StorageError{Op: "cancel appointment", Err: err}
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already cancelled; only the former is an error.
		var exists bool
		if err := r.conn(ctx).QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists); err != nil {
			return &StorageError{Op: "cancel appointment", Err: err}
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, &StorageError{Op: "count appointments", Err: err}
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+apptCols+` FROM appointments
		WHERE doctor_id = $1
		ORDER BY appointment_date ASC, appointment_time ASC
		LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, &StorageError{Op: "list appointments", Err: err}
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, &StorageError{Op: "list appointments", Err: err}
		}
		items = append(items, a)
	}
	return items, total, nil
}
