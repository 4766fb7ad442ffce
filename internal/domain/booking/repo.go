package booking

import (
	"context"
	"time"
)

// Repository is the persistence interface for appointments.
type Repository interface {
	// Create inserts the appointment, claiming its slot. Returns
	// ErrSlotTaken if another active appointment already holds the slot.
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	// FindActiveBySlot returns the active appointment occupying the slot,
	// or ErrNotFound.
	FindActiveBySlot(ctx context.Context, doctorID int64, date time.Time, timeSlot string) (*Appointment, error)
	// Cancel marks the appointment cancelled. Cancelling an already
	// cancelled appointment is a no-op.
	Cancel(ctx context.Context, id int64) error
	ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) ([]*Appointment, int, error)
}
