package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// DoctorDirectory is the slice of the doctor catalog the booking flow
// needs. Implemented by the directory service.
type DoctorDirectory interface {
	DoctorExists(ctx context.Context, id int64) (bool, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo    Repository
	doctors DoctorDirectory
	now     func() time.Time
}

func NewService(repo Repository, doctors DoctorDirectory) *Service {
	return &Service{repo: repo, doctors: doctors, now: time.Now}
}

// BookingRequest carries the raw request fields. Everything arrives as a
// string and is validated here.
type BookingRequest struct {
	DoctorID        string `json:"doctor_id"`
	PatientName     string `json:"patient_name"`
	PatientEmail    string `json:"patient_email"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

// Book validates the request and claims the slot. Validation order is
// fixed: field presence, doctor id shape, date and time, email shape,
// doctor lookup, then the insert itself.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*Appointment, error) {
	if req.DoctorID == "" || req.PatientName == "" || req.PatientEmail == "" ||
		req.AppointmentDate == "" || req.AppointmentTime == "" {
		return nil, &ValidationError{Reason: "all fields are required"}
	}

	doctorID, err := strconv.ParseInt(req.DoctorID, 10, 64)
	if err != nil || doctorID <= 0 {
		return nil, &ValidationError{Field: "doctor_id", Reason: "must be a positive integer"}
	}

	date, err := ValidateSlot(req.AppointmentDate, req.AppointmentTime, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if !validEmail(req.PatientEmail) {
		return nil, &ValidationError{Field: "patient_email", Reason: "invalid email address"}
	}

	exists, err := s.doctors.DoctorExists(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &ValidationError{Field: "doctor_id", Reason: "unknown doctor"}
	}
	available, err := s.doctors.IsAvailable(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, &ValidationError{Field: "doctor_id", Reason: "doctor not accepting bookings"}
	}

	// Friendly pre-check. The insert below is the authoritative guard;
	// this only avoids burning an id on an obviously taken slot.
	if _, err := s.repo.FindActiveBySlot(ctx, doctorID, date, req.AppointmentTime); err == nil {
		return nil, ErrSlotTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	appt := &Appointment{
		DoctorID:     doctorID,
		PatientName:  strings.TrimSpace(req.PatientName),
		PatientEmail: strings.TrimSpace(req.PatientEmail),
		Date:         date,
		Time:         req.AppointmentTime,
		Status:       StatusScheduled,
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Cancel frees the appointment's slot and returns the appointment in its
// terminal state. Cancelling twice is not an error.
func (s *Service) Cancel(ctx context.Context, id int64) (*Appointment, error) {
	if err := s.repo.Cancel(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByDoctor(ctx, doctorID, limit, offset)
}

// validEmail accepts addresses of the form local@domain.tld. This is a
// shape check, not RFC 5322 validation.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
