package booking

import "time"

// Appointment statuses. A slot is occupied by any appointment whose
// status is not cancelled.
const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

// Appointment maps to the appointments table.
type Appointment struct {
	ID           int64     `db:"id" json:"id"`
	DoctorID     int64     `db:"doctor_id" json:"doctor_id"`
	PatientName  string    `db:"patient_name" json:"patient_name"`
	PatientEmail string    `db:"patient_email" json:"patient_email"`
	Date         time.Time `db:"appointment_date" json:"-"`
	Time         string    `db:"appointment_time" json:"appointment_time"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// apiAppointment is the JSON representation; the date is rendered as a
// plain calendar date rather than an RFC 3339 timestamp.
type apiAppointment struct {
	ID           int64     `json:"id"`
	DoctorID     int64     `json:"doctor_id"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	Date         string    `json:"appointment_date"`
	Time         string    `json:"appointment_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Appointment) api() apiAppointment {
	return apiAppointment{
		ID:           a.ID,
		DoctorID:     a.DoctorID,
		PatientName:  a.PatientName,
		PatientEmail: a.PatientEmail,
		Date:         a.Date.Format(DateLayout),
		Time:         a.Time,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}

// Active reports whether the appointment currently occupies its slot.
func (a *Appointment) Active() bool {
	return a.Status != StatusCancelled
}
