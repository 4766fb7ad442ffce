package directory

import "time"

// Availability statuses for a doctor.
const (
	StatusAvailable = "available"
	StatusBusy      = "busy"
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID                 int64     `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Specialization     string    `db:"specialization" json:"specialization"`
	ProfileImage       string    `db:"profile_image" json:"profile_image"`
	AvailabilityStatus string    `db:"availability_status" json:"availability_status"`
	Email              string    `db:"email" json:"email"`
	Phone              string    `db:"phone" json:"phone"`
	ExperienceYears    int       `db:"experience_years" json:"experience_years"`
	Rating             float64   `db:"rating" json:"rating"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// Accepting reports whether the doctor currently takes bookings.
func (d *Doctor) Accepting() bool {
	return d.AvailabilityStatus == StatusAvailable
}
