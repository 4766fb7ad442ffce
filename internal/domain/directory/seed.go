package directory

import (
	"context"

	"github.com/rs/zerolog"
)

var sampleDoctors = []Doctor{
	{Name: "Dr. Sarah Johnson", Specialization: "Cardiologist", ProfileImage: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=300", Email: "sarah@hospital.com", Phone: "555-0101", ExperienceYears: 12, Rating: 4.8},
	{Name: "Dr. Michael Chen", Specialization: "Dermatologist", ProfileImage: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=300", Email: "michael@hospital.com", Phone: "555-0102", ExperienceYears: 8, Rating: 4.6},
	{Name: "Dr. Emily Rodriguez", Specialization: "Pediatrician", ProfileImage: "https://images.unsplash.com/photo-1594824475338-bb16d0797516?w=300", Email: "emily@hospital.com", Phone: "555-0103", ExperienceYears: 15, Rating: 4.9},
	{Name: "Dr. James Wilson", Specialization: "Orthopedic", ProfileImage: "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=300", Email: "james@hospital.com", Phone: "555-0104", ExperienceYears: 20, Rating: 4.7},
	{Name: "Dr. Lisa Thompson", Specialization: "Neurologist", ProfileImage: "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?w=300", Email: "lisa@hospital.com", Phone: "555-0105", ExperienceYears: 10, Rating: 4.5},
}

// Seed inserts the sample catalog when the doctors table is empty.
func Seed(ctx context.Context, repo Repository, logger zerolog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug().Int("doctors", count).Msg("catalog already populated, skipping seed")
		return nil
	}
	for i := range sampleDoctors {
		d := sampleDoctors[i]
		d.AvailabilityStatus = StatusAvailable
		if err := repo.Create(ctx, &d); err != nil {
			return err
		}
	}
	logger.Info().Int("doctors", len(sampleDoctors)).Msg("seeded doctor catalog")
	return nil
}
