package doctors

import (
	"context"
	"encoding/json"
)

// DefaultSpecialty is shown when the profile blob is absent or malformed.
const DefaultSpecialty = "Врач"

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// List returns the doctor directory with specialties extracted from the
// profile blobs.
func (s *Service) List(ctx context.Context) ([]Doctor, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Doctor, 0, len(rows))
	for _, row := range rows {
		doctor := Doctor{
			ID:        row.ID,
			Name:      row.Name,
			Specialty: specialtyFromProfile(row.BasicData),
		}
		if row.Description != nil {
			doctor.Description = *row.Description
		}
		result = append(result, doctor)
	}
	return result, nil
}

// profile is the slice of the plugin's basic_data blob we care about.
type profile struct {
	Specialties []struct {
		Label string `json:"label"`
	} `json:"specialties"`
}

// specialtyFromProfile extracts the first specialty label. Malformed or
// incomplete blobs fall back silently; the directory never fails over a bad
// profile.
func specialtyFromProfile(blob *string) string {
	if blob == nil || *blob == "" {
		return DefaultSpecialty
	}

	var p profile
	if err := json.Unmarshal([]byte(*blob), &p); err != nil {
		return DefaultSpecialty
	}
	if len(p.Specialties) == 0 || p.Specialties[0].Label == "" {
		return DefaultSpecialty
	}
	return p.Specialties[0].Label
}
