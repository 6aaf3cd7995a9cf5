package minisite

import (
	"context"

	"coachly/models"
)

// ResolvedMiniSite is the complete public page payload for one
// counselor: the ordered displayable sections plus the catalog data
// fetched alongside the profile.
type ResolvedMiniSite struct {
	Counselor PublicCounselor   `json:"counselor"`
	Sections  []Rendered        `json:"sections"`
	JobOffers []models.JobOffer `json:"jobOffers"`
	Products  []models.Product  `json:"products"`
}

// PublicCounselor is the counselor's public subset: no account email,
// no timestamps.
type PublicCounselor struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Title       string   `json:"title"`
	PhotoURL    string   `json:"photoUrl"`
	Specialties []string `json:"specialties"`
}

// Service resolves public profile names into displayable mini-sites.
type Service interface {
	Resolve(ctx context.Context, publicProfileName string) (*ResolvedMiniSite, error)
}
