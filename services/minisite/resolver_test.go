package minisite

import (
	"context"
	"errors"
	"testing"

	counselorRepo "coachly/database/repository/counselor"
	"coachly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCounselorRepo struct {
	counselorRepo.CounselorRepository
	byProfile map[string]*models.Counselor
	err       error
}

func (f *fakeCounselorRepo) GetByPublicProfileName(_ context.Context, name string) (*models.Counselor, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byProfile[name]
	if !ok {
		return nil, counselorRepo.ErrNotFound
	}
	return c, nil
}

type fakeCatalogRepo struct {
	offers     []models.JobOffer
	products   []models.Product
	offersErr  error
	productErr error
}

func (f *fakeCatalogRepo) JobOffersByCounselor(context.Context, string) ([]models.JobOffer, error) {
	return f.offers, f.offersErr
}

func (f *fakeCatalogRepo) ProductsByCounselor(context.Context, string) ([]models.Product, error) {
	return f.products, f.productErr
}

func (f *fakeCatalogRepo) CreateJobOffer(context.Context, *models.JobOffer) error { return nil }
func (f *fakeCatalogRepo) CreateProduct(context.Context, *models.Product) error   { return nil }
func (f *fakeCatalogRepo) DeleteJobOffer(context.Context, string) error           { return nil }
func (f *fakeCatalogRepo) DeleteProduct(context.Context, string) error            { return nil }

func boolPtr(b bool) *bool { return &b }

func testCounselor() *models.Counselor {
	return &models.Counselor{
		ID:        "c-1",
		FirstName: "Claire",
		LastName:  "Martin",
		Title:     "Coach professionnelle",
		MiniSite: models.MiniSite{
			PublicProfileName: "claire-martin",
			SectionOrder:      []string{"hero", "about", "pricing", "contact"},
			Hero:              models.HeroSection{Headline: "Claire Martin"},
			About:             models.AboutSection{Bio: "Quinze ans d'accompagnement."},
			Pricing:           models.PricingSection{Enabled: boolPtr(false)},
			Contact:           models.ContactSection{Enabled: boolPtr(true), Email: "claire@coachly.app"},
		},
	}
}

func newResolver(counselors *fakeCounselorRepo, catalog *fakeCatalogRepo) *DefaultService {
	return &DefaultService{
		Counselors: counselors,
		Catalog:    catalog,
		Logger:     zap.NewNop(),
	}
}

func TestResolveNotFound(t *testing.T) {
	svc := newResolver(&fakeCounselorRepo{byProfile: map[string]*models.Counselor{}}, &fakeCatalogRepo{})

	_, err := svc.Resolve(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePrimaryLookupFailure(t *testing.T) {
	svc := newResolver(&fakeCounselorRepo{err: errors.New("store down")}, &fakeCatalogRepo{})

	_, err := svc.Resolve(context.Background(), "claire-martin")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	var rErr *ResolveError
	assert.ErrorAs(t, err, &rErr)
}

func TestResolveDefaultEnabledSemantics(t *testing.T) {
	repo := &fakeCounselorRepo{byProfile: map[string]*models.Counselor{
		"claire-martin": testCounselor(),
	}}
	svc := newResolver(repo, &fakeCatalogRepo{})

	resolved, err := svc.Resolve(context.Background(), "claire-martin")
	require.NoError(t, err)

	kinds := make([]SectionKind, 0, len(resolved.Sections))
	for _, s := range resolved.Sections {
		kinds = append(kinds, s.Kind)
	}

	// hero and about have no enabled flag (defaults on), pricing is
	// explicitly off, contact explicitly on.
	assert.Equal(t, []SectionKind{KindHero, KindAbout, KindContact}, kinds)
}

func TestResolvePartialCatalogFailureDegrades(t *testing.T) {
	repo := &fakeCounselorRepo{byProfile: map[string]*models.Counselor{
		"claire-martin": testCounselor(),
	}}
	catalog := &fakeCatalogRepo{
		offersErr: errors.New("index missing"),
		products:  []models.Product{{ID: "p-1", Name: "Cahier d'exercices"}},
	}
	svc := newResolver(repo, catalog)

	resolved, err := svc.Resolve(context.Background(), "claire-martin")
	require.NoError(t, err, "a secondary read failure must not fail the resolution")

	assert.Empty(t, resolved.JobOffers)
	require.Len(t, resolved.Products, 1)
	assert.Equal(t, "Cahier d'exercices", resolved.Products[0].Name)
}

func TestResolveBothCatalogReadsFailing(t *testing.T) {
	repo := &fakeCounselorRepo{byProfile: map[string]*models.Counselor{
		"claire-martin": testCounselor(),
	}}
	catalog := &fakeCatalogRepo{
		offersErr:  errors.New("down"),
		productErr: errors.New("down"),
	}
	svc := newResolver(repo, catalog)

	resolved, err := svc.Resolve(context.Background(), "claire-martin")
	require.NoError(t, err)
	assert.NotNil(t, resolved.JobOffers)
	assert.NotNil(t, resolved.Products)
	assert.Empty(t, resolved.JobOffers)
	assert.Empty(t, resolved.Products)
}

func TestResolvePublicCounselorShape(t *testing.T) {
	repo := &fakeCounselorRepo{byProfile: map[string]*models.Counselor{
		"claire-martin": testCounselor(),
	}}
	svc := newResolver(repo, &fakeCatalogRepo{})

	resolved, err := svc.Resolve(context.Background(), "claire-martin")
	require.NoError(t, err)
	assert.Equal(t, "Claire Martin", resolved.Counselor.FullName)
	assert.Equal(t, "c-1", resolved.Counselor.ID)
}

func TestSectionRefsUnknownIDFlowsThrough(t *testing.T) {
	site := &models.MiniSite{SectionOrder: []string{"hero", "mystery"}}
	refs := SectionRefs(site)

	require.Len(t, refs, 2)
	assert.Equal(t, "mystery", refs[1].ID)
	assert.True(t, refs[1].Enabled, "unknown ids default enabled; the registry filters them")
}
