package minisite

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	catalogRepo "coachly/database/repository/catalog"
	counselorRepo "coachly/database/repository/counselor"
	"coachly/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultService is the production resolver. Resolutions are cached in
// Redis for a short TTL; the cache is strictly an accelerator and all
// its failures are non-fatal.
type DefaultService struct {
	Counselors counselorRepo.CounselorRepository
	Catalog    catalogRepo.CatalogRepository
	Cache      *redis.Client
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

// Resolve looks up the counselor owning the public profile name, pulls
// job offers and products concurrently, and composes the page.
//
// The two catalog reads are independent: a failure in either degrades
// that field to an empty list with a logged warning instead of failing
// the whole resolution. Only the primary counselor lookup is fatal.
func (s *DefaultService) Resolve(ctx context.Context, publicProfileName string) (*ResolvedMiniSite, error) {
	if cached := s.cacheGet(ctx, publicProfileName); cached != nil {
		return cached, nil
	}

	counselor, err := s.Counselors.GetByPublicProfileName(ctx, publicProfileName)
	if err != nil {
		if errors.Is(err, counselorRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &ResolveError{ProfileName: publicProfileName, Err: err}
	}

	var (
		wg        sync.WaitGroup
		jobOffers []models.JobOffer
		products  []models.Product
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		offers, err := s.Catalog.JobOffersByCounselor(ctx, counselor.ID)
		if err != nil {
			s.Logger.Warn("job offers unavailable for mini-site",
				zap.String("counselorId", counselor.ID), zap.Error(err))
			return
		}
		jobOffers = offers
	}()
	go func() {
		defer wg.Done()
		items, err := s.Catalog.ProductsByCounselor(ctx, counselor.ID)
		if err != nil {
			s.Logger.Warn("products unavailable for mini-site",
				zap.String("counselorId", counselor.ID), zap.Error(err))
			return
		}
		products = items
	}()
	wg.Wait()

	if jobOffers == nil {
		jobOffers = []models.JobOffer{}
	}
	if products == nil {
		products = []models.Product{}
	}

	resolved := &ResolvedMiniSite{
		Counselor: PublicCounselor{
			ID:          counselor.ID,
			FullName:    counselor.FullName(),
			Title:       counselor.Title,
			PhotoURL:    counselor.PhotoURL,
			Specialties: counselor.Specialties,
		},
		Sections:  Compose(SectionRefs(&counselor.MiniSite), NewRegistry(counselor, products), s.Logger),
		JobOffers: jobOffers,
		Products:  products,
	}

	s.cacheSet(ctx, publicProfileName, resolved)
	return resolved, nil
}

func cacheKey(name string) string { return "minisite:" + name }

func (s *DefaultService) cacheGet(ctx context.Context, name string) *ResolvedMiniSite {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, cacheKey(name)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Debug("mini-site cache read failed", zap.Error(err))
		}
		return nil
	}
	var out ResolvedMiniSite
	if err := json.Unmarshal(raw, &out); err != nil {
		s.Logger.Debug("mini-site cache entry corrupt, ignoring", zap.Error(err))
		return nil
	}
	return &out
}

func (s *DefaultService) cacheSet(ctx context.Context, name string, resolved *ResolvedMiniSite) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(resolved)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(name), raw, s.CacheTTL).Err(); err != nil {
		s.Logger.Debug("mini-site cache write failed", zap.Error(err))
	}
}
