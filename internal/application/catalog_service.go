package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/reelstream/reelstream/internal/domain/entity"
	"github.com/reelstream/reelstream/pkg/helpers"
)

// CatalogProvider is the upstream movie catalog contract.
type CatalogProvider interface {
	Category(ctx context.Context, name string) ([]entity.Movie, error)
	Search(ctx context.Context, query string) ([]entity.Movie, error)
	ExternalIDs(ctx context.Context, movieID int64) (string, error)
}

// CatalogService wraps the provider with a category cache and the search
// enrichment fan-out.
type CatalogService struct {
	Provider    CatalogProvider
	Redis       *redis.Client
	Logger      *logrus.Logger
	CategoryTTL time.Duration
}

func NewCatalogService(p CatalogProvider, rdb *redis.Client, logger *logrus.Logger, categoryTTL time.Duration) *CatalogService {
	return &CatalogService{Provider: p, Redis: rdb, Logger: logger, CategoryTTL: categoryTTL}
}

func categoryKey(name string) string { return "catalog:category:" + name }

// Category returns a category feed, served from the Redis cache when fresh.
// The hour of staleness is an accepted trade against upstream call volume.
func (s *CatalogService) Category(ctx context.Context, name string) ([]entity.Movie, error) {
	if s.Redis != nil {
		var cached []entity.Movie
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, categoryKey(name), &cached); err == nil && ok {
			return cached, nil
		}
	}

	movies, err := s.Provider.Category(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, categoryKey(name), movies, s.CategoryTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("category", name).Warn("category cache write failed")
		}
	}
	return movies, nil
}

// Search delegates to the provider (never cached, relevance order preserved)
// and resolves the IMDb cross-reference for each hit concurrently. A failed
// lookup nulls only its own slot; the join waits for every lookup to settle.
func (s *CatalogService) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.SearchResult{}, nil
	}

	movies, err := s.Provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]entity.SearchResult, len(movies))
	var wg sync.WaitGroup
	for i, m := range movies {
		wg.Add(1)
		go func(i int, m entity.Movie) {
			defer wg.Done()
			results[i] = entity.SearchResult{Movie: m}
			id, err := s.Provider.ExternalIDs(ctx, m.ID)
			if err != nil {
				if s.Logger != nil {
					s.Logger.WithError(err).WithField("movie_id", m.ID).Debug("external id lookup failed")
				}
				return
			}
			if id != "" {
				results[i].ImdbID = &id
			}
		}(i, m)
	}
	wg.Wait()

	return results, nil
}
