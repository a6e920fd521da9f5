package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/reelstream/reelstream/internal/domain/entity"
)

type fakeProvider struct {
	searchOut []entity.Movie
	searchErr error

	categoryOut   []entity.Movie
	categoryErr   error
	categoryCalls atomic.Int64
	searchCalls   atomic.Int64

	// movie id -> imdb id; missing entries fail the lookup
	externalIDs map[int64]string
}

func (f *fakeProvider) Category(ctx context.Context, name string) ([]entity.Movie, error) {
	f.categoryCalls.Add(1)
	return f.categoryOut, f.categoryErr
}

func (f *fakeProvider) Search(ctx context.Context, query string) ([]entity.Movie, error) {
	f.searchCalls.Add(1)
	return f.searchOut, f.searchErr
}

func (f *fakeProvider) ExternalIDs(ctx context.Context, movieID int64) (string, error) {
	id, ok := f.externalIDs[movieID]
	if !ok {
		return "", errors.New("lookup failed")
	}
	return id, nil
}

func TestSearch_EnrichesAllItems(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{
		searchOut: []entity.Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}},
		externalIDs: map[int64]string{
			1: "tt0000001",
			2: "tt0000002",
			3: "tt0000003",
		},
	}
	s := NewCatalogService(p, nil, nil, 0)

	results, err := s.Search(context.Background(), "a")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("result count: got %d want 3", len(results))
	}
	for i, want := range []string{"tt0000001", "tt0000002", "tt0000003"} {
		if results[i].ImdbID == nil || *results[i].ImdbID != want {
			t.Fatalf("result %d: imdb id got %v want %q", i, results[i].ImdbID, want)
		}
	}
}

func TestSearch_PartialEnrichmentFailure(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{
		searchOut: []entity.Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}},
		externalIDs: map[int64]string{
			1: "tt0000001",
			3: "tt0000003",
			// 2 fails
		},
	}
	s := NewCatalogService(p, nil, nil, 0)

	results, err := s.Search(context.Background(), "a")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("one bad lookup must not shrink the batch: got %d items", len(results))
	}
	if results[0].ImdbID == nil || *results[0].ImdbID != "tt0000001" {
		t.Fatalf("result 0 lost its imdb id")
	}
	if results[1].ImdbID != nil {
		t.Fatalf("failed lookup must yield a nil imdb id, got %q", *results[1].ImdbID)
	}
	if results[2].ImdbID == nil || *results[2].ImdbID != "tt0000003" {
		t.Fatalf("result 2 lost its imdb id")
	}
	// order follows the provider's relevance order
	if results[0].ID != 1 || results[1].ID != 2 || results[2].ID != 3 {
		t.Fatalf("provider order not preserved")
	}
}

func TestSearch_BlankQueryShortCircuits(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{}
	s := NewCatalogService(p, nil, nil, 0)

	results, err := s.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
	if n := p.searchCalls.Load(); n != 0 {
		t.Fatalf("expected no provider calls, got %d", n)
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{searchErr: errors.New("upstream down")}
	s := NewCatalogService(p, nil, nil, 0)

	if _, err := s.Search(context.Background(), "a"); err == nil {
		t.Fatalf("expected error when the provider fails")
	}
}

func TestCategory_NoCacheFallsThrough(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{categoryOut: []entity.Movie{{ID: 9, Title: "Z"}}}
	s := NewCatalogService(p, nil, nil, 0)

	for i := 0; i < 2; i++ {
		movies, err := s.Category(context.Background(), "trending")
		if err != nil {
			t.Fatalf("Category error: %v", err)
		}
		if len(movies) != 1 || movies[0].ID != 9 {
			t.Fatalf("unexpected movies: %+v", movies)
		}
	}
	// without redis every call reaches the provider
	if n := p.categoryCalls.Load(); n != 2 {
		t.Fatalf("provider calls: got %d want 2", n)
	}
}
