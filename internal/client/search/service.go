// Package search implements the catalog-search state service: stateless
// queries whose results replace in-memory state wholesale, plus a capped,
// deduplicated, most-recent-first recent-search history persisted locally.
package search

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/nakhrali/storefront/internal/client/storage"
	"github.com/nakhrali/storefront/internal/notify"
	"github.com/nakhrali/storefront/pkg/api"
)

// maxRecentSearches caps the persisted history length.
const maxRecentSearches = 5

// quickSearchLimit caps autocomplete result counts.
const quickSearchLimit = 5

// minQueryLength is the shortest text quickSearch will send to the server.
const minQueryLength = 2

// defaultSort is used for text searches without an explicit sort order.
const defaultSort = "relevance"

// APIClient is the subset of the HTTP client the search service needs.
type APIClient interface {
	SearchProducts(ctx context.Context, query url.Values) (*api.ProductListResponse, error)
}

// Filters narrows a catalog search.
type Filters struct {
	Category string
	Material string
	Occasion string
	Style    string
	SortBy   string
	PriceMin float64
	PriceMax float64
	Page     int
	PerPage  int
}

func (f Filters) apply(q url.Values) {
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Material != "" {
		q.Set("material", f.Material)
	}
	if f.Occasion != "" {
		q.Set("occasion", f.Occasion)
	}
	if f.Style != "" {
		q.Set("style", f.Style)
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.PriceMin > 0 {
		q.Set("price_min", strconv.FormatFloat(f.PriceMin, 'f', -1, 64))
	}
	if f.PriceMax > 0 {
		q.Set("price_max", strconv.FormatFloat(f.PriceMax, 'f', -1, 64))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
}

// Service runs catalog searches and maintains the recent-search history.
type Service struct {
	apiClient APIClient
	prefs     storage.PrefsStorage
	notifier  notify.Notifier
	logger    *slog.Logger

	mu         sync.RWMutex
	results    []api.Product
	pagination api.Pagination
	recent     []string
	lastErr    error
}

// NewService creates a search service. A nil logger falls back to
// slog.Default().
func NewService(apiClient APIClient, prefs storage.PrefsStorage, notifier notify.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiClient: apiClient,
		prefs:     prefs,
		notifier:  notifier,
		logger:    logger,
	}
}

// Init loads the persisted recent-search history.
func (s *Service) Init(ctx context.Context) error {
	recent, err := s.prefs.GetRecentSearches(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.recent = recent
	s.mu.Unlock()
	return nil
}

// Search queries the catalog and replaces the result set wholesale. A
// successful search with non-empty text is recorded in the recent-search
// history.
func (s *Service) Search(ctx context.Context, term string, filters Filters) error {
	q := url.Values{}
	term = strings.TrimSpace(term)
	if term != "" {
		q.Set("search", term)
		if filters.SortBy == "" {
			filters.SortBy = defaultSort
		}
	}
	filters.apply(q)

	resp, err := s.apiClient.SearchProducts(ctx, q)
	if err != nil {
		s.reportError("Search failed", err)
		return nil
	}

	s.mu.Lock()
	s.results = resp.Products
	s.pagination = resp.Pagination
	s.lastErr = nil
	s.mu.Unlock()

	if term != "" {
		s.recordSearch(ctx, term)
	}
	return nil
}

// QuickSearch is the autocomplete variant: a small result cap, a minimum
// query length, and silence on failure — callers get an empty slice instead
// of an error so incremental typing never surfaces transient faults.
func (s *Service) QuickSearch(ctx context.Context, term string) []api.Product {
	term = strings.TrimSpace(term)
	if len(term) < minQueryLength {
		return nil
	}

	q := url.Values{}
	q.Set("search", term)
	q.Set("per_page", strconv.Itoa(quickSearchLimit))

	resp, err := s.apiClient.SearchProducts(ctx, q)
	if err != nil {
		s.logger.Debug("quick search failed", "term", term, "error", err)
		return nil
	}
	return resp.Products
}

// Results returns a copy of the last search's result set.
func (s *Service) Results() []api.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]api.Product, len(s.results))
	copy(out, s.results)
	return out
}

// Pagination returns the paging state of the last search.
func (s *Service) Pagination() api.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

// RecentSearches returns the history, most recent first.
func (s *Service) RecentSearches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// ClearRecentSearches wipes the history, memory and persisted copy both.
func (s *Service) ClearRecentSearches(ctx context.Context) error {
	if err := s.prefs.SaveRecentSearches(ctx, []string{}); err != nil {
		return err
	}
	s.mu.Lock()
	s.recent = nil
	s.mu.Unlock()
	return nil
}

// Err returns the error recorded by the last failed search, or nil.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// recordSearch moves term to the front of the history, dropping any
// earlier occurrence (exact string match) and trimming to the cap, then
// persists the new list.
// Persistence failures are logged, not surfaced: losing a history entry is
// not worth interrupting a successful search.
func (s *Service) recordSearch(ctx context.Context, term string) {
	s.mu.Lock()
	updated := make([]string, 0, maxRecentSearches)
	updated = append(updated, term)
	for _, prev := range s.recent {
		if prev == term {
			continue
		}
		updated = append(updated, prev)
		if len(updated) == maxRecentSearches {
			break
		}
	}
	s.recent = updated
	s.mu.Unlock()

	if err := s.prefs.SaveRecentSearches(ctx, updated); err != nil {
		s.logger.Warn("failed to persist recent searches", "error", err)
	}
}

func (s *Service) reportError(msg string, err error) {
	s.logger.Warn("search failed", "error", err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	if s.notifier != nil {
		s.notifier.Error(msg)
	}
}
