package services

import (
	"context"
	"time"

	"github.com/adsmock/ads-api-mock/internal/models"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

// RecordSource supplies the already-materialized records a search runs over.
// The store implements it; tests inject fakes so the pipeline stays
// independently testable.
type RecordSource interface {
	ListRecords(ctx context.Context, customerID, kind string, start, end time.Time) ([]gaql.Record, error)
}

type SearchService struct {
	records RecordSource
	now     func() time.Time
}

type SearchOption func(*SearchService)

// WithClock fixes the reference instant used to resolve relative date ranges.
func WithClock(now func() time.Time) SearchOption {
	return func(s *SearchService) {
		s.now = now
	}
}

func NewSearchService(records RecordSource, opts ...SearchOption) *SearchService {
	s := &SearchService{
		records: records,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SearchParams struct {
	CustomerID string
	Query      string
	PageSize   int
	PageToken  string
}

// Search runs the whole pipeline for one request: parse the query, resolve
// the date window, fetch the records for the requested source, then filter,
// project, and paginate. It holds no state across calls.
func (s *SearchService) Search(ctx context.Context, params SearchParams) (gaql.Page, error) {
	parsed, err := gaql.Parse(params.Query)
	if err != nil {
		return gaql.Page{}, err
	}
	if !models.SupportedEntity(parsed.Source) {
		return gaql.Page{}, srvErrors.NewValidationError("unsupported FROM entity: " + parsed.Source)
	}

	start, end := gaql.ResolveDateRange(parsed.DateRange, s.now())

	records, err := s.records.ListRecords(ctx, params.CustomerID, parsed.Source, start, end)
	if err != nil {
		return gaql.Page{}, err
	}

	matched := gaql.Filter(records, parsed.Conditions)
	projected := gaql.Project(matched, parsed.SelectFields)

	return gaql.Paginate(projected, params.PageSize, params.PageToken)
}
