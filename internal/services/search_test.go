package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adsmock/ads-api-mock/internal/services"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

// fakeRecordSource returns canned records and captures the requested window.
type fakeRecordSource struct {
	records   []gaql.Record
	err       error
	lastKind  string
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeRecordSource) ListRecords(ctx context.Context, customerID, kind string, start, end time.Time) ([]gaql.Record, error) {
	f.lastKind = kind
	f.lastStart = start
	f.lastEnd = end
	return f.records, f.err
}

var _ = Describe("SearchService", func() {
	var (
		source *fakeRecordSource
		srv    *services.SearchService
		ctx    context.Context
		now    time.Time
	)

	campaignRecord := func(id, status string, clicks int64) gaql.Record {
		return gaql.Record{
			"campaign": map[string]any{"id": id, "status": status},
			"metrics":  map[string]any{"clicks": clicks},
			"segments": map[string]any{"date": "2024-06-10"},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		source = &fakeRecordSource{
			records: []gaql.Record{
				campaignRecord("c-1", "ENABLED", 120),
				campaignRecord("c-2", "PAUSED", 30),
				campaignRecord("c-3", "ENABLED", 5),
			},
		}
		srv = services.NewSearchService(source, services.WithClock(func() time.Time { return now }))
	})

	It("runs the full pipeline over the fetched records", func() {
		page, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id, metrics.clicks FROM campaign WHERE campaign.status = 'ENABLED' AND metrics.clicks > 10",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(page.TotalResultsCount).To(Equal(1))
		Expect(page.Results[0]["campaign"].(map[string]any)["id"]).To(Equal("c-1"))

		// Projection keeps only the selected paths.
		Expect(page.Results[0]).ToNot(HaveKey("segments"))
	})

	It("queries the source for the parsed FROM entity", func() {
		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id FROM campaign",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(source.lastKind).To(Equal("campaign"))
	})

	It("defaults to the last 30 days when the query has no date clause", func() {
		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id FROM campaign",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(source.lastEnd).To(Equal(now))
		Expect(source.lastStart).To(Equal(now.AddDate(0, 0, -30)))
	})

	It("resolves a DURING keyword against the injected clock", func() {
		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id FROM campaign WHERE segments.date DURING LAST_7_DAYS",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(source.lastStart).To(Equal(now.AddDate(0, 0, -7)))
	})

	It("passes a BETWEEN window through verbatim", func() {
		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id FROM campaign WHERE segments.date BETWEEN '2024-06-01' AND '2024-06-10'",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(source.lastStart.Format("2006-01-02")).To(Equal("2024-06-01"))
		Expect(source.lastEnd.Format("2006-01-02")).To(Equal("2024-06-10"))
	})

	It("returns a parse error for a query without SELECT", func() {
		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "FROM campaign",
		})
		Expect(err).To(HaveOccurred())

		var parseErr gaql.ParseError
		Expect(err).To(BeAssignableToTypeOf(parseErr))
	})

	It("rejects an unsupported FROM entity before touching the source", func() {
		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT keyword_view.id FROM keyword_view",
		})
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		Expect(source.lastKind).To(BeEmpty())
	})

	It("propagates source errors", func() {
		source.err = srvErrors.NewCustomerNotFoundError("0000000000")

		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "0000000000",
			Query:      "SELECT campaign.id FROM campaign",
		})
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	It("paginates the projected results", func() {
		page, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id FROM campaign",
			PageSize:   2,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Results).To(HaveLen(2))
		Expect(page.NextPageToken).To(Equal("2"))
		Expect(page.TotalResultsCount).To(Equal(3))

		page, err = srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id FROM campaign",
			PageSize:   2,
			PageToken:  page.NextPageToken,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Results).To(HaveLen(1))
		Expect(page.NextPageToken).To(BeEmpty())
	})

	It("rejects a malformed page token", func() {
		_, err := srv.Search(ctx, services.SearchParams{
			CustomerID: "1000000001",
			Query:      "SELECT campaign.id FROM campaign",
			PageToken:  "not-a-number",
		})
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})
})
