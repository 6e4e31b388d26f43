package gaql

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Date range resolution", func() {
	// A fixed mid-month reference keeps the month/year cases unambiguous.
	now := time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

	during := func(keyword string) *DateRangeSpec {
		return &DateRangeSpec{Kind: DateRangeDuring, Keyword: keyword}
	}

	It("should default to the 30 days ending today without a spec", func() {
		start, end := ResolveDateRange(nil, now)
		Expect(end).To(Equal(now))
		Expect(start).To(Equal(now.AddDate(0, 0, -30)))
	})

	It("should resolve LAST_7_DAYS to a 7-day window", func() {
		start, end := ResolveDateRange(during("LAST_7_DAYS"), now)
		Expect(end.Sub(start)).To(Equal(7 * 24 * time.Hour))
	})

	It("should resolve LAST_14_DAYS to a 14-day window", func() {
		start, end := ResolveDateRange(during("LAST_14_DAYS"), now)
		Expect(end.Sub(start)).To(Equal(14 * 24 * time.Hour))
	})

	It("should resolve LAST_30_DAYS to a 30-day window", func() {
		start, end := ResolveDateRange(during("LAST_30_DAYS"), now)
		Expect(end.Sub(start)).To(Equal(30 * 24 * time.Hour))
	})

	It("should resolve THIS_MONTH from the first of the month", func() {
		start, end := ResolveDateRange(during("THIS_MONTH"), now)
		Expect(start).To(Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
		Expect(end).To(Equal(now))
	})

	It("should resolve LAST_MONTH wholly within the previous calendar month", func() {
		start, end := ResolveDateRange(during("LAST_MONTH"), now)
		Expect(start).To(Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
		Expect(end).To(Equal(time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)))
	})

	It("should resolve THIS_YEAR from January 1", func() {
		start, end := ResolveDateRange(during("THIS_YEAR"), now)
		Expect(start).To(Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
		Expect(end).To(Equal(now))
	})

	It("should never produce end before start for any supported keyword", func() {
		keywords := []string{
			"LAST_7_DAYS", "LAST_14_DAYS", "LAST_30_DAYS",
			"THIS_MONTH", "LAST_MONTH", "THIS_YEAR",
		}
		for _, kw := range keywords {
			start, end := ResolveDateRange(during(kw), now)
			Expect(end.Before(start)).To(BeFalse(), "keyword %s", kw)
		}
	})

	It("should be case-insensitive and accept spelled-out keywords", func() {
		start7, _ := ResolveDateRange(during("last_7_days"), now)
		startSpelled, _ := ResolveDateRange(during("last 7 days"), now)
		Expect(start7).To(Equal(now.AddDate(0, 0, -7)))
		Expect(startSpelled).To(Equal(start7))
	})

	It("should fall back to the 30-day default on an unknown keyword", func() {
		start, end := ResolveDateRange(during("LAST_FORTNIGHT"), now)
		Expect(start).To(Equal(now.AddDate(0, 0, -30)))
		Expect(end).To(Equal(now))
	})

	It("should take BETWEEN bounds verbatim", func() {
		start, end := ResolveDateRange(&DateRangeSpec{
			Kind:         DateRangeBetween,
			StartLiteral: "2024-02-01",
			EndLiteral:   "2024-02-29",
		}, now)
		Expect(start).To(Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
		Expect(end).To(Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
	})

	It("should not reorder an inverted BETWEEN window", func() {
		start, end := ResolveDateRange(&DateRangeSpec{
			Kind:         DateRangeBetween,
			StartLiteral: "2024-03-10",
			EndLiteral:   "2024-03-01",
		}, now)
		Expect(end.Before(start)).To(BeTrue())
	})

	It("should fall back to the default when a BETWEEN literal is unparseable", func() {
		start, end := ResolveDateRange(&DateRangeSpec{
			Kind:         DateRangeBetween,
			StartLiteral: "yesterday",
			EndLiteral:   "2024-03-01",
		}, now)
		Expect(start).To(Equal(now.AddDate(0, 0, -30)))
		Expect(end).To(Equal(now))
	})
})
