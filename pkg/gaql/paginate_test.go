package gaql

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
)

var _ = Describe("Pagination", func() {
	items := make([]Record, 25)
	for i := range items {
		items[i] = Record{"campaign": map[string]any{"id": strconv.Itoa(i)}}
	}

	It("should return the first page with a continuation token", func() {
		page, err := Paginate(items, 10, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Results).To(HaveLen(10))
		Expect(page.NextPageToken).To(Equal("10"))
		Expect(page.TotalResultsCount).To(Equal(25))
	})

	It("should return the final short page without a token", func() {
		page, err := Paginate(items, 10, "20")
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Results).To(HaveLen(5))
		Expect(page.NextPageToken).To(BeEmpty())
		Expect(page.TotalResultsCount).To(Equal(25))
	})

	It("should walk the whole set with monotonically increasing tokens", func() {
		var seen int
		token := ""
		for {
			page, err := Paginate(items, 10, token)
			Expect(err).ToNot(HaveOccurred())
			seen += len(page.Results)
			if page.NextPageToken == "" {
				break
			}
			next, _ := strconv.Atoi(page.NextPageToken)
			prev, _ := strconv.Atoi(token)
			Expect(next).To(BeNumerically(">", prev))
			token = page.NextPageToken
		}
		Expect(seen).To(Equal(25))
	})

	It("should return an empty page for an out-of-range offset", func() {
		page, err := Paginate(items, 10, "40")
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Results).To(BeEmpty())
		Expect(page.NextPageToken).To(BeEmpty())
		Expect(page.TotalResultsCount).To(Equal(25))
	})

	It("should fail with ValidationError on a malformed token", func() {
		_, err := Paginate(items, 10, "abc")
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	It("should fail with ValidationError on a negative token", func() {
		_, err := Paginate(items, 10, "-5")
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	It("should default the page size when none is given", func() {
		page, err := Paginate(items, 0, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(page.Results).To(HaveLen(DefaultPageSize))
	})

	It("should report the full count regardless of the page", func() {
		page, err := Paginate(items, 7, "14")
		Expect(err).ToNot(HaveOccurred())
		Expect(page.TotalResultsCount).To(Equal(25))
	})
})
