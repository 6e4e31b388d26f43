package gaql

import (
	"strconv"

	"github.com/adsmock/ads-api-mock/pkg/errors"
)

// DefaultPageSize is used when the caller requests no page size.
const DefaultPageSize = 10

// Page is one slice of a filtered and projected result set.
type Page struct {
	Results []Record
	// NextPageToken is the offset-encoded continuation token, empty on the
	// last page. Tokens are stateless: the token alone determines the next
	// slice.
	NextPageToken string
	// TotalResultsCount is the size of the full result set, independent of
	// the current page.
	TotalResultsCount int
}

// Paginate slices items using an offset-encoded continuation token. An empty
// token means offset 0; a malformed or negative token is a ValidationError,
// never silently coerced. An out-of-range offset yields an empty page with no
// continuation token.
func Paginate(items []Record, pageSize int, pageToken string) (Page, error) {
	offset := 0
	if pageToken != "" {
		n, err := strconv.Atoi(pageToken)
		if err != nil || n < 0 {
			return Page{}, errors.NewValidationError("invalid page token: " + strconv.Quote(pageToken))
		}
		offset = n
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	page := Page{
		Results:           []Record{},
		TotalResultsCount: len(items),
	}
	if offset >= len(items) {
		return page, nil
	}

	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	page.Results = items[offset:end]
	if offset+pageSize < len(items) {
		page.NextPageToken = strconv.Itoa(offset + pageSize)
	}

	return page, nil
}
