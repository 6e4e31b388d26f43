package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adsmock/ads-api-mock/internal/handlers"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
	"github.com/adsmock/ads-api-mock/pkg/gaql"
)

var _ = Describe("Search", func() {
	var (
		searchSrv *MockSearchService
		router    *gin.Engine
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		searchSrv = &MockSearchService{}
		handler := handlers.New(searchSrv, nil, nil, nil, nil)
		router = gin.New()
		handler.RegisterRoutes(router.Group("/v14"))
	})

	doSearch := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v14/customers/1234567890/googleAds/search", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should return the page produced by the service", func() {
		searchSrv.PageResult = gaql.Page{
			Results: []gaql.Record{
				{"campaign": map[string]any{"id": "c-1"}},
			},
			NextPageToken:     "10",
			TotalResultsCount: 25,
		}

		w := doSearch(`{"query": "SELECT campaign.id FROM campaign"}`)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
		Expect(response["nextPageToken"]).To(Equal("10"))
		Expect(response["totalResultsCount"]).To(BeNumerically("==", 25))
		Expect(response["results"]).To(HaveLen(1))
	})

	It("should forward customer id, page size and page token", func() {
		w := doSearch(`{"query": "SELECT campaign.id FROM campaign", "pageSize": 50, "pageToken": "10"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(searchSrv.LastParams.CustomerID).To(Equal("1234567890"))
		Expect(searchSrv.LastParams.PageSize).To(Equal(50))
		Expect(searchSrv.LastParams.PageToken).To(Equal("10"))
	})

	It("should reject a body without a query", func() {
		w := doSearch(`{}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(searchSrv.SearchCallCount).To(Equal(0))
	})

	It("should map a parse error to 400", func() {
		searchSrv.SearchError = gaql.ParseError{Message: "query must contain SELECT and FROM"}

		w := doSearch(`{"query": "SELEKT nothing"}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var response map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
		Expect(response["error"]).To(ContainSubstring("SELECT and FROM"))
	})

	It("should map a validation error to 400", func() {
		searchSrv.SearchError = srvErrors.NewValidationError("unsupported resource: keyword_view")

		w := doSearch(`{"query": "SELECT campaign.id FROM keyword_view"}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should map an unknown customer to 404", func() {
		searchSrv.SearchError = srvErrors.NewCustomerNotFoundError("1234567890")

		w := doSearch(`{"query": "SELECT campaign.id FROM campaign"}`)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should hide unexpected errors behind a 500", func() {
		searchSrv.SearchError = errUnexpected

		w := doSearch(`{"query": "SELECT campaign.id FROM campaign"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))

		var response map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
		Expect(response["error"]).To(Equal("internal error"))
	})
})

var errUnexpected = &testError{}

type testError struct{}

func (e *testError) Error() string { return "boom" }
